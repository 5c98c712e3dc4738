package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/cfo-playbook-api/internal/config"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
	"github.com/vfg2006/cfo-playbook-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=service.go -destination=mocks/authenticator.go -package=mocks

type Authenticator interface {
	Enabled() bool
	LoginUser(email, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	users    map[string]*domain.User
	secret   []byte
	tokenTTL time.Duration
	enabled  bool
	now      func() time.Time
}

// NewService carrega os usuários definidos em AUTH_USERS (email|role|bcrypt-hash)
func NewService(cfg *config.Config) (Authenticator, error) {
	users, err := ParseUsers(cfg.Auth.Users)
	if err != nil {
		return nil, err
	}

	if cfg.Auth.Enabled && len(users) == 0 {
		log.L.Warn("authenticating: auth enabled without configured users, every login will fail")
	}

	return &Service{
		users:    users,
		secret:   []byte(cfg.SecretKey),
		tokenTTL: cfg.Auth.TokenTTL,
		enabled:  cfg.Auth.Enabled,
		now:      time.Now,
	}, nil
}

// ParseUsers converte as entradas de configuração em usuários indexados por email
func ParseUsers(entries []string) (map[string]*domain.User, error) {
	users := make(map[string]*domain.User, len(entries))
	for i, entry := range entries {
		parts := strings.Split(entry, "|")
		if len(parts) != 3 {
			return nil, errors.Wrapf(ErrInvalidUserEntry, "entry %d: expected email|role|hash", i)
		}

		email := handleEmail(parts[0])
		if email == "" {
			return nil, errors.Wrapf(ErrInvalidUserEntry, "entry %d: empty email", i)
		}

		roleID, ok := domain.ParseRole(strings.ToLower(strings.TrimSpace(parts[1])))
		if !ok {
			return nil, errors.Wrapf(ErrInvalidUserEntry, "entry %d: unknown role %q", i, parts[1])
		}

		hash := strings.TrimSpace(parts[2])
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, errors.Wrapf(ErrInvalidUserEntry, "entry %d: invalid bcrypt hash", i)
		}

		users[email] = &domain.User{
			Email:        email,
			RoleID:       roleID,
			PasswordHash: hash,
		}
	}
	return users, nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}

func (s *Service) Enabled() bool {
	return s.enabled
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "email and password are required")
	}

	email = handleEmail(email)

	user, ok := s.users[email]
	if !ok {
		return "", NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, email, "user not found")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, email, "wrong password")
	}

	token, err := generateJWT(user, s.secret, s.now().Add(s.tokenTTL))
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "could not sign token")
	}

	return token, nil
}

func generateJWT(user *domain.User, secretKey []byte, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		UserEmail:  user.Email,
		UserRoleID: user.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Email,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, NewAuthError(ErrExpiredToken, apiErrors.ErrExpiredToken, err.Error())
		}
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "invalid claims")
	}

	return claims, nil
}
