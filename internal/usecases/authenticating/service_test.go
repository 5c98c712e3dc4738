package authenticating

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cfo-playbook-api/internal/config"
	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func newTestService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{
		SecretKey: "test-secret",
		Auth: config.Auth{
			Enabled:  true,
			TokenTTL: time.Hour,
			Users: []string{
				"CFO@Example.com|admin|" + hashPassword(t, "s3cret"),
				"analyst@example.com|analyst|" + hashPassword(t, "numbers"),
			},
		},
	}

	auth, err := NewService(cfg)
	require.NoError(t, err)
	return auth.(*Service)
}

func TestParseUsers(t *testing.T) {
	hash := hashPassword(t, "x")

	tests := []struct {
		name    string
		entries []string
		wantErr bool
	}{
		{"válido", []string{"a@b.com|viewer|" + hash}, false},
		{"campos faltando", []string{"a@b.com|viewer"}, true},
		{"perfil desconhecido", []string{"a@b.com|root|" + hash}, true},
		{"hash inválido", []string{"a@b.com|admin|plain"}, true},
		{"email vazio", []string{" |admin|" + hash}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users, err := ParseUsers(tt.entries)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrInvalidUserEntry))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.RoleViewer, users["a@b.com"].RoleID)
		})
	}
}

func TestLoginUser(t *testing.T) {
	s := newTestService(t)

	tests := []struct {
		name     string
		email    string
		password string
		code     string
	}{
		{"sem senha", "cfo@example.com", "", apiErrors.ErrMissingRequiredData},
		{"usuário inexistente", "nobody@example.com", "x", apiErrors.ErrUserNotFound},
		{"senha errada", "cfo@example.com", "wrong", apiErrors.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.LoginUser(tt.email, tt.password)
			require.Error(t, err)

			var authErr *AuthError
			require.True(t, errors.As(err, &authErr))
			assert.Equal(t, tt.code, authErr.Code)
			assert.True(t, IsCredentialsError(err))
		})
	}
}

func TestLoginUser_IssuesValidToken(t *testing.T) {
	s := newTestService(t)

	token, err := s.LoginUser("  cfo@example.com ", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := s.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "cfo@example.com", claims.UserEmail)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
}

func TestValidateToken_Expired(t *testing.T) {
	s := newTestService(t)
	s.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, err := s.LoginUser("analyst@example.com", "numbers")
	require.NoError(t, err)

	_, err = s.ValidateToken(token)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExpiredToken))
	assert.True(t, IsTokenError(err))
}

func TestValidateToken_WrongSecret(t *testing.T) {
	s := newTestService(t)
	token, err := s.LoginUser("analyst@example.com", "numbers")
	require.NoError(t, err)

	other := newTestService(t)
	other.secret = []byte("another-secret")

	_, err = other.ValidateToken(token)
	assert.True(t, errors.Is(err, ErrInvalidToken))

	_, err = s.ValidateToken("garbage")
	assert.True(t, errors.Is(err, ErrInvalidToken))
}
