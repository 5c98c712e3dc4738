package handler

import (
	"net/http"

	"github.com/vfg2006/cfo-playbook-api/internal/domain"
	"github.com/vfg2006/cfo-playbook-api/internal/usecases/authenticating"
	"github.com/vfg2006/cfo-playbook-api/pkg/apiErrors"
	"github.com/vfg2006/cfo-playbook-api/pkg/middleware"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type MeResponse struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

func Login(service authenticating.Authenticator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeBody(r, &req); err != nil {
			writeDecodeError(w, r, err)
			return
		}

		token, err := service.LoginUser(req.Email, req.Password)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, LoginResponse{Token: token})
	}
}

// GetMe retorna o usuário do token
func GetMe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.ClaimsFromContext(r.Context())
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "User not authenticated", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, MeResponse{
			Email: claims.UserEmail,
			Role:  domain.RoleName(claims.UserRoleID),
		})
	}
}
