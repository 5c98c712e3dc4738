package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// User é um usuário da API definido na configuração
type User struct {
	Email        string `json:"email"`
	RoleID       int    `json:"role_id"`
	PasswordHash string `json:"-"`
}

type Claims struct {
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}

// Perfis de acesso
const (
	RoleAdmin   = 1
	RoleAnalyst = 2
	RoleViewer  = 3
)

var roleNames = map[string]int{
	"admin":   RoleAdmin,
	"analyst": RoleAnalyst,
	"viewer":  RoleViewer,
}

// ParseRole converte o nome do perfil no seu ID
func ParseRole(name string) (int, bool) {
	id, ok := roleNames[name]
	return id, ok
}

// RoleName é o inverso de ParseRole; IDs desconhecidos viram "unknown"
func RoleName(id int) string {
	for name, roleID := range roleNames {
		if roleID == id {
			return name
		}
	}
	return "unknown"
}
