package entity

import (
	"strings"
	"time"
)

// Roles válidos para User.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// ValidRole responde si el rol (en cualquier capitalización) es uno de los conocidos.
func ValidRole(role string) bool {
	switch strings.ToLower(role) {
	case RoleAdmin, RoleManager, RoleStaff:
		return true
	}
	return false
}

// User representa un usuario del sistema. Solo un admin crea o elimina
// usuarios; un usuario nunca puede eliminarse a sí mismo.
type User struct {
	ID           string
	Username     string    // único
	PasswordHash string    // bcrypt hash, nunca plano en dominio después de persistir
	Role         string    // admin, manager, staff
	CreatedAt    time.Time
}
