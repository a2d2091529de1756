package domain

import "strings"

// NormalizeRole baja el rol a minúsculas para comparación case-insensitive.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}

// Re-export de los roles para no importar entity desde la tabla de permisos.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleStaff   = "staff"
)
