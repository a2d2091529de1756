package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers HTTP los
// traducen a status codes: validación y conflicto → 400, no encontrado → 404,
// autenticación → 401, autorización → 403.
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrUserNotFound      = errors.New("usuario no encontrado")
	ErrUsernameTaken     = errors.New("el username ya está registrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidID         = errors.New("identificador inválido")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrItemInactive      = errors.New("el ítem está inactivo")
	ErrAlreadyFinal      = errors.New("la transacción ya fue cancelada o devuelta")
	ErrNotOutbound       = errors.New("solo las salidas admiten devolución")
	ErrSelfDelete        = errors.New("no puedes eliminar tu propio usuario")
)
