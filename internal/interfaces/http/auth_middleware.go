package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/pkg/jwt"
)

// Locals keys para la identidad del usuario en Fiber.
const (
	LocalUsername = "username"
	LocalRole     = "role"
)

// TokenCookie nombre de la cookie de sesión.
const TokenCookie = "token"

// AuthMiddleware valida el JWT de la petición y deja username y rol en
// c.Locals. El token se busca primero en la cookie `token` y después en el
// header Authorization (Bearer). Un token ausente, inválido o expirado
// responde siempre 401 JSON, nunca redirect: el frontend decide la
// navegación. Si la cookie traía un token inválido, se limpia de paso.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := c.Cookies(TokenCookie)
		if tokenString == "" {
			if authHeader := c.Get("Authorization"); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
					tokenString = strings.TrimSpace(parts[1])
				}
			}
		}
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("autenticación requerida"))
		}
		username, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			if c.Cookies(TokenCookie) != "" {
				clearTokenCookie(c)
			}
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("token inválido o expirado"))
		}
		c.Locals(LocalUsername, username)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequirePermission verifica contra la tabla de permisos que el rol del token
// pueda ejecutar la acción sobre el recurso. Debe usarse DESPUÉS de
// AuthMiddleware. Autenticado sin permiso → 403.
func RequirePermission(resource, action string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("autenticación requerida"))
		}
		if !domain.Allowed(role, resource, action) {
			return c.Status(fiber.StatusForbidden).JSON(dto.Error("acceso denegado"))
		}
		return c.Next()
	}
}

// GetUsername devuelve el username del contexto (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	v := c.Locals(LocalUsername)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// clearTokenCookie expira la cookie de sesión en el cliente. Fiber no emite
// Max-Age negativos, así que la expiración va en Expires.
func clearTokenCookie(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}
