package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/auth"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/pkg/jwt"
	"github.com/jhoicas/Almacen-api/pkg/validator"
)

// AuthHandler maneja login, logout y la identidad de la sesión.
type AuthHandler struct {
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "Credenciales"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.StatusResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if msg := validator.Struct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
	}
	token, user, err := h.uc.Login(in)
	if err != nil {
		return respondError(c, err)
	}
	// El token viaja en cookie HttpOnly además del cuerpo: el frontend web
	// usa la cookie, los clientes de API pueden usar Bearer.
	c.Cookie(&fiber.Cookie{
		Name:     TokenCookie,
		Value:    token,
		MaxAge:   int(jwt.TokenTTL.Seconds()),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.JSON(dto.LoginResponse{
		Status:  dto.StatusSuccess,
		Message: "sesión iniciada",
		Token:   token,
		User:    *user,
	})
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	clearTokenCookie(c)
	return c.JSON(dto.OK("sesión cerrada"))
}

// Me godoc
// @Summary      Identidad de la sesión actual
// @Tags         auth
// @Produce      json
// @Success      200  {object}  dto.UserInfoDTO
// @Failure      401  {object}  dto.StatusResponse
// @Router       /api/auth/me [get]
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	return c.JSON(dto.UserInfoDTO{
		Username: GetUsername(c),
		Role:     GetRole(c),
	})
}
