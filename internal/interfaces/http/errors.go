package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
)

// respondError traduce errores de dominio al envelope JSON y su status HTTP.
// Los errores de negocio (stock insuficiente, transacción final, id inválido)
// son 400: son peticiones bien formadas que el estado actual no admite.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("recurso no encontrado"))
	case errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.Error("usuario no encontrado"))
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Error("credenciales inválidas"))
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.Error("acceso denegado"))
	case errors.Is(err, domain.ErrInvalidID):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("id inválido"))
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("datos inválidos"))
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("ya existe un registro con ese nombre"))
	case errors.Is(err, domain.ErrUsernameTaken):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("el nombre de usuario ya está en uso"))
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("stock insuficiente"))
	case errors.Is(err, domain.ErrItemInactive):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("el ítem está inactivo"))
	case errors.Is(err, domain.ErrAlreadyFinal):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("la transacción ya fue cancelada o devuelta"))
	case errors.Is(err, domain.ErrNotOutbound):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("solo las salidas admiten devolución"))
	case errors.Is(err, domain.ErrSelfDelete):
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("no puedes eliminar tu propio usuario"))
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Error("error interno"))
	}
}
