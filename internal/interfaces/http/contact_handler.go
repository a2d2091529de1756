package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/pkg/validator"
)

// contactService contrato común de proveedores y destinos: misma forma de
// datos, mismo CRUD con soft-delete. Lo implementan *usecase.SupplierUseCase
// y *usecase.DestinationUseCase.
type contactService interface {
	Create(in dto.ContactRequest) error
	List() ([]dto.ContactResponse, error)
	Get(id string) (*dto.ContactResponse, error)
	Update(id string, in dto.ContactRequest) (bool, error)
	Delete(id string) error
	Options() ([]dto.OptionDTO, error)
}

// ContactHandler CRUD de proveedores o destinos según el servicio inyectado.
// Las rutas y el label distinguen a cuál sirve.
type ContactHandler struct {
	svc   contactService
	label string // "proveedor" | "destino", para los mensajes
}

// NewSupplierHandler handler de proveedores.
func NewSupplierHandler(svc contactService) *ContactHandler {
	return &ContactHandler{svc: svc, label: "proveedor"}
}

// NewDestinationHandler handler de destinos.
func NewDestinationHandler(svc contactService) *ContactHandler {
	return &ContactHandler{svc: svc, label: "destino"}
}

// Create da de alta un proveedor o destino.
func (h *ContactHandler) Create(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if msg := validator.Struct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
	}
	if err := h.svc.Create(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(h.label + " creado"))
}

// List devuelve todos los registros, incluidos los soft-deleted.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	out, err := h.svc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get devuelve un registro por ID.
func (h *ContactHandler) Get(c *fiber.Ctx) error {
	out, err := h.svc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update edita los datos de contacto.
func (h *ContactHandler) Update(c *fiber.Ctx) error {
	var in dto.ContactRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if msg := validator.Struct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
	}
	updated, err := h.svc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if !updated {
		return c.JSON(dto.Fail("sin cambios"))
	}
	return c.JSON(dto.OK(h.label + " actualizado"))
}

// Delete soft-delete del registro.
func (h *ContactHandler) Delete(c *fiber.Ctx) error {
	if err := h.svc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK(h.label + " dado de baja"))
}

// Options registros activos para dropdowns {id, value}.
func (h *ContactHandler) Options(c *fiber.Ctx) error {
	out, err := h.svc.Options()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
