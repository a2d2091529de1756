package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/pkg/validator"
)

// CategoryHandler CRUD de categorías con soft-delete.
type CategoryHandler struct {
	uc *usecase.CategoryUseCase
}

// NewCategoryHandler construye el handler.
func NewCategoryHandler(uc *usecase.CategoryUseCase) *CategoryHandler {
	return &CategoryHandler{uc: uc}
}

// Create godoc
// @Summary      Crear categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CategoryRequest  true  "Datos de la categoría"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.StatusResponse
// @Router       /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if msg := validator.Struct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
	}
	if err := h.uc.Create(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categoría creada"))
}

// List godoc
// @Summary      Listar categorías
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.CategoryResponse
// @Router       /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get godoc
// @Summary      Obtener categoría por ID
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      404  {object}  dto.StatusResponse
// @Router       /api/categories/{id} [get]
func (h *CategoryHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar categoría
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID de la categoría"
// @Param        body  body  dto.CategoryRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.StatusResponse
// @Router       /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	var in dto.CategoryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if msg := validator.Struct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
	}
	updated, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	if !updated {
		// Petición válida sin efecto: la fila no cambió.
		return c.JSON(dto.Fail("sin cambios"))
	}
	return c.JSON(dto.OK("categoría actualizada"))
}

// Delete godoc
// @Summary      Dar de baja una categoría (soft-delete)
// @Tags         categories
// @Produce      json
// @Param        id   path  string  true  "ID de la categoría"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.StatusResponse
// @Router       /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("categoría dada de baja"))
}

// Options godoc
// @Summary      Categorías activas para dropdowns
// @Tags         categories
// @Produce      json
// @Success      200  {array}  dto.OptionDTO
// @Router       /api/categories/active [get]
func (h *CategoryHandler) Options(c *fiber.Ctx) error {
	out, err := h.uc.Options()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
