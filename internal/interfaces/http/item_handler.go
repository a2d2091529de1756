package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/pkg/validator"
)

// ItemHandler CRUD de ítems, buscador y historial de movimientos.
type ItemHandler struct {
	uc     *usecase.ItemUseCase
	ledger *ledger.UseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, ledgerUC *ledger.UseCase) *ItemHandler {
	return &ItemHandler{uc: uc, ledger: ledgerUC}
}

// Create godoc
// @Summary      Crear ítem
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "Datos del ítem"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.StatusResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if msg := validator.Struct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
	}
	if _, err := h.uc.Create(in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("ítem creado"))
}

// List godoc
// @Summary      Listar ítems
// @Tags         items
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Editar ítem
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.ItemRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.StatusResponse
// @Failure      404   {object}  dto.StatusResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if msg := validator.Struct(in); msg != "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error(msg))
	}
	if err := h.uc.Update(c.Params("id"), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("ítem actualizado"))
}

// Delete godoc
// @Summary      Dar de baja un ítem (soft-delete)
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.StatusResponse
// @Failure      404  {object}  dto.StatusResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Deactivate(c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("ítem dado de baja"))
}

// Search godoc
// @Summary      Buscar ítems activos por nombre (formulario de salidas)
// @Tags         transactions
// @Produce      json
// @Param        filter[value]  query  string  false  "Texto a buscar"
// @Success      200  {array}  dto.ItemOptionDTO
// @Router       /api/transactions/search_items [get]
func (h *ItemHandler) Search(c *fiber.Ctx) error {
	// El autocompletado del formulario manda el texto en filter[value].
	out, err := h.uc.Search(c.Query("filter[value]"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History godoc
// @Summary      Historial de movimientos de un ítem
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {array}  dto.ItemHistoryEntry
// @Failure      404  {object}  dto.StatusResponse
// @Router       /api/items/{id}/history [get]
func (h *ItemHandler) History(c *fiber.Ctx) error {
	out, err := h.ledger.ItemHistory(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
