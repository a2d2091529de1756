package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/ledger"
)

// TransactionHandler operaciones del ledger: entradas, salidas,
// cancelaciones, devoluciones y el historial.
type TransactionHandler struct {
	uc *ledger.UseCase
}

// NewTransactionHandler construye el handler.
func NewTransactionHandler(uc *ledger.UseCase) *TransactionHandler {
	return &TransactionHandler{uc: uc}
}

// Inbound godoc
// @Summary      Registrar entrada de stock
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.InboundRequest  true  "Ítem y cantidad"
// @Success      200   {object}  dto.InboundResponse
// @Failure      400   {object}  dto.StatusResponse
// @Router       /api/transactions/in [post]
func (h *TransactionHandler) Inbound(c *fiber.Ctx) error {
	var in dto.InboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	result, err := h.uc.RegisterInbound(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	cost, _ := result.Cost.Float64()
	return c.JSON(dto.InboundResponse{
		Status:  dto.StatusSuccess,
		Message: fmt.Sprintf("entrada registrada: %s", result.ItemName),
		Cost:    cost,
	})
}

// Outbound godoc
// @Summary      Registrar salida de stock
// @Tags         transactions
// @Accept       json
// @Produce      json
// @Param        body  body  dto.OutboundRequest  true  "Ítem, cantidad y destino opcional"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.StatusResponse
// @Router       /api/transactions/out [post]
func (h *TransactionHandler) Outbound(c *fiber.Ctx) error {
	var in dto.OutboundRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Error("cuerpo inválido"))
	}
	if err := h.uc.RegisterOutbound(c.Context(), GetUsername(c), in); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("salida registrada"))
}

// Cancel godoc
// @Summary      Cancelar una transacción activa
// @Tags         transactions
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.StatusResponse
// @Failure      400  {object}  dto.StatusResponse
// @Router       /api/transactions/{id}/cancel [post]
func (h *TransactionHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("transacción cancelada"))
}

// Return godoc
// @Summary      Devolver una salida activa
// @Tags         transactions
// @Produce      json
// @Param        id   path  string  true  "ID de la transacción"
// @Success      200  {object}  dto.StatusResponse
// @Failure      400  {object}  dto.StatusResponse
// @Router       /api/transactions/{id}/return [post]
func (h *TransactionHandler) Return(c *fiber.Ctx) error {
	if err := h.uc.Return(c.Context(), c.Params("id")); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.OK("devolución registrada"))
}

// History godoc
// @Summary      Historial completo del ledger
// @Tags         transactions
// @Produce      json
// @Success      200  {array}  dto.TransactionResponse
// @Router       /api/transactions [get]
func (h *TransactionHandler) History(c *fiber.Ctx) error {
	out, err := h.uc.History(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
