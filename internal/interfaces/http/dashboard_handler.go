package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/Almacen-api/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary devuelve los contadores del dashboard.
// GET /api/dashboard/summary
//
// Respuesta: DashboardSummaryDTO (total_items, low_stock, today_trans).
// No requiere parámetros; la fecha de hoy se calcula en el servidor.
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(summary)
}

// GetChartData transacciones activas agrupadas por día, en orden cronológico.
// GET /api/dashboard/chart
func (h *DashboardHandler) GetChartData(c *fiber.Ctx) error {
	data, err := h.uc.GetChartData(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(data)
}

// GetLowStockItems ítems activos bajo el umbral de stock, con su proveedor.
// GET /api/dashboard/low-stock
func (h *DashboardHandler) GetLowStockItems(c *fiber.Ctx) error {
	items, err := h.uc.GetLowStockItems(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(items)
}
