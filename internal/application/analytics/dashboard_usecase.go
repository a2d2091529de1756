// Package analytics contiene los casos de uso read-only del dashboard.
package analytics

import (
	"context"
	"time"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// LowStockThreshold umbral de stock bajo del dashboard.
const LowStockThreshold = 10

// DashboardUseCase calcula los agregados del dashboard recalculando desde el
// ledger en lugar de confiar en el contador desnormalizado; la única
// excepción deliberada es LowStockItems, que expone el contador.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el resumen del dashboard.
//
// Tres consultas en paralelo:
//  1. CountItems                  → TotalItems
//  2. StockSums (ledger completo) → LowStock
//  3. CountTransactionsOnDate     → TodayTrans (prefijo de fecha de hoy, UTC+7)
//
// LowStock cuenta ítems cuyo stock derivado del ledger (in - out, sin filtrar
// por status: las canceladas y devueltas también suman) queda bajo el umbral.
// Ese "sin filtrar" reproduce el comportamiento observable del sistema
// original; el test del paquete lo deja señalado. Un ítem sin movimientos no
// aparece en las sumas y deriva stock 0, así que también cuenta como bajo.
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.DashboardSummaryDTO, error) {
	type intResult struct {
		n   int
		err error
	}
	type sumsResult struct {
		sums []repository.StockSum
		err  error
	}

	itemsCh := make(chan intResult, 1)
	todayCh := make(chan intResult, 1)
	sumsCh := make(chan sumsResult, 1)

	today := time.Now().In(entity.WarehouseZone).Format(entity.DateLayout)

	go func() {
		n, err := uc.analyticsRepo.CountItems()
		itemsCh <- intResult{n, err}
	}()
	go func() {
		n, err := uc.analyticsRepo.CountTransactionsOnDate(today)
		todayCh <- intResult{n, err}
	}()
	go func() {
		sums, err := uc.analyticsRepo.StockSums()
		sumsCh <- sumsResult{sums, err}
	}()

	items := <-itemsCh
	todayTrans := <-todayCh
	sums := <-sumsCh

	if items.err != nil {
		return nil, items.err
	}
	if todayTrans.err != nil {
		return nil, todayTrans.err
	}
	if sums.err != nil {
		return nil, sums.err
	}

	lowStock := 0
	for _, s := range sums.sums {
		if s.Derived() < LowStockThreshold {
			lowStock++
		}
	}
	// Los ítems que nunca pasaron por el ledger derivan stock 0.
	if missing := items.n - len(sums.sums); missing > 0 {
		lowStock += missing
	}

	return &dto.DashboardSummaryDTO{
		TotalItems: items.n,
		LowStock:   lowStock,
		TodayTrans: todayTrans.n,
	}, nil
}

// GetChartData devuelve el conteo de transacciones activas por fecha,
// ascendente por fecha calendario (parseada del prefijo del timestamp).
func (uc *DashboardUseCase) GetChartData(ctx context.Context) ([]repository.DateCount, error) {
	return uc.analyticsRepo.ActiveTransactionsByDate()
}

// GetLowStockItems lista los ítems bajo el umbral según el contador
// desnormalizado, con el nombre del proveedor.
func (uc *DashboardUseCase) GetLowStockItems(ctx context.Context) ([]repository.LowStockItem, error) {
	return uc.analyticsRepo.LowStockItems(LowStockThreshold)
}
