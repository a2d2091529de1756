package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// UseCase opera el ledger de movimientos de stock: entradas, salidas,
// cancelaciones y devoluciones. Toda mutación corre dentro del TxRunner con
// la fila del ítem bloqueada (SELECT FOR UPDATE), de modo que el contador
// desnormalizado Item.Stock es siempre una proyección exacta del ledger.
type UseCase struct {
	txRunner TxRunner
	txRepo   repository.TransactionRepository
	itemRepo repository.ItemRepository
	destRepo repository.DestinationRepository
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(
	txRunner TxRunner,
	txRepo repository.TransactionRepository,
	itemRepo repository.ItemRepository,
	destRepo repository.DestinationRepository,
) *UseCase {
	return &UseCase{txRunner: txRunner, txRepo: txRepo, itemRepo: itemRepo, destRepo: destRepo}
}

// InboundResult resultado de una entrada registrada.
type InboundResult struct {
	ItemName string
	Cost     decimal.Decimal
}

// RegisterInbound registra una entrada de stock: append del evento `in` al
// ledger e incremento del contador, en la misma transacción SQL.
// Regla de negocio: un ítem inactivo no admite entradas (no se repone stock
// de ítems retirados); las salidas sí operan sobre inactivos.
func (uc *UseCase) RegisterInbound(ctx context.Context, in dto.InboundRequest) (*InboundResult, error) {
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	itemID, err := canonicalID(in.ItemID)
	if err != nil {
		return nil, err
	}

	var result InboundResult
	err = uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		itemRepo repository.ItemRepository,
		_ repository.DestinationRepository,
	) error {
		// Bloquea la fila del ítem: serializa contra otras entradas/salidas.
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if !item.IsActive {
			return domain.ErrItemInactive
		}

		cost := item.Price.Mul(decimal.NewFromInt(int64(in.Quantity)))
		supplierName := "-"
		if item.Supplier != nil {
			supplierName = item.Supplier.Name
		}

		tx := &entity.Transaction{
			ID:           uuid.New().String(),
			ItemID:       item.ID,
			ItemName:     item.Name,
			Type:         entity.TxTypeIn,
			Quantity:     in.Quantity,
			Cost:         cost,
			SupplierName: supplierName,
			Timestamp:    entity.FormatTimestamp(time.Now()),
			Status:       entity.TxStatusActive,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		if err := itemRepo.AdjustStock(item.ID, in.Quantity); err != nil {
			return err
		}
		result = InboundResult{ItemName: item.Name, Cost: cost}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// RegisterOutbound registra una salida de stock a nombre del usuario actual.
// El destino es opcional: un id irresoluble deja el snapshot en "-".
// La suficiencia de stock se verifica con la fila bloqueada, por lo que dos
// salidas concurrentes no pueden dejar stock negativo.
func (uc *UseCase) RegisterOutbound(ctx context.Context, username string, in dto.OutboundRequest) error {
	if in.Quantity == nil || *in.Quantity <= 0 {
		return domain.ErrInvalidInput
	}
	qty := *in.Quantity
	itemID, err := canonicalID(in.ResolvedItemID())
	if err != nil {
		return err
	}
	// Destino: id inválido equivale a destino no resuelto, no es error.
	destID := ""
	if raw := in.ResolvedDestinationID(); !raw.Empty() {
		if id, err := canonicalID(raw); err == nil {
			destID = id
		}
	}

	return uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		itemRepo repository.ItemRepository,
		destRepo repository.DestinationRepository,
	) error {
		item, err := itemRepo.GetForUpdate(itemID)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		// A diferencia de la entrada, no se exige is_active: el stock que ya
		// está en el almacén puede seguir saliendo aunque el ítem esté retirado.
		if item.Stock < qty {
			return domain.ErrInsufficientStock
		}

		destinationName := "-"
		var destinationID *string
		if destID != "" {
			if d, err := destRepo.GetByID(destID); err == nil && d != nil {
				destinationName = d.Name
				destinationID = &d.ID
			}
		}

		tx := &entity.Transaction{
			ID:              uuid.New().String(),
			ItemID:          item.ID,
			ItemName:        item.Name,
			Type:            entity.TxTypeOut,
			Quantity:        qty,
			Cost:            item.Price.Mul(decimal.NewFromInt(int64(qty))),
			DestinationID:   destinationID,
			DestinationName: destinationName,
			Timestamp:       entity.FormatTimestamp(time.Now()),
			Status:          entity.TxStatusActive,
			PerformedBy:     username,
		}
		if err := txRepo.Create(tx); err != nil {
			return err
		}
		return itemRepo.AdjustStock(item.ID, -qty)
	})
}

// Cancel revierte una transacción activa (solo admin en la capa HTTP).
// Cancelar una entrada resta el stock que sumó; cancelar una salida lo
// devuelve. La transición active→canceled ocurre exactamente una vez.
func (uc *UseCase) Cancel(ctx context.Context, txID string) error {
	id, err := canonicalID(dto.FlexID(txID))
	if err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		itemRepo repository.ItemRepository,
		_ repository.DestinationRepository,
	) error {
		t, err := txRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if t.Terminal() {
			return domain.ErrAlreadyFinal
		}
		delta := t.Quantity
		if t.Type == entity.TxTypeIn {
			delta = -t.Quantity
		}
		if err := itemRepo.AdjustStock(t.ItemID, delta); err != nil {
			return err
		}
		return txRepo.MarkCanceled(id, time.Now())
	})
}

// Return devuelve una salida activa: suma la cantidad de vuelta al stock y
// marca la transacción como returned. Solo aplica a salidas; la transición
// es terminal y exactamente una vez.
func (uc *UseCase) Return(ctx context.Context, txID string) error {
	id, err := canonicalID(dto.FlexID(txID))
	if err != nil {
		return err
	}
	return uc.txRunner.Run(ctx, func(
		txRepo repository.TransactionRepository,
		itemRepo repository.ItemRepository,
		_ repository.DestinationRepository,
	) error {
		t, err := txRepo.GetForUpdate(id)
		if err != nil {
			return err
		}
		if t == nil {
			return domain.ErrNotFound
		}
		if t.Type != entity.TxTypeOut {
			return domain.ErrNotOutbound
		}
		if t.Terminal() {
			return domain.ErrAlreadyFinal
		}
		if err := itemRepo.AdjustStock(t.ItemID, t.Quantity); err != nil {
			return err
		}
		return txRepo.MarkReturned(id, time.Now())
	})
}

// History devuelve el historial completo del ledger, más reciente primero.
func (uc *UseCase) History(ctx context.Context) ([]dto.TransactionResponse, error) {
	list, err := uc.txRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TransactionResponse, 0, len(list))
	for _, t := range list {
		details := t.SupplierName
		if t.Type == entity.TxTypeOut {
			details = t.DestinationName
		}
		if details == "" {
			details = "-"
		}
		cost, _ := t.Cost.Float64()
		out = append(out, dto.TransactionResponse{
			ID:          t.ID,
			Timestamp:   t.Timestamp,
			ItemName:    t.ItemName,
			Type:        t.Type,
			Quantity:    t.Quantity,
			DetailsName: details,
			Cost:        cost,
			Status:      t.Status,
		})
	}
	return out, nil
}

// ItemHistory devuelve los movimientos de un ítem para su ficha.
func (uc *UseCase) ItemHistory(ctx context.Context, itemID string) ([]dto.ItemHistoryEntry, error) {
	id, err := canonicalID(dto.FlexID(itemID))
	if err != nil {
		return nil, err
	}
	item, err := uc.itemRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	list, err := uc.txRepo.ListByItem(id)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemHistoryEntry, 0, len(list))
	for _, t := range list {
		kind := "Entrada"
		details := t.SupplierName
		if t.Type == entity.TxTypeOut {
			kind = "Salida"
			details = t.DestinationName
		}
		if details == "" {
			details = "-"
		}
		out = append(out, dto.ItemHistoryEntry{
			Timestamp:   t.Timestamp,
			Type:        kind,
			Quantity:    t.Quantity,
			DetailsName: details,
		})
	}
	return out, nil
}

// canonicalID valida que el FlexID normalizado sea un UUID; los formatos no
// canónicos son siempre error de validación, nunca un fallo interno.
func canonicalID(f dto.FlexID) (string, error) {
	s := f.String()
	if s == "" {
		return "", domain.ErrInvalidID
	}
	if _, err := uuid.Parse(s); err != nil {
		return "", domain.ErrInvalidID
	}
	return s, nil
}
