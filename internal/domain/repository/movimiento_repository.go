package repository

import (
	"context"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// StockBajo es la fila del barrido de stock mínimo: producto + stock derivado por local.
type StockBajo struct {
	ProductoID  string
	Codigo      string
	Nombre      string
	StockMinimo int64
	LocalID     string
	Stock       int64
}

// MovimientoRepository define el puerto del ledger de inventario.
// Las filas son append-only: no hay Update ni Delete.
type MovimientoRepository interface {
	Create(ctx context.Context, mov *entity.MovimientoInventario) error
	// StockDisponible deriva el stock de (lote, local) sumando las cantidades
	// con signo del ledger. Devuelve 0 para un lote sin filas. Se ejecuta
	// sobre el Querier del llamador, de modo que dentro de una transacción
	// ve una vista consistente de la operación en curso.
	StockDisponible(ctx context.Context, loteID, localID string) (int64, error)
	// Kardex lista los movimientos de (lote, local) del más reciente al más antiguo.
	Kardex(ctx context.Context, loteID, localID string, limit, offset int) ([]*entity.MovimientoInventario, error)
	// StockBajoMinimo lista productos cuyo stock derivado en algún local está
	// por debajo de su stock mínimo.
	StockBajoMinimo(ctx context.Context) ([]StockBajo, error)
}
