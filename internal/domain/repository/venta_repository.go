package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// VentaRepository define el puerto de persistencia para ventas.
// Cabecera, detalles y parche del total se escriben dentro de la misma
// transacción que los movimientos del ledger (lo garantiza el orquestador).
type VentaRepository interface {
	CrearCabecera(ctx context.Context, venta *entity.Venta) error
	CrearDetalle(ctx context.Context, detalle *entity.VentaDetalle) error
	// ActualizarTotal parchea el total de la cabecera una vez sumadas las líneas.
	ActualizarTotal(ctx context.Context, ventaID string, total decimal.Decimal) error
	GetByID(ctx context.Context, id string) (*entity.Venta, error)
	DetallesPorVenta(ctx context.Context, ventaID string) ([]*entity.VentaDetalle, error)
}
