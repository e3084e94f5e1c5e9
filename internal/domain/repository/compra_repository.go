package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// CompraRepository define el puerto de persistencia para compras a proveedor,
// sus detalles y el plan de pagos (cuotas) de compras al crédito.
type CompraRepository interface {
	CrearCabecera(ctx context.Context, compra *entity.Compra) error
	CrearDetalle(ctx context.Context, detalle *entity.CompraDetalle) error
	CrearPago(ctx context.Context, pago *entity.PagoCompra) error
	ActualizarTotal(ctx context.Context, compraID string, total decimal.Decimal) error
	GetByID(ctx context.Context, id string) (*entity.Compra, error)
	DetallesPorCompra(ctx context.Context, compraID string) ([]*entity.CompraDetalle, error)
	PagosPorCompra(ctx context.Context, compraID string) ([]*entity.PagoCompra, error)
}
