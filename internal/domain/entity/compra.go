package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Compra es la cabecera de una compra a proveedor. Una compra al crédito
// genera además un plan de pagos (PagoCompra) con una cuota por mes.
type Compra struct {
	ID          string
	NoFactura   string
	ProveedorID string
	LocalID     string
	EncargadoID string
	Credito     bool
	Cuotas      int
	Total       decimal.Decimal
	Fecha       time.Time
	CreatedAt   time.Time
}

// CompraDetalle enlaza la compra con el lote ingresado y sus precios.
type CompraDetalle struct {
	ID          string
	CompraID    string
	LoteID      string
	ProductoID  string
	Cantidad    int64
	PrecioCosto decimal.Decimal
	PrecioVenta decimal.Decimal
	Subtotal    decimal.Decimal
}

// PagoCompra es una cuota del plan de pagos de una compra al crédito.
type PagoCompra struct {
	ID               string
	CompraID         string
	NumeroCuota      int
	Monto            decimal.Decimal
	FechaVencimiento time.Time
	Pagado           bool
}
