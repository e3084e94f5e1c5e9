package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de pago aceptados en ventas.
const (
	PagoEfectivo = "EFECTIVO"
	PagoTarjeta  = "TARJETA"
	PagoCredito  = "CREDITO"
)

// TipoPagoValido valida el clasificador de pago de una venta.
func TipoPagoValido(tipo string) bool {
	switch tipo {
	case PagoEfectivo, PagoTarjeta, PagoCredito:
		return true
	}
	return false
}

// Venta es la cabecera de una venta: agrupa líneas de detalle y registra el
// pago, el total calculado y los responsables. El total se parchea al final
// de la transacción, una vez sumadas todas las líneas.
type Venta struct {
	ID          string
	ClienteID   string // opcional: venta de mostrador sin cliente
	LocalID     string
	EncargadoID string
	TipoPago    string
	Total       decimal.Decimal
	Fecha       time.Time
	CreatedAt   time.Time
}

// VentaDetalle es la línea de auditoría que explica cada salida del ledger:
// qué lote, cuántas unidades y a qué precio.
type VentaDetalle struct {
	ID             string
	VentaID        string
	LoteID         string
	ProductoID     string
	Cantidad       int64
	PrecioUnitario decimal.Decimal
	Descuento      decimal.Decimal
	Subtotal       decimal.Decimal
}

// CalcularSubtotal computa cantidad × precio unitario − descuento.
func (d *VentaDetalle) CalcularSubtotal() decimal.Decimal {
	bruto := d.PrecioUnitario.Mul(decimal.NewFromInt(d.Cantidad))
	return bruto.Sub(d.Descuento)
}
