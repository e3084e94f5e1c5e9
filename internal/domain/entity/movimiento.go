package entity

import "time"

// Tipos de movimiento del ledger de inventario.
const (
	MovimientoVenta    = "VENTA"    // salida por venta
	MovimientoCompra   = "COMPRA"   // entrada por compra
	MovimientoTraslado = "TRASLADO" // traslado entre locales (par salida/entrada)
	MovimientoAjuste   = "AJUSTE"   // corrección manual (fila compensatoria)
)

// MovimientoInventario es una fila del ledger: la fuente de verdad del stock.
// Cantidad lleva signo (positivo = entrada, negativo = salida). Las filas son
// append-only: nunca se editan ni borran tras el commit; las correcciones son
// filas compensatorias nuevas.
type MovimientoInventario struct {
	ID          string
	LoteID      string
	LocalID     string
	Cantidad    int64 // con signo
	Tipo        string
	EncargadoID string
	Fecha       time.Time
	VentaID     string // referencia a la venta origen, si aplica
	CompraID    string // referencia a la compra origen, si aplica
	TrasladoID  string // enlaza las dos filas de un traslado
	CreatedAt   time.Time
}
