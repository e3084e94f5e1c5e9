package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto representa un producto del catálogo de la farmacia.
// El stock nunca vive aquí: se deriva siempre del ledger de inventario
// sumando las cantidades con signo por (lote, local).
type Producto struct {
	ID          string
	Codigo      string // código único (barras o interno)
	Nombre      string
	Descripcion string
	PrecioVenta decimal.Decimal
	PrecioCosto decimal.Decimal
	StockMinimo int64 // umbral para alertas de reposición
	Receta      bool  // requiere receta médica
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
