package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProductoRequest body para crear o actualizar un producto.
type ProductoRequest struct {
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	PrecioCosto decimal.Decimal `json:"precio_costo"`
	StockMinimo int64           `json:"stock_minimo"`
	Receta      bool            `json:"receta"`
}

// ProductoResponse producto en respuestas de lectura.
type ProductoResponse struct {
	ID          string          `json:"id"`
	Codigo      string          `json:"codigo"`
	Nombre      string          `json:"nombre"`
	Descripcion string          `json:"descripcion,omitempty"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	PrecioCosto decimal.Decimal `json:"precio_costo"`
	StockMinimo int64           `json:"stock_minimo"`
	Receta      bool            `json:"receta"`
	CreatedAt   time.Time       `json:"created_at"`
}
