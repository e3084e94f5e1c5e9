package dto

import "time"

// LoteDTO lote en respuestas de lectura.
type LoteDTO struct {
	ID               string    `json:"id"`
	ProductoID       string    `json:"producto_id"`
	Etiqueta         string    `json:"etiqueta"`
	FechaVencimiento time.Time `json:"fecha_vencimiento"`
}

// StockLoteDTO stock derivado de un lote en un local.
type StockLoteDTO struct {
	LoteID           string    `json:"lote_id"`
	Etiqueta         string    `json:"etiqueta"`
	FechaVencimiento time.Time `json:"fecha_vencimiento"`
	Stock            int64     `json:"stock"`
}

// StockProductoResponse respuesta de GET /api/inventario/stock.
type StockProductoResponse struct {
	ProductoID string         `json:"producto_id"`
	LocalID    string         `json:"local_id"`
	Total      int64          `json:"total"`
	Lotes      []StockLoteDTO `json:"lotes"`
}

// MovimientoDTO fila del kardex en respuestas de lectura.
type MovimientoDTO struct {
	ID          string    `json:"id"`
	LoteID      string    `json:"lote_id"`
	LocalID     string    `json:"local_id"`
	Cantidad    int64     `json:"cantidad"`
	Tipo        string    `json:"tipo"`
	EncargadoID string    `json:"encargado_id"`
	Fecha       time.Time `json:"fecha"`
	VentaID     string    `json:"venta_id,omitempty"`
	CompraID    string    `json:"compra_id,omitempty"`
	TrasladoID  string    `json:"traslado_id,omitempty"`
}

// VencimientoDTO fila del barrido de lotes por vencer.
type VencimientoDTO struct {
	LoteID           string    `json:"lote_id"`
	Etiqueta         string    `json:"etiqueta"`
	FechaVencimiento time.Time `json:"fecha_vencimiento"`
	ProductoID       string    `json:"producto_id"`
	ProductoNombre   string    `json:"producto_nombre"`
	LocalID          string    `json:"local_id"`
	Stock            int64     `json:"stock"`
	DiasRestantes    int       `json:"dias_restantes"`
}

// StockBajoDTO fila del barrido de stock bajo mínimo.
type StockBajoDTO struct {
	ProductoID  string `json:"producto_id"`
	Codigo      string `json:"codigo"`
	Nombre      string `json:"nombre"`
	StockMinimo int64  `json:"stock_minimo"`
	LocalID     string `json:"local_id"`
	Stock       int64  `json:"stock"`
}
