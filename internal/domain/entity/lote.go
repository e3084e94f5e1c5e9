package entity

import "time"

// Lote representa una partida de un producto con su fecha de vencimiento.
// Un producto puede tener varios lotes vigentes a la vez; la pareja
// (producto_id, etiqueta) es única y las compras reutilizan el lote existente.
type Lote struct {
	ID               string
	ProductoID       string
	Etiqueta         string    // etiqueta legible del lote (ej. "L-2026-044")
	FechaVencimiento time.Time // granularidad de día
	CreatedAt        time.Time
}

// Vencido indica si el lote ya pasó su fecha de vencimiento respecto a ref.
func (l *Lote) Vencido(ref time.Time) bool {
	return l.FechaVencimiento.Before(ref.Truncate(24 * time.Hour))
}
