package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// VentaDetalleRequest es una línea pedida en POST /api/ventas.
// El precio de venta viaja en el request (puede venir con descuento de
// mostrador); si PrecioUnitario es cero se usa el precio del catálogo.
type VentaDetalleRequest struct {
	ProductoID     string          `json:"producto_id"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
}

// RegistrarVentaRequest body para POST /api/ventas.
type RegistrarVentaRequest struct {
	ClienteID   string                `json:"cliente_id"`
	TipoPago    string                `json:"tipo_pago"`
	Detalles    []VentaDetalleRequest `json:"detalles"`
	LocalID     string                `json:"local_id"`
	EncargadoID string                `json:"encargado_id"`
}

// RegistrarVentaResponse respuesta 201 de POST /api/ventas.
type RegistrarVentaResponse struct {
	Mensaje string `json:"mensaje"`
	VentaID string `json:"venta_id"`
}

// VentaDetalleDTO línea de venta en respuestas de lectura.
type VentaDetalleDTO struct {
	LoteID         string          `json:"lote_id"`
	ProductoID     string          `json:"producto_id"`
	Cantidad       int64           `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Descuento      decimal.Decimal `json:"descuento"`
	Subtotal       decimal.Decimal `json:"subtotal"`
}

// VentaResponse venta con sus detalles para GET /api/ventas/:id.
type VentaResponse struct {
	ID          string            `json:"id"`
	ClienteID   string            `json:"cliente_id,omitempty"`
	LocalID     string            `json:"local_id"`
	EncargadoID string            `json:"encargado_id"`
	TipoPago    string            `json:"tipo_pago"`
	Total       decimal.Decimal   `json:"total"`
	Fecha       time.Time         `json:"fecha"`
	Detalles    []VentaDetalleDTO `json:"detalles"`
}
