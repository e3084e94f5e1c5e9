package dto

import "github.com/shopspring/decimal"

// CompraDetalleRequest es una línea de POST /api/compras. Lote y fecha de
// vencimiento identifican la partida que ingresa: si la pareja
// (lote, producto_id) ya existe se reutiliza el lote, si no se crea.
type CompraDetalleRequest struct {
	ProductoID       string          `json:"producto_id"`
	Cantidad         int64           `json:"cantidad"`
	PrecioCosto      decimal.Decimal `json:"precio_costo"`
	PrecioVenta      decimal.Decimal `json:"precio_venta"`
	Lote             string          `json:"lote"`
	FechaVencimiento string          `json:"fecha_vencimiento"` // formato 2006-01-02
}

// RegistrarCompraRequest body para POST /api/compras.
type RegistrarCompraRequest struct {
	NoFactura   string                 `json:"no_factura"`
	ProveedorID string                 `json:"proveedor_id"`
	Credito     bool                   `json:"credito"`
	Cuotas      int                    `json:"cuotas"`
	Detalles    []CompraDetalleRequest `json:"detalles"`
	LocalID     string                 `json:"local_id"`
	EncargadoID string                 `json:"encargado_id"`
}

// RegistrarCompraResponse respuesta 201 de POST /api/compras.
type RegistrarCompraResponse struct {
	Mensaje  string `json:"mensaje"`
	CompraID string `json:"compra_id"`
}
