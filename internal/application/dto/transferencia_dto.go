package dto

// TransferenciaProductoRequest es una línea de POST /api/transferencias.
type TransferenciaProductoRequest struct {
	ProductoID string `json:"producto_id"`
	Cantidad   int64  `json:"cantidad"`
}

// RegistrarTransferenciaRequest body para POST /api/transferencias.
type RegistrarTransferenciaRequest struct {
	OrigenLocalID  string                         `json:"origen_local_id"`
	DestinoLocalID string                         `json:"destino_local_id"`
	Productos      []TransferenciaProductoRequest `json:"productos"`
	EncargadoID    string                         `json:"encargado_id"`
}

// RegistrarTransferenciaResponse respuesta 201 de POST /api/transferencias.
type RegistrarTransferenciaResponse struct {
	Mensaje string `json:"mensaje"`
}
