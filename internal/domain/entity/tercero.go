package entity

import "time"

// Proveedor representa un proveedor de medicamentos.
type Proveedor struct {
	ID        string
	Nombre    string
	NIT       string
	Telefono  string
	Email     string
	CreatedAt time.Time
}

// Cliente representa un cliente registrado (para ventas a crédito o facturación).
type Cliente struct {
	ID        string
	Nombre    string
	Documento string
	Telefono  string
	Email     string
	CreatedAt time.Time
}
