package entity

import "time"

// Local representa una sucursal de la cadena de farmacias.
type Local struct {
	ID        string
	Nombre    string
	Direccion string
	Telefono  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
