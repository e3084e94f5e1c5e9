package entity

import "time"

// Roles de empleado.
const (
	RolAdmin     = "admin"
	RolEncargado = "encargado"
	RolVendedor  = "vendedor"
)

// Empleado representa un usuario del sistema (encargado de local, vendedor o administrador).
type Empleado struct {
	ID           string
	LocalID      string
	Email        string
	PasswordHash string
	Nombre       string
	Rol          string
	Activo       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
