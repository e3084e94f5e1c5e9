package dto

import "time"

// LoginRequest body para POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// EmpleadoResponse empleado sin campos sensibles.
type EmpleadoResponse struct {
	ID        string    `json:"id"`
	LocalID   string    `json:"local_id"`
	Email     string    `json:"email"`
	Nombre    string    `json:"nombre"`
	Rol       string    `json:"rol"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginResponse token + empleado autenticado.
type LoginResponse struct {
	Token    string           `json:"token"`
	Empleado EmpleadoResponse `json:"empleado"`
}

// RegistrarEmpleadoRequest body para POST /api/auth/register.
type RegistrarEmpleadoRequest struct {
	LocalID  string `json:"local_id"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Nombre   string `json:"nombre"`
	Rol      string `json:"rol"`
}
