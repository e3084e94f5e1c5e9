package repository

import (
	"context"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// EmpleadoRepository define el puerto de persistencia para empleados.
type EmpleadoRepository interface {
	Create(ctx context.Context, empleado *entity.Empleado) error
	GetByID(ctx context.Context, id string) (*entity.Empleado, error)
	// FindByEmail devuelve nil sin error si el email no existe.
	FindByEmail(ctx context.Context, email string) (*entity.Empleado, error)
}
