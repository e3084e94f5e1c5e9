package repository

import (
	"context"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// ProveedorRepository define el puerto de persistencia para proveedores.
type ProveedorRepository interface {
	Create(ctx context.Context, proveedor *entity.Proveedor) error
	GetByID(ctx context.Context, id string) (*entity.Proveedor, error)
	List(ctx context.Context) ([]*entity.Proveedor, error)
}

// ClienteRepository define el puerto de persistencia para clientes.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id string) (*entity.Cliente, error)
	List(ctx context.Context) ([]*entity.Cliente, error)
}
