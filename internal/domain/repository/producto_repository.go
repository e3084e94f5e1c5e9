package repository

import (
	"context"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// ProductoRepository define el puerto de persistencia del catálogo de productos.
type ProductoRepository interface {
	Create(ctx context.Context, producto *entity.Producto) error
	Update(ctx context.Context, producto *entity.Producto) error
	GetByID(ctx context.Context, id string) (*entity.Producto, error)
	GetByCodigo(ctx context.Context, codigo string) (*entity.Producto, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Producto, error)
}
