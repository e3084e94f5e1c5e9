package repository

import (
	"context"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// LocalRepository define el puerto de persistencia para sucursales.
type LocalRepository interface {
	Create(ctx context.Context, local *entity.Local) error
	GetByID(ctx context.Context, id string) (*entity.Local, error)
	List(ctx context.Context) ([]*entity.Local, error)
}
