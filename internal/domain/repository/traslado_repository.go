package repository

import (
	"context"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// TrasladoRepository define el puerto de persistencia para transferencias
// entre locales: cabecera y líneas de auditoría de cada lado del par.
type TrasladoRepository interface {
	CrearCabecera(ctx context.Context, traslado *entity.Traslado) error
	CrearDetalle(ctx context.Context, detalle *entity.TrasladoDetalle) error
	GetByID(ctx context.Context, id string) (*entity.Traslado, error)
	DetallesPorTraslado(ctx context.Context, trasladoID string) ([]*entity.TrasladoDetalle, error)
}
