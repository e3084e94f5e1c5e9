package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

// LocalUseCase altas y consultas de sucursales.
type LocalUseCase struct {
	localRepo repository.LocalRepository
}

// NewLocalUseCase construye el caso de uso.
func NewLocalUseCase(localRepo repository.LocalRepository) *LocalUseCase {
	return &LocalUseCase{localRepo: localRepo}
}

// Crear da de alta una sucursal.
func (uc *LocalUseCase) Crear(ctx context.Context, nombre, direccion, telefono string) (*entity.Local, error) {
	if nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	now := time.Now()
	l := &entity.Local{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Direccion: direccion,
		Telefono:  telefono,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.localRepo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

// Listar devuelve todas las sucursales.
func (uc *LocalUseCase) Listar(ctx context.Context) ([]*entity.Local, error) {
	return uc.localRepo.List(ctx)
}

// ObtenerPorID devuelve una sucursal o ErrNotFound.
func (uc *LocalUseCase) ObtenerPorID(ctx context.Context, id string) (*entity.Local, error) {
	l, err := uc.localRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, domain.ErrNotFound
	}
	return l, nil
}
