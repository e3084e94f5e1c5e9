package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

// TerceroUseCase alta y listado de proveedores y clientes.
type TerceroUseCase struct {
	proveedorRepo repository.ProveedorRepository
	clienteRepo   repository.ClienteRepository
}

// NewTerceroUseCase construye el caso de uso.
func NewTerceroUseCase(proveedorRepo repository.ProveedorRepository, clienteRepo repository.ClienteRepository) *TerceroUseCase {
	return &TerceroUseCase{proveedorRepo: proveedorRepo, clienteRepo: clienteRepo}
}

// CrearProveedor da de alta un proveedor de medicamentos.
func (uc *TerceroUseCase) CrearProveedor(ctx context.Context, nombre, nit, telefono, email string) (*entity.Proveedor, error) {
	if nombre == "" || nit == "" {
		return nil, domain.ErrEntradaInvalida
	}
	p := &entity.Proveedor{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		NIT:       nit,
		Telefono:  telefono,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := uc.proveedorRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// ListarProveedores devuelve todos los proveedores.
func (uc *TerceroUseCase) ListarProveedores(ctx context.Context) ([]*entity.Proveedor, error) {
	return uc.proveedorRepo.List(ctx)
}

// CrearCliente registra un cliente (para ventas nominadas o a crédito).
func (uc *TerceroUseCase) CrearCliente(ctx context.Context, nombre, documento, telefono, email string) (*entity.Cliente, error) {
	if nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	c := &entity.Cliente{
		ID:        uuid.New().String(),
		Nombre:    nombre,
		Documento: documento,
		Telefono:  telefono,
		Email:     email,
		CreatedAt: time.Now(),
	}
	if err := uc.clienteRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// ListarClientes devuelve todos los clientes registrados.
func (uc *TerceroUseCase) ListarClientes(ctx context.Context) ([]*entity.Cliente, error) {
	return uc.clienteRepo.List(ctx)
}
