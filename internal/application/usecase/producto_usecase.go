package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
	"github.com/dquintero/farmacia-erp/pkg/texto"
)

// ProductoUseCase CRUD del catálogo de productos.
type ProductoUseCase struct {
	productoRepo repository.ProductoRepository
}

// NewProductoUseCase construye el caso de uso.
func NewProductoUseCase(productoRepo repository.ProductoRepository) *ProductoUseCase {
	return &ProductoUseCase{productoRepo: productoRepo}
}

// Crear da de alta un producto. El código es la identidad inmutable.
func (uc *ProductoUseCase) Crear(ctx context.Context, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	if in.Codigo == "" || in.Nombre == "" {
		return nil, domain.ErrEntradaInvalida
	}
	if in.PrecioVenta.IsNegative() || in.PrecioCosto.IsNegative() || in.StockMinimo < 0 {
		return nil, domain.ErrEntradaInvalida
	}
	existente, err := uc.productoRepo.GetByCodigo(ctx, in.Codigo)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrDuplicado
	}
	now := time.Now()
	p := &entity.Producto{
		ID:          uuid.New().String(),
		Codigo:      in.Codigo,
		Nombre:      in.Nombre,
		Descripcion: in.Descripcion,
		PrecioVenta: in.PrecioVenta,
		PrecioCosto: in.PrecioCosto,
		StockMinimo: in.StockMinimo,
		Receta:      in.Receta,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.productoRepo.Create(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// Actualizar modifica precios y metadatos; el código no cambia.
func (uc *ProductoUseCase) Actualizar(ctx context.Context, id string, in dto.ProductoRequest) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.Nombre != "" {
		p.Nombre = in.Nombre
	}
	p.Descripcion = in.Descripcion
	if !in.PrecioVenta.IsZero() {
		p.PrecioVenta = in.PrecioVenta
	}
	if !in.PrecioCosto.IsZero() {
		p.PrecioCosto = in.PrecioCosto
	}
	if in.StockMinimo > 0 {
		p.StockMinimo = in.StockMinimo
	}
	p.Receta = in.Receta
	p.UpdatedAt = time.Now()
	if err := uc.productoRepo.Update(ctx, p); err != nil {
		return nil, err
	}
	return toProductoResponse(p), nil
}

// ObtenerPorID devuelve un producto o ErrNotFound.
func (uc *ProductoUseCase) ObtenerPorID(ctx context.Context, id string) (*dto.ProductoResponse, error) {
	p, err := uc.productoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toProductoResponse(p), nil
}

// Listar devuelve una página del catálogo. La búsqueda es insensible a
// acentos y mayúsculas ("acido" encuentra "Ácido").
func (uc *ProductoUseCase) Listar(ctx context.Context, page dto.PageRequest, busqueda string) ([]dto.ProductoResponse, error) {
	page.DefaultPage()
	productos, err := uc.productoRepo.List(ctx, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductoResponse, 0, len(productos))
	for _, p := range productos {
		if busqueda != "" && !texto.Contiene(p.Nombre, busqueda) && !texto.Contiene(p.Codigo, busqueda) {
			continue
		}
		out = append(out, *toProductoResponse(p))
	}
	return out, nil
}

func toProductoResponse(p *entity.Producto) *dto.ProductoResponse {
	return &dto.ProductoResponse{
		ID:          p.ID,
		Codigo:      p.Codigo,
		Nombre:      p.Nombre,
		Descripcion: p.Descripcion,
		PrecioVenta: p.PrecioVenta,
		PrecioCosto: p.PrecioCosto,
		StockMinimo: p.StockMinimo,
		Receta:      p.Receta,
		CreatedAt:   p.CreatedAt,
	}
}
