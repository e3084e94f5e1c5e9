package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo adaptador PostgreSQL para el catálogo de productos.
type ProductoRepo struct {
	q Querier
}

func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

func (r *ProductoRepo) Create(ctx context.Context, p *entity.Producto) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO productos (id, codigo, nombre, descripcion, precio_venta, precio_costo, stock_minimo, receta, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.Codigo, p.Nombre, p.Descripcion,
		p.PrecioVenta, p.PrecioCosto, p.StockMinimo, p.Receta,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("create producto: %w", err)
	}
	return nil
}

func (r *ProductoRepo) Update(ctx context.Context, p *entity.Producto) error {
	query := `
		UPDATE productos
		SET nombre = $2, descripcion = $3, precio_venta = $4, precio_costo = $5,
		    stock_minimo = $6, receta = $7, updated_at = $8
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		p.ID, p.Nombre, p.Descripcion, p.PrecioVenta, p.PrecioCosto,
		p.StockMinimo, p.Receta, time.Now(),
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ProductoRepo) GetByID(ctx context.Context, id string) (*entity.Producto, error) {
	return r.getBy(ctx, "id", id)
}

func (r *ProductoRepo) GetByCodigo(ctx context.Context, codigo string) (*entity.Producto, error) {
	return r.getBy(ctx, "codigo", codigo)
}

func (r *ProductoRepo) getBy(ctx context.Context, col, val string) (*entity.Producto, error) {
	query := fmt.Sprintf(`
		SELECT id, codigo, nombre, descripcion, precio_venta, precio_costo, stock_minimo, receta, created_at, updated_at
		FROM productos WHERE %s = $1`, col)
	var p entity.Producto
	err := r.q.QueryRow(ctx, query, val).Scan(
		&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion,
		&p.PrecioVenta, &p.PrecioCosto, &p.StockMinimo, &p.Receta,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return &p, nil
}

func (r *ProductoRepo) List(ctx context.Context, limit, offset int) ([]*entity.Producto, error) {
	query := `
		SELECT id, codigo, nombre, descripcion, precio_venta, precio_costo, stock_minimo, receta, created_at, updated_at
		FROM productos
		ORDER BY nombre ASC
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("listar productos: %w", err)
	}
	defer rows.Close()

	var list []*entity.Producto
	for rows.Next() {
		var p entity.Producto
		if err := rows.Scan(
			&p.ID, &p.Codigo, &p.Nombre, &p.Descripcion,
			&p.PrecioVenta, &p.PrecioCosto, &p.StockMinimo, &p.Receta,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
