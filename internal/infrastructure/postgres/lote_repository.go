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

var _ repository.LoteRepository = (*LoteRepo)(nil)

// LoteRepo adaptador PostgreSQL para lotes.
type LoteRepo struct {
	q Querier
}

func NewLoteRepository(q Querier) *LoteRepo {
	return &LoteRepo{q: q}
}

func (r *LoteRepo) Create(ctx context.Context, lote *entity.Lote) error {
	if lote.ID == "" {
		lote.ID = uuid.New().String()
	}
	query := `
		INSERT INTO lotes (id, producto_id, etiqueta, fecha_vencimiento, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.q.Exec(ctx, query, lote.ID, lote.ProductoID, lote.Etiqueta, lote.FechaVencimiento, lote.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("create lote: %w", err)
	}
	return nil
}

func (r *LoteRepo) GetByID(ctx context.Context, id string) (*entity.Lote, error) {
	query := `
		SELECT id, producto_id, etiqueta, fecha_vencimiento, created_at
		FROM lotes WHERE id = $1`
	var l entity.Lote
	err := r.q.QueryRow(ctx, query, id).Scan(&l.ID, &l.ProductoID, &l.Etiqueta, &l.FechaVencimiento, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote: %w", err)
	}
	return &l, nil
}

// GetByEtiqueta busca un lote por (producto, etiqueta). Devuelve nil sin error
// cuando no existe, para que la compra decida crearlo.
func (r *LoteRepo) GetByEtiqueta(ctx context.Context, productoID, etiqueta string) (*entity.Lote, error) {
	query := `
		SELECT id, producto_id, etiqueta, fecha_vencimiento, created_at
		FROM lotes WHERE producto_id = $1 AND etiqueta = $2`
	var l entity.Lote
	err := r.q.QueryRow(ctx, query, productoID, etiqueta).Scan(&l.ID, &l.ProductoID, &l.Etiqueta, &l.FechaVencimiento, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get lote por etiqueta: %w", err)
	}
	return &l, nil
}

func (r *LoteRepo) ListarPorProducto(ctx context.Context, productoID string) ([]*entity.Lote, error) {
	query := `
		SELECT id, producto_id, etiqueta, fecha_vencimiento, created_at
		FROM lotes
		WHERE producto_id = $1
		ORDER BY fecha_vencimiento ASC, id ASC`
	return r.scanLotes(ctx, query, productoID)
}

// ListarFEFO devuelve los lotes del producto en orden de vencimiento y los
// bloquea con FOR UPDATE: dos ventas concurrentes del mismo producto se
// serializan aquí, y la segunda ve el ledger que dejó la primera.
// Desempate por id para que lotes con igual vencimiento salgan en orden
// de inserción.
func (r *LoteRepo) ListarFEFO(ctx context.Context, productoID string) ([]*entity.Lote, error) {
	query := `
		SELECT id, producto_id, etiqueta, fecha_vencimiento, created_at
		FROM lotes
		WHERE producto_id = $1
		ORDER BY fecha_vencimiento ASC, id ASC
		FOR UPDATE`
	return r.scanLotes(ctx, query, productoID)
}

// PorVencer lista lotes con stock positivo que vencen dentro de la ventana.
func (r *LoteRepo) PorVencer(ctx context.Context, hasta time.Time) ([]repository.LotePorVencer, error) {
	query := `
		SELECT l.id, l.etiqueta, l.fecha_vencimiento, p.id, p.nombre, i.local_id, SUM(i.cantidad) AS stock
		FROM lotes l
		JOIN productos p ON p.id = l.producto_id
		JOIN inventario i ON i.lote_id = l.id
		WHERE l.fecha_vencimiento <= $1
		GROUP BY l.id, l.etiqueta, l.fecha_vencimiento, p.id, p.nombre, i.local_id
		HAVING SUM(i.cantidad) > 0
		ORDER BY l.fecha_vencimiento ASC`
	rows, err := r.q.Query(ctx, query, hasta)
	if err != nil {
		return nil, fmt.Errorf("lotes por vencer: %w", err)
	}
	defer rows.Close()

	var list []repository.LotePorVencer
	for rows.Next() {
		var f repository.LotePorVencer
		if err := rows.Scan(&f.LoteID, &f.Etiqueta, &f.FechaVencimiento,
			&f.ProductoID, &f.ProductoNombre, &f.LocalID, &f.Stock); err != nil {
			return nil, fmt.Errorf("scan lote por vencer: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func (r *LoteRepo) scanLotes(ctx context.Context, query string, args ...any) ([]*entity.Lote, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listar lotes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Lote
	for rows.Next() {
		var l entity.Lote
		if err := rows.Scan(&l.ID, &l.ProductoID, &l.Etiqueta, &l.FechaVencimiento, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lote: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}
