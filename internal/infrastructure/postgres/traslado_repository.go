package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

var _ repository.TrasladoRepository = (*TrasladoRepo)(nil)

// TrasladoRepo adaptador PostgreSQL para transferencias entre locales.
type TrasladoRepo struct {
	q Querier
}

func NewTrasladoRepository(q Querier) *TrasladoRepo {
	return &TrasladoRepo{q: q}
}

func (r *TrasladoRepo) CrearCabecera(ctx context.Context, t *entity.Traslado) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	query := `
		INSERT INTO traslados (id, origen_local_id, destino_local_id, encargado_id, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		t.ID, t.OrigenLocalID, t.DestinoLocalID, t.EncargadoID, t.Fecha, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("crear traslado: %w", err)
	}
	return nil
}

func (r *TrasladoRepo) CrearDetalle(ctx context.Context, d *entity.TrasladoDetalle) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO traslado_detalle (id, traslado_id, lote_id, producto_id, local_id, cantidad)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.TrasladoID, d.LoteID, d.ProductoID, d.LocalID, d.Cantidad,
	)
	if err != nil {
		return fmt.Errorf("crear detalle de traslado: %w", err)
	}
	return nil
}

func (r *TrasladoRepo) GetByID(ctx context.Context, id string) (*entity.Traslado, error) {
	query := `
		SELECT id, origen_local_id, destino_local_id, encargado_id, fecha, created_at
		FROM traslados WHERE id = $1`
	var t entity.Traslado
	err := r.q.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.OrigenLocalID, &t.DestinoLocalID, &t.EncargadoID, &t.Fecha, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get traslado: %w", err)
	}
	return &t, nil
}

func (r *TrasladoRepo) DetallesPorTraslado(ctx context.Context, trasladoID string) ([]*entity.TrasladoDetalle, error) {
	query := `
		SELECT id, traslado_id, lote_id, producto_id, local_id, cantidad
		FROM traslado_detalle
		WHERE traslado_id = $1
		ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query, trasladoID)
	if err != nil {
		return nil, fmt.Errorf("detalles de traslado: %w", err)
	}
	defer rows.Close()

	var list []*entity.TrasladoDetalle
	for rows.Next() {
		var d entity.TrasladoDetalle
		if err := rows.Scan(&d.ID, &d.TrasladoID, &d.LoteID, &d.ProductoID, &d.LocalID, &d.Cantidad); err != nil {
			return nil, fmt.Errorf("scan detalle de traslado: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
