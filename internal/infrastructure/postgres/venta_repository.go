package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo adaptador PostgreSQL para ventas.
type VentaRepo struct {
	q Querier
}

func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

func (r *VentaRepo) CrearCabecera(ctx context.Context, v *entity.Venta) error {
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	query := `
		INSERT INTO ventas (id, cliente_id, local_id, encargado_id, tipo_pago, total, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		v.ID, nullIfEmpty(v.ClienteID), v.LocalID, v.EncargadoID,
		v.TipoPago, v.Total, v.Fecha, v.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("crear venta: %w", err)
	}
	return nil
}

func (r *VentaRepo) CrearDetalle(ctx context.Context, d *entity.VentaDetalle) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO venta_detalle (id, venta_id, lote_id, producto_id, cantidad, precio_unitario, descuento, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.VentaID, d.LoteID, d.ProductoID,
		d.Cantidad, d.PrecioUnitario, d.Descuento, d.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("crear detalle de venta: %w", err)
	}
	return nil
}

func (r *VentaRepo) ActualizarTotal(ctx context.Context, ventaID string, total decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE ventas SET total = $2 WHERE id = $1`, ventaID, total)
	if err != nil {
		return fmt.Errorf("actualizar total de venta: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *VentaRepo) GetByID(ctx context.Context, id string) (*entity.Venta, error) {
	query := `
		SELECT id, cliente_id, local_id, encargado_id, tipo_pago, total, fecha, created_at
		FROM ventas WHERE id = $1`
	var v entity.Venta
	var clienteID *string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&v.ID, &clienteID, &v.LocalID, &v.EncargadoID,
		&v.TipoPago, &v.Total, &v.Fecha, &v.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	v.ClienteID = deref(clienteID)
	return &v, nil
}

func (r *VentaRepo) DetallesPorVenta(ctx context.Context, ventaID string) ([]*entity.VentaDetalle, error) {
	query := `
		SELECT id, venta_id, lote_id, producto_id, cantidad, precio_unitario, descuento, subtotal
		FROM venta_detalle
		WHERE venta_id = $1
		ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query, ventaID)
	if err != nil {
		return nil, fmt.Errorf("detalles de venta: %w", err)
	}
	defer rows.Close()

	var list []*entity.VentaDetalle
	for rows.Next() {
		var d entity.VentaDetalle
		if err := rows.Scan(&d.ID, &d.VentaID, &d.LoteID, &d.ProductoID,
			&d.Cantidad, &d.PrecioUnitario, &d.Descuento, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle de venta: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}
