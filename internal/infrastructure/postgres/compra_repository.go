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

var _ repository.CompraRepository = (*CompraRepo)(nil)

// CompraRepo adaptador PostgreSQL para compras a proveedor.
type CompraRepo struct {
	q Querier
}

func NewCompraRepository(q Querier) *CompraRepo {
	return &CompraRepo{q: q}
}

func (r *CompraRepo) CrearCabecera(ctx context.Context, c *entity.Compra) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	query := `
		INSERT INTO compras (id, no_factura, proveedor_id, local_id, encargado_id, credito, cuotas, total, fecha, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		c.ID, c.NoFactura, c.ProveedorID, c.LocalID, c.EncargadoID,
		c.Credito, c.Cuotas, c.Total, c.Fecha, c.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicado
		}
		return fmt.Errorf("crear compra: %w", err)
	}
	return nil
}

func (r *CompraRepo) CrearDetalle(ctx context.Context, d *entity.CompraDetalle) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	query := `
		INSERT INTO compra_detalle (id, compra_id, lote_id, producto_id, cantidad, precio_costo, precio_venta, subtotal)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		d.ID, d.CompraID, d.LoteID, d.ProductoID,
		d.Cantidad, d.PrecioCosto, d.PrecioVenta, d.Subtotal,
	)
	if err != nil {
		return fmt.Errorf("crear detalle de compra: %w", err)
	}
	return nil
}

func (r *CompraRepo) CrearPago(ctx context.Context, p *entity.PagoCompra) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO pagos_compras (id, compra_id, numero_cuota, monto, fecha_vencimiento, pagado)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.CompraID, p.NumeroCuota, p.Monto, p.FechaVencimiento, p.Pagado,
	)
	if err != nil {
		return fmt.Errorf("crear cuota de compra: %w", err)
	}
	return nil
}

func (r *CompraRepo) ActualizarTotal(ctx context.Context, compraID string, total decimal.Decimal) error {
	tag, err := r.q.Exec(ctx, `UPDATE compras SET total = $2 WHERE id = $1`, compraID, total)
	if err != nil {
		return fmt.Errorf("actualizar total de compra: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CompraRepo) GetByID(ctx context.Context, id string) (*entity.Compra, error) {
	query := `
		SELECT id, no_factura, proveedor_id, local_id, encargado_id, credito, cuotas, total, fecha, created_at
		FROM compras WHERE id = $1`
	var c entity.Compra
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.NoFactura, &c.ProveedorID, &c.LocalID, &c.EncargadoID,
		&c.Credito, &c.Cuotas, &c.Total, &c.Fecha, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get compra: %w", err)
	}
	return &c, nil
}

func (r *CompraRepo) DetallesPorCompra(ctx context.Context, compraID string) ([]*entity.CompraDetalle, error) {
	query := `
		SELECT id, compra_id, lote_id, producto_id, cantidad, precio_costo, precio_venta, subtotal
		FROM compra_detalle
		WHERE compra_id = $1
		ORDER BY id ASC`
	rows, err := r.q.Query(ctx, query, compraID)
	if err != nil {
		return nil, fmt.Errorf("detalles de compra: %w", err)
	}
	defer rows.Close()

	var list []*entity.CompraDetalle
	for rows.Next() {
		var d entity.CompraDetalle
		if err := rows.Scan(&d.ID, &d.CompraID, &d.LoteID, &d.ProductoID,
			&d.Cantidad, &d.PrecioCosto, &d.PrecioVenta, &d.Subtotal); err != nil {
			return nil, fmt.Errorf("scan detalle de compra: %w", err)
		}
		list = append(list, &d)
	}
	return list, rows.Err()
}

func (r *CompraRepo) PagosPorCompra(ctx context.Context, compraID string) ([]*entity.PagoCompra, error) {
	query := `
		SELECT id, compra_id, numero_cuota, monto, fecha_vencimiento, pagado
		FROM pagos_compras
		WHERE compra_id = $1
		ORDER BY numero_cuota ASC`
	rows, err := r.q.Query(ctx, query, compraID)
	if err != nil {
		return nil, fmt.Errorf("cuotas de compra: %w", err)
	}
	defer rows.Close()

	var list []*entity.PagoCompra
	for rows.Next() {
		var p entity.PagoCompra
		if err := rows.Scan(&p.ID, &p.CompraID, &p.NumeroCuota, &p.Monto, &p.FechaVencimiento, &p.Pagado); err != nil {
			return nil, fmt.Errorf("scan cuota de compra: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
