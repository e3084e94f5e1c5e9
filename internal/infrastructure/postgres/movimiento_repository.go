package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

var _ repository.MovimientoRepository = (*MovimientoRepo)(nil)

// MovimientoRepo implementación del ledger sobre PostgreSQL (usable con pool o tx).
// La tabla inventario es append-only: este repo no tiene UPDATE ni DELETE.
type MovimientoRepo struct {
	q Querier
}

// NewMovimientoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovimientoRepository(q Querier) *MovimientoRepo {
	return &MovimientoRepo{q: q}
}

// Create persiste una fila del ledger. Las referencias a venta, compra o
// traslado van como NULL cuando no aplican.
func (r *MovimientoRepo) Create(ctx context.Context, mov *entity.MovimientoInventario) error {
	if mov.ID == "" {
		mov.ID = uuid.New().String()
	}
	query := `
		INSERT INTO inventario (id, lote_id, local_id, cantidad, tipo, encargado_id, fecha, venta_id, compra_id, traslado_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(ctx, query,
		mov.ID, mov.LoteID, mov.LocalID, mov.Cantidad, mov.Tipo,
		mov.EncargadoID, mov.Fecha,
		nullIfEmpty(mov.VentaID), nullIfEmpty(mov.CompraID), nullIfEmpty(mov.TrasladoID),
		mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create movimiento: %w", err)
	}
	return nil
}

// StockDisponible deriva el stock de (lote, local) sumando el ledger.
// Un lote sin filas suma 0. Dentro de una tx ve las filas ya escritas por
// la misma operación, que es lo que necesita el asignador FEFO.
func (r *MovimientoRepo) StockDisponible(ctx context.Context, loteID, localID string) (int64, error) {
	query := `
		SELECT COALESCE(SUM(cantidad), 0)
		FROM inventario
		WHERE lote_id = $1 AND local_id = $2`
	var stock int64
	if err := r.q.QueryRow(ctx, query, loteID, localID).Scan(&stock); err != nil {
		return 0, fmt.Errorf("stock disponible: %w", err)
	}
	return stock, nil
}

// Kardex lista los movimientos de (lote, local) del más reciente al más antiguo.
func (r *MovimientoRepo) Kardex(ctx context.Context, loteID, localID string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	query := `
		SELECT id, lote_id, local_id, cantidad, tipo, encargado_id, fecha, venta_id, compra_id, traslado_id, created_at
		FROM inventario
		WHERE lote_id = $1 AND local_id = $2
		ORDER BY fecha DESC, created_at DESC
		LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(ctx, query, loteID, localID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("kardex: %w", err)
	}
	defer rows.Close()

	var list []*entity.MovimientoInventario
	for rows.Next() {
		var m entity.MovimientoInventario
		var ventaID, compraID, trasladoID *string
		if err := rows.Scan(&m.ID, &m.LoteID, &m.LocalID, &m.Cantidad, &m.Tipo,
			&m.EncargadoID, &m.Fecha, &ventaID, &compraID, &trasladoID, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan movimiento: %w", err)
		}
		m.VentaID = deref(ventaID)
		m.CompraID = deref(compraID)
		m.TrasladoID = deref(trasladoID)
		list = append(list, &m)
	}
	return list, rows.Err()
}

// StockBajoMinimo agrega el ledger por (producto, local) y devuelve las
// combinaciones por debajo del stock mínimo del producto.
func (r *MovimientoRepo) StockBajoMinimo(ctx context.Context) ([]repository.StockBajo, error) {
	query := `
		SELECT p.id, p.codigo, p.nombre, p.stock_minimo, i.local_id, SUM(i.cantidad) AS stock
		FROM productos p
		JOIN lotes l ON l.producto_id = p.id
		JOIN inventario i ON i.lote_id = l.id
		GROUP BY p.id, p.codigo, p.nombre, p.stock_minimo, i.local_id
		HAVING SUM(i.cantidad) < p.stock_minimo
		ORDER BY SUM(i.cantidad) ASC`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("stock bajo mínimo: %w", err)
	}
	defer rows.Close()

	var list []repository.StockBajo
	for rows.Next() {
		var f repository.StockBajo
		if err := rows.Scan(&f.ProductoID, &f.Codigo, &f.Nombre, &f.StockMinimo, &f.LocalID, &f.Stock); err != nil {
			return nil, fmt.Errorf("scan stock bajo: %w", err)
		}
		list = append(list, f)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
