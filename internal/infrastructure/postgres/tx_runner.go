package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

var _ inventario.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repositorios atados a la tx y
// hace Commit si fn retorna nil; cualquier error (o un commit fallido) deja
// la transacción revertida. El Rollback diferido es inocuo tras el Commit.
func (r *TxRunner) Run(ctx context.Context, fn func(
	movRepo repository.MovimientoRepository,
	loteRepo repository.LoteRepository,
	productoRepo repository.ProductoRepository,
	ventaRepo repository.VentaRepository,
	compraRepo repository.CompraRepository,
	trasladoRepo repository.TrasladoRepository,
) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = fn(
		NewMovimientoRepository(tx),
		NewLoteRepository(tx),
		NewProductoRepository(tx),
		NewVentaRepository(tx),
		NewCompraRepository(tx),
		NewTrasladoRepository(tx),
	)
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
