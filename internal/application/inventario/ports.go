package inventario

import (
	"context"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la única vía por la que el orquestador
// escribe en el ledger: garantiza que asignación FEFO, filas de movimiento,
// detalles y parche del total comparten una misma unidad atómica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.MovimientoRepository,
		loteRepo repository.LoteRepository,
		productoRepo repository.ProductoRepository,
		ventaRepo repository.VentaRepository,
		compraRepo repository.CompraRepository,
		trasladoRepo repository.TrasladoRepository,
	) error) error
}

// ReciboLinea es una línea del recibo de venta lista para imprimir.
type ReciboLinea struct {
	ProductoNombre string
	LoteEtiqueta   string
	Detalle        entity.VentaDetalle
}

// ReciboPDFGenerator genera la representación PDF de un recibo de venta.
type ReciboPDFGenerator interface {
	GenerarReciboPDF(ctx context.Context, venta *entity.Venta, local *entity.Local, lineas []ReciboLinea) ([]byte, error)
}
