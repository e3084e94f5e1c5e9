package repository

import (
	"context"
	"time"

	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

// LotePorVencer es la fila del barrido de vencimientos: lote + producto + stock derivado.
type LotePorVencer struct {
	LoteID           string
	Etiqueta         string
	FechaVencimiento time.Time
	ProductoID       string
	ProductoNombre   string
	LocalID          string
	Stock            int64
}

// LoteRepository define el puerto de persistencia para lotes.
type LoteRepository interface {
	Create(ctx context.Context, lote *entity.Lote) error
	GetByID(ctx context.Context, id string) (*entity.Lote, error)
	// GetByEtiqueta busca el lote por la pareja única (producto, etiqueta).
	// Devuelve nil sin error si no existe.
	GetByEtiqueta(ctx context.Context, productoID, etiqueta string) (*entity.Lote, error)
	ListarPorProducto(ctx context.Context, productoID string) ([]*entity.Lote, error)
	// ListarFEFO devuelve los lotes del producto ordenados por fecha de
	// vencimiento ascendente y, a igual fecha, por orden de inserción.
	// Bloquea las filas (SELECT ... FOR UPDATE) para serializar la asignación
	// frente a operaciones concurrentes sobre los mismos lotes; por eso solo
	// tiene sentido llamarlo con repositorios atados a una transacción.
	ListarFEFO(ctx context.Context, productoID string) ([]*entity.Lote, error)
	// PorVencer lista lotes cuyo vencimiento cae antes de la fecha límite,
	// con el stock derivado por local (solo filas con stock positivo).
	PorVencer(ctx context.Context, hasta time.Time) ([]LotePorVencer, error)
}
