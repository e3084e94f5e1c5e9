package inventario

import (
	"context"

	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

// asignarLotes arma el plan FEFO para una línea dentro de la transacción
// activa: lista los lotes del producto con bloqueo de fila (FOR UPDATE),
// deriva el stock de cada uno desde el ledger y reparte la cantidad con
// AsignarFEFO. El bloqueo serializa asignaciones concurrentes sobre los
// mismos lotes; dos ventas que compiten por la última unidad ven la
// asignación de la otra o esperan su commit.
//
// Si los lotes no alcanzan devuelve StockInsuficienteError con el producto
// y el disponible real; el orquestador aborta y la transacción se revierte
// completa, nunca se escribe una asignación parcial.
func asignarLotes(
	ctx context.Context,
	movRepo repository.MovimientoRepository,
	loteRepo repository.LoteRepository,
	productoID, localID string,
	cantidad int64,
) ([]inventario.Asignacion, error) {
	lotes, err := loteRepo.ListarFEFO(ctx, productoID)
	if err != nil {
		return nil, err
	}

	disponibles := make([]inventario.LoteDisponible, 0, len(lotes))
	for _, l := range lotes {
		stock, err := movRepo.StockDisponible(ctx, l.ID, localID)
		if err != nil {
			return nil, err
		}
		disponibles = append(disponibles, inventario.LoteDisponible{
			LoteID:           l.ID,
			FechaVencimiento: l.FechaVencimiento,
			Disponible:       stock,
		})
	}

	plan, faltante := inventario.AsignarFEFO(disponibles, cantidad)
	if faltante > 0 {
		return nil, &domain.StockInsuficienteError{
			ProductoID: productoID,
			Solicitado: cantidad,
			Disponible: inventario.TotalDisponible(disponibles),
		}
	}
	return plan, nil
}
