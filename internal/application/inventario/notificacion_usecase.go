package inventario

import (
	"context"
	"time"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

// NotificacionUseCase arma los barridos de vencimientos y stock bajo mínimo.
// El envío (correo, cron externo) queda fuera: esto solo responde consultas.
type NotificacionUseCase struct {
	loteRepo repository.LoteRepository
	movRepo  repository.MovimientoRepository
}

// NewNotificacionUseCase construye el caso de uso con repositorios del pool.
func NewNotificacionUseCase(loteRepo repository.LoteRepository, movRepo repository.MovimientoRepository) *NotificacionUseCase {
	return &NotificacionUseCase{loteRepo: loteRepo, movRepo: movRepo}
}

// ProductosPorVencer lista lotes con stock positivo que vencen dentro de la
// ventana de días indicada (por defecto 30).
func (uc *NotificacionUseCase) ProductosPorVencer(ctx context.Context, dias int) ([]dto.VencimientoDTO, error) {
	if dias <= 0 {
		dias = 30
	}
	hoy := time.Now().Truncate(24 * time.Hour)
	hasta := hoy.AddDate(0, 0, dias)

	filas, err := uc.loteRepo.PorVencer(ctx, hasta)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VencimientoDTO, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.VencimientoDTO{
			LoteID:           f.LoteID,
			Etiqueta:         f.Etiqueta,
			FechaVencimiento: f.FechaVencimiento,
			ProductoID:       f.ProductoID,
			ProductoNombre:   f.ProductoNombre,
			LocalID:          f.LocalID,
			Stock:            f.Stock,
			DiasRestantes:    int(f.FechaVencimiento.Sub(hoy).Hours() / 24),
		})
	}
	return out, nil
}

// StockBajo lista productos cuyo stock derivado está por debajo del mínimo.
func (uc *NotificacionUseCase) StockBajo(ctx context.Context) ([]dto.StockBajoDTO, error) {
	filas, err := uc.movRepo.StockBajoMinimo(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.StockBajoDTO, 0, len(filas))
	for _, f := range filas {
		out = append(out, dto.StockBajoDTO{
			ProductoID:  f.ProductoID,
			Codigo:      f.Codigo,
			Nombre:      f.Nombre,
			StockMinimo: f.StockMinimo,
			LocalID:     f.LocalID,
			Stock:       f.Stock,
		})
	}
	return out, nil
}
