package inventario

import (
	"context"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

// ConsultaUseCase expone las lecturas del ledger: stock derivado por
// producto/local y kardex por lote. Solo lecturas, sin transacción; el stock
// se recalcula del ledger en cada consulta, nunca de un contador.
type ConsultaUseCase struct {
	movRepo      repository.MovimientoRepository
	loteRepo     repository.LoteRepository
	productoRepo repository.ProductoRepository
}

// NewConsultaUseCase construye el caso de uso con repositorios atados al pool.
func NewConsultaUseCase(
	movRepo repository.MovimientoRepository,
	loteRepo repository.LoteRepository,
	productoRepo repository.ProductoRepository,
) *ConsultaUseCase {
	return &ConsultaUseCase{movRepo: movRepo, loteRepo: loteRepo, productoRepo: productoRepo}
}

// ConsultarStock devuelve el stock derivado de un producto en un local,
// desglosado por lote.
func (uc *ConsultaUseCase) ConsultarStock(ctx context.Context, productoID, localID string) (*dto.StockProductoResponse, error) {
	if productoID == "" || localID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	producto, err := uc.productoRepo.GetByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}

	lotes, err := uc.loteRepo.ListarPorProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	resp := &dto.StockProductoResponse{
		ProductoID: productoID,
		LocalID:    localID,
		Lotes:      make([]dto.StockLoteDTO, 0, len(lotes)),
	}
	for _, l := range lotes {
		stock, err := uc.movRepo.StockDisponible(ctx, l.ID, localID)
		if err != nil {
			return nil, err
		}
		resp.Total += stock
		resp.Lotes = append(resp.Lotes, dto.StockLoteDTO{
			LoteID:           l.ID,
			Etiqueta:         l.Etiqueta,
			FechaVencimiento: l.FechaVencimiento,
			Stock:            stock,
		})
	}
	return resp, nil
}

// ListarLotes devuelve los lotes de un producto en orden de vencimiento.
func (uc *ConsultaUseCase) ListarLotes(ctx context.Context, productoID string) ([]dto.LoteDTO, error) {
	if productoID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	producto, err := uc.productoRepo.GetByID(ctx, productoID)
	if err != nil {
		return nil, err
	}
	if producto == nil {
		return nil, domain.ErrNotFound
	}
	lotes, err := uc.loteRepo.ListarPorProducto(ctx, productoID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LoteDTO, 0, len(lotes))
	for _, l := range lotes {
		out = append(out, dto.LoteDTO{
			ID:               l.ID,
			ProductoID:       l.ProductoID,
			Etiqueta:         l.Etiqueta,
			FechaVencimiento: l.FechaVencimiento,
		})
	}
	return out, nil
}

// Kardex lista los movimientos de un lote en un local.
func (uc *ConsultaUseCase) Kardex(ctx context.Context, loteID, localID string, page dto.PageRequest) ([]dto.MovimientoDTO, error) {
	if loteID == "" || localID == "" {
		return nil, domain.ErrEntradaInvalida
	}
	page.DefaultPage()
	movs, err := uc.movRepo.Kardex(ctx, loteID, localID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MovimientoDTO, 0, len(movs))
	for _, m := range movs {
		out = append(out, dto.MovimientoDTO{
			ID:          m.ID,
			LoteID:      m.LoteID,
			LocalID:     m.LocalID,
			Cantidad:    m.Cantidad,
			Tipo:        m.Tipo,
			EncargadoID: m.EncargadoID,
			Fecha:       m.Fecha,
			VentaID:     m.VentaID,
			CompraID:    m.CompraID,
			TrasladoID:  m.TrasladoID,
		})
	}
	return out, nil
}
