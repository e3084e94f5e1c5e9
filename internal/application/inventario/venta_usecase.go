package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

// VentaUseCase orquesta una venta de principio a fin como unidad atómica:
// valida la cabecera, asigna lotes FEFO por línea, escribe el par
// movimiento+detalle por cada lote tocado, parchea el total y hace commit.
// Cualquier error en cualquier etapa revierte todo lo escrito.
type VentaUseCase struct {
	txRunner     TxRunner
	productoRepo repository.ProductoRepository
	localRepo    repository.LocalRepository
	ventaRepo    repository.VentaRepository
	loteRepo     repository.LoteRepository
	reciboGen    ReciboPDFGenerator
}

// NewVentaUseCase construye el caso de uso. Los repositorios aquí van atados
// al pool (lecturas previas y posteriores a la tx); los de escritura los
// provee el TxRunner dentro de la transacción.
func NewVentaUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	localRepo repository.LocalRepository,
	ventaRepo repository.VentaRepository,
	loteRepo repository.LoteRepository,
	reciboGen ReciboPDFGenerator,
) *VentaUseCase {
	return &VentaUseCase{
		txRunner:     txRunner,
		productoRepo: productoRepo,
		localRepo:    localRepo,
		ventaRepo:    ventaRepo,
		loteRepo:     loteRepo,
		reciboGen:    reciboGen,
	}
}

// RegistrarVenta registra la venta y devuelve su ID.
// Los errores de validación retornan antes de abrir transacción.
func (uc *VentaUseCase) RegistrarVenta(ctx context.Context, in dto.RegistrarVentaRequest) (string, error) {
	if in.LocalID == "" || in.EncargadoID == "" || len(in.Detalles) == 0 {
		return "", domain.ErrEntradaInvalida
	}
	if !entity.TipoPagoValido(in.TipoPago) {
		return "", domain.ErrTipoPagoInvalido
	}
	for _, d := range in.Detalles {
		if d.ProductoID == "" || d.Cantidad <= 0 {
			return "", domain.ErrEntradaInvalida
		}
		if d.PrecioUnitario.IsNegative() || d.Descuento.IsNegative() {
			return "", domain.ErrEntradaInvalida
		}
	}

	local, err := uc.localRepo.GetByID(ctx, in.LocalID)
	if err != nil {
		return "", err
	}
	if local == nil {
		return "", domain.ErrNotFound
	}

	// Resolver productos fuera de la tx (solo lectura) y completar precios
	// de catálogo donde la línea no trae precio.
	productos := make(map[string]*entity.Producto, len(in.Detalles))
	for i := range in.Detalles {
		d := &in.Detalles[i]
		p, err := uc.productoRepo.GetByID(ctx, d.ProductoID)
		if err != nil {
			return "", err
		}
		if p == nil {
			return "", domain.ErrNotFound
		}
		productos[d.ProductoID] = p
		if d.PrecioUnitario.IsZero() {
			d.PrecioUnitario = p.PrecioVenta
		}
	}

	now := time.Now()
	ventaID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		loteRepo repository.LoteRepository,
		_ repository.ProductoRepository,
		ventaRepo repository.VentaRepository,
		_ repository.CompraRepository,
		_ repository.TrasladoRepository,
	) error {
		// Cabecera primero: los movimientos referencian venta_id, y el total
		// se parchea al final con la suma real de las líneas.
		venta := &entity.Venta{
			ID:          ventaID,
			ClienteID:   in.ClienteID,
			LocalID:     in.LocalID,
			EncargadoID: in.EncargadoID,
			TipoPago:    in.TipoPago,
			Total:       decimal.Zero,
			Fecha:       now,
			CreatedAt:   now,
		}
		if err := ventaRepo.CrearCabecera(ctx, venta); err != nil {
			return err
		}

		total := decimal.Zero
		for _, linea := range in.Detalles {
			plan, err := asignarLotes(ctx, movRepo, loteRepo, linea.ProductoID, in.LocalID, linea.Cantidad)
			if err != nil {
				return err
			}
			// El descuento de la línea se registra una sola vez, en el
			// primer lote del reparto.
			descuento := linea.Descuento
			for _, asig := range plan {
				mov := &entity.MovimientoInventario{
					ID:          uuid.New().String(),
					LoteID:      asig.LoteID,
					LocalID:     in.LocalID,
					Cantidad:    -asig.Cantidad,
					Tipo:        entity.MovimientoVenta,
					EncargadoID: in.EncargadoID,
					Fecha:       now,
					VentaID:     ventaID,
					CreatedAt:   now,
				}
				if err := movRepo.Create(ctx, mov); err != nil {
					return err
				}
				detalle := &entity.VentaDetalle{
					ID:             uuid.New().String(),
					VentaID:        ventaID,
					LoteID:         asig.LoteID,
					ProductoID:     linea.ProductoID,
					Cantidad:       asig.Cantidad,
					PrecioUnitario: linea.PrecioUnitario,
					Descuento:      descuento,
				}
				detalle.Subtotal = detalle.CalcularSubtotal()
				if err := ventaRepo.CrearDetalle(ctx, detalle); err != nil {
					return err
				}
				total = total.Add(detalle.Subtotal)
				descuento = decimal.Zero
			}
		}

		return ventaRepo.ActualizarTotal(ctx, ventaID, total)
	})
	if err != nil {
		return "", err
	}
	return ventaID, nil
}

// ObtenerVenta devuelve la venta con sus detalles.
func (uc *VentaUseCase) ObtenerVenta(ctx context.Context, id string) (*dto.VentaResponse, error) {
	venta, err := uc.ventaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.ventaRepo.DetallesPorVenta(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := &dto.VentaResponse{
		ID:          venta.ID,
		ClienteID:   venta.ClienteID,
		LocalID:     venta.LocalID,
		EncargadoID: venta.EncargadoID,
		TipoPago:    venta.TipoPago,
		Total:       venta.Total,
		Fecha:       venta.Fecha,
		Detalles:    make([]dto.VentaDetalleDTO, 0, len(detalles)),
	}
	for _, d := range detalles {
		resp.Detalles = append(resp.Detalles, dto.VentaDetalleDTO{
			LoteID:         d.LoteID,
			ProductoID:     d.ProductoID,
			Cantidad:       d.Cantidad,
			PrecioUnitario: d.PrecioUnitario,
			Descuento:      d.Descuento,
			Subtotal:       d.Subtotal,
		})
	}
	return resp, nil
}

// GenerarRecibo genera el PDF del recibo de una venta.
func (uc *VentaUseCase) GenerarRecibo(ctx context.Context, id string) ([]byte, error) {
	venta, err := uc.ventaRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if venta == nil {
		return nil, domain.ErrNotFound
	}
	local, err := uc.localRepo.GetByID(ctx, venta.LocalID)
	if err != nil {
		return nil, err
	}
	if local == nil {
		return nil, domain.ErrNotFound
	}
	detalles, err := uc.ventaRepo.DetallesPorVenta(ctx, id)
	if err != nil {
		return nil, err
	}
	lineas := make([]ReciboLinea, 0, len(detalles))
	for _, d := range detalles {
		linea := ReciboLinea{Detalle: *d}
		if p, err := uc.productoRepo.GetByID(ctx, d.ProductoID); err == nil && p != nil {
			linea.ProductoNombre = p.Nombre
		}
		if l, err := uc.loteRepo.GetByID(ctx, d.LoteID); err == nil && l != nil {
			linea.LoteEtiqueta = l.Etiqueta
		}
		lineas = append(lineas, linea)
	}
	return uc.reciboGen.GenerarReciboPDF(ctx, venta, local, lineas)
}
