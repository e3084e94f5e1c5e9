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

const formatoFecha = "2006-01-02"

// CompraUseCase orquesta el ingreso de mercadería: crea o reutiliza lotes por
// (producto, etiqueta), escribe las entradas al ledger con referencia a la
// compra, actualiza precios de catálogo y, para compras al crédito, genera
// el plan de cuotas. Todo dentro de una transacción.
type CompraUseCase struct {
	txRunner      TxRunner
	productoRepo  repository.ProductoRepository
	proveedorRepo repository.ProveedorRepository
	localRepo     repository.LocalRepository
	compraRepo    repository.CompraRepository
}

// NewCompraUseCase construye el caso de uso.
func NewCompraUseCase(
	txRunner TxRunner,
	productoRepo repository.ProductoRepository,
	proveedorRepo repository.ProveedorRepository,
	localRepo repository.LocalRepository,
	compraRepo repository.CompraRepository,
) *CompraUseCase {
	return &CompraUseCase{
		txRunner:      txRunner,
		productoRepo:  productoRepo,
		proveedorRepo: proveedorRepo,
		localRepo:     localRepo,
		compraRepo:    compraRepo,
	}
}

// RegistrarCompra registra la compra y devuelve su ID.
func (uc *CompraUseCase) RegistrarCompra(ctx context.Context, in dto.RegistrarCompraRequest) (string, error) {
	if in.NoFactura == "" || in.ProveedorID == "" || in.LocalID == "" || in.EncargadoID == "" {
		return "", domain.ErrEntradaInvalida
	}
	if len(in.Detalles) == 0 {
		return "", domain.ErrEntradaInvalida
	}
	if in.Credito && in.Cuotas < 1 {
		return "", domain.ErrEntradaInvalida
	}

	// Parsear vencimientos antes de abrir transacción.
	vencimientos := make([]time.Time, len(in.Detalles))
	for i, d := range in.Detalles {
		if d.ProductoID == "" || d.Lote == "" || d.Cantidad <= 0 {
			return "", domain.ErrEntradaInvalida
		}
		if d.PrecioCosto.IsNegative() || d.PrecioVenta.IsNegative() {
			return "", domain.ErrEntradaInvalida
		}
		fv, err := time.Parse(formatoFecha, d.FechaVencimiento)
		if err != nil {
			return "", domain.ErrEntradaInvalida
		}
		vencimientos[i] = fv
	}

	proveedor, err := uc.proveedorRepo.GetByID(ctx, in.ProveedorID)
	if err != nil {
		return "", err
	}
	if proveedor == nil {
		return "", domain.ErrNotFound
	}
	local, err := uc.localRepo.GetByID(ctx, in.LocalID)
	if err != nil {
		return "", err
	}
	if local == nil {
		return "", domain.ErrNotFound
	}

	now := time.Now()
	compraID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		loteRepo repository.LoteRepository,
		productoRepo repository.ProductoRepository,
		_ repository.VentaRepository,
		compraRepo repository.CompraRepository,
		_ repository.TrasladoRepository,
	) error {
		compra := &entity.Compra{
			ID:          compraID,
			NoFactura:   in.NoFactura,
			ProveedorID: in.ProveedorID,
			LocalID:     in.LocalID,
			EncargadoID: in.EncargadoID,
			Credito:     in.Credito,
			Cuotas:      in.Cuotas,
			Total:       decimal.Zero,
			Fecha:       now,
			CreatedAt:   now,
		}
		if err := compraRepo.CrearCabecera(ctx, compra); err != nil {
			return err
		}

		total := decimal.Zero
		for i, linea := range in.Detalles {
			producto, err := productoRepo.GetByID(ctx, linea.ProductoID)
			if err != nil {
				return err
			}
			if producto == nil {
				return domain.ErrNotFound
			}

			// Reutilizar el lote si la pareja (producto, etiqueta) ya existe.
			lote, err := loteRepo.GetByEtiqueta(ctx, linea.ProductoID, linea.Lote)
			if err != nil {
				return err
			}
			if lote == nil {
				lote = &entity.Lote{
					ID:               uuid.New().String(),
					ProductoID:       linea.ProductoID,
					Etiqueta:         linea.Lote,
					FechaVencimiento: vencimientos[i],
					CreatedAt:        now,
				}
				if err := loteRepo.Create(ctx, lote); err != nil {
					return err
				}
			}

			mov := &entity.MovimientoInventario{
				ID:          uuid.New().String(),
				LoteID:      lote.ID,
				LocalID:     in.LocalID,
				Cantidad:    linea.Cantidad,
				Tipo:        entity.MovimientoCompra,
				EncargadoID: in.EncargadoID,
				Fecha:       now,
				CompraID:    compraID,
				CreatedAt:   now,
			}
			if err := movRepo.Create(ctx, mov); err != nil {
				return err
			}

			subtotal := linea.PrecioCosto.Mul(decimal.NewFromInt(linea.Cantidad))
			detalle := &entity.CompraDetalle{
				ID:          uuid.New().String(),
				CompraID:    compraID,
				LoteID:      lote.ID,
				ProductoID:  linea.ProductoID,
				Cantidad:    linea.Cantidad,
				PrecioCosto: linea.PrecioCosto,
				PrecioVenta: linea.PrecioVenta,
				Subtotal:    subtotal,
			}
			if err := compraRepo.CrearDetalle(ctx, detalle); err != nil {
				return err
			}
			total = total.Add(subtotal)

			// La compra trae los precios vigentes: se actualiza el catálogo.
			producto.PrecioCosto = linea.PrecioCosto
			if !linea.PrecioVenta.IsZero() {
				producto.PrecioVenta = linea.PrecioVenta
			}
			producto.UpdatedAt = now
			if err := productoRepo.Update(ctx, producto); err != nil {
				return err
			}
		}

		if in.Credito {
			if err := uc.generarCuotas(ctx, compraRepo, compraID, total, in.Cuotas, now); err != nil {
				return err
			}
		}

		return compraRepo.ActualizarTotal(ctx, compraID, total)
	})
	if err != nil {
		return "", err
	}
	return compraID, nil
}

// generarCuotas reparte el total en cuotas mensuales iguales; el redondeo
// sobrante se carga a la última cuota para que la suma cierre exacta.
func (uc *CompraUseCase) generarCuotas(
	ctx context.Context,
	compraRepo repository.CompraRepository,
	compraID string,
	total decimal.Decimal,
	cuotas int,
	desde time.Time,
) error {
	n := decimal.NewFromInt(int64(cuotas))
	base := total.Div(n).RoundBank(2)
	acumulado := decimal.Zero
	for i := 1; i <= cuotas; i++ {
		monto := base
		if i == cuotas {
			monto = total.Sub(acumulado)
		}
		pago := &entity.PagoCompra{
			ID:               uuid.New().String(),
			CompraID:         compraID,
			NumeroCuota:      i,
			Monto:            monto,
			FechaVencimiento: desde.AddDate(0, i, 0),
			Pagado:           false,
		}
		if err := compraRepo.CrearPago(ctx, pago); err != nil {
			return err
		}
		acumulado = acumulado.Add(monto)
	}
	return nil
}

// ObtenerCompra devuelve la compra con detalles y plan de pagos.
func (uc *CompraUseCase) ObtenerCompra(ctx context.Context, id string) (*entity.Compra, []*entity.CompraDetalle, []*entity.PagoCompra, error) {
	compra, err := uc.compraRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	if compra == nil {
		return nil, nil, nil, domain.ErrNotFound
	}
	detalles, err := uc.compraRepo.DetallesPorCompra(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	pagos, err := uc.compraRepo.PagosPorCompra(ctx, id)
	if err != nil {
		return nil, nil, nil, err
	}
	return compra, detalles, pagos, nil
}
