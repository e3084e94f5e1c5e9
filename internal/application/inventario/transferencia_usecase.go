package inventario

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
	"github.com/dquintero/farmacia-erp/internal/domain/repository"
)

// TransferenciaUseCase orquesta un traslado entre locales. Cada lote asignado
// produce un par de filas en el ledger (salida negativa en origen, entrada
// positiva en destino) con el mismo traslado_id, más una línea de auditoría
// por cada lado. El par completo vive o muere con la transacción.
type TransferenciaUseCase struct {
	txRunner  TxRunner
	localRepo repository.LocalRepository
}

// NewTransferenciaUseCase construye el caso de uso.
func NewTransferenciaUseCase(txRunner TxRunner, localRepo repository.LocalRepository) *TransferenciaUseCase {
	return &TransferenciaUseCase{txRunner: txRunner, localRepo: localRepo}
}

// RegistrarTransferencia ejecuta el traslado y devuelve su ID.
func (uc *TransferenciaUseCase) RegistrarTransferencia(ctx context.Context, in dto.RegistrarTransferenciaRequest) (string, error) {
	if in.OrigenLocalID == "" || in.DestinoLocalID == "" || in.EncargadoID == "" {
		return "", domain.ErrEntradaInvalida
	}
	if in.OrigenLocalID == in.DestinoLocalID {
		return "", domain.ErrLocalesIguales
	}
	if len(in.Productos) == 0 {
		return "", domain.ErrEntradaInvalida
	}
	for _, p := range in.Productos {
		if p.ProductoID == "" || p.Cantidad <= 0 {
			return "", domain.ErrEntradaInvalida
		}
	}

	origen, err := uc.localRepo.GetByID(ctx, in.OrigenLocalID)
	if err != nil {
		return "", err
	}
	destino, err := uc.localRepo.GetByID(ctx, in.DestinoLocalID)
	if err != nil {
		return "", err
	}
	if origen == nil || destino == nil {
		return "", domain.ErrNotFound
	}

	now := time.Now()
	trasladoID := uuid.New().String()

	err = uc.txRunner.Run(ctx, func(
		movRepo repository.MovimientoRepository,
		loteRepo repository.LoteRepository,
		_ repository.ProductoRepository,
		_ repository.VentaRepository,
		_ repository.CompraRepository,
		trasladoRepo repository.TrasladoRepository,
	) error {
		traslado := &entity.Traslado{
			ID:             trasladoID,
			OrigenLocalID:  in.OrigenLocalID,
			DestinoLocalID: in.DestinoLocalID,
			EncargadoID:    in.EncargadoID,
			Fecha:          now,
			CreatedAt:      now,
		}
		if err := trasladoRepo.CrearCabecera(ctx, traslado); err != nil {
			return err
		}

		for _, linea := range in.Productos {
			plan, err := asignarLotes(ctx, movRepo, loteRepo, linea.ProductoID, in.OrigenLocalID, linea.Cantidad)
			if err != nil {
				return err
			}
			for _, asig := range plan {
				if err := uc.moverLote(ctx, movRepo, trasladoRepo, traslado, linea.ProductoID, asig.LoteID, asig.Cantidad, now); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return trasladoID, nil
}

// moverLote escribe el par salida/entrada de un lote con sus dos líneas de
// auditoría, todo con el mismo traslado_id.
func (uc *TransferenciaUseCase) moverLote(
	ctx context.Context,
	movRepo repository.MovimientoRepository,
	trasladoRepo repository.TrasladoRepository,
	traslado *entity.Traslado,
	productoID, loteID string,
	cantidad int64,
	now time.Time,
) error {
	salida := &entity.MovimientoInventario{
		ID:          uuid.New().String(),
		LoteID:      loteID,
		LocalID:     traslado.OrigenLocalID,
		Cantidad:    -cantidad,
		Tipo:        entity.MovimientoTraslado,
		EncargadoID: traslado.EncargadoID,
		Fecha:       now,
		TrasladoID:  traslado.ID,
		CreatedAt:   now,
	}
	if err := movRepo.Create(ctx, salida); err != nil {
		return err
	}
	entrada := &entity.MovimientoInventario{
		ID:          uuid.New().String(),
		LoteID:      loteID,
		LocalID:     traslado.DestinoLocalID,
		Cantidad:    cantidad,
		Tipo:        entity.MovimientoTraslado,
		EncargadoID: traslado.EncargadoID,
		Fecha:       now,
		TrasladoID:  traslado.ID,
		CreatedAt:   now,
	}
	if err := movRepo.Create(ctx, entrada); err != nil {
		return err
	}

	detSalida := &entity.TrasladoDetalle{
		ID:         uuid.New().String(),
		TrasladoID: traslado.ID,
		LoteID:     loteID,
		ProductoID: productoID,
		LocalID:    traslado.OrigenLocalID,
		Cantidad:   -cantidad,
	}
	if err := trasladoRepo.CrearDetalle(ctx, detSalida); err != nil {
		return err
	}
	detEntrada := &entity.TrasladoDetalle{
		ID:         uuid.New().String(),
		TrasladoID: traslado.ID,
		LoteID:     loteID,
		ProductoID: productoID,
		LocalID:    traslado.DestinoLocalID,
		Cantidad:   cantidad,
	}
	return trasladoRepo.CrearDetalle(ctx, detEntrada)
}
