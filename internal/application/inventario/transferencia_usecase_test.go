package inventario_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

func escenarioTransferencia() (*almacen, *fakeTxRunner, *inventario.TransferenciaUseCase) {
	base := nuevoAlmacen()
	base.locales[local1] = &entity.Local{ID: local1, Nombre: "Farmacia Centro"}
	base.locales[local2] = &entity.Local{ID: local2, Nombre: "Farmacia Norte"}
	tx := &fakeTxRunner{base: base}
	uc := inventario.NewTransferenciaUseCase(tx, &fakeLocalRepo{base: base})
	return base, tx, uc
}

func traslado(origen, destino string, cantidad int64) dto.RegistrarTransferenciaRequest {
	return dto.RegistrarTransferenciaRequest{
		OrigenLocalID:  origen,
		DestinoLocalID: destino,
		EncargadoID:    encargado,
		Productos:      []dto.TransferenciaProductoRequest{{ProductoID: productoP, Cantidad: cantidad}},
	}
}

// Traslado de las 5 unidades del único lote: origen queda en 0, destino en 5,
// con exactamente dos filas de ledger (par negativo/positivo) y dos detalles.
func TestRegistrarTransferencia_ParDeFilasPorLote(t *testing.T) {
	base, tx, uc := escenarioTransferencia()
	base.agregarLote("B1", productoP, "L-01", "2026-06-01")
	base.agregarStock("B1", local1, 5)

	trasladoID, err := uc.RegistrarTransferencia(context.Background(), traslado(local1, local2, 5))

	require.NoError(t, err)
	require.NotEmpty(t, trasladoID)
	assert.Equal(t, 1, tx.commits)

	var movs []*entity.MovimientoInventario
	for _, m := range base.movimientos {
		if m.Tipo == entity.MovimientoTraslado {
			movs = append(movs, m)
		}
	}
	require.Len(t, movs, 2)
	assert.Equal(t, local1, movs[0].LocalID)
	assert.EqualValues(t, -5, movs[0].Cantidad)
	assert.Equal(t, local2, movs[1].LocalID)
	assert.EqualValues(t, 5, movs[1].Cantidad)
	assert.Equal(t, movs[0].TrasladoID, movs[1].TrasladoID, "ambas filas enlazan el mismo traslado")

	require.Len(t, base.trasladoDet, 2)

	repo := &fakeMovRepo{base: base}
	enOrigen, _ := repo.StockDisponible(context.Background(), "B1", local1)
	enDestino, _ := repo.StockDisponible(context.Background(), "B1", local2)
	assert.Zero(t, enOrigen)
	assert.EqualValues(t, 5, enDestino)
}

// El traslado respeta FEFO en el local de origen.
func TestRegistrarTransferencia_FEFOEnOrigen(t *testing.T) {
	base, _, uc := escenarioTransferencia()
	base.agregarLote("B2", productoP, "L-02", "2026-09-01")
	base.agregarLote("B1", productoP, "L-01", "2026-03-01")
	base.agregarStock("B1", local1, 2)
	base.agregarStock("B2", local1, 9)

	_, err := uc.RegistrarTransferencia(context.Background(), traslado(local1, local2, 4))

	require.NoError(t, err)
	repo := &fakeMovRepo{base: base}
	b1Origen, _ := repo.StockDisponible(context.Background(), "B1", local1)
	b1Destino, _ := repo.StockDisponible(context.Background(), "B1", local2)
	b2Destino, _ := repo.StockDisponible(context.Background(), "B2", local2)
	assert.Zero(t, b1Origen, "el lote más próximo a vencer se agota primero")
	assert.EqualValues(t, 2, b1Destino)
	assert.EqualValues(t, 2, b2Destino)
}

func TestRegistrarTransferencia_LocalesIguales(t *testing.T) {
	_, tx, uc := escenarioTransferencia()

	_, err := uc.RegistrarTransferencia(context.Background(), traslado(local1, local1, 3))

	assert.ErrorIs(t, err, domain.ErrLocalesIguales)
	assert.Equal(t, 0, tx.corridas)
}

func TestRegistrarTransferencia_SinProductos(t *testing.T) {
	_, tx, uc := escenarioTransferencia()

	in := traslado(local1, local2, 1)
	in.Productos = nil
	_, err := uc.RegistrarTransferencia(context.Background(), in)

	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	assert.Equal(t, 0, tx.corridas)
}

func TestRegistrarTransferencia_LocalInexistente(t *testing.T) {
	_, _, uc := escenarioTransferencia()
	_, err := uc.RegistrarTransferencia(context.Background(), traslado(local1, "local-fantasma", 1))
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Un faltante en el origen revierte el traslado entero: sin movimientos,
// sin detalles, sin cabecera.
func TestRegistrarTransferencia_StockInsuficienteRevierte(t *testing.T) {
	base, tx, uc := escenarioTransferencia()
	base.agregarLote("B1", productoP, "L-01", "2026-06-01")
	base.agregarStock("B1", local1, 2)
	movimientosAntes := len(base.movimientos)

	_, err := uc.RegistrarTransferencia(context.Background(), traslado(local1, local2, 5))

	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Contains(t, err.Error(), "Stock insuficiente")
	assert.Len(t, base.movimientos, movimientosAntes)
	assert.Empty(t, base.trasladoDet)
	assert.Empty(t, base.traslados)
	assert.Equal(t, 1, tx.corridas)
	assert.Equal(t, 0, tx.commits)
}
