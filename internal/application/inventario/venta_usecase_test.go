package inventario_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

const (
	local1    = "local-1"
	local2    = "local-2"
	encargado = "emp-1"
	productoP = "prod-P"
)

// escenarioVenta arma un almacén con el producto P y su catálogo mínimo.
func escenarioVenta() (*almacen, *fakeTxRunner, *inventario.VentaUseCase) {
	base := nuevoAlmacen()
	base.locales[local1] = &entity.Local{ID: local1, Nombre: "Farmacia Centro"}
	base.locales[local2] = &entity.Local{ID: local2, Nombre: "Farmacia Norte"}
	base.productos[productoP] = &entity.Producto{
		ID: productoP, Codigo: "P-001", Nombre: "Paracetamol 500mg",
		PrecioVenta: decimal.NewFromFloat(12.50),
	}
	tx := &fakeTxRunner{base: base}
	uc := inventario.NewVentaUseCase(
		tx,
		&fakeProductoRepo{base: base},
		&fakeLocalRepo{base: base},
		&fakeVentaRepo{base: base},
		&fakeLoteRepo{base: base},
		&fakeReciboGen{},
	)
	return base, tx, uc
}

func ventaDe(productoID string, cantidad int64, precio float64) dto.RegistrarVentaRequest {
	return dto.RegistrarVentaRequest{
		TipoPago:    entity.PagoEfectivo,
		LocalID:     local1,
		EncargadoID: encargado,
		Detalles: []dto.VentaDetalleRequest{
			{ProductoID: productoID, Cantidad: cantidad, PrecioUnitario: decimal.NewFromFloat(precio)},
		},
	}
}

// El reparto FEFO debe agotar el lote más próximo a vencer antes de tocar el
// siguiente, y cada movimiento negativo lleva su detalle con el mismo
// (lote, cantidad).
func TestRegistrarVenta_FEFOReparteEntreLotes(t *testing.T) {
	base, tx, uc := escenarioVenta()
	base.agregarLote("B1", productoP, "L-01", "2026-01-01")
	base.agregarLote("B2", productoP, "L-02", "2026-02-01")
	base.agregarStock("B1", local1, 2)
	base.agregarStock("B2", local1, 5)

	ventaID, err := uc.RegistrarVenta(context.Background(), ventaDe(productoP, 4, 10))

	require.NoError(t, err)
	require.NotEmpty(t, ventaID)
	assert.Equal(t, 1, tx.commits)

	// Dos salidas nuevas: B1 agotado (-2) y B2 parcial (-2).
	var salidas []*entity.MovimientoInventario
	for _, m := range base.movimientos {
		if m.Tipo == entity.MovimientoVenta {
			salidas = append(salidas, m)
		}
	}
	require.Len(t, salidas, 2)
	assert.Equal(t, "B1", salidas[0].LoteID)
	assert.EqualValues(t, -2, salidas[0].Cantidad)
	assert.Equal(t, "B2", salidas[1].LoteID)
	assert.EqualValues(t, -2, salidas[1].Cantidad)
	for _, m := range salidas {
		assert.Equal(t, ventaID, m.VentaID)
	}

	// Detalle emparejado por (lote, cantidad) con cada salida.
	require.Len(t, base.ventaDet, 2)
	for i, d := range base.ventaDet {
		assert.Equal(t, salidas[i].LoteID, d.LoteID)
		assert.EqualValues(t, -d.Cantidad, salidas[i].Cantidad)
	}

	// Total parcheado en la cabecera: 4 × 10.
	venta := base.ventas[ventaID]
	require.NotNil(t, venta)
	assert.True(t, venta.Total.Equal(decimal.NewFromInt(40)), "total = %s", venta.Total)
}

// Venta de 10 con solo 7 disponibles: error de negocio con el faltante de 3
// y ledger intacto (escenario de la propiedad de atomicidad).
func TestRegistrarVenta_StockInsuficienteRevierteTodo(t *testing.T) {
	base, tx, uc := escenarioVenta()
	base.agregarLote("B1", productoP, "L-01", "2026-01-01")
	base.agregarLote("B2", productoP, "L-02", "2026-02-01")
	base.agregarStock("B1", local1, 3)
	base.agregarStock("B2", local1, 4)
	movimientosAntes := len(base.movimientos)

	_, err := uc.RegistrarVenta(context.Background(), ventaDe(productoP, 10, 10))

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrStockInsuficiente))

	var faltaErr *domain.StockInsuficienteError
	require.True(t, errors.As(err, &faltaErr))
	assert.Equal(t, productoP, faltaErr.ProductoID)
	assert.EqualValues(t, 3, faltaErr.Faltante())
	assert.EqualValues(t, 7, faltaErr.Disponible)
	assert.Contains(t, err.Error(), "Stock insuficiente")

	// Rollback: ni movimientos, ni detalles, ni cabecera.
	assert.Len(t, base.movimientos, movimientosAntes)
	assert.Empty(t, base.ventaDet)
	assert.Empty(t, base.ventas)
	assert.Equal(t, 0, tx.commits)
}

// Si la línea 2 de una venta de 3 líneas no alcanza, nada de las líneas
// 1-3 debe persistir.
func TestRegistrarVenta_FallaEnLineaIntermediaNoDejaRastros(t *testing.T) {
	base, tx, uc := escenarioVenta()
	prodQ := "prod-Q"
	base.productos[prodQ] = &entity.Producto{ID: prodQ, Codigo: "Q-001", Nombre: "Ibuprofeno", PrecioVenta: decimal.NewFromInt(8)}
	base.agregarLote("BP", productoP, "L-01", "2026-01-01")
	base.agregarLote("BQ", prodQ, "L-02", "2026-01-01")
	base.agregarStock("BP", local1, 50)
	base.agregarStock("BQ", local1, 1)
	movimientosAntes := len(base.movimientos)

	in := ventaDe(productoP, 5, 10)
	in.Detalles = append(in.Detalles,
		dto.VentaDetalleRequest{ProductoID: prodQ, Cantidad: 3, PrecioUnitario: decimal.NewFromInt(8)},
		dto.VentaDetalleRequest{ProductoID: productoP, Cantidad: 1, PrecioUnitario: decimal.NewFromInt(10)},
	)

	_, err := uc.RegistrarVenta(context.Background(), in)

	require.ErrorIs(t, err, domain.ErrStockInsuficiente)
	assert.Len(t, base.movimientos, movimientosAntes, "la línea 1 ya asignada debe revertirse")
	assert.Empty(t, base.ventaDet)
	assert.Equal(t, 1, tx.corridas)
	assert.Equal(t, 0, tx.commits)
}

// Los errores de validación retornan antes de abrir transacción.
func TestRegistrarVenta_ValidacionSinTransaccion(t *testing.T) {
	_, tx, uc := escenarioVenta()

	casos := []dto.RegistrarVentaRequest{
		{},                                     // sin nada
		{TipoPago: "BITCOIN", LocalID: local1, EncargadoID: encargado, Detalles: []dto.VentaDetalleRequest{{ProductoID: productoP, Cantidad: 1}}},
		{TipoPago: entity.PagoEfectivo, LocalID: local1, EncargadoID: encargado}, // sin líneas
		{TipoPago: entity.PagoEfectivo, LocalID: local1, EncargadoID: encargado, Detalles: []dto.VentaDetalleRequest{{ProductoID: productoP, Cantidad: 0}}},
		{TipoPago: entity.PagoEfectivo, LocalID: local1, EncargadoID: encargado, Detalles: []dto.VentaDetalleRequest{{ProductoID: productoP, Cantidad: -2}}},
	}
	for _, in := range casos {
		_, err := uc.RegistrarVenta(context.Background(), in)
		require.Error(t, err)
	}
	assert.Equal(t, 0, tx.corridas, "ninguna validación fallida debe abrir transacción")
}

// Línea sin precio usa el precio de catálogo del producto.
func TestRegistrarVenta_PrecioCatalogoPorDefecto(t *testing.T) {
	base, _, uc := escenarioVenta()
	base.agregarLote("B1", productoP, "L-01", "2026-01-01")
	base.agregarStock("B1", local1, 10)

	in := ventaDe(productoP, 2, 0) // precio cero → catálogo (12.50)
	ventaID, err := uc.RegistrarVenta(context.Background(), in)

	require.NoError(t, err)
	venta := base.ventas[ventaID]
	assert.True(t, venta.Total.Equal(decimal.NewFromFloat(25.0)), "total = %s", venta.Total)
}

// El descuento de la línea se aplica una sola vez aunque el reparto toque
// varios lotes.
func TestRegistrarVenta_DescuentoUnaVezPorLinea(t *testing.T) {
	base, _, uc := escenarioVenta()
	base.agregarLote("B1", productoP, "L-01", "2026-01-01")
	base.agregarLote("B2", productoP, "L-02", "2026-02-01")
	base.agregarStock("B1", local1, 2)
	base.agregarStock("B2", local1, 8)

	in := ventaDe(productoP, 6, 10)
	in.Detalles[0].Descuento = decimal.NewFromInt(5)

	ventaID, err := uc.RegistrarVenta(context.Background(), in)

	require.NoError(t, err)
	venta := base.ventas[ventaID]
	// 6 × 10 − 5 = 55
	assert.True(t, venta.Total.Equal(decimal.NewFromInt(55)), "total = %s", venta.Total)
}

// Dos lecturas de stock sin escrituras intermedias devuelven lo mismo.
func TestStockDisponible_LecturaIdempotente(t *testing.T) {
	base := nuevoAlmacen()
	base.agregarLote("B1", productoP, "L-01", "2026-01-01")
	base.agregarStock("B1", local1, 7)
	repo := &fakeMovRepo{base: base}

	s1, err1 := repo.StockDisponible(context.Background(), "B1", local1)
	s2, err2 := repo.StockDisponible(context.Background(), "B1", local1)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, s1, s2)
	assert.EqualValues(t, 7, s1)
}

// El stock derivado de un lote sin filas es cero, no un error.
func TestStockDisponible_LoteSinFilas(t *testing.T) {
	repo := &fakeMovRepo{base: nuevoAlmacen()}
	s, err := repo.StockDisponible(context.Background(), "no-existe", local1)
	require.NoError(t, err)
	assert.Zero(t, s)
}

func TestObtenerVenta_NoExiste(t *testing.T) {
	_, _, uc := escenarioVenta()
	_, err := uc.ObtenerVenta(context.Background(), "venta-fantasma")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGenerarRecibo_VentaCompleta(t *testing.T) {
	base, _, _ := escenarioVenta()
	base.agregarLote("B1", productoP, "L-01", "2026-01-01")
	base.agregarStock("B1", local1, 10)

	gen := &fakeReciboGen{}
	tx := &fakeTxRunner{base: base}
	uc := inventario.NewVentaUseCase(tx,
		&fakeProductoRepo{base: base}, &fakeLocalRepo{base: base},
		&fakeVentaRepo{base: base}, &fakeLoteRepo{base: base}, gen)

	ventaID, err := uc.RegistrarVenta(context.Background(), ventaDe(productoP, 3, 12.5))
	require.NoError(t, err)

	pdf, err := uc.GenerarRecibo(context.Background(), ventaID)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, 1, gen.llamadas)
}
