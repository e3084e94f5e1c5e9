package inventario_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain"
	"github.com/dquintero/farmacia-erp/internal/domain/entity"
)

const proveedor1 = "prov-1"

func escenarioCompra() (*almacen, *fakeTxRunner, *inventario.CompraUseCase) {
	base := nuevoAlmacen()
	base.locales[local1] = &entity.Local{ID: local1, Nombre: "Farmacia Centro"}
	base.proveedores[proveedor1] = &entity.Proveedor{ID: proveedor1, Nombre: "Droguería Mayorista"}
	base.productos[productoP] = &entity.Producto{
		ID: productoP, Codigo: "P-001", Nombre: "Paracetamol 500mg",
		PrecioVenta: decimal.NewFromInt(10), PrecioCosto: decimal.NewFromInt(6),
	}
	tx := &fakeTxRunner{base: base}
	uc := inventario.NewCompraUseCase(
		tx,
		&fakeProductoRepo{base: base},
		&fakeProveedorRepo{base: base},
		&fakeLocalRepo{base: base},
		&fakeCompraRepo{base: base},
	)
	return base, tx, uc
}

func compraDe(cantidad int64, etiqueta string) dto.RegistrarCompraRequest {
	return dto.RegistrarCompraRequest{
		NoFactura:   "F-0001",
		ProveedorID: proveedor1,
		LocalID:     local1,
		EncargadoID: encargado,
		Detalles: []dto.CompraDetalleRequest{{
			ProductoID:       productoP,
			Cantidad:         cantidad,
			PrecioCosto:      decimal.NewFromInt(7),
			PrecioVenta:      decimal.NewFromInt(11),
			Lote:             etiqueta,
			FechaVencimiento: "2027-03-31",
		}},
	}
}

// Una compra con etiqueta nueva crea el lote, la entrada al ledger con
// referencia a la compra, el detalle y actualiza los precios del catálogo.
func TestRegistrarCompra_CreaLoteYEntrada(t *testing.T) {
	base, tx, uc := escenarioCompra()

	compraID, err := uc.RegistrarCompra(context.Background(), compraDe(20, "L-NUEVO"))

	require.NoError(t, err)
	require.NotEmpty(t, compraID)
	assert.Equal(t, 1, tx.commits)

	require.Len(t, base.lotes, 1)
	lote := base.lotes[0]
	assert.Equal(t, "L-NUEVO", lote.Etiqueta)
	assert.Equal(t, productoP, lote.ProductoID)

	require.Len(t, base.movimientos, 1)
	mov := base.movimientos[0]
	assert.Equal(t, entity.MovimientoCompra, mov.Tipo)
	assert.EqualValues(t, 20, mov.Cantidad)
	assert.Equal(t, compraID, mov.CompraID)
	assert.Equal(t, lote.ID, mov.LoteID)

	require.Len(t, base.compraDet, 1)
	assert.True(t, base.compraDet[0].Subtotal.Equal(decimal.NewFromInt(140))) // 20 × 7

	compra := base.compras[compraID]
	require.NotNil(t, compra)
	assert.True(t, compra.Total.Equal(decimal.NewFromInt(140)))

	// Catálogo actualizado con los precios de la compra.
	p := base.productos[productoP]
	assert.True(t, p.PrecioCosto.Equal(decimal.NewFromInt(7)))
	assert.True(t, p.PrecioVenta.Equal(decimal.NewFromInt(11)))
}

// Si la pareja (producto, etiqueta) ya existe, la compra reutiliza el lote
// en lugar de duplicarlo.
func TestRegistrarCompra_ReutilizaLoteExistente(t *testing.T) {
	base, _, uc := escenarioCompra()
	base.agregarLote("B-EXISTE", productoP, "L-VIEJO", "2027-03-31")

	compraID, err := uc.RegistrarCompra(context.Background(), compraDe(10, "L-VIEJO"))

	require.NoError(t, err)
	assert.Len(t, base.lotes, 1, "no debe crear un lote duplicado")
	require.Len(t, base.movimientos, 1)
	assert.Equal(t, "B-EXISTE", base.movimientos[0].LoteID)
	assert.Equal(t, compraID, base.movimientos[0].CompraID)
}

// Compra al crédito: cuotas mensuales iguales, el redondeo cierra en la última.
func TestRegistrarCompra_CreditoGeneraCuotas(t *testing.T) {
	base, _, uc := escenarioCompra()

	in := compraDe(10, "L-CRED") // total 70
	in.Credito = true
	in.Cuotas = 3

	compraID, err := uc.RegistrarCompra(context.Background(), in)

	require.NoError(t, err)
	require.Len(t, base.pagos, 3)

	suma := decimal.Zero
	for i, p := range base.pagos {
		assert.Equal(t, compraID, p.CompraID)
		assert.Equal(t, i+1, p.NumeroCuota)
		assert.False(t, p.Pagado)
		suma = suma.Add(p.Monto)
	}
	assert.True(t, suma.Equal(decimal.NewFromInt(70)), "las cuotas deben sumar el total exacto")
	assert.True(t, base.pagos[1].FechaVencimiento.After(base.pagos[0].FechaVencimiento))
}

func TestRegistrarCompra_Validaciones(t *testing.T) {
	_, tx, uc := escenarioCompra()

	credSinCuotas := compraDe(5, "L-X")
	credSinCuotas.Credito = true
	credSinCuotas.Cuotas = 0

	fechaMala := compraDe(5, "L-X")
	fechaMala.Detalles[0].FechaVencimiento = "31/03/2027"

	cantidadMala := compraDe(0, "L-X")

	sinFactura := compraDe(5, "L-X")
	sinFactura.NoFactura = ""

	for _, in := range []dto.RegistrarCompraRequest{credSinCuotas, fechaMala, cantidadMala, sinFactura} {
		_, err := uc.RegistrarCompra(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
	}
	assert.Equal(t, 0, tx.corridas)
}

func TestRegistrarCompra_ProveedorInexistente(t *testing.T) {
	_, _, uc := escenarioCompra()
	in := compraDe(5, "L-X")
	in.ProveedorID = "prov-fantasma"
	_, err := uc.RegistrarCompra(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
