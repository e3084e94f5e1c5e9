package inventario_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dquintero/farmacia-erp/internal/domain/inventario"
)

func fecha(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

// El lote más próximo a vencer debe agotarse antes de tocar el siguiente.
func TestAsignarFEFO_AgotaElMasProximoPrimero(t *testing.T) {
	lotes := []inventario.LoteDisponible{
		{LoteID: "B1", FechaVencimiento: fecha("2026-01-01"), Disponible: 2},
		{LoteID: "B2", FechaVencimiento: fecha("2026-02-01"), Disponible: 5},
	}

	plan, faltante := inventario.AsignarFEFO(lotes, 4)

	require.Zero(t, faltante)
	require.Len(t, plan, 2)
	assert.Equal(t, inventario.Asignacion{LoteID: "B1", Cantidad: 2}, plan[0])
	assert.Equal(t, inventario.Asignacion{LoteID: "B2", Cantidad: 2}, plan[1])
}

func TestAsignarFEFO_UnSoloLoteCubreTodo(t *testing.T) {
	lotes := []inventario.LoteDisponible{
		{LoteID: "B1", FechaVencimiento: fecha("2026-01-01"), Disponible: 10},
		{LoteID: "B2", FechaVencimiento: fecha("2026-02-01"), Disponible: 5},
	}

	plan, faltante := inventario.AsignarFEFO(lotes, 7)

	require.Zero(t, faltante)
	require.Len(t, plan, 1, "no debe tocar B2 si B1 alcanza")
	assert.Equal(t, "B1", plan[0].LoteID)
	assert.EqualValues(t, 7, plan[0].Cantidad)
}

// Lotes con stock cero o negativo se saltan por completo.
func TestAsignarFEFO_SaltaLotesSinStock(t *testing.T) {
	lotes := []inventario.LoteDisponible{
		{LoteID: "B0", FechaVencimiento: fecha("2025-12-01"), Disponible: 0},
		{LoteID: "B-neg", FechaVencimiento: fecha("2025-12-15"), Disponible: -3},
		{LoteID: "B1", FechaVencimiento: fecha("2026-01-01"), Disponible: 4},
	}

	plan, faltante := inventario.AsignarFEFO(lotes, 4)

	require.Zero(t, faltante)
	require.Len(t, plan, 1)
	assert.Equal(t, "B1", plan[0].LoteID)
}

// Si los lotes se agotan con cantidad pendiente, el faltante se reporta
// y el plan parcial no debe llegar al ledger.
func TestAsignarFEFO_FaltanteReportado(t *testing.T) {
	lotes := []inventario.LoteDisponible{
		{LoteID: "B1", FechaVencimiento: fecha("2026-01-01"), Disponible: 3},
		{LoteID: "B2", FechaVencimiento: fecha("2026-02-01"), Disponible: 4},
	}

	plan, faltante := inventario.AsignarFEFO(lotes, 10)

	assert.EqualValues(t, 3, faltante)
	require.Len(t, plan, 2)
	assert.EqualValues(t, 3, plan[0].Cantidad)
	assert.EqualValues(t, 4, plan[1].Cantidad)
}

func TestAsignarFEFO_SinLotes(t *testing.T) {
	plan, faltante := inventario.AsignarFEFO(nil, 5)
	assert.Empty(t, plan)
	assert.EqualValues(t, 5, faltante)
}

// A igual fecha de vencimiento el desempate es el orden de inserción,
// que es el orden en que llegan los lotes en el slice.
func TestAsignarFEFO_DesempatePorOrdenDeInsercion(t *testing.T) {
	lotes := []inventario.LoteDisponible{
		{LoteID: "primero", FechaVencimiento: fecha("2026-03-01"), Disponible: 1},
		{LoteID: "segundo", FechaVencimiento: fecha("2026-03-01"), Disponible: 5},
	}

	plan, faltante := inventario.AsignarFEFO(lotes, 2)

	require.Zero(t, faltante)
	require.Len(t, plan, 2)
	assert.Equal(t, "primero", plan[0].LoteID)
	assert.Equal(t, "segundo", plan[1].LoteID)
}

func TestTotalDisponible_IgnoraNegativos(t *testing.T) {
	lotes := []inventario.LoteDisponible{
		{LoteID: "a", Disponible: 5},
		{LoteID: "b", Disponible: -2},
		{LoteID: "c", Disponible: 0},
		{LoteID: "d", Disponible: 2},
	}
	assert.EqualValues(t, 7, inventario.TotalDisponible(lotes))
}
