// Package inventario contiene la lógica pura del motor de inventario:
// la asignación de lotes FEFO (first-expire-first-out) como servicio de
// dominio sin dependencias de persistencia.
package inventario

import "time"

// LoteDisponible es la vista que necesita el asignador: un lote con su
// fecha de vencimiento y el stock derivado del ledger para un local.
// El orden del slice debe ser vencimiento ascendente; a igual fecha,
// orden de inserción del lote (desempate determinista).
type LoteDisponible struct {
	LoteID           string
	FechaVencimiento time.Time
	Disponible       int64
}

// Asignacion indica cuántas unidades tomar de un lote concreto.
type Asignacion struct {
	LoteID   string
	Cantidad int64
}

// AsignarFEFO reparte la cantidad solicitada entre los lotes en orden de
// vencimiento más próximo primero. Los lotes con stock cero o negativo se
// saltan por completo. Devuelve el plan de asignación y el faltante: si
// faltante > 0 los lotes se agotaron sin cubrir lo pedido y el llamador
// debe tratarlo como stock insuficiente (nunca se asigna parcialmente
// hacia el ledger).
func AsignarFEFO(lotes []LoteDisponible, solicitado int64) ([]Asignacion, int64) {
	restante := solicitado
	var plan []Asignacion
	for _, l := range lotes {
		if restante == 0 {
			break
		}
		if l.Disponible <= 0 {
			continue
		}
		tomar := l.Disponible
		if restante < tomar {
			tomar = restante
		}
		plan = append(plan, Asignacion{LoteID: l.LoteID, Cantidad: tomar})
		restante -= tomar
	}
	return plan, restante
}

// TotalDisponible suma el stock positivo de los lotes (lo realmente vendible).
func TotalDisponible(lotes []LoteDisponible) int64 {
	var total int64
	for _, l := range lotes {
		if l.Disponible > 0 {
			total += l.Disponible
		}
	}
	return total
}
