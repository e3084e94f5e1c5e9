package entity

import "time"

// Traslado es la cabecera de una transferencia entre locales. En el ledger
// se modela siempre como un par de filas (salida en origen, entrada en
// destino) que comparten el TrasladoID; nunca como una sola fila cruzada.
type Traslado struct {
	ID             string
	OrigenLocalID  string
	DestinoLocalID string
	EncargadoID    string
	Fecha          time.Time
	CreatedAt      time.Time
}

// TrasladoDetalle es la línea de auditoría de cada movimiento del traslado:
// una por el lado de salida y otra por el de entrada, con el mismo lote y
// la misma cantidad.
type TrasladoDetalle struct {
	ID         string
	TrasladoID string
	LoteID     string
	ProductoID string
	LocalID    string
	Cantidad   int64 // con signo, igual que la fila del ledger que explica
}
