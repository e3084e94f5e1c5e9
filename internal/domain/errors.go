package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrEmpleadoNotFound  = errors.New("empleado no encontrado")
	ErrEntradaInvalida   = errors.New("entrada inválida")
	ErrDuplicado         = errors.New("recurso duplicado")
	ErrNoAutorizado      = errors.New("no autorizado")
	ErrAccesoDenegado    = errors.New("acceso denegado")
	ErrStockInsuficiente = errors.New("stock insuficiente")
	ErrTipoPagoInvalido  = errors.New("tipo de pago inválido")
	ErrLocalesIguales    = errors.New("el local de origen y destino no pueden ser iguales")
)

// StockInsuficienteError detalla un faltante de stock por producto: cuánto se
// pidió y cuánto había disponible en el local tras recorrer todos los lotes.
// Envuelve ErrStockInsuficiente para errors.Is.
type StockInsuficienteError struct {
	ProductoID string
	Solicitado int64
	Disponible int64
}

// Faltante devuelve las unidades que no se pudieron cubrir.
func (e *StockInsuficienteError) Faltante() int64 {
	return e.Solicitado - e.Disponible
}

func (e *StockInsuficienteError) Error() string {
	return fmt.Sprintf("Stock insuficiente para el producto %s: solicitado %d, disponible %d (faltan %d)",
		e.ProductoID, e.Solicitado, e.Disponible, e.Faltante())
}

// Unwrap permite errors.Is(err, ErrStockInsuficiente).
func (e *StockInsuficienteError) Unwrap() error {
	return ErrStockInsuficiente
}
