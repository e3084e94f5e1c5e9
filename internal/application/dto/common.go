package dto

// ErrorResponse cuerpo de error HTTP. Detalles lleva, cuando existe, el
// mensaje del driver u otra información de diagnóstico (nunca un stack trace).
type ErrorResponse struct {
	Error    string `json:"error"`
	Detalles string `json:"detalles,omitempty"`
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit"`
	Offset int `query:"offset"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
