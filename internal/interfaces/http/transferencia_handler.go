package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain"
)

// TransferenciaHandler maneja traslados de stock entre locales (protegido).
type TransferenciaHandler struct {
	uc *inventario.TransferenciaUseCase
}

// NewTransferenciaHandler construye el handler.
func NewTransferenciaHandler(uc *inventario.TransferenciaUseCase) *TransferenciaHandler {
	return &TransferenciaHandler{uc: uc}
}

// Registrar godoc
// @Summary      Transferir stock entre locales
// @Description  Mueve productos del local de origen al de destino. Cada lote
//               movido genera un par de filas en el ledger (salida y entrada)
//               que comparten el ID del traslado; la operación es atómica.
// @Tags         transferencias
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarTransferenciaRequest  true  "origen_local_id, destino_local_id, productos, encargado_id"
// @Success      201   {object}  dto.RegistrarTransferenciaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/transferencias [post]
func (h *TransferenciaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarTransferenciaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.EncargadoID == "" {
		in.EncargadoID = GetEmpleadoID(c)
	}
	if _, err := h.uc.RegistrarTransferencia(c.Context(), in); err != nil {
		var faltante *domain.StockInsuficienteError
		if errors.As(err, &faltante) {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
				Error:    "Error al registrar la transferencia",
				Detalles: faltante.Error(),
			})
		}
		switch {
		case errors.Is(err, domain.ErrLocalesIguales):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "origen y destino no pueden ser el mismo local"})
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos", Detalles: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "local no encontrado", Detalles: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:    "Error al registrar la transferencia",
			Detalles: err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegistrarTransferenciaResponse{
		Mensaje: "transferencia registrada",
	})
}
