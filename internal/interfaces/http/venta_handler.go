package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain"
)

// VentaHandler maneja el registro y la consulta de ventas (protegido).
type VentaHandler struct {
	uc *inventario.VentaUseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *inventario.VentaUseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar venta
// @Description  Registra una venta completa: asignación FEFO de lotes, salidas
//               del ledger, detalles y total, todo en una transacción.
// @Tags         ventas
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarVentaRequest  true  "cliente_id (opcional), tipo_pago, detalles, local_id, encargado_id"
// @Success      201   {object}  dto.RegistrarVentaResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      500   {object}  dto.ErrorResponse
// @Router       /api/ventas [post]
func (h *VentaHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.EncargadoID == "" {
		in.EncargadoID = GetEmpleadoID(c)
	}
	if in.LocalID == "" {
		in.LocalID = GetLocalID(c)
	}
	ventaID, err := h.uc.RegistrarVenta(c.Context(), in)
	if err != nil {
		return ventaError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegistrarVentaResponse{
		Mensaje: "venta registrada",
		VentaID: ventaID,
	})
}

// ventaError mapea los errores de la venta al contrato HTTP. El faltante de
// stock sale como 500 con el detalle del producto, cantidad pedida y
// disponible; las validaciones como 400.
func ventaError(c *fiber.Ctx, err error) error {
	var faltante *domain.StockInsuficienteError
	if errors.As(err, &faltante) {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error:    "Error al registrar la venta",
			Detalles: faltante.Error(),
		})
	}
	switch {
	case errors.Is(err, domain.ErrEntradaInvalida), errors.Is(err, domain.ErrTipoPagoInvalido):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos", Detalles: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "recurso no encontrado", Detalles: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error:    "Error al registrar la venta",
		Detalles: err.Error(),
	})
}

// Obtener godoc
// @Summary      Consultar venta
// @Tags         ventas
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {object}  dto.VentaResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id} [get]
func (h *VentaHandler) Obtener(c *fiber.Ctx) error {
	out, err := h.uc.ObtenerVenta(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al consultar la venta", Detalles: err.Error()})
	}
	return c.JSON(out)
}

// Recibo godoc
// @Summary      Recibo de venta en PDF
// @Tags         ventas
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path  string  true  "ID de la venta"
// @Success      200  {file}  byte
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/{id}/recibo [get]
func (h *VentaHandler) Recibo(c *fiber.Ctx) error {
	pdfBytes, err := h.uc.GenerarRecibo(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al generar el recibo", Detalles: err.Error()})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="recibo.pdf"`)
	return c.Send(pdfBytes)
}
