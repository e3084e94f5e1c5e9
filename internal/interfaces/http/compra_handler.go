package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain"
)

// CompraHandler maneja el registro y la consulta de compras a proveedor (protegido).
type CompraHandler struct {
	uc *inventario.CompraUseCase
}

// NewCompraHandler construye el handler.
func NewCompraHandler(uc *inventario.CompraUseCase) *CompraHandler {
	return &CompraHandler{uc: uc}
}

// Registrar godoc
// @Summary      Registrar compra
// @Description  Registra una compra a proveedor: crea o reutiliza lotes,
//               escribe las entradas del ledger y, si es al crédito, el plan
//               de cuotas, todo en una transacción.
// @Tags         compras
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegistrarCompraRequest  true  "no_factura, proveedor_id, credito, cuotas, detalles, local_id, encargado_id"
// @Success      201   {object}  dto.RegistrarCompraResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/compras [post]
func (h *CompraHandler) Registrar(c *fiber.Ctx) error {
	var in dto.RegistrarCompraRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.EncargadoID == "" {
		in.EncargadoID = GetEmpleadoID(c)
	}
	if in.LocalID == "" {
		in.LocalID = GetLocalID(c)
	}
	compraID, err := h.uc.RegistrarCompra(c.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEntradaInvalida):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "datos inválidos", Detalles: err.Error()})
		case errors.Is(err, domain.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "recurso no encontrado", Detalles: err.Error()})
		case errors.Is(err, domain.ErrDuplicado):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "la factura ya fue registrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al registrar la compra", Detalles: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.RegistrarCompraResponse{
		Mensaje:  "compra registrada",
		CompraID: compraID,
	})
}

// Obtener godoc
// @Summary      Consultar compra
// @Tags         compras
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la compra"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/compras/{id} [get]
func (h *CompraHandler) Obtener(c *fiber.Ctx) error {
	compra, detalles, pagos, err := h.uc.ObtenerCompra(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "compra no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al consultar la compra", Detalles: err.Error()})
	}
	return c.JSON(fiber.Map{
		"compra":   compra,
		"detalles": detalles,
		"pagos":    pagos,
	})
}
