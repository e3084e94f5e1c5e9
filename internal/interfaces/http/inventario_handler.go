package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/application/inventario"
	"github.com/dquintero/farmacia-erp/internal/domain"
)

// InventarioHandler expone consultas de stock derivado y kardex (protegido).
type InventarioHandler struct {
	consultaUC     *inventario.ConsultaUseCase
	notificacionUC *inventario.NotificacionUseCase
}

// NewInventarioHandler construye el handler.
func NewInventarioHandler(consultaUC *inventario.ConsultaUseCase, notificacionUC *inventario.NotificacionUseCase) *InventarioHandler {
	return &InventarioHandler{consultaUC: consultaUC, notificacionUC: notificacionUC}
}

// Stock godoc
// @Summary      Stock derivado de un producto en un local
// @Description  El stock nunca se lee de un contador: se deriva sumando el
//               ledger por lote. Devuelve el total y el desglose por lote.
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id  query  string  true  "ID del producto"
// @Param        local_id     query  string  true  "ID del local"
// @Success      200  {object}  dto.StockProductoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/inventario/stock [get]
func (h *InventarioHandler) Stock(c *fiber.Ctx) error {
	productoID := c.Query("producto_id")
	localID := c.Query("local_id")
	if localID == "" {
		localID = GetLocalID(c)
	}
	if productoID == "" || localID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "producto_id y local_id son requeridos"})
	}
	out, err := h.consultaUC.ConsultarStock(c.Context(), productoID, localID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al consultar el stock", Detalles: err.Error()})
	}
	return c.JSON(out)
}

// Lotes godoc
// @Summary      Lotes de un producto
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        producto_id  query  string  true  "ID del producto"
// @Success      200  {array}   dto.LoteDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/lotes [get]
func (h *InventarioHandler) Lotes(c *fiber.Ctx) error {
	productoID := c.Query("producto_id")
	if productoID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "producto_id es requerido"})
	}
	list, err := h.consultaUC.ListarLotes(c.Context(), productoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al listar lotes", Detalles: err.Error()})
	}
	return c.JSON(list)
}

// Kardex godoc
// @Summary      Kardex de un lote en un local
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        lote_id   query  string  true   "ID del lote"
// @Param        local_id  query  string  true   "ID del local"
// @Param        limit     query  int     false  "tamaño de página (default 20)"
// @Param        offset    query  int     false  "desplazamiento"
// @Success      200  {array}   dto.MovimientoDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/inventario/kardex [get]
func (h *InventarioHandler) Kardex(c *fiber.Ctx) error {
	loteID := c.Query("lote_id")
	localID := c.Query("local_id")
	if localID == "" {
		localID = GetLocalID(c)
	}
	if loteID == "" || localID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "lote_id y local_id son requeridos"})
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "parámetros inválidos"})
	}
	page.DefaultPage()
	list, err := h.consultaUC.Kardex(c.Context(), loteID, localID, page)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al consultar el kardex", Detalles: err.Error()})
	}
	return c.JSON(list)
}

// Vencimientos godoc
// @Summary      Lotes por vencer
// @Description  Lotes con stock positivo que vencen dentro de la ventana de
//               días indicada (default 30).
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Param        dias  query  int  false  "ventana en días (default 30)"
// @Success      200  {array}  dto.VencimientoDTO
// @Router       /api/notificaciones/vencimientos [get]
func (h *InventarioHandler) Vencimientos(c *fiber.Ctx) error {
	dias, _ := strconv.Atoi(c.Query("dias"))
	list, err := h.notificacionUC.ProductosPorVencer(c.Context(), dias)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al consultar vencimientos", Detalles: err.Error()})
	}
	return c.JSON(list)
}

// StockBajo godoc
// @Summary      Productos con stock bajo mínimo
// @Tags         inventario
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.StockBajoDTO
// @Router       /api/notificaciones/stock-bajo [get]
func (h *InventarioHandler) StockBajo(c *fiber.Ctx) error {
	list, err := h.notificacionUC.StockBajo(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al consultar stock bajo", Detalles: err.Error()})
	}
	return c.JSON(list)
}
