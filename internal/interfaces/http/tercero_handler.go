package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/application/usecase"
	"github.com/dquintero/farmacia-erp/internal/domain"
)

// TerceroHandler maneja proveedores y clientes (protegido).
type TerceroHandler struct {
	uc *usecase.TerceroUseCase
}

// NewTerceroHandler construye el handler.
func NewTerceroHandler(uc *usecase.TerceroUseCase) *TerceroHandler {
	return &TerceroHandler{uc: uc}
}

type crearProveedorRequest struct {
	Nombre   string `json:"nombre"`
	NIT      string `json:"nit"`
	Telefono string `json:"telefono"`
	Email    string `json:"email"`
}

type crearClienteRequest struct {
	Nombre    string `json:"nombre"`
	Documento string `json:"documento"`
	Telefono  string `json:"telefono"`
	Email     string `json:"email"`
}

// CrearProveedor godoc
// @Summary      Crear proveedor
// @Tags         terceros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Proveedor
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/proveedores [post]
func (h *TerceroHandler) CrearProveedor(c *fiber.Ctx) error {
	var in crearProveedorRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	p, err := h.uc.CrearProveedor(c.Context(), in.Nombre, in.NIT, in.Telefono, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre y nit son requeridos"})
		}
		if errors.Is(err, domain.ErrDuplicado) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: "el proveedor ya está registrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear el proveedor", Detalles: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// ListarProveedores godoc
// @Summary      Listar proveedores
// @Tags         terceros
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Proveedor
// @Router       /api/proveedores [get]
func (h *TerceroHandler) ListarProveedores(c *fiber.Ctx) error {
	list, err := h.uc.ListarProveedores(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al listar proveedores", Detalles: err.Error()})
	}
	return c.JSON(list)
}

// CrearCliente godoc
// @Summary      Registrar cliente
// @Tags         terceros
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Cliente
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/clientes [post]
func (h *TerceroHandler) CrearCliente(c *fiber.Ctx) error {
	var in crearClienteRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	cliente, err := h.uc.CrearCliente(c.Context(), in.Nombre, in.Documento, in.Telefono, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al registrar el cliente", Detalles: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(cliente)
}

// ListarClientes godoc
// @Summary      Listar clientes
// @Tags         terceros
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Cliente
// @Router       /api/clientes [get]
func (h *TerceroHandler) ListarClientes(c *fiber.Ctx) error {
	list, err := h.uc.ListarClientes(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al listar clientes", Detalles: err.Error()})
	}
	return c.JSON(list)
}
