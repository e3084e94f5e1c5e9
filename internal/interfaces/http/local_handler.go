package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/internal/application/usecase"
	"github.com/dquintero/farmacia-erp/internal/domain"
)

// LocalHandler maneja las sucursales de la cadena (protegido).
type LocalHandler struct {
	uc *usecase.LocalUseCase
}

// NewLocalHandler construye el handler.
func NewLocalHandler(uc *usecase.LocalUseCase) *LocalHandler {
	return &LocalHandler{uc: uc}
}

type crearLocalRequest struct {
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Telefono  string `json:"telefono"`
}

// Create godoc
// @Summary      Crear local
// @Tags         locales
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Success      201  {object}  entity.Local
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/locales [post]
func (h *LocalHandler) Create(c *fiber.Ctx) error {
	var in crearLocalRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	local, err := h.uc.Crear(c.Context(), in.Nombre, in.Direccion, in.Telefono)
	if err != nil {
		if errors.Is(err, domain.ErrEntradaInvalida) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "nombre es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al crear el local", Detalles: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(local)
}

// List godoc
// @Summary      Listar locales
// @Tags         locales
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Local
// @Router       /api/locales [get]
func (h *LocalHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.Listar(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al listar locales", Detalles: err.Error()})
	}
	return c.JSON(list)
}

// GetByID godoc
// @Summary      Consultar local
// @Tags         locales
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del local"
// @Success      200  {object}  entity.Local
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/locales/{id} [get]
func (h *LocalHandler) GetByID(c *fiber.Ctx) error {
	local, err := h.uc.ObtenerPorID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "local no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: "Error al consultar el local", Detalles: err.Error()})
	}
	return c.JSON(local)
}
