package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/dquintero/farmacia-erp/internal/application/dto"
	"github.com/dquintero/farmacia-erp/pkg/jwt"
)

// Locals keys para los claims del empleado en Fiber.
const (
	LocalEmpleadoID = "empleado_id"
	LocalLocalID    = "local_id"
	LocalRol        = "rol"
)

// AuthMiddleware valida el Bearer Token JWT y extrae empleado, local y rol a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token vacío"})
		}
		empleadoID, localID, rol, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: "token inválido o expirado"})
		}
		c.Locals(LocalEmpleadoID, empleadoID)
		c.Locals(LocalLocalID, localID)
		c.Locals(LocalRol, rol)
		return c.Next()
	}
}

// RequireRol autoriza solo a empleados con alguno de los roles indicados.
// Debe ir después de AuthMiddleware.
func RequireRol(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rol := GetRol(c)
		for _, r := range roles {
			if rol == r {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "acceso denegado para el rol"})
	}
}

// GetEmpleadoID devuelve el EmpleadoID del contexto (después del middleware de auth).
func GetEmpleadoID(c *fiber.Ctx) string {
	return localString(c, LocalEmpleadoID)
}

// GetLocalID devuelve el LocalID del contexto (después del middleware de auth).
func GetLocalID(c *fiber.Ctx) string {
	return localString(c, LocalLocalID)
}

// GetRol devuelve el rol del contexto (después del middleware de auth).
func GetRol(c *fiber.Ctx) string {
	return localString(c, LocalRol)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
