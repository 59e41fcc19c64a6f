package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/resto-pos/internal/application/dto"
	"github.com/tu-usuario/resto-pos/internal/domain/entity"
)

// Header con el rol de la cuenta que actúa. Lo inyecta el gateway/BFF de
// confianza; la autenticación en sí queda fuera de este servicio.
const HeaderAccountRole = "X-Account-Role"

// Local key para el rol en Fiber.
const LocalRole = "role"

// RoleMiddleware extrae el rol del header y lo valida contra el enum.
func RoleMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := c.Get(HeaderAccountRole)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "header " + HeaderAccountRole + " requerido"})
		}
		if !entity.ValidRole(role) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_ROLE", Message: "rol desconocido"})
		}
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireView autoriza el acceso si el conjunto de capacidades del rol
// incluye la vista indicada. El gating de visibilidad vive en este borde,
// nunca dentro de la lógica de mutación del núcleo.
func RequireView(view string) fiber.Handler {
	perms := entity.DefaultRolePermissions()
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "rol no presente en el contexto"})
		}
		p, ok := entity.PermissionForRole(perms, role)
		if !ok || !p.HasView(view) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "el rol no tiene acceso a esta vista"})
		}
		return c.Next()
	}
}

// GetRole devuelve el rol del contexto (después de RoleMiddleware).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
