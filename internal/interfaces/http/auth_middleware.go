package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/milsabores/pasteleria-api/internal/application/dto"
	"github.com/milsabores/pasteleria-api/pkg/token"
)

// Locals keys para la identidad del usuario autenticado en Fiber.
const (
	LocalIdentity = "identity"
	LocalUserID   = "user_id"
	LocalEmail    = "email"
	LocalRole     = "role"
)

// cookieName nombre de la cookie alternativa al header Authorization.
const cookieName = "token"

// extractToken busca el token primero en el header Authorization (Bearer) y,
// si el header no entrega uno (ausente o con otro formato), en la cookie
// "token".
func extractToken(c *fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			if tok := strings.TrimSpace(parts[1]); tok != "" {
				return tok
			}
		}
	}
	return c.Cookies(cookieName)
}

func setIdentity(c *fiber.Ctx, id token.Identity) {
	c.Locals(LocalIdentity, id)
	c.Locals(LocalUserID, id.ID)
	c.Locals(LocalEmail, id.Email)
	c.Locals(LocalRole, id.Role)
}

// AuthMiddleware valida el JWT (header Bearer o cookie) y deja la identidad
// en c.Locals. Un secret sin configurar es un error del servidor, no del
// cliente: responde 500 antes de mirar el token.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if jwtSecret == "" {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "SERVER_CONFIG", Message: "Error de configuración del servidor"})
		}
		tokenString := extractToken(c)
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Token no proporcionado"})
		}
		identity, err := token.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "Token inválido o expirado"})
		}
		setIdentity(c, identity)
		return c.Next()
	}
}

// OptionalAuth intenta extraer la identidad pero nunca rechaza: si no hay
// token o es inválido la petición continúa anónima. Lo usa el checkout, que
// acepta compras de invitados.
func OptionalAuth(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := extractToken(c)
		if jwtSecret != "" && tokenString != "" {
			if identity, err := token.Parse(jwtSecret, tokenString); err == nil {
				setIdentity(c, identity)
			}
		}
		return c.Next()
	}
}

// RequireRole autoriza por rol después de AuthMiddleware. Sin identidad
// responde 401. Una lista vacía solo exige autenticación, incluso para tokens
// sin rol; con lista, una identidad sin rol responde 401 (token legacy
// incompleto) y un rol fuera de la lista responde 403.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Locals(LocalIdentity) == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "Autenticación requerida"})
		}
		if len(roles) == 0 {
			return c.Next()
		}
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "El token no incluye rol"})
		}
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "No tienes permisos para esta acción"})
	}
}

// GetIdentity devuelve la identidad del contexto y si está presente.
func GetIdentity(c *fiber.Ctx) (token.Identity, bool) {
	v := c.Locals(LocalIdentity)
	if v == nil {
		return token.Identity{}, false
	}
	id, ok := v.(token.Identity)
	return id, ok
}

// GetUserID devuelve el ID de usuario del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	v := c.Locals(LocalEmail)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devuelve el rol del contexto (después del middleware de auth).
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
