package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/stockeye/estoque-api/internal/application/dto"
	"github.com/stockeye/estoque-api/pkg/jwt"
)

// Locals keys para o operador autenticado no Fiber.
const (
	LocalOperatorID = "operator_id"
	LocalActorName  = "actor_name"
)

// AuthMiddleware valida o Bearer Token JWT e extrai OperatorID e ActorName
// para c.Locals. O nome do operador vira o ator das movimentações.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header obrigatório"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		operatorID, actorName, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalOperatorID, operatorID)
		c.Locals(LocalActorName, actorName)
		return c.Next()
	}
}

// GetOperatorID devolve o OperatorID do contexto (depois do middleware de auth).
func GetOperatorID(c *fiber.Ctx) string {
	v := c.Locals(LocalOperatorID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetActor devolve o nome do operador autenticado (ator das movimentações).
func GetActor(c *fiber.Ctx) string {
	v := c.Locals(LocalActorName)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
