package middleware

import (
	"errors"

	"github.com/gatherlyhq/gatherly-backend/internal/config"
	"github.com/gatherlyhq/gatherly-backend/internal/dto"
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
)

// JWTProtected gates mutating routes: 401 when no credential is presented,
// 403 when one is presented but invalid or expired. The token is accepted
// from the Authorization header or the session cookie.
func JWTProtected(cfg *config.Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:  jwtware.SigningKey{Key: []byte(cfg.JWTSecret)},
		TokenLookup: "header:Authorization,cookie:token",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if errors.Is(err, jwtware.ErrJWTMissingOrMalformed) {
				return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
					Error:   true,
					Message: "Unauthorized: missing credentials",
				})
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error:   true,
				Message: "Forbidden: invalid or expired token",
			})
		},
	})
}
