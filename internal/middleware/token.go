package middleware

import (
	"strings"

	jwtPkg "TutelaGolang/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
)

const (
	ManagementTokenSecret = "JWT_MANAGEMENT_TOKEN_SECRET"

	// Scope required for tracker management operations (reset).
	ScopeManagement = "management"
)

type tokenMiddleware struct {
}

func newTokenMiddleware() *tokenMiddleware {
	return &tokenMiddleware{}
}

// NewManagementTokenMiddleware guards the administrative endpoints. A valid
// HS256 token with the management scope is required; everything else is a
// plain 401.
func (m *middleware) NewManagementTokenMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")

	if authHeader == "" {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": "Authorization header is missing",
		}).Warn("Authorization header check")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, management token invalid or expired",
		})
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"error": "Authorization header format is invalid",
		}).Warn("Authorization header check")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, management token invalid or expired",
		})
	}

	managementToken, err := jwtPkg.VerifyTokenHeader(ctx, ManagementTokenSecret)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"error": err.Error(),
		}).Warn("Token verification failed")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, management token invalid or expired",
		})
	}

	claims, ok := managementToken.Claims.(jwt.MapClaims)
	if !ok {
		m.log.WithFields(logrus.Fields{
			"error": "Invalid token claims",
		}).Warn("Token claims check")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized, management token invalid or expired",
		})
	}

	scope, _ := claims["scope"].(string)
	if scope != ScopeManagement {
		m.log.WithFields(logrus.Fields{
			"scope": scope,
			"error": "Token is missing the management scope",
		}).Warn("Token claims check")
		return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"error": "Forbidden, management scope required",
		})
	}

	ctx.Locals("management_subject", claims["sub"])

	m.log.Info("Management authentication successful")
	return ctx.Next()
}
