package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	apperrors "github.com/spec-kit/notes-service/pkg/util"
)

const (
	claimsKey   = "auth_claims"
	rawTokenKey = "auth_raw_token"
)

// Middleware validates bearer tokens on protected routes.
type Middleware struct {
	tokens    *TokenManager
	blacklist TokenBlacklist
	logger    *zap.Logger
}

// NewMiddleware constructs the access guard.
func NewMiddleware(tokens *TokenManager, blacklist TokenBlacklist, logger *zap.Logger) *Middleware {
	return &Middleware{tokens: tokens, blacklist: blacklist, logger: logger}
}

// Handle enforces authentication. Checks run in a fixed order: header
// extraction, revocation lookup, signature validation, then an independent
// expiry comparison. The first failure terminates the request.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	header := c.Get(fiber.HeaderAuthorization)
	if header == "" {
		return apperrors.NewMissingToken()
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return apperrors.NewMissingToken()
	}
	raw := parts[1]

	// The revocation lookup fails closed: an unreachable store rejects the
	// request rather than letting a logged-out token through.
	revoked, err := m.blacklist.Exists(c.UserContext(), raw)
	if err != nil {
		m.logger.Error("revocation store unavailable", zap.Error(err))
		return apperrors.NewInvalidToken()
	}
	if revoked {
		return apperrors.NewInvalidToken()
	}

	claims, err := m.tokens.Parse(raw)
	if err != nil {
		if errors.Is(err, ErrTokenExpired) {
			return apperrors.NewTokenExpired()
		}
		return apperrors.NewInvalidToken()
	}

	// The codec already rejects expired tokens. This re-check stands on its
	// own so a codec change cannot silently drop expiry enforcement.
	if claims.ExpiresAt < time.Now().Unix() {
		return apperrors.NewTokenExpired()
	}

	c.Locals(claimsKey, claims)
	c.Locals(rawTokenKey, raw)
	return c.Next()
}

// ClaimsFromContext retrieves the claims attached by Handle.
func ClaimsFromContext(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(claimsKey).(*Claims)
	return claims, ok
}

// RawTokenFromContext retrieves the bearer token attached by Handle.
func RawTokenFromContext(c *fiber.Ctx) (string, bool) {
	raw, ok := c.Locals(rawTokenKey).(string)
	return raw, ok
}
