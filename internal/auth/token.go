package auth

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/notes-service/internal/domain"
)

// DefaultTokenLifetime applies when the configured lifetime cannot be parsed.
const DefaultTokenLifetime = 7 * 24 * time.Hour

// displayZone is the fixed timezone for the human-readable expiry string
// returned alongside issued tokens. Display only, never compared against.
var displayZone = time.FixedZone("WIB", 7*60*60)

var (
	// ErrSigningFailure indicates an internal failure while signing a token.
	ErrSigningFailure = errors.New("token signing failed")
	// ErrSignatureInvalid indicates the signature does not match the server secret.
	ErrSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenMalformed indicates the token string cannot be parsed.
	ErrTokenMalformed = errors.New("token malformed")
	// ErrTokenExpired indicates the embedded expiry is in the past.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenInvalid covers every other validation failure.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims is the payload signed into access tokens. The subject stays numeric
// on the wire, so jwt.Claims is implemented by hand instead of embedding
// jwt.RegisteredClaims (whose Subject is a string).
type Claims struct {
	Subject   uint64      `json:"sub"`
	Role      domain.Role `json:"role"`
	ExpiresAt int64       `json:"exp"`
}

func (c *Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c *Claims) GetIssuedAt() (*jwt.NumericDate, error) { return nil, nil }

func (c *Claims) GetNotBefore() (*jwt.NumericDate, error) { return nil, nil }

func (c *Claims) GetIssuer() (string, error) { return "", nil }

func (c *Claims) GetSubject() (string, error) {
	return strconv.FormatUint(c.Subject, 10), nil
}

func (c *Claims) GetAudience() (jwt.ClaimStrings, error) { return nil, nil }

// TokenManager issues and validates HS256 access tokens.
type TokenManager struct {
	secret   []byte
	lifetime string
}

// NewTokenManager builds a manager around the process-wide signing secret and
// the configured lifetime string (e.g. "168h").
func NewTokenManager(secret, lifetime string) *TokenManager {
	return &TokenManager{secret: []byte(secret), lifetime: lifetime}
}

// ParseLifetime interprets a configured token lifetime. Go duration syntax
// is accepted, plus a whole-day "Nd" suffix (e.g. "30d") that
// time.ParseDuration does not support.
func ParseLifetime(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.Atoi(days)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("invalid day count %q", s)
		}
		return time.Duration(n) * 24 * time.Hour, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("non-positive lifetime %q", s)
	}
	return d, nil
}

// Lifetime returns the effective token lifetime. An unparseable or
// non-positive configured value falls back to DefaultTokenLifetime so a bad
// setting degrades logins instead of breaking them.
func (tm *TokenManager) Lifetime() time.Duration {
	d, err := ParseLifetime(tm.lifetime)
	if err != nil {
		return DefaultTokenLifetime
	}
	return d
}

// Issue signs a token for the subject. It returns the signed token, the
// expiry instant and a display string rendered in WIB for clients.
func (tm *TokenManager) Issue(subject uint64, role domain.Role) (string, time.Time, string, error) {
	expiresAt := time.Now().Add(tm.Lifetime())
	claims := &Claims{
		Subject:   subject,
		Role:      role,
		ExpiresAt: expiresAt.Unix(),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, "", fmt.Errorf("%w: %v", ErrSigningFailure, err)
	}

	display := expiresAt.In(displayZone).Format("2006-01-02 15:04:05 MST")
	return signed, expiresAt, display, nil
}

// Parse verifies the signature and structure of a token and returns its
// claims. Only HS256 is accepted; tokens signed with any other algorithm are
// rejected before the signature is checked.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrSignatureInvalid
		default:
			return nil, ErrTokenInvalid
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenInvalid
	}
	if !claims.Role.Valid() {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
