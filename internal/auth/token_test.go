package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/spec-kit/notes-service/internal/domain"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", "1h")

	token, expiresAt, display, err := tm.Issue(42, domain.RoleUser)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if until := time.Until(expiresAt); until < 55*time.Minute || until > 65*time.Minute {
		t.Fatalf("unexpected expiry distance: %v", until)
	}
	if !strings.HasSuffix(display, "WIB") {
		t.Fatalf("display expiry not in WIB: %q", display)
	}

	claims, err := tm.Parse(token)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if claims.Subject != 42 {
		t.Fatalf("unexpected subject: %d", claims.Subject)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
	if claims.ExpiresAt != expiresAt.Unix() {
		t.Fatalf("expiry mismatch: %d vs %d", claims.ExpiresAt, expiresAt.Unix())
	}
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, _, _, err := NewTokenManager("secret-a", "1h").Issue(7, domain.RoleAdmin)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := NewTokenManager("secret-b", "1h").Parse(token)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Fatalf("expected ErrSignatureInvalid, got %v", err)
	}
	if claims != nil {
		t.Fatalf("expected no claims, got %+v", claims)
	}
}

func TestParseRejectsMalformedToken(t *testing.T) {
	_, err := NewTokenManager("test-secret", "1h").Parse("not-a-token")
	if !errors.Is(err, ErrTokenMalformed) {
		t.Fatalf("expected ErrTokenMalformed, got %v", err)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "1h")
	token := signExpired(t, "test-secret", time.Now().Add(-time.Minute))

	_, err := tm.Parse(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseRejectsOtherSigningAlgorithms(t *testing.T) {
	claims := &Claims{Subject: 1, Role: domain.RoleUser, ExpiresAt: time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokenManager("test-secret", "1h").Parse(token); err == nil {
		t.Fatal("expected HS512 token to be rejected")
	}
}

func TestParseRejectsUnknownRole(t *testing.T) {
	claims := &Claims{Subject: 1, Role: "superuser", ExpiresAt: time.Now().Add(time.Hour).Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err := NewTokenManager("test-secret", "1h").Parse(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestLifetimeFallsBackOnBadConfig(t *testing.T) {
	for _, lifetime := range []string{"garbage", "", "-5m", "1w", "0d", "1.5d"} {
		tm := NewTokenManager("test-secret", lifetime)
		if got := tm.Lifetime(); got != DefaultTokenLifetime {
			t.Fatalf("lifetime %q: expected fallback %v, got %v", lifetime, DefaultTokenLifetime, got)
		}

		_, expiresAt, _, err := tm.Issue(1, domain.RoleUser)
		if err != nil {
			t.Fatalf("lifetime %q: Issue: %v", lifetime, err)
		}
		if until := time.Until(expiresAt); until < DefaultTokenLifetime-time.Minute || until > DefaultTokenLifetime+time.Minute {
			t.Fatalf("lifetime %q: expected ~7d expiry, got %v", lifetime, until)
		}
	}
}

func TestLifetimeParsesConfiguredValue(t *testing.T) {
	if got := NewTokenManager("test-secret", "168h").Lifetime(); got != 168*time.Hour {
		t.Fatalf("expected 168h, got %v", got)
	}
}

func TestLifetimeAcceptsDaySuffix(t *testing.T) {
	for lifetime, want := range map[string]time.Duration{
		"7d":  7 * 24 * time.Hour,
		"30d": 30 * 24 * time.Hour,
	} {
		if got := NewTokenManager("test-secret", lifetime).Lifetime(); got != want {
			t.Fatalf("lifetime %q: expected %v, got %v", lifetime, want, got)
		}
	}
}

// signExpired produces a structurally valid, correctly signed token whose
// expiry is already past.
func signExpired(t *testing.T, secret string, expiresAt time.Time) string {
	t.Helper()
	claims := &Claims{Subject: 1, Role: domain.RoleUser, ExpiresAt: expiresAt.Unix()}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return token
}
