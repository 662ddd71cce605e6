package middleware

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"

	"github.com/immerseindia/backend/domain"
)

const testSecret = "test-secret"

type staticSessions map[string]*domain.Session

func (s staticSessions) GetSession(ctx context.Context, sessionID string) (*domain.Session, error) {
	if session, ok := s[sessionID]; ok {
		return session, nil
	}
	return nil, domain.ErrSessionNotFound
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	return token
}

func liveToken(t *testing.T, role string) (string, staticSessions) {
	t.Helper()
	sessions := staticSessions{
		"s-1": {ID: "s-1", UserID: "u-1", Role: domain.Role(role), ExpiresAt: time.Now().Add(time.Hour)},
	}
	token := signToken(t, jwt.MapClaims{
		"user_id":    "u-1",
		"role":       role,
		"session_id": "s-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})
	return token, sessions
}

func TestSessionAuthForwardsIdentity(t *testing.T) {
	token, sessions := liveToken(t, "admin")

	var sawUser, sawRole, sawSession string
	handler := SessionAuth(testSecret, sessions, nil)(func(ctx *fasthttp.RequestCtx) {
		sawUser = string(ctx.Request.Header.Peek("X-User-ID"))
		sawRole = string(ctx.Request.Header.Peek("X-User-Role"))
		sawSession = string(ctx.Request.Header.Peek("X-Session-ID"))
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("Authorization", "Bearer "+token)
	handler(ctx)

	if sawUser != "u-1" || sawRole != "admin" || sawSession != "s-1" {
		t.Fatalf("identity headers wrong: %q %q %q", sawUser, sawRole, sawSession)
	}
}

func TestSessionAuthRejectsMissingToken(t *testing.T) {
	handler := SessionAuth(testSecret, staticSessions{}, nil)(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler must not run without a token")
	})

	ctx := &fasthttp.RequestCtx{}
	handler(ctx)
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestSessionAuthRejectsWrongSignature(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":    "u-1",
		"session_id": "s-1",
		"exp":        time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("other-secret"))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}

	handler := SessionAuth(testSecret, staticSessions{}, nil)(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler must not run with a forged token")
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("Authorization", "Bearer "+token)
	handler(ctx)
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestSessionAuthRejectsRevokedSession(t *testing.T) {
	// Valid signature, but the session was logged out.
	token := signToken(t, jwt.MapClaims{
		"user_id":    "u-1",
		"role":       "user",
		"session_id": "gone",
		"exp":        time.Now().Add(time.Hour).Unix(),
	})

	handler := SessionAuth(testSecret, staticSessions{}, nil)(func(ctx *fasthttp.RequestCtx) {
		t.Fatal("handler must not run after logout")
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("Authorization", "Bearer "+token)
	handler(ctx)
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Fatalf("status = %d", ctx.Response.StatusCode())
	}
}

func TestRequireAdmin(t *testing.T) {
	ran := false
	handler := RequireAdmin(nil)(func(ctx *fasthttp.RequestCtx) { ran = true })

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("X-User-Role", "admin")
	handler(ctx)
	if !ran {
		t.Fatal("admin request should pass")
	}

	ctx = &fasthttp.RequestCtx{}
	ctx.Request.Header.Set("X-User-Role", "user")
	handler(ctx)
	if ctx.Response.StatusCode() != fasthttp.StatusForbidden {
		t.Fatalf("non-admin status = %d", ctx.Response.StatusCode())
	}
}
