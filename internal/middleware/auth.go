package middleware

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/immerseindia/backend/domain"
)

// SessionResolver checks that a token's session is still live, so a logout
// is terminal even for tokens that have not expired yet.
type SessionResolver interface {
	GetSession(ctx context.Context, sessionID string) (*domain.Session, error)
}

// SessionAuth validates the bearer token and resolves its session. On
// success the user id, role and session id are forwarded as headers for
// downstream handlers.
func SessionAuth(secret string, sessions SessionResolver, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			tokenString := extractToken(ctx)
			if tokenString == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, domain.ErrUnauthorized
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				logger.Warn("invalid jwt token", zap.Error(err))
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			userID, _ := claims["user_id"].(string)
			role, _ := claims["role"].(string)
			sessionID, _ := claims["session_id"].(string)
			if userID == "" || sessionID == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			if sessions != nil {
				checkCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
				_, err := sessions.GetSession(checkCtx, sessionID)
				cancel()
				if err != nil {
					ctx.SetStatusCode(fasthttp.StatusUnauthorized)
					return
				}
			}

			ctx.Request.Header.Set("X-User-ID", userID)
			ctx.Request.Header.Set("X-User-Role", role)
			ctx.Request.Header.Set("X-Session-ID", sessionID)

			next(ctx)
		}
	}
}

// RequireAdmin gates mutating routes behind the admin role. Runs after
// SessionAuth.
func RequireAdmin(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			role := string(ctx.Request.Header.Peek("X-User-Role"))
			if domain.Role(role) != domain.RoleAdmin {
				logger.Warn("admin route denied", zap.String("role", role))
				ctx.SetStatusCode(fasthttp.StatusForbidden)
				return
			}
			next(ctx)
		}
	}
}

func extractToken(ctx *fasthttp.RequestCtx) string {
	header := string(ctx.Request.Header.Peek("Authorization"))
	if header == "" {
		return ""
	}
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return header
}
