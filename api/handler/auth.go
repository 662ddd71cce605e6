package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/immerseindia/backend/api/transport"
	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/pkg/httpcontext"
	"github.com/immerseindia/backend/usecase/auth"
	"github.com/immerseindia/backend/usecase/dashboard"
)

type AuthHandler struct {
	baseHandler
	auth   *auth.UseCase
	shells *dashboard.Registry
}

func NewAuthHandler(uc *auth.UseCase, shells *dashboard.Registry, adapter *httpcontext.Adapter, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		auth:        uc,
		shells:      shells,
	}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	var req transport.LoginRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid JSON payload")
		return
	}
	if req.Email == "" || req.Password == "" {
		h.respondInvalid(ctx, "email and password are required")
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, token, err := h.auth.Login(reqCtx, req.Email, req.Password)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"token": token,
		"user":  user,
	})
}

// Logout handles POST /api/v1/auth/logout. It revokes the session and drops
// the dashboard shell, so the next login starts fresh.
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	sessionID := string(ctx.Request.Header.Peek("X-Session-ID"))
	if sessionID == "" {
		h.respondError(ctx, domain.ErrUnauthorized)
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.auth.Logout(reqCtx, sessionID); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.shells.Drop(sessionID)

	h.respondSuccess(ctx, http.StatusOK, map[string]string{"status": "logged out"})
}
