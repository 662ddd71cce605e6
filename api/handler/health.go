package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/immerseindia/backend/internal/infrastructure/monitor"
	"github.com/immerseindia/backend/pkg/httpcontext"
	"github.com/immerseindia/backend/usecase"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
	store   *usecase.Store
}

func NewHealthHandler(m *monitor.Monitor, store *usecase.Store, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     m,
		store:       store,
	}
}

// Health handles GET /health. Degraded dependencies report 503 but the
// response body still carries the full status.
func (h *HealthHandler) Health(ctx *fasthttp.RequestCtx) {
	status := h.monitor.GetStatus()
	catalog := h.store.Snapshot()

	code := http.StatusOK
	if !h.monitor.IsOnline() {
		code = http.StatusServiceUnavailable
	}

	h.respondSuccess(ctx, code, map[string]interface{}{
		"status": status,
		"catalog": map[string]int{
			"experiences": len(catalog.Experiences),
			"itineraries": len(catalog.Itineraries),
			"images":      len(catalog.Images),
			"updates":     len(catalog.Updates),
		},
	})
}
