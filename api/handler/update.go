package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/immerseindia/backend/api/transport"
	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/pkg/httpcontext"
	"github.com/immerseindia/backend/usecase/browse"
	"github.com/immerseindia/backend/usecase/updates"
)

type UpdateHandler struct {
	baseHandler
	manager *updates.Manager
	viewer  *browse.Viewer
	now     func() time.Time
}

func NewUpdateHandler(manager *updates.Manager, viewer *browse.Viewer, adapter *httpcontext.Adapter, logger *zap.Logger) *UpdateHandler {
	return &UpdateHandler{
		baseHandler: newBaseHandler(adapter, logger),
		manager:     manager,
		viewer:      viewer,
		now:         time.Now,
	}
}

// List handles GET /api/v1/updates. The feed is newest first and each entry
// carries its presentation hints and recency flag, so clients render the
// sidebar without re-deriving them.
func (h *UpdateHandler) List(ctx *fasthttp.RequestCtx) {
	now := h.now()
	feed := h.viewer.Updates()
	entries := make([]updateEntry, 0, len(feed))
	for _, u := range feed {
		entries = append(entries, updateEntry{
			Update:       u,
			Presentation: domain.PresentationForUpdateType(u.Type),
			IsRecent:     domain.IsRecent(u.CreatedAt, domain.RecencyThreshold, now),
			RelativeAge:  domain.RelativeAge(u.CreatedAt, now),
		})
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"updates": entries,
		"count":   len(entries),
	})
}

type updateEntry struct {
	domain.Update
	Presentation domain.UpdatePresentation `json:"presentation"`
	IsRecent     bool                      `json:"is_recent"`
	RelativeAge  string                    `json:"relative_age"`
}

// Create handles POST /api/v1/updates.
func (h *UpdateHandler) Create(ctx *fasthttp.RequestCtx) {
	upd, ok := h.decode(ctx)
	if !ok {
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.manager.Create(reqCtx, upd)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// Update handles PUT /api/v1/updates/{id}.
func (h *UpdateHandler) Update(ctx *fasthttp.RequestCtx) {
	upd, ok := h.decode(ctx)
	if !ok {
		return
	}
	upd.ID = pathID(ctx)
	if upd.ID == "" {
		h.respondInvalid(ctx, "missing update id")
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.manager.Update(reqCtx, upd)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/updates/{id}?confirm=true.
func (h *UpdateHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing update id")
		return
	}
	if !deleteConfirmed(ctx) {
		h.respondInvalid(ctx, "deletion requires confirm=true")
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.manager.Delete(reqCtx, id); err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, map[string]string{"id": id, "status": "deleted"})
}

func (h *UpdateHandler) decode(ctx *fasthttp.RequestCtx) (*domain.Update, bool) {
	var req transport.UpdateRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid JSON payload")
		return nil, false
	}
	return &domain.Update{
		ID:          req.ID,
		Type:        domain.UpdateType(req.Type),
		Title:       req.Title,
		Content:     req.Content,
		ExternalURL: transport.OptionalURL(req.ExternalURL),
	}, true
}
