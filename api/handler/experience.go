package handler

import (
	"encoding/json"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/immerseindia/backend/api/transport"
	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/pkg/httpcontext"
	"github.com/immerseindia/backend/usecase/browse"
	"github.com/immerseindia/backend/usecase/experience"
)

type ExperienceHandler struct {
	baseHandler
	manager *experience.Manager
	viewer  *browse.Viewer
}

func NewExperienceHandler(manager *experience.Manager, viewer *browse.Viewer, adapter *httpcontext.Adapter, logger *zap.Logger) *ExperienceHandler {
	return &ExperienceHandler{
		baseHandler: newBaseHandler(adapter, logger),
		manager:     manager,
		viewer:      viewer,
	}
}

// List handles GET /api/v1/experiences?region=.
func (h *ExperienceHandler) List(ctx *fasthttp.RequestCtx) {
	region, err := regionSelection(ctx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	items := h.viewer.Experiences(region)
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"experiences": items,
		"count":       len(items),
	})
}

// Create handles POST /api/v1/experiences.
func (h *ExperienceHandler) Create(ctx *fasthttp.RequestCtx) {
	exp, ok := h.decode(ctx)
	if !ok {
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.manager.Create(reqCtx, exp)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// Update handles PUT /api/v1/experiences/{id}.
func (h *ExperienceHandler) Update(ctx *fasthttp.RequestCtx) {
	exp, ok := h.decode(ctx)
	if !ok {
		return
	}
	exp.ID = pathID(ctx)
	if exp.ID == "" {
		h.respondInvalid(ctx, "missing experience id")
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.manager.Update(reqCtx, exp)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/experiences/{id}?confirm=true.
func (h *ExperienceHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing experience id")
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

func (h *ExperienceHandler) decode(ctx *fasthttp.RequestCtx) (*domain.Experience, bool) {
	var req transport.ExperienceRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid JSON payload")
		return nil, false
	}
	return &domain.Experience{
		ID:          req.ID,
		Destination: req.Destination,
		Region:      domain.Region(req.Region),
		Title:       req.Title,
		Description: req.Description,
		Highlights:  req.Highlights,
		ImageURL:    transport.OptionalURL(req.ImageURL),
	}, true
}
