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
	"github.com/immerseindia/backend/usecase/itinerary"
)

type ItineraryHandler struct {
	baseHandler
	manager *itinerary.Manager
	viewer  *browse.Viewer
}

func NewItineraryHandler(manager *itinerary.Manager, viewer *browse.Viewer, adapter *httpcontext.Adapter, logger *zap.Logger) *ItineraryHandler {
	return &ItineraryHandler{
		baseHandler: newBaseHandler(adapter, logger),
		manager:     manager,
		viewer:      viewer,
	}
}

// List handles GET /api/v1/itineraries?region=.
func (h *ItineraryHandler) List(ctx *fasthttp.RequestCtx) {
	region, err := regionSelection(ctx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	items := h.viewer.Itineraries(region)
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"itineraries": items,
		"count":       len(items),
	})
}

// Create handles POST /api/v1/itineraries.
func (h *ItineraryHandler) Create(ctx *fasthttp.RequestCtx) {
	it, ok := h.decode(ctx)
	if !ok {
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.manager.Create(reqCtx, it)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// Update handles PUT /api/v1/itineraries/{id}.
func (h *ItineraryHandler) Update(ctx *fasthttp.RequestCtx) {
	it, ok := h.decode(ctx)
	if !ok {
		return
	}
	it.ID = pathID(ctx)
	if it.ID == "" {
		h.respondInvalid(ctx, "missing itinerary id")
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.manager.Update(reqCtx, it)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/itineraries/{id}?confirm=true.
func (h *ItineraryHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing itinerary id")
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

func (h *ItineraryHandler) decode(ctx *fasthttp.RequestCtx) (*domain.Itinerary, bool) {
	var req transport.ItineraryRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid JSON payload")
		return nil, false
	}
	days := make([]domain.ItineraryDay, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, domain.ItineraryDay{Day: d.Day, Activities: d.Activities})
	}
	return &domain.Itinerary{
		ID:          req.ID,
		Destination: req.Destination,
		Region:      domain.Region(req.Region),
		Title:       req.Title,
		Duration:    req.Duration,
		Days:        days,
		ImageURL:    transport.OptionalURL(req.ImageURL),
	}, true
}
