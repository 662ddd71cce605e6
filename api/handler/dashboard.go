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
	"github.com/immerseindia/backend/usecase/dashboard"
)

// DashboardHandler exposes the per-session dashboard shell: which section is
// active, the region filter and the last submitted search query. Every
// response carries both the shell state and the content it selects.
type DashboardHandler struct {
	baseHandler
	shells *dashboard.Registry
	viewer *browse.Viewer
}

func NewDashboardHandler(shells *dashboard.Registry, viewer *browse.Viewer, adapter *httpcontext.Adapter, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		baseHandler: newBaseHandler(adapter, logger),
		shells:      shells,
		viewer:      viewer,
	}
}

// State handles GET /api/v1/dashboard.
func (h *DashboardHandler) State(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}
	state := h.shells.Shell(sessionID).State()
	h.respond(ctx, state)
}

// SetSection handles PUT /api/v1/dashboard/section.
func (h *DashboardHandler) SetSection(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}
	var req transport.SectionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid JSON payload")
		return
	}

	state, err := h.shells.Shell(sessionID).SetSection(dashboard.Section(req.Section))
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respond(ctx, state)
}

// SetRegion handles PUT /api/v1/dashboard/region.
func (h *DashboardHandler) SetRegion(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}
	var req transport.RegionRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid JSON payload")
		return
	}
	region, err := domain.ParseRegionSelection(req.Region)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	state, err := h.shells.Shell(sessionID).SetRegion(region)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respond(ctx, state)
}

// SubmitSearch handles POST /api/v1/dashboard/search. A non-empty query
// moves the shell into the search section; an empty one is rejected and the
// shell stays where it was.
func (h *DashboardHandler) SubmitSearch(ctx *fasthttp.RequestCtx) {
	sessionID := h.sessionID(ctx)
	if sessionID == "" {
		return
	}
	var req transport.SearchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid JSON payload")
		return
	}

	state, err := h.shells.Shell(sessionID).SubmitSearch(req.Query)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respond(ctx, state)
}

// respond renders the shell state plus the content the state selects: the
// active section's region-filtered collection, or the scoped search result.
func (h *DashboardHandler) respond(ctx *fasthttp.RequestCtx, state dashboard.State) {
	payload := map[string]interface{}{
		"state":  state,
		"region": domain.PresentationForRegion(state.Region),
	}

	switch state.Section {
	case dashboard.SectionExperiences:
		payload["experiences"] = h.viewer.Experiences(state.Region)
	case dashboard.SectionItineraries:
		payload["itineraries"] = h.viewer.Itineraries(state.Region)
	case dashboard.SectionImages:
		payload["images"] = h.viewer.Images(state.Region, domain.OrientationAll)
	case dashboard.SectionSearch:
		payload["results"] = h.viewer.SearchScoped(state.Region, state.Query)
	}
	payload["updates"] = h.viewer.Updates()

	h.respondSuccess(ctx, http.StatusOK, payload)
}
