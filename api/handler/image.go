package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/immerseindia/backend/api/transport"
	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/internal/services"
	"github.com/immerseindia/backend/pkg/httpcontext"
	"github.com/immerseindia/backend/usecase/browse"
	"github.com/immerseindia/backend/usecase/image"
)

type ImageHandler struct {
	baseHandler
	manager *image.Manager
	viewer  *browse.Viewer
	fetcher *services.ImageFetcher
}

func NewImageHandler(manager *image.Manager, viewer *browse.Viewer, fetcher *services.ImageFetcher, adapter *httpcontext.Adapter, logger *zap.Logger) *ImageHandler {
	return &ImageHandler{
		baseHandler: newBaseHandler(adapter, logger),
		manager:     manager,
		viewer:      viewer,
		fetcher:     fetcher,
	}
}

// List handles GET /api/v1/images?region=&orientation=.
func (h *ImageHandler) List(ctx *fasthttp.RequestCtx) {
	region, err := regionSelection(ctx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	orientation, err := orientationSelection(ctx)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	items := h.viewer.Images(region, orientation)
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"images": items,
		"count":  len(items),
	})
}

// Create handles POST /api/v1/images.
func (h *ImageHandler) Create(ctx *fasthttp.RequestCtx) {
	img, ok := h.decode(ctx)
	if !ok {
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	created, err := h.manager.Create(reqCtx, img)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusCreated, created)
}

// Update handles PUT /api/v1/images/{id}.
func (h *ImageHandler) Update(ctx *fasthttp.RequestCtx) {
	img, ok := h.decode(ctx)
	if !ok {
		return
	}
	img.ID = pathID(ctx)
	if img.ID == "" {
		h.respondInvalid(ctx, "missing image id")
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	updated, err := h.manager.Update(reqCtx, img)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	h.respondSuccess(ctx, http.StatusOK, updated)
}

// Delete handles DELETE /api/v1/images/{id}?confirm=true.
func (h *ImageHandler) Delete(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing image id")
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

// Download handles GET /api/v1/images/{id}/download. The image bytes are
// fetched from the source URL and streamed back as an attachment named
// <destination>-<id>.jpg.
func (h *ImageHandler) Download(ctx *fasthttp.RequestCtx) {
	id := pathID(ctx)
	if id == "" {
		h.respondInvalid(ctx, "missing image id")
		return
	}

	reqCtx, cancel := h.requestContext(ctx)
	defer cancel()

	img, err := h.manager.Get(reqCtx, id)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	body, err := h.fetcher.Fetch(img.URL)
	if err != nil {
		h.logger.Warn("image fetch failed",
			zap.String("image_id", img.ID),
			zap.Error(err))
		h.respondError(ctx, err)
		return
	}

	ctx.Response.Header.SetContentType("image/jpeg")
	ctx.Response.Header.Set(fasthttp.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%q", img.DownloadFilename()))
	ctx.SetStatusCode(http.StatusOK)
	ctx.SetBody(body)
}

func (h *ImageHandler) decode(ctx *fasthttp.RequestCtx) (*domain.DestinationImage, bool) {
	var req transport.ImageRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		h.respondInvalid(ctx, "invalid JSON payload")
		return nil, false
	}
	return &domain.DestinationImage{
		ID:          req.ID,
		Destination: req.Destination,
		Region:      domain.Region(req.Region),
		URL:         req.URL,
		Caption:     req.Caption,
	}, true
}
