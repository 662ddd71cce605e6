package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/immerseindia/backend/pkg/httpcontext"
	"github.com/immerseindia/backend/usecase/search"
)

type SearchHandler struct {
	baseHandler
	engine *search.Engine
}

func NewSearchHandler(engine *search.Engine, adapter *httpcontext.Adapter, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		baseHandler: newBaseHandler(adapter, logger),
		engine:      engine,
	}
}

// Search handles GET /api/v1/search?q=. The query runs over the full
// catalog, ignoring any region filter a dashboard may have active.
func (h *SearchHandler) Search(ctx *fasthttp.RequestCtx) {
	query := string(ctx.QueryArgs().Peek("q"))

	result, err := h.engine.Search(query)
	if err != nil {
		h.respondError(ctx, err)
		return
	}

	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"result": result,
		"total":  result.Total(),
	})
}
