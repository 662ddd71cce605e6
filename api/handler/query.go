package handler

import (
	"github.com/valyala/fasthttp"

	"github.com/immerseindia/backend/domain"
)

// regionSelection reads the ?region= query argument. Absent means All.
func regionSelection(ctx *fasthttp.RequestCtx) (domain.RegionSelection, error) {
	raw := string(ctx.QueryArgs().Peek("region"))
	return domain.ParseRegionSelection(raw)
}

// orientationSelection reads the ?orientation= query argument. Absent means all.
func orientationSelection(ctx *fasthttp.RequestCtx) (domain.OrientationSelection, error) {
	raw := string(ctx.QueryArgs().Peek("orientation"))
	return domain.ParseOrientationSelection(raw)
}

// deleteConfirmed reports whether the request carries ?confirm=true.
// Destructive routes refuse to act without it.
func deleteConfirmed(ctx *fasthttp.RequestCtx) bool {
	return string(ctx.QueryArgs().Peek("confirm")) == "true"
}
