package search

import (
	"sync"

	"go.uber.org/zap"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/usecase"
)

// Result groups the per-collection matches for one query.
type Result struct {
	Query       string                    `json:"query"`
	Experiences []domain.Experience       `json:"experiences"`
	Itineraries []domain.Itinerary        `json:"itineraries"`
	Images      []domain.DestinationImage `json:"images"`
}

func (r Result) Total() int {
	return len(r.Experiences) + len(r.Itineraries) + len(r.Images)
}

// Query runs the free-text search over a catalog snapshot. Pure function:
// case-insensitive substring containment over each entity's text fields,
// source order preserved, no ranking.
func Query(catalog domain.Catalog, query string) Result {
	q := domain.NormalizeQuery(query)
	return Result{
		Query:       q,
		Experiences: domain.MatchQuery(catalog.Experiences, q),
		Itineraries: domain.MatchQuery(catalog.Itineraries, q),
		Images:      domain.MatchQuery(catalog.Images, q),
	}
}

// Engine searches the shared catalog, memoizing results per query while the
// catalog is unchanged. Collections are small, so the whole scan is rebuilt
// whenever a slice is republished.
type Engine struct {
	store  *usecase.Store
	logger *zap.Logger

	mu      sync.Mutex
	version uint64
	cache   map[string]Result
}

func New(store *usecase.Store, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		store:  store,
		logger: logger,
		cache:  make(map[string]Result),
	}
}

// Search runs a free-text query over the full unfiltered catalog.
// An empty (all-whitespace) query is rejected.
func (e *Engine) Search(rawQuery string) (Result, error) {
	q := domain.NormalizeQuery(rawQuery)
	if q == "" {
		return Result{}, domain.WrapError(domain.ErrCodeInvalid, "search query is empty", nil)
	}

	version := e.store.Version()

	e.mu.Lock()
	if e.version != version {
		e.cache = make(map[string]Result)
		e.version = version
	}
	if cached, ok := e.cache[q]; ok {
		e.mu.Unlock()
		return cached, nil
	}
	e.mu.Unlock()

	result := Query(e.store.Snapshot(), q)

	e.mu.Lock()
	if e.version == version {
		e.cache[q] = result
	}
	e.mu.Unlock()

	return result, nil
}
