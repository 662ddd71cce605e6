package usecase

import (
	"sync"

	"github.com/immerseindia/backend/domain"
)

// Store is the application-state object holding the shared content catalog.
// It is owned by the composition root; managers publish their slice after
// every authoritative refetch and readers take immutable value snapshots.
//
// Each slice carries a monotonically increasing request generation. A manager
// obtains a generation before issuing a fetch-all and publishes the response
// against it; if a newer fetch was issued in the meantime the stale response
// is discarded, so the last fetch issued wins rather than the last response
// to arrive.
type Store struct {
	mu      sync.RWMutex
	catalog domain.Catalog
	issued  [sliceCount]uint64
	applied [sliceCount]uint64
	version uint64
}

type slice int

const (
	sliceExperiences slice = iota
	sliceItineraries
	sliceImages
	sliceUpdates
	sliceCount
)

func NewStore() *Store {
	return &Store{}
}

// Snapshot returns the current catalog by value. Slices must not be mutated
// by callers.
func (s *Store) Snapshot() domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Version increases on every accepted publish. Readers use it to key
// memoized derivations of the catalog.
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *Store) begin(sl slice) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued[sl]++
	return s.issued[sl]
}

func (s *Store) publish(sl slice, gen uint64, apply func(*domain.Catalog)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.issued[sl] || gen <= s.applied[sl] {
		return false
	}
	apply(&s.catalog)
	s.applied[sl] = gen
	s.version++
	return true
}

// BeginExperiences reserves a fetch generation for the experiences slice.
func (s *Store) BeginExperiences() uint64 { return s.begin(sliceExperiences) }

// PublishExperiences installs a fetch-all response; stale responses are dropped.
func (s *Store) PublishExperiences(gen uint64, items []domain.Experience) bool {
	return s.publish(sliceExperiences, gen, func(c *domain.Catalog) { c.Experiences = items })
}

func (s *Store) BeginItineraries() uint64 { return s.begin(sliceItineraries) }

func (s *Store) PublishItineraries(gen uint64, items []domain.Itinerary) bool {
	return s.publish(sliceItineraries, gen, func(c *domain.Catalog) { c.Itineraries = items })
}

func (s *Store) BeginImages() uint64 { return s.begin(sliceImages) }

func (s *Store) PublishImages(gen uint64, items []domain.DestinationImage) bool {
	return s.publish(sliceImages, gen, func(c *domain.Catalog) { c.Images = items })
}

func (s *Store) BeginUpdates() uint64 { return s.begin(sliceUpdates) }

func (s *Store) PublishUpdates(gen uint64, items []domain.Update) bool {
	return s.publish(sliceUpdates, gen, func(c *domain.Catalog) { c.Updates = items })
}
