package usecase

import (
	"testing"

	"github.com/immerseindia/backend/domain"
)

func TestStorePublishAccepted(t *testing.T) {
	s := NewStore()

	gen := s.BeginExperiences()
	ok := s.PublishExperiences(gen, []domain.Experience{{ID: "1"}})
	if !ok {
		t.Fatal("publish against the latest generation should be accepted")
	}
	if got := s.Snapshot().Experiences; len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("snapshot not updated: %+v", got)
	}
}

func TestStoreStaleResponseDiscarded(t *testing.T) {
	s := NewStore()

	older := s.BeginExperiences()
	newer := s.BeginExperiences()

	if !s.PublishExperiences(newer, []domain.Experience{{ID: "fresh"}}) {
		t.Fatal("newest fetch should publish")
	}
	if s.PublishExperiences(older, []domain.Experience{{ID: "stale"}}) {
		t.Fatal("response from a superseded fetch must be discarded")
	}
	if got := s.Snapshot().Experiences; got[0].ID != "fresh" {
		t.Fatalf("stale response overwrote the store: %+v", got)
	}
}

func TestStoreDuplicatePublishDiscarded(t *testing.T) {
	s := NewStore()

	gen := s.BeginExperiences()
	if !s.PublishExperiences(gen, nil) {
		t.Fatal("first publish should succeed")
	}
	if s.PublishExperiences(gen, []domain.Experience{{ID: "dup"}}) {
		t.Fatal("re-publishing a consumed generation must be rejected")
	}
}

func TestStoreGenerationsAreIndependentPerSlice(t *testing.T) {
	s := NewStore()

	expGen := s.BeginExperiences()
	s.BeginItineraries() // superseded fetch on another slice

	if !s.PublishExperiences(expGen, []domain.Experience{{ID: "e"}}) {
		t.Fatal("an in-flight itinerary fetch must not invalidate the experience fetch")
	}
}

func TestStoreVersionIncrementsOnAcceptedPublishOnly(t *testing.T) {
	s := NewStore()

	before := s.Version()
	older := s.BeginUpdates()
	newer := s.BeginUpdates()

	s.PublishUpdates(newer, []domain.Update{{ID: "u"}})
	afterAccept := s.Version()
	if afterAccept != before+1 {
		t.Fatalf("accepted publish should bump version: %d -> %d", before, afterAccept)
	}

	s.PublishUpdates(older, nil)
	if got := s.Version(); got != afterAccept {
		t.Fatalf("discarded publish must not bump version: %d -> %d", afterAccept, got)
	}
}
