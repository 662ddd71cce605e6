package domain

import (
	"testing"
	"time"
)

func TestSortUpdatesNewestFirst(t *testing.T) {
	base := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	in := []Update{
		{ID: "old", CreatedAt: base},
		{ID: "newest", CreatedAt: base.Add(48 * time.Hour)},
		{ID: "middle", CreatedAt: base.Add(24 * time.Hour)},
	}

	got := SortUpdatesNewestFirst(in)
	want := []string{"newest", "middle", "old"}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: got %s, want %s", i, got[i].ID, id)
		}
	}
	// input untouched
	if in[0].ID != "old" {
		t.Fatal("sort must not mutate the input slice")
	}
}

func TestUpdateValidate(t *testing.T) {
	upd := &Update{Type: UpdateNewsletter, Title: "March digest", Content: "Monsoon season picks"}
	if err := upd.Validate(); err != nil {
		t.Fatalf("valid update rejected: %v", err)
	}

	missing := &Update{Type: UpdateNewsletter, Title: "no content"}
	if err := missing.Validate(); !IsDomainError(err, ErrCodeInvalid) {
		t.Fatalf("expected invalid error, got %v", err)
	}

	badType := &Update{Type: "press-release", Title: "t", Content: "c"}
	if err := badType.Validate(); !IsDomainError(err, ErrCodeInvalid) {
		t.Fatalf("expected invalid error for unknown type, got %v", err)
	}
}
