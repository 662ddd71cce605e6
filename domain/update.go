package domain

import (
	"sort"
	"time"
)

// UpdateType classifies a short update shown in the sidebar feed.
type UpdateType string

const (
	UpdateNewsletter    UpdateType = "newsletter"
	UpdateTravelTrend   UpdateType = "travel-trend"
	UpdateNewExperience UpdateType = "new-experience"
)

func (t UpdateType) Valid() bool {
	switch t {
	case UpdateNewsletter, UpdateTravelTrend, UpdateNewExperience:
		return true
	}
	return false
}

// Update is a short announcement, newsletter pointer or trend post.
type Update struct {
	ID          string     `json:"id"`
	Type        UpdateType `json:"type"`
	Title       string     `json:"title"`
	Content     string     `json:"content"`
	ExternalURL *string    `json:"external_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func (u *Update) Validate() error {
	if u == nil {
		return ErrInvalidPayload
	}
	if u.Title == "" || u.Content == "" {
		return WrapError(ErrCodeInvalid, "title and content are required", nil)
	}
	if !u.Type.Valid() {
		return WrapError(ErrCodeInvalid, "unknown update type", nil)
	}
	return nil
}

// SortUpdatesNewestFirst returns a copy ordered by creation time descending,
// matching the sidebar feed.
func SortUpdatesNewestFirst(updates []Update) []Update {
	out := append([]Update(nil), updates...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}
