package domain

import "time"

// Experience is a curated travel experience for one destination.
type Experience struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Region      Region    `json:"region"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Highlights  []string  `json:"highlights"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func (e Experience) RegionTag() Region { return e.Region }

func (e Experience) SearchFields() []string {
	return []string{e.Destination, e.Title, e.Description, string(e.Region)}
}

// Validate checks the required fields enforced at submission time.
func (e *Experience) Validate() error {
	if e == nil {
		return ErrInvalidPayload
	}
	if e.Destination == "" || e.Title == "" || e.Description == "" {
		return WrapError(ErrCodeInvalid, "destination, title and description are required", nil)
	}
	if !e.Region.Valid() {
		return WrapError(ErrCodeInvalid, "unknown region", nil)
	}
	return nil
}
