package domain

import "time"

// ItineraryDay is one day of a planned trip. Day numbers are expected
// ascending but need not be contiguous.
type ItineraryDay struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

// Itinerary is a day-by-day trip plan for one destination.
type Itinerary struct {
	ID          string         `json:"id"`
	Destination string         `json:"destination"`
	Region      Region         `json:"region"`
	Title       string         `json:"title"`
	Duration    string         `json:"duration"`
	Days        []ItineraryDay `json:"days"`
	ImageURL    *string        `json:"image_url,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

func (i Itinerary) RegionTag() Region { return i.Region }

func (i Itinerary) SearchFields() []string {
	return []string{i.Destination, i.Title, string(i.Region)}
}

func (i *Itinerary) Validate() error {
	if i == nil {
		return ErrInvalidPayload
	}
	if i.Destination == "" || i.Title == "" || i.Duration == "" {
		return WrapError(ErrCodeInvalid, "destination, title and duration are required", nil)
	}
	if !i.Region.Valid() {
		return WrapError(ErrCodeInvalid, "unknown region", nil)
	}
	for _, d := range i.Days {
		if d.Day <= 0 {
			return WrapError(ErrCodeInvalid, "day numbers must be positive", nil)
		}
	}
	return nil
}
