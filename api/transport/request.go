package transport

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ExperienceRequest struct {
	ID          string   `json:"id"`
	Destination string   `json:"destination"`
	Region      string   `json:"region"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Highlights  []string `json:"highlights"`
	ImageURL    string   `json:"image_url"`
}

type ItineraryDayRequest struct {
	Day        int      `json:"day"`
	Activities []string `json:"activities"`
}

type ItineraryRequest struct {
	ID          string                `json:"id"`
	Destination string                `json:"destination"`
	Region      string                `json:"region"`
	Title       string                `json:"title"`
	Duration    string                `json:"duration"`
	Days        []ItineraryDayRequest `json:"days"`
	ImageURL    string                `json:"image_url"`
}

type ImageRequest struct {
	ID          string `json:"id"`
	Destination string `json:"destination"`
	Region      string `json:"region"`
	URL         string `json:"url"`
	Caption     string `json:"caption"`
}

type UpdateRequest struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ExternalURL string `json:"external_url"`
}

type SectionRequest struct {
	Section string `json:"section"`
}

type RegionRequest struct {
	Region string `json:"region"`
}

type SearchRequest struct {
	Query string `json:"query"`
}

// OptionalURL converts the wire-level empty-string sentinel into an absent
// value, so "no URL" and "empty URL" do not conflate past this boundary.
func OptionalURL(raw string) *string {
	if raw == "" {
		return nil
	}
	return &raw
}
