package domain

// UpdatePresentation carries the sidebar styling for one update type.
type UpdatePresentation struct {
	Icon       string `json:"icon"`
	Label      string `json:"label"`
	BadgeColor string `json:"badge_color"`
}

var updatePresentations = map[UpdateType]UpdatePresentation{
	UpdateNewsletter:    {Icon: "book-open", Label: "Newsletter", BadgeColor: "blue"},
	UpdateTravelTrend:   {Icon: "trending-up", Label: "Travel Trend", BadgeColor: "green"},
	UpdateNewExperience: {Icon: "sparkles", Label: "New Experience", BadgeColor: "purple"},
}

var defaultUpdatePresentation = UpdatePresentation{Icon: "calendar", Label: "Update", BadgeColor: "gray"}

// PresentationForUpdateType looks up the styling for an update type.
// Unknown types get a generic default entry rather than failing.
func PresentationForUpdateType(t UpdateType) UpdatePresentation {
	if p, ok := updatePresentations[t]; ok {
		return p
	}
	return defaultUpdatePresentation
}

// RegionPresentation carries the filter-bar styling for one region tab.
type RegionPresentation struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

var regionPresentations = map[RegionSelection]RegionPresentation{
	RegionAll:                    {Icon: "compass", Color: "red"},
	RegionSelection(RegionNorth): {Icon: "mountain", Color: "blue"},
	RegionSelection(RegionSouth): {Icon: "palmtree", Color: "green"},
	RegionSelection(RegionEast):  {Icon: "sun", Color: "orange"},
	RegionSelection(RegionWest):  {Icon: "waves", Color: "cyan"},
}

var defaultRegionPresentation = RegionPresentation{Icon: "map-pin", Color: "slate"}

// PresentationForRegion looks up the styling for a region filter tab.
func PresentationForRegion(s RegionSelection) RegionPresentation {
	if p, ok := regionPresentations[s]; ok {
		return p
	}
	return defaultRegionPresentation
}
