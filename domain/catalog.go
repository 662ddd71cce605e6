package domain

// Catalog is the combined in-memory collection of all four content lists.
// It is always handed out as a value snapshot; readers never mutate it.
type Catalog struct {
	Experiences []Experience       `json:"experiences"`
	Itineraries []Itinerary        `json:"itineraries"`
	Images      []DestinationImage `json:"images"`
	Updates     []Update           `json:"updates"`
}

// FilterByRegionSelection narrows the three region-tagged collections.
// Updates carry no region and pass through untouched.
func (c Catalog) FilterByRegionSelection(selection RegionSelection) Catalog {
	return Catalog{
		Experiences: FilterByRegion(c.Experiences, selection),
		Itineraries: FilterByRegion(c.Itineraries, selection),
		Images:      FilterByRegion(c.Images, selection),
		Updates:     c.Updates,
	}
}
