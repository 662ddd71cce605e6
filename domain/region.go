package domain

// Region is the geographic tag attached to every content entity.
type Region string

const (
	RegionNorth Region = "North"
	RegionSouth Region = "South"
	RegionEast  Region = "East"
	RegionWest  Region = "West"
)

// Regions lists all valid regions in display order.
var Regions = []Region{RegionNorth, RegionSouth, RegionEast, RegionWest}

func (r Region) Valid() bool {
	switch r {
	case RegionNorth, RegionSouth, RegionEast, RegionWest:
		return true
	}
	return false
}

// ParseRegion validates a raw region value.
func ParseRegion(raw string) (Region, error) {
	r := Region(raw)
	if !r.Valid() {
		return "", WrapError(ErrCodeInvalid, "unknown region", nil)
	}
	return r, nil
}

// RegionSelection is a region filter value: a concrete region or the "All" sentinel.
type RegionSelection string

const RegionAll RegionSelection = "All"

func (s RegionSelection) IsAll() bool {
	return s == RegionAll
}

func (s RegionSelection) Valid() bool {
	return s.IsAll() || Region(s).Valid()
}

// ParseRegionSelection accepts a region name or "All". An empty value means "All".
func ParseRegionSelection(raw string) (RegionSelection, error) {
	if raw == "" || RegionSelection(raw) == RegionAll {
		return RegionAll, nil
	}
	r, err := ParseRegion(raw)
	if err != nil {
		return "", err
	}
	return RegionSelection(r), nil
}
