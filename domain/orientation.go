package domain

// Orientation classifies an image by its measured pixel dimensions.
type Orientation string

const (
	OrientationLandscape Orientation = "landscape"
	OrientationPortrait  Orientation = "portrait"
)

func (o Orientation) Valid() bool {
	return o == OrientationLandscape || o == OrientationPortrait
}

// ClassifyOrientation maps pixel dimensions to an orientation.
// Ties resolve to portrait.
func ClassifyOrientation(width, height int) Orientation {
	if width > height {
		return OrientationLandscape
	}
	return OrientationPortrait
}

// OrientationSelection is an orientation filter value. Dimensions are only
// known after an image has been fetched and decoded, so any item without a
// recorded orientation is excluded from a non-"all" selection.
type OrientationSelection string

const OrientationAll OrientationSelection = "all"

func (s OrientationSelection) IsAll() bool {
	return s == OrientationAll
}

// ParseOrientationSelection accepts "landscape", "portrait" or "all".
// An empty value means "all".
func ParseOrientationSelection(raw string) (OrientationSelection, error) {
	if raw == "" || OrientationSelection(raw) == OrientationAll {
		return OrientationAll, nil
	}
	if !Orientation(raw).Valid() {
		return "", WrapError(ErrCodeInvalid, "unknown orientation", nil)
	}
	return OrientationSelection(raw), nil
}
