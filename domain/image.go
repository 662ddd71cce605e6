package domain

import "time"

// DestinationImage is a downloadable photo of one destination.
type DestinationImage struct {
	ID          string    `json:"id"`
	Destination string    `json:"destination"`
	Region      Region    `json:"region"`
	URL         string    `json:"url"`
	Caption     string    `json:"caption"`
	CreatedAt   time.Time `json:"created_at"`
}

func (img DestinationImage) RegionTag() Region { return img.Region }

func (img DestinationImage) SearchFields() []string {
	return []string{img.Destination, img.Caption, string(img.Region)}
}

func (img *DestinationImage) Validate() error {
	if img == nil {
		return ErrInvalidPayload
	}
	if img.Destination == "" || img.URL == "" || img.Caption == "" {
		return WrapError(ErrCodeInvalid, "destination, url and caption are required", nil)
	}
	if !img.Region.Valid() {
		return WrapError(ErrCodeInvalid, "unknown region", nil)
	}
	return nil
}

// DownloadFilename is the suggested name for a pass-through image download.
func (img DestinationImage) DownloadFilename() string {
	return img.Destination + "-" + img.ID + ".jpg"
}
