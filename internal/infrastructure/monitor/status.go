package monitor

import "time"

type Status struct {
	PostgreSQL       bool      `json:"postgresql"`
	Redis            bool      `json:"redis"`
	OrientationStore bool      `json:"orientation_store"`
	ClassifiedImages int       `json:"classified_images"`
	LastCheck        time.Time `json:"last_check"`
}
