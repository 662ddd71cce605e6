package browse

import (
	"testing"
	"time"

	"github.com/immerseindia/backend/domain"
	"github.com/immerseindia/backend/usecase"
)

type fakeIndex map[string]domain.Orientation

func (f fakeIndex) Get(imageID string) (domain.Orientation, bool) {
	o, ok := f[imageID]
	return o, ok
}

func (f fakeIndex) Set(imageID string, o domain.Orientation) error {
	f[imageID] = o
	return nil
}

func seededStore(t *testing.T) *usecase.Store {
	t.Helper()
	s := usecase.NewStore()

	gen := s.BeginExperiences()
	s.PublishExperiences(gen, []domain.Experience{
		{ID: "e1", Destination: "Shimla", Region: domain.RegionNorth, Title: "Hill Walk", Description: "Cedar forests"},
		{ID: "e2", Destination: "Madurai", Region: domain.RegionSouth, Title: "Temple Trail", Description: "Meenakshi temple"},
	})
	gen = s.BeginImages()
	s.PublishImages(gen, []domain.DestinationImage{
		{ID: "m1", Destination: "Shimla", Region: domain.RegionNorth, Caption: "Ridge in winter"},
		{ID: "m2", Destination: "Shimla", Region: domain.RegionNorth, Caption: "Toy train"},
		{ID: "m3", Destination: "Madurai", Region: domain.RegionSouth, Caption: "Gopuram detail"},
	})
	gen = s.BeginUpdates()
	s.PublishUpdates(gen, []domain.Update{
		{ID: "u-old", Type: domain.UpdateNewsletter, CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: "u-new", Type: domain.UpdateTravelTrend, CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	})
	return s
}

func TestViewerExperiencesByRegion(t *testing.T) {
	v := New(seededStore(t), fakeIndex{})

	if got := v.Experiences(domain.RegionAll); len(got) != 2 {
		t.Fatalf("All: expected 2, got %d", len(got))
	}
	got := v.Experiences(domain.RegionSelection(domain.RegionNorth))
	if len(got) != 1 || got[0].ID != "e1" {
		t.Fatalf("North: unexpected result %+v", got)
	}
}

func TestViewerImagesOrientationFilter(t *testing.T) {
	index := fakeIndex{
		"m1": domain.OrientationLandscape,
		"m3": domain.OrientationPortrait,
		// m2 not classified yet
	}
	v := New(seededStore(t), index)

	all := v.Images(domain.RegionAll, domain.OrientationAll)
	if len(all) != 3 {
		t.Fatalf("all orientations: expected 3, got %d", len(all))
	}

	landscape := v.Images(domain.RegionAll, domain.OrientationSelection(domain.OrientationLandscape))
	if len(landscape) != 1 || landscape[0].ID != "m1" {
		t.Fatalf("landscape: unexpected result %+v", landscape)
	}

	// Unclassified images stay out of a concrete orientation selection.
	portrait := v.Images(domain.RegionAll, domain.OrientationSelection(domain.OrientationPortrait))
	if len(portrait) != 1 || portrait[0].ID != "m3" {
		t.Fatalf("portrait: unexpected result %+v", portrait)
	}
}

func TestViewerImagesRegionThenOrientation(t *testing.T) {
	index := fakeIndex{
		"m1": domain.OrientationLandscape,
		"m3": domain.OrientationLandscape,
	}
	v := New(seededStore(t), index)

	got := v.Images(domain.RegionSelection(domain.RegionSouth), domain.OrientationSelection(domain.OrientationLandscape))
	if len(got) != 1 || got[0].ID != "m3" {
		t.Fatalf("expected only the southern landscape image, got %+v", got)
	}
}

func TestViewerUpdatesNewestFirst(t *testing.T) {
	v := New(seededStore(t), fakeIndex{})

	got := v.Updates()
	if len(got) != 2 || got[0].ID != "u-new" || got[1].ID != "u-old" {
		t.Fatalf("updates not newest first: %+v", got)
	}
}

func TestViewerSearchScoped(t *testing.T) {
	v := New(seededStore(t), fakeIndex{})

	// "shimla" matches one experience and two images, but the South scope
	// narrows first, so nothing survives.
	scoped := v.SearchScoped(domain.RegionSelection(domain.RegionSouth), "shimla")
	if len(scoped.Experiences) != 0 || len(scoped.Images) != 0 {
		t.Fatalf("south-scoped search for shimla should be empty: %+v", scoped)
	}

	north := v.SearchScoped(domain.RegionSelection(domain.RegionNorth), "shimla")
	if len(north.Experiences) != 1 || len(north.Images) != 2 {
		t.Fatalf("north-scoped search wrong: %d experiences, %d images",
			len(north.Experiences), len(north.Images))
	}
}
