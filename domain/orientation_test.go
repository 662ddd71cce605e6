package domain

import "testing"

func TestClassifyOrientation(t *testing.T) {
	cases := []struct {
		width, height int
		want          Orientation
	}{
		{1920, 1080, OrientationLandscape},
		{1080, 1920, OrientationPortrait},
		{500, 500, OrientationPortrait}, // square counts as portrait
		{501, 500, OrientationLandscape},
	}
	for _, tc := range cases {
		got := ClassifyOrientation(tc.width, tc.height)
		if got != tc.want {
			t.Fatalf("ClassifyOrientation(%d, %d) = %q, want %q", tc.width, tc.height, got, tc.want)
		}
	}
}

func TestParseOrientationSelection(t *testing.T) {
	if got, err := ParseOrientationSelection(""); err != nil || got != OrientationAll {
		t.Fatalf("empty selection should mean all, got %q (%v)", got, err)
	}
	if got, err := ParseOrientationSelection("landscape"); err != nil || got != OrientationSelection(OrientationLandscape) {
		t.Fatalf("ParseOrientationSelection(landscape) = %q (%v)", got, err)
	}
	if _, err := ParseOrientationSelection("diagonal"); err == nil {
		t.Fatal("expected error for unknown orientation")
	}
}

func TestDownloadFilename(t *testing.T) {
	img := DestinationImage{ID: "42", Destination: "Jaipur"}
	if got := img.DownloadFilename(); got != "Jaipur-42.jpg" {
		t.Fatalf("DownloadFilename = %q, want %q", got, "Jaipur-42.jpg")
	}
}
