package domain

import "testing"

func sampleExperiences() []Experience {
	return []Experience{
		{ID: "1", Destination: "Rishikesh", Region: RegionNorth, Title: "Ganga Aarti", Description: "Evening ceremony on the ghats"},
		{ID: "2", Destination: "Kerala", Region: RegionSouth, Title: "Backwater Cruise", Description: "Houseboat through the backwaters"},
		{ID: "3", Destination: "Ladakh", Region: RegionNorth, Title: "Pangong Lake", Description: "High altitude lake trek"},
		{ID: "4", Destination: "Goa", Region: RegionWest, Title: "Beach Retreat", Description: "Quiet beaches of south Goa"},
	}
}

func TestFilterByRegionAll(t *testing.T) {
	items := sampleExperiences()
	got := FilterByRegion(items, RegionAll)
	if len(got) != len(items) {
		t.Fatalf("expected %d items, got %d", len(items), len(got))
	}
	for i := range items {
		if got[i].ID != items[i].ID {
			t.Fatalf("order changed at %d: got %s, want %s", i, got[i].ID, items[i].ID)
		}
	}
}

func TestFilterByRegionSpecific(t *testing.T) {
	got := FilterByRegion(sampleExperiences(), RegionSelection(RegionNorth))
	if len(got) != 2 {
		t.Fatalf("expected 2 north experiences, got %d", len(got))
	}
	if got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("order not preserved: got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilterByRegionNoMatches(t *testing.T) {
	got := FilterByRegion(sampleExperiences(), RegionSelection(RegionEast))
	if len(got) != 0 {
		t.Fatalf("expected no east experiences, got %d", len(got))
	}
}

func TestParseRegionSelection(t *testing.T) {
	cases := []struct {
		raw     string
		want    RegionSelection
		wantErr bool
	}{
		{"", RegionAll, false},
		{"All", RegionAll, false},
		{"North", RegionSelection(RegionNorth), false},
		{"West", RegionSelection(RegionWest), false},
		{"Central", "", true},
		{"north", "", true},
	}
	for _, tc := range cases {
		got, err := ParseRegionSelection(tc.raw)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("ParseRegionSelection(%q): expected error", tc.raw)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseRegionSelection(%q): %v", tc.raw, err)
		}
		if got != tc.want {
			t.Fatalf("ParseRegionSelection(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestMatchQueryCaseInsensitive(t *testing.T) {
	got := MatchQuery(sampleExperiences(), "KERALA")
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("expected only the Kerala experience, got %d matches", len(got))
	}
}

func TestMatchQuerySubstring(t *testing.T) {
	// "lake" appears in a title and a description of the same item.
	got := MatchQuery(sampleExperiences(), "lake")
	if len(got) != 1 || got[0].ID != "3" {
		t.Fatalf("expected one match for %q, got %d", "lake", len(got))
	}
}

func TestMatchQueryAcrossFields(t *testing.T) {
	// Region names are searchable text too.
	got := MatchQuery(sampleExperiences(), "south")
	if len(got) != 2 {
		t.Fatalf("expected matches in region and description fields, got %d", len(got))
	}
}

func TestMatchQueryIdempotent(t *testing.T) {
	once := MatchQuery(sampleExperiences(), "beach")
	twice := MatchQuery(once, "beach")
	if len(once) != len(twice) {
		t.Fatalf("re-filtering changed the result: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("re-filtering changed item %d: %s vs %s", i, once[i].ID, twice[i].ID)
		}
	}
}

func TestMatchQueryNoMatch(t *testing.T) {
	if got := MatchQuery(sampleExperiences(), "antarctica"); len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestNormalizeQuery(t *testing.T) {
	if got := NormalizeQuery("  KeRaLa  "); got != "kerala" {
		t.Fatalf("NormalizeQuery = %q, want %q", got, "kerala")
	}
	if got := NormalizeQuery("   "); got != "" {
		t.Fatalf("whitespace query should normalize to empty, got %q", got)
	}
}
