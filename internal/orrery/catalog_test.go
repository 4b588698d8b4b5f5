package orrery

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	cat := DefaultCatalog()
	if len(cat) != 9 {
		t.Fatalf("len = %d, want 9", len(cat))
	}
	if err := cat.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if !cat[0].IsCentral() || cat[0].Name != "Sun" {
		t.Errorf("first entry = %+v, want central Sun", cat[0])
	}
}

func TestDefaultCatalogIsFresh(t *testing.T) {
	a := DefaultCatalog()
	a[3].PeriodDays = -1

	if b := DefaultCatalog(); b[3].PeriodDays != 365 {
		t.Errorf("mutating one catalog leaked into another: period = %v", b[3].PeriodDays)
	}
}

func TestCatalogValidate(t *testing.T) {
	sun := BodySpec{Name: "Sun", RadiusKm: 696000, Color: "#FDB813"}
	earth := BodySpec{Name: "Earth", RadiusKm: 6371, DistanceAU: 1, PeriodDays: 365, Color: "#4169E1"}

	with := func(f func(*BodySpec)) BodySpec {
		e := earth
		f(&e)
		return e
	}

	tests := []struct {
		name string
		cat  Catalog
		want error
	}{
		{"empty", Catalog{}, ErrEmptyCatalog},
		{"no central", Catalog{earth}, ErrNoCentralBody},
		{"two centrals", Catalog{sun, with(func(e *BodySpec) { e.DistanceAU, e.PeriodDays = 0, 0 })}, ErrMultipleCentral},
		{"zero period", Catalog{sun, with(func(e *BodySpec) { e.PeriodDays = 0 })}, ErrInvalidPeriod},
		{"negative period", Catalog{sun, with(func(e *BodySpec) { e.PeriodDays = -365 })}, ErrInvalidPeriod},
		{"NaN period", Catalog{sun, with(func(e *BodySpec) { e.PeriodDays = math.NaN() })}, ErrInvalidPeriod},
		{"zero distance", Catalog{sun, with(func(e *BodySpec) { e.DistanceAU = 0 })}, ErrInvalidDistance},
		{"zero radius", Catalog{sun, with(func(e *BodySpec) { e.RadiusKm = 0 })}, ErrInvalidRadius},
		{"bad color", Catalog{sun, with(func(e *BodySpec) { e.Color = "blue" })}, ErrInvalidColor},
		{"empty name", Catalog{sun, with(func(e *BodySpec) { e.Name = "  " })}, ErrEmptyName},
		{"duplicate", Catalog{sun, earth, earth}, ErrDuplicateName},
		{"valid", Catalog{sun, earth}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cat.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCatalogCentralFirst(t *testing.T) {
	cat := Catalog{
		{Name: "Earth", RadiusKm: 6371, DistanceAU: 1, PeriodDays: 365, Color: "#4169E1"},
		{Name: "Sun", RadiusKm: 696000, Color: "#FDB813"},
		{Name: "Mars", RadiusKm: 3390, DistanceAU: 1.52, PeriodDays: 687, Color: "#CD5C5C"},
	}

	got := cat.centralFirst()
	want := []string{"Sun", "Earth", "Mars"}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("index %d = %s, want %s", i, got[i].Name, name)
		}
	}
	if cat[0].Name != "Earth" {
		t.Error("centralFirst must not reorder its receiver")
	}
}

func TestLoadCatalog(t *testing.T) {
	input := `[
		{"name": "Sun", "radius_km": 696000, "distance_au": 0, "period_days": 0, "color": "#FDB813", "tilt_deg": 0},
		{"name": "Earth", "radius_km": 6371, "distance_au": 1.0, "period_days": 365, "color": "#4169E1", "tilt_deg": 0}
	]`

	cat, err := LoadCatalog(strings.NewReader(input))
	if err != nil {
		t.Fatalf("LoadCatalog() = %v", err)
	}
	if len(cat) != 2 || cat[1].Name != "Earth" || cat[1].PeriodDays != 365 {
		t.Errorf("unexpected catalog: %+v", cat)
	}
}

func TestLoadCatalogRejectsBadEntries(t *testing.T) {
	input := `[
		{"name": "Sun", "radius_km": 696000, "color": "#FDB813"},
		{"name": "Rogue", "radius_km": 1000, "distance_au": 2, "period_days": 0, "color": "#FFFFFF"}
	]`

	_, err := LoadCatalog(strings.NewReader(input))
	if !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("LoadCatalog() = %v, want ErrInvalidPeriod", err)
	}
}

func TestLoadCatalogRejectsUnknownFields(t *testing.T) {
	_, err := LoadCatalog(strings.NewReader(`[{"name": "Sun", "mass": 1}]`))
	if err == nil {
		t.Error("expected decode error for unknown field")
	}
}
