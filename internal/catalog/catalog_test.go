package catalog

import (
	"context"
	"errors"
	"testing"

	"indicomp/internal/models"
)

var errOffline = errors.New("offline")

type stubCatalog struct {
	err   error
	names []string
	calls int
}

func (s *stubCatalog) ListEntities(_ context.Context, _ models.Scope) ([]string, error) {
	s.calls++

	return s.names, s.err
}

func TestFallbackCatalog_UsesPrimaryWhenHealthy(t *testing.T) {
	primary := &stubCatalog{names: []string{"Germany", "France"}}
	fc := NewFallbackCatalog(primary, NewStaticCatalog(), nil)

	listing, err := fc.List(context.Background(), models.CountryScope())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if listing.Fallback {
		t.Error("expected primary listing")
	}

	if len(listing.Names) != 2 {
		t.Errorf("got %d names, want 2", len(listing.Names))
	}
}

func TestFallbackCatalog_FallsBackOnError(t *testing.T) {
	fc := NewFallbackCatalog(&stubCatalog{err: errOffline}, NewStaticCatalog(), nil)

	listing, err := fc.List(context.Background(), models.CountryScope())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if !listing.Fallback || listing.Notice != FallbackNotice {
		t.Errorf("listing = %+v, want fallback with notice", listing)
	}

	if len(listing.Names) != len(fallbackCountries) {
		t.Errorf("got %d names, want %d", len(listing.Names), len(fallbackCountries))
	}
}

func TestFallbackCatalog_FallsBackOnEmpty(t *testing.T) {
	fc := NewFallbackCatalog(&stubCatalog{}, NewStaticCatalog(), nil)

	names, err := fc.ListEntities(context.Background(), models.CountryScope())
	if err != nil {
		t.Fatalf("ListEntities failed: %v", err)
	}

	if len(names) == 0 {
		t.Fatal("expected non-empty fallback list")
	}
}

func TestFallbackCatalog_RegionsWithoutNotice(t *testing.T) {
	fc := NewFallbackCatalog(&stubCatalog{err: ErrScopeUnsupported}, NewStaticCatalog(), nil)

	listing, err := fc.List(context.Background(), models.RegionScope("Australia"))
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if listing.Notice != "" {
		t.Errorf("unexpected notice %q for region scope", listing.Notice)
	}

	if len(listing.Names) != 8 {
		t.Errorf("got %d Australian regions, want 8", len(listing.Names))
	}
}

func TestStaticCatalog_UnknownParent(t *testing.T) {
	names, err := NewStaticCatalog().ListEntities(context.Background(), models.RegionScope("Atlantis"))
	if err != nil {
		t.Fatalf("ListEntities failed: %v", err)
	}

	if len(names) != 0 {
		t.Errorf("got %v, want no regions", names)
	}
}

func TestIndicators_HaveCodesAndGroups(t *testing.T) {
	seen := map[string]bool{}

	for _, ind := range Indicators() {
		if ind.Code == "" {
			t.Errorf("%s has no code", ind.Name)
		}

		if ind.Group == "" {
			t.Errorf("%s has no group", ind.Name)
		}

		if seen[ind.Name] {
			t.Errorf("duplicate indicator %s", ind.Name)
		}

		seen[ind.Name] = true
	}

	total := 0
	for _, g := range Groups() {
		total += len(IndicatorsIn(g))
	}

	if total != len(Indicators()) {
		t.Errorf("groups cover %d indicators, want %d", total, len(Indicators()))
	}
}

func TestPresets_ReferenceKnownIndicators(t *testing.T) {
	for _, p := range Presets() {
		for _, name := range p.Indicators {
			if _, ok := LookupIndicator(name); !ok {
				t.Errorf("preset %s references unknown indicator %s", p.Name, name)
			}
		}
	}
}

func TestIndicatorCategories(t *testing.T) {
	tests := map[string]models.Category{
		GDPPerCapita:     models.CategoryEconomic,
		SchoolEnrollment: models.CategoryEducation,
		LifeExpectancy:   models.CategoryHealth,
		Population:       models.CategoryNone,
	}

	for name, want := range tests {
		ind, ok := LookupIndicator(name)
		if !ok {
			t.Fatalf("indicator %s missing", name)
		}

		if ind.Category != want {
			t.Errorf("%s category = %q, want %q", name, ind.Category, want)
		}
	}
}

func TestCountryCode(t *testing.T) {
	if code, ok := CountryCode("Canada"); !ok || code != "CA" {
		t.Errorf("CountryCode(Canada) = %q, %v", code, ok)
	}

	if _, ok := CountryCode("Atlantis"); ok {
		t.Error("Atlantis should have no code")
	}
}

func TestCleanName(t *testing.T) {
	tests := map[string]string{
		"  USA ":             "United States",
		"UK":                 "United Kingdom",
		"Russian Federation": "Russia",
		"Germany":            "Germany",
	}

	for in, want := range tests {
		if got := CleanName(in); got != want {
			t.Errorf("CleanName(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSuggest(t *testing.T) {
	got := Suggest("Germny", []string{"Germany", "Greece", "Ghana"}, 2)
	if len(got) == 0 || got[0] != "Germany" {
		t.Errorf("Suggest = %v, want Germany first", got)
	}

	if got := Suggest("Atlantis", MappedCountries(), 3); len(got) != 0 {
		t.Errorf("Suggest(Atlantis) = %v, want none", got)
	}
}
