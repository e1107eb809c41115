package catalog

import (
	"testing"

	"weekendly/internal/model"
)

func TestCatalogInvariants(t *testing.T) {
	seen := make(map[string]bool)
	for _, a := range All() {
		if a.ID == "" || a.Name == "" {
			t.Errorf("activity missing id or name: %+v", a)
		}
		if seen[a.ID] {
			t.Errorf("duplicate activity id %q", a.ID)
		}
		seen[a.ID] = true

		if a.EstimatedTime <= 0 {
			t.Errorf("%s: estimated time must be positive, got %d", a.ID, a.EstimatedTime)
		}
		if len(a.Themes) == 0 {
			t.Errorf("%s: activity belongs to no theme", a.ID)
		}
	}
}

func TestEveryThemeHasCandidates(t *testing.T) {
	for _, theme := range model.Themes {
		if len(ForTheme(theme)) < 3 {
			t.Errorf("theme %q has fewer than 3 eligible activities", theme)
		}
	}
}

func TestByID(t *testing.T) {
	a, ok := ByID("morning-yoga")
	if !ok || a.Category != model.CategoryWellness {
		t.Errorf("ByID(morning-yoga) = %+v, %v", a, ok)
	}
	if _, ok := ByID("does-not-exist"); ok {
		t.Error("ByID should miss unknown ids")
	}
}
