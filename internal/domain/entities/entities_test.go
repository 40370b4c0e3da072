package entities

import (
	"errors"
	"testing"
	"time"
)

func TestClassifyBracket(t *testing.T) {
	cases := []struct {
		employees int
		want      string
	}{
		{0, BracketNone},
		{1, BracketSmall},
		{5, BracketSmall},
		{6, BracketMedium},
		{15, BracketMedium},
		{16, BracketLarge},
		{50, BracketLarge},
		{51, BracketHuge},
		{10000, BracketHuge},
	}
	for _, tc := range cases {
		if got := ClassifyBracket(tc.employees); got != tc.want {
			t.Fatalf("ClassifyBracket(%d) = %q, want %q", tc.employees, got, tc.want)
		}
	}
}

func TestClassifyBracket_Monotonic(t *testing.T) {
	rank := map[string]int{}
	for i, b := range Brackets {
		rank[b] = i
	}

	prev := 0
	for n := 0; n <= 200; n++ {
		r, ok := rank[ClassifyBracket(n)]
		if !ok {
			t.Fatalf("unknown bracket for %d", n)
		}
		if r < prev {
			t.Fatalf("bracket rank decreased at %d", n)
		}
		prev = r
	}
}

func TestNormalizeRating(t *testing.T) {
	cases := map[string]int{
		"5":    5,
		"3":    3,
		" 4 ":  4,
		"4.0":  4,
		"7":    5,
		"0":    1,
		"-3":   1,
		"":     5,
		"five": 5,

		"99999999999999999999":  5,
		"-99999999999999999999": 1,
		"1e400":                 5,
		"NaN":                   5,
		"Inf":                   5,
		"+Inf":                  5,
		"-Inf":                  5,
		"-1e400":                1,
	}
	for raw, want := range cases {
		if got := NormalizeRating(raw); got != want {
			t.Fatalf("NormalizeRating(%q) = %d, want %d", raw, got, want)
		}
	}
}

func TestReview_Publish(t *testing.T) {
	first := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	later := first.Add(48 * time.Hour)

	r := Review{ID: "r-1"}
	r.Publish(true, first)
	if !r.IsPublished || r.PublishedAt == nil || !r.PublishedAt.Equal(first) {
		t.Fatalf("expected first publication stamp, got %+v", r)
	}

	r.Publish(false, later)
	if r.IsPublished || r.PublishedAt == nil || !r.PublishedAt.Equal(first) {
		t.Fatalf("unpublish must keep the first publication stamp, got %+v", r)
	}

	r.Publish(true, later)
	if !r.IsPublished || !r.PublishedAt.Equal(first) {
		t.Fatalf("republish must keep the first publication stamp, got %+v", r)
	}
}

func TestPricingConfig_Clone(t *testing.T) {
	cfg := DefaultPricingConfig()
	cp := cfg.Clone()

	cp.Services["accounting"] = ServiceCatalogEntry{Price: 1}
	cp.Multipliers.TaxSystems["osn"] = 9
	cp.Multipliers.Employees[BracketHuge] = 9

	if cfg.Services["accounting"].Price != 3000 {
		t.Fatalf("clone shares services map")
	}
	if cfg.Multipliers.TaxSystems["osn"] != 1.5 || cfg.Multipliers.Employees[BracketHuge] != 3 {
		t.Fatalf("clone shares multiplier maps")
	}
}

func TestSiteContent_Apply(t *testing.T) {
	base := DefaultSiteContent()
	hide := false
	phone := " +7 (999) 111-22-33 "
	nav := []NavItem{{Label: " Цены ", URL: "/pricing"}}

	got, err := base.Apply(SiteContentPatch{LogoShow: &hide, ContactPhone: &phone, Navigation: &nav})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Logo.Show || got.Contacts.Phone != "+7 (999) 111-22-33" {
		t.Fatalf("patch not applied: %+v", got)
	}
	if len(got.Navigation) != 1 || got.Navigation[0].Label != "Цены" {
		t.Fatalf("unexpected navigation: %+v", got.Navigation)
	}
	if got.Hero != base.Hero || got.Logo.Text != base.Logo.Text {
		t.Fatalf("untouched fields changed: %+v", got)
	}
	if !base.Logo.Show || len(base.Navigation) != 4 {
		t.Fatalf("apply mutated the receiver: %+v", base)
	}

	bad := []NavItem{{Label: "", URL: "/x"}}
	if _, err := base.Apply(SiteContentPatch{Navigation: &bad}); !errors.Is(err, ErrInvalidNavItem) {
		t.Fatalf("expected ErrInvalidNavItem, got %v", err)
	}
}
