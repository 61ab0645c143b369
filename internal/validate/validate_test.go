package validate_test

import (
	"strings"
	"testing"

	"timebank/internal/domain"
	"timebank/internal/validate"
)

func TestRegion(t *testing.T) {
	ok := map[string]string{
		"":        domain.RegionAll,
		"all":     domain.RegionAll,
		" ALL ":   domain.RegionAll,
		"전체":      domain.RegionAll,
		"강원":      "강원",
		"   ":     domain.RegionAll,
		" 제주 ":    " 제주 ",
		"강원 ":     "강원 ",
		"Nowhere": "Nowhere",
	}
	for in, want := range ok {
		got, valid := validate.Region(in)
		if !valid || got != want {
			t.Fatalf("Region(%q): want %q, got %q valid=%v", in, want, got, valid)
		}
	}

	for _, bad := range []string{"<script>", "a\x00b", strings.Repeat("가", 33)} {
		if _, valid := validate.Region(bad); valid {
			t.Fatalf("Region(%q) should be rejected", bad)
		}
	}
}

func TestID(t *testing.T) {
	if id, ok := validate.ID(" 6 "); !ok || id != "6" {
		t.Fatalf("want 6, got %q ok=%v", id, ok)
	}
	for _, bad := range []string{"", "../etc", "a b", strings.Repeat("x", 65)} {
		if _, ok := validate.ID(bad); ok {
			t.Fatalf("ID(%q) should be rejected", bad)
		}
	}
}
