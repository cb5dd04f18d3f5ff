package chart

import (
	"errors"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"deckgen/outline"
)

func TestBuildManualChart(t *testing.T) {
	nc, err := BuildManualChart("Revenue", &outline.ManualChart{
		Kind:       outline.ManualBar,
		Categories: []string{"Q1", "Q2", "Q3"},
		Values:     []float64{10, 20, 30},
	})
	if err != nil {
		t.Fatal(err)
	}
	if nc.Kind != KindBar {
		t.Errorf("kind = %q", nc.Kind)
	}
	if nc.Title != "Revenue Chart" {
		t.Errorf("title = %q", nc.Title)
	}
	if len(nc.Series) != 1 || nc.Series[0].Name != "Data" {
		t.Fatalf("series = %+v", nc.Series)
	}
	s := nc.Series[0]
	if len(s.Categories) != 3 || s.Values["Q2"] != 20 {
		t.Errorf("series data = %+v", s)
	}
}

func TestBuildManualChartErrors(t *testing.T) {
	tests := []struct {
		name string
		spec *outline.ManualChart
	}{
		{"nil spec", nil},
		{"no categories", &outline.ManualChart{Kind: outline.ManualPie}},
		{"count mismatch", &outline.ManualChart{
			Kind:       outline.ManualLine,
			Categories: []string{"a", "b"},
			Values:     []float64{1},
		}},
		{"unknown kind", &outline.ManualChart{
			Kind:       outline.ManualChartKind("radar"),
			Categories: []string{"a"},
			Values:     []float64{1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildManualChart("Sales", tt.spec)
			var ce *ChartDataError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want ChartDataError", err)
			}
			if ce.Slide != "Sales" {
				t.Errorf("slide = %q", ce.Slide)
			}
		})
	}
}

func TestBuildManualChartDuplicateCategoryKeepsLast(t *testing.T) {
	nc, err := BuildManualChart("t", &outline.ManualChart{
		Kind:       outline.ManualBar,
		Categories: []string{"a", "b", "a"},
		Values:     []float64{1, 2, 3},
	})
	if err != nil {
		t.Fatal(err)
	}
	s := nc.Series[0]
	if len(s.Categories) != 2 {
		t.Fatalf("categories = %v", s.Categories)
	}
	if s.Values["a"] != 3 {
		t.Errorf("Values[a] = %v, want the last value 3", s.Values["a"])
	}
}

func TestBuildManualChartProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 20).Draw(t, "n")
		cats := make([]string, n)
		vals := make([]float64, n)
		for i := range cats {
			cats[i] = rapid.StringMatching(`[a-d]{1,3}`).Draw(t, "cat")
			vals[i] = float64(rapid.IntRange(-100, 100).Draw(t, "val"))
		}

		nc, err := BuildManualChart("p", &outline.ManualChart{
			Kind: outline.ManualLine, Categories: cats, Values: vals,
		})
		if err != nil {
			t.Fatal(err)
		}
		s := nc.Series[0]
		if len(s.Categories) != len(s.Values) {
			t.Fatalf("%d categories but %d values", len(s.Categories), len(s.Values))
		}
		seen := map[string]bool{}
		for _, c := range s.Categories {
			if seen[c] {
				t.Fatalf("duplicate category %q survived dedup", c)
			}
			seen[c] = true
			if _, ok := s.Values[c]; !ok {
				t.Fatalf("category %q has no value", c)
			}
		}
		// Each value is the last one supplied for its category.
		for i, c := range cats {
			last := vals[i]
			for j := i + 1; j < n; j++ {
				if cats[j] == c {
					last = vals[j]
				}
			}
			if s.Values[c] != last {
				t.Fatalf("Values[%q] = %v, want %v", c, s.Values[c], last)
			}
		}
		if !strings.HasSuffix(nc.Title, " Chart") {
			t.Fatalf("title = %q", nc.Title)
		}
	})
}
