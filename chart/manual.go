package chart

import (
	"fmt"

	"deckgen/outline"
)

// Kind identifies what shape of chart to draw.
type Kind string

const (
	KindBar     Kind = "bar"
	KindLine    Kind = "line"
	KindPie     Kind = "pie"
	KindScatter Kind = "scatter"
)

// Series holds one labeled run of category/value pairs. Values is keyed
// by category so renderers can look up points in category order.
type Series struct {
	Name       string
	Categories []string
	Values     map[string]float64
}

// NativeChart is a fully resolved chart ready to be embedded as a live
// chart object in the output document.
type NativeChart struct {
	Kind   Kind
	Title  string
	Series []Series
}

// BuildManualChart turns inline categories and values into a native
// chart. slideTitle names the slide for error messages and becomes the
// chart title.
func BuildManualChart(slideTitle string, spec *outline.ManualChart) (*NativeChart, error) {
	if spec == nil {
		return nil, &ChartDataError{Slide: slideTitle, Reason: "no chart data provided"}
	}
	if len(spec.Categories) == 0 {
		return nil, &ChartDataError{Slide: slideTitle, Reason: "no categories provided"}
	}
	if len(spec.Categories) != len(spec.Values) {
		return nil, &ChartDataError{
			Slide:  slideTitle,
			Reason: fmt.Sprintf("category count %d does not match value count %d", len(spec.Categories), len(spec.Values)),
		}
	}

	var kind Kind
	switch spec.Kind {
	case outline.ManualPie:
		kind = KindPie
	case outline.ManualBar:
		kind = KindBar
	case outline.ManualLine:
		kind = KindLine
	default:
		return nil, &ChartDataError{Slide: slideTitle, Reason: fmt.Sprintf("unsupported chart type %q", spec.Kind)}
	}

	values := make(map[string]float64, len(spec.Categories))
	categories := make([]string, 0, len(spec.Categories))
	for i, cat := range spec.Categories {
		if _, dup := values[cat]; !dup {
			categories = append(categories, cat)
		}
		// A repeated category keeps the last value seen.
		values[cat] = spec.Values[i]
	}

	return &NativeChart{
		Kind:  kind,
		Title: slideTitle + " Chart",
		Series: []Series{{
			Name:       "Data",
			Categories: categories,
			Values:     values,
		}},
	}, nil
}
