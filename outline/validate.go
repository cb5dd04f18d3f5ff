package outline

import (
	"fmt"
	"strings"
)

// Normalize trims whitespace from the title and bullets, drops empty
// bullets, and lower-cases chart kind tags. It is pure: the input slide is
// not modified.
func Normalize(s Slide) Slide {
	out := s.Clone()
	out.Title = strings.TrimSpace(out.Title)

	bullets := out.Bullets[:0]
	for _, b := range out.Bullets {
		b = strings.TrimSpace(b)
		if b != "" {
			bullets = append(bullets, b)
		}
	}
	if len(bullets) == 0 {
		bullets = nil
	}
	out.Bullets = bullets

	if out.Chart != nil {
		if m := out.Chart.Manual; m != nil {
			m.Kind = ManualChartKind(strings.ToLower(string(m.Kind)))
			cats := m.Categories[:0]
			for _, c := range m.Categories {
				c = strings.TrimSpace(c)
				if c != "" {
					cats = append(cats, c)
				}
			}
			m.Categories = cats
		}
		if d := out.Chart.Dataset; d != nil {
			d.Kind = DatasetChartKind(strings.ToLower(string(d.Kind)))
			d.XCol = strings.TrimSpace(d.XCol)
			d.YCol = strings.TrimSpace(d.YCol)
			d.CategoryCol = strings.TrimSpace(d.CategoryCol)
		}
	}
	return out
}

// Validate checks the rules a slide must satisfy before a commit: a
// non-empty title and, when a chart is present, internal chart consistency.
func Validate(s Slide) error {
	if strings.TrimSpace(s.Title) == "" {
		return &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if s.Chart == nil {
		return nil
	}
	m, d := s.Chart.Manual, s.Chart.Dataset
	switch {
	case m == nil && d == nil:
		return &ValidationError{Field: "chart", Reason: "neither manual nor dataset variant is set"}
	case m != nil && d != nil:
		return &ValidationError{Field: "chart", Reason: "both manual and dataset variants are set"}
	case m != nil:
		switch m.Kind {
		case ManualPie, ManualBar, ManualLine:
		default:
			return &ValidationError{Field: "chart", Reason: fmt.Sprintf("unknown manual chart kind %q", m.Kind)}
		}
		if len(m.Categories) == 0 {
			return &ValidationError{Field: "chart", Reason: "no categories"}
		}
		if len(m.Categories) != len(m.Values) {
			return &ValidationError{
				Field:  "chart",
				Reason: fmt.Sprintf("%d categories but %d values", len(m.Categories), len(m.Values)),
			}
		}
	default:
		switch d.Kind {
		case DatasetBar, DatasetLine, DatasetPie, DatasetScatter:
		default:
			return &ValidationError{Field: "chart", Reason: fmt.Sprintf("unknown dataset chart kind %q", d.Kind)}
		}
		if d.XCol == "" || d.YCol == "" {
			return &ValidationError{Field: "chart", Reason: "dataset chart needs both x_col and y_col"}
		}
	}
	return nil
}
