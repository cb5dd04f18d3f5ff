package outline

import (
	_ "embed"
	"encoding/json"
	"strings"
)

// slideJSON is the exchange-format shape of one slide. Absent keys mean
// "inherit" for the format fields and "none" for chart/image.
type slideJSON struct {
	Title          string         `json:"title"`
	Content        []string       `json:"content,omitempty"`
	Chart          string         `json:"chart,omitempty"`
	ChartInputType string         `json:"chart_input_type,omitempty"`
	ChartData      *chartDataJSON `json:"chart_data,omitempty"`
	Image          string         `json:"image,omitempty"`
	Transition     string         `json:"transition,omitempty"`

	TitleSize   *int    `json:"title_size,omitempty"`
	TitleAlign  *string `json:"title_align,omitempty"`
	TitleBold   *bool   `json:"title_bold,omitempty"`
	TitleItalic *bool   `json:"title_italic,omitempty"`
	BodySize    *int    `json:"body_size,omitempty"`
	BodyAlign   *string `json:"body_align,omitempty"`
	BodyBold    *bool   `json:"body_bold,omitempty"`
	BodyItalic  *bool   `json:"body_italic,omitempty"`
}

type chartDataJSON struct {
	Categories  []string  `json:"categories,omitempty"`
	Values      []float64 `json:"values,omitempty"`
	XCol        string    `json:"x_col,omitempty"`
	YCol        string    `json:"y_col,omitempty"`
	CategoryCol string    `json:"category_col,omitempty"`
}

// ParseOutline decodes the outline exchange format: a JSON array of slide
// objects. A payload that is not an array at the top level fails with
// MalformedOutlineError and nothing is decoded.
func ParseOutline(data []byte) ([]Slide, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &MalformedOutlineError{Reason: "top level must be a list of slides", Err: err}
	}
	slides := make([]Slide, 0, len(raw))
	for _, msg := range raw {
		var sj slideJSON
		if err := json.Unmarshal(msg, &sj); err != nil {
			return nil, &MalformedOutlineError{Reason: "slide entry is not an object", Err: err}
		}
		slides = append(slides, sj.toSlide())
	}
	return slides, nil
}

func (sj slideJSON) toSlide() Slide {
	s := Slide{
		Title:      sj.Title,
		Bullets:    sj.Content,
		ImageRef:   strings.TrimSpace(sj.Image),
		Transition: ParseTransition(sj.Transition),
		TitleSize:  sj.TitleSize,
		TitleBold:  sj.TitleBold,
		BodySize:   sj.BodySize,
		BodyBold:   sj.BodyBold,
	}
	s.TitleItalic = sj.TitleItalic
	s.BodyItalic = sj.BodyItalic
	if sj.TitleAlign != nil {
		a := Align(strings.ToLower(*sj.TitleAlign))
		s.TitleAlign = &a
	}
	if sj.BodyAlign != nil {
		a := Align(strings.ToLower(*sj.BodyAlign))
		s.BodyAlign = &a
	}

	kind := strings.ToLower(strings.TrimSpace(sj.Chart))
	if kind == "" || kind == "none" || sj.ChartData == nil {
		return s
	}
	if strings.EqualFold(sj.ChartInputType, "dataset") {
		s.Chart = &ChartSpec{Dataset: &DatasetChart{
			XCol:        sj.ChartData.XCol,
			YCol:        sj.ChartData.YCol,
			CategoryCol: sj.ChartData.CategoryCol,
			Kind:        DatasetChartKind(kind),
		}}
		return s
	}
	s.Chart = &ChartSpec{Manual: &ManualChart{
		Categories: sj.ChartData.Categories,
		Values:     sj.ChartData.Values,
		Kind:       ManualChartKind(kind),
	}}
	return s
}

func fromSlide(s Slide) slideJSON {
	sj := slideJSON{
		Title:       s.Title,
		Content:     s.Bullets,
		Image:       s.ImageRef,
		Transition:  string(s.Transition),
		TitleSize:   s.TitleSize,
		TitleBold:   s.TitleBold,
		TitleItalic: s.TitleItalic,
		BodySize:    s.BodySize,
		BodyBold:    s.BodyBold,
		BodyItalic:  s.BodyItalic,
	}
	if s.TitleAlign != nil {
		a := string(*s.TitleAlign)
		sj.TitleAlign = &a
	}
	if s.BodyAlign != nil {
		a := string(*s.BodyAlign)
		sj.BodyAlign = &a
	}
	if s.Chart != nil {
		switch {
		case s.Chart.Manual != nil:
			m := s.Chart.Manual
			sj.Chart = string(m.Kind)
			sj.ChartInputType = "Manual"
			sj.ChartData = &chartDataJSON{Categories: m.Categories, Values: m.Values}
		case s.Chart.Dataset != nil:
			d := s.Chart.Dataset
			sj.Chart = string(d.Kind)
			sj.ChartInputType = "Dataset"
			sj.ChartData = &chartDataJSON{XCol: d.XCol, YCol: d.YCol, CategoryCol: d.CategoryCol}
		}
	}
	return sj
}

// MarshalOutline encodes slides back into the exchange format.
func MarshalOutline(slides []Slide) ([]byte, error) {
	wire := make([]slideJSON, len(slides))
	for i, s := range slides {
		wire[i] = fromSlide(s)
	}
	return json.MarshalIndent(wire, "", "  ")
}

//go:embed default_outline.json
var defaultOutlineJSON []byte

// DefaultOutline returns the built-in 16-slide review-analysis outline.
func DefaultOutline() ([]Slide, error) {
	return ParseOutline(defaultOutlineJSON)
}
