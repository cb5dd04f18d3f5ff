// Package outline holds the typed slide model driving deck generation:
// slides, chart specifications, the layout rule, the exchange format, and
// the undo/redo history that guards every outline mutation.
package outline

// Transition is the slide transition recommended in the speaker notes.
// The empty value means "not set"; the slide then inherits the style's
// default transition at assembly time.
type Transition string

const (
	TransitionUnset Transition = ""
	TransitionNone  Transition = "None"
	TransitionFade  Transition = "Fade"
	TransitionPush  Transition = "Push"
	TransitionWipe  Transition = "Wipe"
	TransitionMorph Transition = "Morph"
	TransitionZoom  Transition = "Zoom"
)

// ParseTransition maps an exchange-format transition name to a Transition.
// Unknown names are treated as unset so the style default applies.
func ParseTransition(s string) Transition {
	switch Transition(s) {
	case TransitionNone, TransitionFade, TransitionPush, TransitionWipe, TransitionMorph, TransitionZoom:
		return Transition(s)
	default:
		return TransitionUnset
	}
}

// Align is a horizontal text alignment for titles and bullet bodies.
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// ManualChartKind selects the native chart type for inline category/value data.
type ManualChartKind string

const (
	ManualPie  ManualChartKind = "pie"
	ManualBar  ManualChartKind = "bar"
	ManualLine ManualChartKind = "line"
)

// DatasetChartKind selects the figure type for dataset-driven charts.
type DatasetChartKind string

const (
	DatasetBar     DatasetChartKind = "bar"
	DatasetLine    DatasetChartKind = "line"
	DatasetPie     DatasetChartKind = "pie"
	DatasetScatter DatasetChartKind = "scatter"
)

// ManualChart is inline chart data: categories and values are parallel
// arrays entered with the slide.
type ManualChart struct {
	Categories []string
	Values     []float64
	Kind       ManualChartKind
}

// DatasetChart references columns of the session dataset. It is resolved
// against whatever dataset is loaded when the deck is rendered, not the one
// that was active when the slide was authored.
type DatasetChart struct {
	XCol        string
	YCol        string
	CategoryCol string // optional; splits rows into one series per value
	Kind        DatasetChartKind
}

// ChartSpec is a tagged union: exactly one of Manual or Dataset is non-nil.
type ChartSpec struct {
	Manual  *ManualChart
	Dataset *DatasetChart
}

// Clone returns a deep copy of the spec.
func (c *ChartSpec) Clone() *ChartSpec {
	if c == nil {
		return nil
	}
	out := &ChartSpec{}
	if c.Manual != nil {
		m := *c.Manual
		m.Categories = append([]string(nil), c.Manual.Categories...)
		m.Values = append([]float64(nil), c.Manual.Values...)
		out.Manual = &m
	}
	if c.Dataset != nil {
		d := *c.Dataset
		out.Dataset = &d
	}
	return out
}

// Slide is one ordered unit of the outline. The pointer-typed text format
// fields override the resolved style when set; nil means inherit.
type Slide struct {
	Title      string
	Bullets    []string
	Chart      *ChartSpec
	ImageRef   string // key into the image registry; empty means no image
	Transition Transition

	TitleSize   *int
	TitleAlign  *Align
	TitleBold   *bool
	TitleItalic *bool
	BodySize    *int
	BodyAlign   *Align
	BodyBold    *bool
	BodyItalic  *bool
}

// Clone returns a deep copy of the slide; mutating the copy never affects
// the original.
func (s Slide) Clone() Slide {
	out := s
	out.Bullets = append([]string(nil), s.Bullets...)
	out.Chart = s.Chart.Clone()
	out.TitleSize = cloneInt(s.TitleSize)
	out.TitleAlign = cloneAlign(s.TitleAlign)
	out.TitleBold = cloneBool(s.TitleBold)
	out.TitleItalic = cloneBool(s.TitleItalic)
	out.BodySize = cloneInt(s.BodySize)
	out.BodyAlign = cloneAlign(s.BodyAlign)
	out.BodyBold = cloneBool(s.BodyBold)
	out.BodyItalic = cloneBool(s.BodyItalic)
	return out
}

// CloneSlides deep-copies a whole outline.
func CloneSlides(slides []Slide) []Slide {
	if slides == nil {
		return nil
	}
	out := make([]Slide, len(slides))
	for i, s := range slides {
		out[i] = s.Clone()
	}
	return out
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneBool(p *bool) *bool {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneAlign(p *Align) *Align {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
