package export

import (
	"fmt"

	"deckgen/chart"
	"deckgen/dataset"
	"deckgen/outline"
	"deckgen/style"
)

// Assembler turns an outline and a resolved style into an Artifact.
// Elements that cannot be built are skipped with a warning; assembly
// itself only fails on an empty outline.
type Assembler struct {
	Images  ImageRegistry  // nil means no images resolve
	Dataset *dataset.Table // table dataset charts resolve against; may be nil
	Logf    func(string)   // nil disables logging

	// AutoLayout selects each slide's layout from its content. When false
	// every slide uses the style's default layout.
	AutoLayout bool

	// RasterWidth is the pixel width of rasterized dataset charts;
	// <= 0 uses the renderer default.
	RasterWidth int

	// Logo and LogoName carry an optional branding image that deck
	// writers stamp on every slide.
	Logo     []byte
	LogoName string
}

// Assemble builds the render plan for every slide in order.
func (a *Assembler) Assemble(slides []outline.Slide, eff style.StyleConfig) (*Artifact, []Warning, error) {
	if len(slides) == 0 {
		return nil, nil, fmt.Errorf("outline has no slides")
	}
	logf := a.Logf
	if logf == nil {
		logf = func(string) {}
	}

	art := &Artifact{
		Slides:     make([]SlideRender, 0, len(slides)),
		FontName:   eff.FontName,
		FontColor:  eff.FontColor,
		Background: eff.Background,
	}
	if len(a.Logo) > 0 {
		art.Logo = a.Logo
		art.LogoMime = MimeForImage(a.LogoName)
	}
	var warnings []Warning

	for i, s := range slides {
		layout := eff.DefaultLayout
		if a.AutoLayout {
			layout = outline.SelectLayout(s)
		}
		titleFmt, bodyFmt := style.ResolveSlideText(s, eff)

		sr := SlideRender{
			Index:       i,
			Layout:      layout,
			Title:       s.Title,
			TitleFormat: titleFmt,
			Bullets:     append([]string(nil), s.Bullets...),
			BodyFormat:  bodyFmt,
		}

		if s.Chart != nil {
			nc, rc, err := a.buildChart(s, eff)
			if err != nil {
				warnings = append(warnings, Warning{SlideIndex: i, Element: "chart", Message: err.Error()})
				logf(fmt.Sprintf("slide %d: skipping chart: %v", i+1, err))
			} else {
				sr.Chart = nc
				sr.ChartImage = rc
			}
		}

		if s.ImageRef != "" {
			var data []byte
			ok := false
			if a.Images != nil {
				data, ok = a.Images.Lookup(s.ImageRef)
			}
			if !ok {
				msg := fmt.Sprintf("image %q not found", s.ImageRef)
				warnings = append(warnings, Warning{SlideIndex: i, Element: "image", Message: msg})
				logf(fmt.Sprintf("slide %d: skipping image: %s", i+1, msg))
			} else {
				sr.Image = data
				sr.ImageName = s.ImageRef
			}
		}

		transition := s.Transition
		if transition == outline.TransitionUnset {
			transition = eff.DefaultTransition
		}
		sr.Note = "Recommended transition: " + string(transition)

		art.Slides = append(art.Slides, sr)
	}
	return art, warnings, nil
}

// buildChart resolves either chart variant. Manual charts stay native;
// dataset charts are validated against the attached table and rasterized.
func (a *Assembler) buildChart(s outline.Slide, eff style.StyleConfig) (*chart.NativeChart, *chart.RasterChart, error) {
	switch {
	case s.Chart.Manual != nil:
		nc, err := chart.BuildManualChart(s.Title, s.Chart.Manual)
		if err != nil {
			return nil, nil, err
		}
		return nc, nil, nil
	case s.Chart.Dataset != nil:
		nc, err := chart.BuildDatasetChart(s.Title, s.Chart.Dataset, a.Dataset)
		if err != nil {
			return nil, nil, err
		}
		rc, err := chart.Rasterize(nc, a.RasterWidth)
		if err != nil {
			return nil, nil, err
		}
		return nil, rc, nil
	default:
		return nil, nil, fmt.Errorf("chart specification is empty")
	}
}
