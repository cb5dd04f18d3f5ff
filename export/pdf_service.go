package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontfamily"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"deckgen/chart"
	"deckgen/outline"
)

// PDFExportService writes the deck as a PDF handout.
type PDFExportService struct{}

// NewPDFExportService creates a new PDF export service
func NewPDFExportService() *PDFExportService {
	return &PDFExportService{}
}

// ExportDeckToPDF renders the artifact to PDF. Tries gopdf first
// (TrueType fonts, denser layout), falls back to maroto when no usable
// system font is found.
func (s *PDFExportService) ExportDeckToPDF(art *Artifact) ([]byte, error) {
	gopdfService := NewGopdfService()
	pdfBytes, err := gopdfService.ExportDeckToPDF(art)
	if err == nil {
		return pdfBytes, nil
	}
	return s.exportWithMaroto(art)
}

// exportWithMaroto uses maroto (fallback implementation)
func (s *PDFExportService) exportWithMaroto(art *Artifact) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithDefaultFont(&props.Font{
			Family: fontfamily.Arial,
			Size:   10,
		}).
		Build()

	m := maroto.New(cfg)

	title := "Presentation Handout"
	if len(art.Slides) > 0 {
		title = art.Slides[0].Title
	}
	s.addHeader(m, title)

	for i, sr := range art.Slides {
		s.addSlide(m, sr, i, art)
	}
	s.addFooter(m)

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return document.GetBytes(), nil
}

// addHeader adds the handout header
func (s *PDFExportService) addHeader(m core.Maroto, title string) {
	m.AddRow(20,
		col.New(12).Add(
			text.New(title, props.Text{
				Family: fontfamily.Arial,
				Size:   18,
				Style:  fontstyle.Bold,
				Align:  align.Center,
				Color:  &props.Color{Red: 30, Green: 64, Blue: 175},
			}),
		),
	)

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	m.AddRow(8,
		col.New(12).Add(
			text.New("Generated: "+timestamp, props.Text{
				Family: fontfamily.Arial,
				Size:   9,
				Align:  align.Center,
				Color:  &props.Color{Red: 100, Green: 116, Blue: 139},
			}),
		),
	)

	m.AddRow(5)
}

// addSlide adds one slide's section
func (s *PDFExportService) addSlide(m core.Maroto, sr SlideRender, idx int, art *Artifact) {
	m.AddRow(6,
		col.New(12).Add(
			text.New(fmt.Sprintf("Slide %d", idx+1), props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Color:  &props.Color{Red: 148, Green: 163, Blue: 184},
			}),
		),
	)
	m.AddRow(10,
		col.New(12).Add(
			text.New(sr.Title, props.Text{
				Family: fontfamily.Arial,
				Size:   13,
				Style:  fontstyle.Bold,
				Color:  &props.Color{Red: 30, Green: 64, Blue: 175},
			}),
		),
	)

	bodyAlign := align.Left
	if sr.BodyFormat.Align == outline.AlignCenter {
		bodyAlign = align.Center
	} else if sr.BodyFormat.Align == outline.AlignRight {
		bodyAlign = align.Right
	}
	for _, bullet := range sr.Bullets {
		m.AddRow(7,
			col.New(12).Add(
				text.New("• "+bullet, props.Text{
					Family: fontfamily.Arial,
					Size:   9,
					Align:  bodyAlign,
				}),
			),
		)
	}

	chartPNG := s.chartPNG(sr)
	if chartPNG != nil {
		m.AddRow(80,
			col.New(12).Add(
				image.NewFromBytes(chartPNG, extension.Png),
			),
		)
	}
	if sr.Image != nil {
		ext := extension.Png
		if MimeForImage(sr.ImageName) == "image/jpeg" {
			ext = extension.Jpg
		}
		m.AddRow(60,
			col.New(12).Add(
				image.NewFromBytes(sr.Image, ext),
			),
		)
	}

	if sr.Note != "" {
		m.AddRow(6,
			col.New(12).Add(
				text.New(sr.Note, props.Text{
					Family: fontfamily.Arial,
					Size:   8,
					Style:  fontstyle.Italic,
					Color:  &props.Color{Red: 100, Green: 116, Blue: 139},
				}),
			),
		)
	}

	m.AddRow(5)
}

func (s *PDFExportService) chartPNG(sr SlideRender) []byte {
	if sr.ChartImage != nil {
		return sr.ChartImage.PNG
	}
	if sr.Chart != nil {
		if rc, err := chart.Rasterize(sr.Chart, 0); err == nil {
			return rc.PNG
		}
	}
	return nil
}

// addFooter adds the handout footer
func (s *PDFExportService) addFooter(m core.Maroto) {
	m.AddRow(10,
		col.New(12).Add(
			text.New("Generated by deckgen", props.Text{
				Family: fontfamily.Arial,
				Size:   8,
				Align:  align.Center,
				Color:  &props.Color{Red: 148, Green: 163, Blue: 184},
			}),
		),
	)
}
