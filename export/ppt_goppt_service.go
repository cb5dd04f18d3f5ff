package export

import (
	"bytes"
	"fmt"

	ppt "github.com/VantageDataChat/GoPPT"

	"deckgen/chart"
	"deckgen/outline"
	"deckgen/style"
)

// GoPPTService writes an assembled deck to PPTX using GoPPT (pure Go,
// zero dependencies)
type GoPPTService struct{}

// NewGoPPTService creates a new GoPPT service
func NewGoPPTService() *GoPPTService {
	return &GoPPTService{}
}

// Slide geometry, 4:3
const (
	emuPerInch = 914400

	deckSlideWidth  = int64(10.0 * emuPerInch)
	deckSlideHeight = int64(7.5 * emuPerInch)

	deckMarginLeft   = int64(0.5 * emuPerInch)
	deckContentWidth = int64(9.0 * emuPerInch)

	deckTitleTop    = int64(0.4 * emuPerInch)
	deckTitleHeight = int64(1.0 * emuPerInch)
	deckBodyTop     = int64(1.5 * emuPerInch)
	deckBodyHeight  = int64(5.2 * emuPerInch)

	deckImageLeft = int64(0.5 * emuPerInch)
	deckImageTop  = int64(3.5 * emuPerInch)
	deckImageWide = int64(4.0 * emuPerInch)
	deckImageTall = int64(3.0 * emuPerInch)

	deckNoteTop    = int64(7.0 * emuPerInch)
	deckNoteHeight = int64(0.35 * emuPerInch)

	deckLogoSize   = int64(0.5 * emuPerInch)
	deckLogoMargin = int64(0.2 * emuPerInch)

	deckFontNote = 9
)

// helper: create a solid fill
func solidFill(argb string) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb))
}

// helper: set paragraph alignment from a resolved Align
func setAlign(p *ppt.Paragraph, a outline.Align) {
	switch a {
	case outline.AlignCenter:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	case outline.AlignRight:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
	}
}

// ExportDeck writes the artifact as a PPTX file.
func (s *GoPPTService) ExportDeck(art *Artifact) ([]byte, error) {
	p := ppt.New()
	if len(art.Slides) > 0 {
		p.GetDocumentProperties().Title = art.Slides[0].Title
	}
	p.GetDocumentProperties().Creator = "deckgen"

	for i, sr := range art.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		s.renderSlide(slide, sr, art)
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("failed to create PPT writer: %w", err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to save PPT: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *GoPPTService) renderSlide(slide *ppt.Slide, sr SlideRender, art *Artifact) {
	s.setBackground(slide, art.Background)

	if sr.Layout != outline.LayoutBlank || sr.Title != "" {
		s.addTitle(slide, sr, art)
	}
	if len(sr.Bullets) > 0 {
		s.addBullets(slide, sr, art)
	}
	if sr.Chart != nil {
		x, y, w, h := chart.DefaultGeometry()
		chart.AddToSlide(slide, sr.Chart, x, y, w, h, art.FontName, art.FontColor.ARGB())
	}
	if sr.ChartImage != nil {
		imgShape := slide.CreateDrawingShape()
		imgShape.SetImageData(sr.ChartImage.PNG, "image/png")
		x, y, w, h := chart.DefaultGeometry()
		imgShape.SetOffsetX(x).SetOffsetY(y)
		imgShape.SetWidth(w).SetHeight(h)
	}
	if sr.Image != nil {
		imgShape := slide.CreateDrawingShape()
		imgShape.SetImageData(sr.Image, MimeForImage(sr.ImageName))
		imgShape.SetOffsetX(deckImageLeft).SetOffsetY(deckImageTop)
		imgShape.SetWidth(deckImageWide).SetHeight(deckImageTall)
	}
	if sr.Note != "" {
		s.addNote(slide, sr.Note, art)
	}
	if art.Logo != nil {
		s.addLogo(slide, art)
	}
}

// addLogo stamps the branding image in the top-right corner.
func (s *GoPPTService) addLogo(slide *ppt.Slide, art *Artifact) {
	logoShape := slide.CreateDrawingShape()
	logoShape.SetImageData(art.Logo, art.LogoMime)
	logoShape.SetOffsetX(deckSlideWidth - deckLogoSize - deckLogoMargin)
	logoShape.SetOffsetY(deckLogoMargin)
	logoShape.SetWidth(deckLogoSize).SetHeight(deckLogoSize)
}

// setBackground paints the slide fill from the style background.
func (s *GoPPTService) setBackground(slide *ppt.Slide, bg style.Background) {
	fill := &ppt.Fill{}
	switch bg.Kind {
	case style.BackgroundGradient:
		fill.Type = ppt.FillGradientLinear
		fill.Color = ppt.NewColor(bg.Color1.ARGB())
		fill.EndColor = ppt.NewColor(bg.Color2.ARGB())
		fill.Rotation = 90
	default:
		fill.Type = ppt.FillSolid
		fill.Color = ppt.NewColor(bg.Color1.ARGB())
	}
	slide.SetBackground(fill)
}

func (s *GoPPTService) addTitle(slide *ppt.Slide, sr SlideRender, art *Artifact) {
	titleShape := slide.CreateRichTextShape()
	titleShape.SetOffsetX(deckMarginLeft).SetOffsetY(deckTitleTop)
	titleShape.SetWidth(deckContentWidth).SetHeight(deckTitleHeight)
	titleShape.SetWordWrap(true)

	tr := titleShape.CreateTextRun(sr.Title)
	tr.GetFont().
		SetName(art.FontName).
		SetSize(sr.TitleFormat.Size).
		SetBold(sr.TitleFormat.Bold).
		SetItalic(sr.TitleFormat.Italic).
		SetColor(ppt.NewColor(art.FontColor.ARGB()))
	setAlign(titleShape.GetActiveParagraph(), sr.TitleFormat.Align)
}

func (s *GoPPTService) addBullets(slide *ppt.Slide, sr SlideRender, art *Artifact) {
	bodyShape := slide.CreateRichTextShape()
	bodyShape.SetOffsetX(deckMarginLeft).SetOffsetY(deckBodyTop)
	bodyShape.SetWidth(deckContentWidth).SetHeight(deckBodyHeight)
	bodyShape.SetWordWrap(true)

	for i, bullet := range sr.Bullets {
		if i > 0 {
			bodyShape.CreateParagraph()
		}
		tr := bodyShape.CreateTextRun("• " + bullet)
		tr.GetFont().
			SetName(art.FontName).
			SetSize(sr.BodyFormat.Size).
			SetBold(sr.BodyFormat.Bold).
			SetItalic(sr.BodyFormat.Italic).
			SetColor(ppt.NewColor(art.FontColor.ARGB()))
		setAlign(bodyShape.GetActiveParagraph(), sr.BodyFormat.Align)
	}
}

// addNote renders the speaker note as a small footer line; the writer has
// no notes part.
func (s *GoPPTService) addNote(slide *ppt.Slide, note string, art *Artifact) {
	noteShape := slide.CreateRichTextShape()
	noteShape.SetOffsetX(deckMarginLeft).SetOffsetY(deckNoteTop)
	noteShape.SetWidth(deckContentWidth).SetHeight(deckNoteHeight)
	tr := noteShape.CreateTextRun(note)
	tr.GetFont().
		SetName(art.FontName).
		SetSize(deckFontNote).
		SetItalic(true).
		SetColor(ppt.NewColor("FF808080"))
}
