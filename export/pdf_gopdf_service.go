package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/signintech/gopdf"

	"deckgen/chart"
)

// GopdfService writes the deck as a PDF handout using gopdf
type GopdfService struct{}

// NewGopdfService creates a new gopdf service
func NewGopdfService() *GopdfService {
	return &GopdfService{}
}

// A4 portrait, gopdf works in points (1 point = 1/72 inch)
const (
	pdfPageWidth  = 595.28
	pdfPageHeight = 841.89

	pdfMarginLeft   = 36.0
	pdfMarginRight  = 36.0
	pdfMarginTop    = 45.0
	pdfMarginBottom = 45.0

	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight

	pdfFontTitle  = 22.0
	pdfFontBody   = 11.0
	pdfFontSmall  = 10.0
	pdfFontFooter = 9.0

	pdfLineHeightTitle = 28.0
	pdfLineHeightBody  = 16.0

	pdfChartHeight = 260.0
	pdfImageHeight = 200.0
)

// candidate TTF fonts, tried in order until one loads
var pdfFontPaths = []struct {
	name string
	path string
}{
	{"dejavu", "/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf"},
	{"liberation", "/usr/share/fonts/truetype/liberation/LiberationSans-Regular.ttf"},
	{"noto", "/usr/share/fonts/truetype/noto/NotoSans-Regular.ttf"},
	{"arial", "C:\\Windows\\Fonts\\arial.ttf"},
	{"helvetica", "/System/Library/Fonts/Helvetica.ttc"},
}

// ExportDeckToPDF renders the artifact as a one-section-per-slide PDF
// handout. Charts appear as rasterized images.
func (s *GopdfService) ExportDeckToPDF(art *Artifact) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontName string
	for _, font := range pdfFontPaths {
		if err := pdf.AddTTFFont(font.name, font.path); err == nil {
			fontName = font.name
			break
		}
	}
	if fontName == "" {
		return nil, fmt.Errorf("no usable TTF font found on this system")
	}
	if err := pdf.SetFont(fontName, "", 12); err != nil {
		return nil, fmt.Errorf("failed to set font: %w", err)
	}

	y := pdfMarginTop
	for i, sr := range art.Slides {
		y = s.addSlideSection(&pdf, sr, i, fontName, y)
	}
	s.addPageFooter(&pdf, fontName)

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// addSlideSection renders one slide's content block and returns the new
// cursor position.
func (s *GopdfService) addSlideSection(pdf *gopdf.GoPdf, sr SlideRender, idx int, fontName string, y float64) float64 {
	y = s.checkPageBreak(pdf, y, pdfLineHeightTitle+pdfLineHeightBody*2)

	// Slide number tag
	pdf.SetFont(fontName, "", pdfFontSmall)
	pdf.SetTextColor(148, 163, 184)
	pdf.SetX(pdfMarginLeft)
	pdf.SetY(y)
	pdf.Cell(nil, fmt.Sprintf("Slide %d", idx+1))
	y += pdfLineHeightBody

	// Title with accent bar
	pdf.SetFillColor(30, 64, 175)
	pdf.RectFromUpperLeftWithStyle(pdfMarginLeft, y, 6, 20, "F")
	pdf.SetFont(fontName, "B", pdfFontTitle)
	pdf.SetTextColor(30, 64, 175)
	pdf.SetX(pdfMarginLeft + 16)
	pdf.SetY(y)
	pdf.Cell(nil, sr.Title)
	y += pdfLineHeightTitle

	// Bullets
	pdf.SetFont(fontName, "", pdfFontBody)
	pdf.SetTextColor(51, 65, 85)
	for _, bullet := range sr.Bullets {
		for _, line := range wrapLine("• "+bullet, 90) {
			y = s.checkPageBreak(pdf, y, pdfLineHeightBody)
			pdf.SetX(pdfMarginLeft + 12)
			pdf.SetY(y)
			pdf.Cell(nil, line)
			y += pdfLineHeightBody
		}
	}

	// Charts render as images in PDF, native ones rasterized on the fly
	chartPNG := s.chartPNG(sr)
	if chartPNG != nil {
		y = s.addImage(pdf, chartPNG, y, pdfChartHeight)
	}
	if sr.Image != nil {
		y = s.addImage(pdf, sr.Image, y, pdfImageHeight)
	}

	// Speaker note
	if sr.Note != "" {
		y = s.checkPageBreak(pdf, y, pdfLineHeightBody)
		pdf.SetFont(fontName, "", pdfFontSmall)
		pdf.SetTextColor(100, 116, 139)
		pdf.SetX(pdfMarginLeft)
		pdf.SetY(y)
		pdf.Cell(nil, sr.Note)
		y += pdfLineHeightBody
	}

	// Divider between slides
	y += 8
	pdf.SetStrokeColor(226, 232, 240)
	pdf.Line(pdfMarginLeft, y, pdfPageWidth-pdfMarginRight, y)
	return y + 14
}

func (s *GopdfService) chartPNG(sr SlideRender) []byte {
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

func (s *GopdfService) addImage(pdf *gopdf.GoPdf, data []byte, y, height float64) float64 {
	imgHolder, err := gopdf.ImageHolderByBytes(data)
	if err != nil {
		return y
	}
	y = s.checkPageBreak(pdf, y, height+24)

	pdf.SetFillColor(250, 251, 252)
	pdf.RectFromUpperLeftWithStyle(pdfMarginLeft, y, pdfContentWidth, height+12, "F")
	pdf.SetStrokeColor(226, 232, 240)
	pdf.RectFromUpperLeftWithStyle(pdfMarginLeft, y, pdfContentWidth, height+12, "D")

	pdf.ImageByHolder(imgHolder, pdfMarginLeft+12, y+6, &gopdf.Rect{W: pdfContentWidth - 24, H: height})
	return y + height + 24
}

// checkPageBreak adds a page when the required space does not fit and
// returns the resulting Y cursor.
func (s *GopdfService) checkPageBreak(pdf *gopdf.GoPdf, y float64, requiredSpace float64) float64 {
	if y+requiredSpace > pdfPageHeight-pdfMarginBottom {
		pdf.AddPage()
		return pdfMarginTop
	}
	return y
}

func (s *GopdfService) addPageFooter(pdf *gopdf.GoPdf, fontName string) {
	pdf.SetFont(fontName, "", pdfFontFooter)
	pdf.SetTextColor(148, 163, 184)

	footerText := "Generated " + time.Now().Format("2006-01-02 15:04")
	footerWidth, _ := pdf.MeasureTextWidth(footerText)
	pdf.SetX((pdfPageWidth - footerWidth) / 2)
	pdf.SetY(pdfPageHeight - pdfMarginBottom + 15)
	pdf.Cell(nil, footerText)
}

// wrapLine wraps text to at most maxLen runes per line, preferring to
// break at spaces.
func wrapLine(text string, maxLen int) []string {
	if len(text) == 0 {
		return []string{""}
	}
	var lines []string
	runes := []rune(text)
	for len(runes) > 0 {
		if len(runes) <= maxLen {
			lines = append(lines, string(runes))
			break
		}
		breakPoint := maxLen
		for i := maxLen; i > maxLen/2; i-- {
			if runes[i] == ' ' {
				breakPoint = i + 1
				break
			}
		}
		lines = append(lines, string(runes[:breakPoint]))
		runes = runes[breakPoint:]
		for len(runes) > 0 && runes[0] == ' ' {
			runes = runes[1:]
		}
	}
	return lines
}
