package export

import (
	"fmt"
	"time"

	goword "github.com/VantageDataChat/GoWord"
	"github.com/VantageDataChat/GoWord/style"

	"deckgen/chart"
)

// WordExportService writes the deck outline as a Word handout using
// GoWord (pure Go)
type WordExportService struct{}

// NewWordExportService creates a new Word export service
func NewWordExportService() *WordExportService {
	return &WordExportService{}
}

// ExportDeckToWord renders the artifact as a DOCX outline handout: one
// heading per slide with its bullets, chart data summary and note.
func (s *WordExportService) ExportDeckToWord(art *Artifact) ([]byte, error) {
	doc := goword.New()
	title := "Presentation Outline"
	if len(art.Slides) > 0 {
		title = art.Slides[0].Title
	}
	doc.Properties.Title = title
	doc.Properties.Creator = "deckgen"
	doc.Properties.Description = "Outline handout generated by deckgen"

	sec := doc.AddSection()

	sec.AddTitle(title, 1)
	sec.AddText(time.Now().Format("2006-01-02 15:04"),
		&style.FontStyle{Size: 10, Color: "94A3B8"},
		&style.ParagraphStyle{Alignment: style.AlignCenter})
	sec.AddTextBreak(1)

	fontColor := art.FontColor.ARGB()[2:]

	for i, sr := range art.Slides {
		sec.AddText(fmt.Sprintf("Slide %d", i+1),
			&style.FontStyle{Size: 9, Color: "94A3B8"},
			nil)
		sec.AddText(sr.Title,
			&style.FontStyle{Bold: true, Size: 14, Color: fontColor},
			nil)

		for _, bullet := range sr.Bullets {
			sec.AddText("• "+bullet,
				&style.FontStyle{Size: 11, Color: "334155"},
				&style.ParagraphStyle{Indent: 360})
		}

		if sr.Chart != nil || sr.ChartImage != nil {
			s.addChartSummary(sec, sr)
		}
		if sr.Image != nil {
			sec.AddText(fmt.Sprintf("[Image: %s]", sr.ImageName),
				&style.FontStyle{Size: 10, Color: "64748B", Italic: true},
				nil)
		}
		if sr.Note != "" {
			sec.AddText(sr.Note,
				&style.FontStyle{Size: 9, Color: "94A3B8", Italic: true},
				nil)
		}
		sec.AddTextBreak(1)
	}

	sec.AddText("Generated by deckgen",
		&style.FontStyle{Size: 9, Color: "94A3B8"},
		&style.ParagraphStyle{Alignment: style.AlignCenter})

	data, err := doc.ToBytes()
	if err != nil {
		return nil, fmt.Errorf("failed to write Word file: %w", err)
	}
	return data, nil
}

// addChartSummary writes a slide's native chart data as a small table.
// Rasterized charts only get a marker line since their points are no
// longer available.
func (s *WordExportService) addChartSummary(sec *goword.Section, sr SlideRender) {
	if sr.Chart == nil {
		sec.AddText("[Chart image]",
			&style.FontStyle{Size: 10, Color: "64748B", Italic: true},
			nil)
		return
	}

	sec.AddText(sr.Chart.Title,
		&style.FontStyle{Bold: true, Size: 11, Color: "3B82F6"},
		nil)

	ts := &style.TableStyle{Width: 9000, Alignment: "center"}
	ts.SetAllBorders("single", 4, "D9D9D9")
	tbl := sec.AddTable(ts)

	cols := 1 + len(sr.Chart.Series)
	colWidth := 9000 / cols
	tbl.Grid = make([]int, cols)
	for i := range tbl.Grid {
		tbl.Grid[i] = colWidth
	}

	headerRow := tbl.AddRow(0, &style.RowStyle{IsHeader: true})
	headerRow.AddCell(colWidth, &style.CellStyle{
		Shading: &style.Shading{Fill: "4472C4"},
	}).AddText("Category", &style.FontStyle{Bold: true, Size: 9, Color: "FFFFFF"}, nil)
	for _, series := range sr.Chart.Series {
		headerRow.AddCell(colWidth, &style.CellStyle{
			Shading: &style.Shading{Fill: "4472C4"},
		}).AddText(series.Name, &style.FontStyle{Bold: true, Size: 9, Color: "FFFFFF"}, nil)
	}

	for _, cat := range chartCategories(sr.Chart.Series) {
		row := tbl.AddRow(0, nil)
		row.AddCell(colWidth, nil).AddText(cat, &style.FontStyle{Size: 9}, nil)
		for _, series := range sr.Chart.Series {
			cell := ""
			if v, ok := series.Values[cat]; ok {
				cell = fmt.Sprintf("%g", v)
			}
			row.AddCell(colWidth, nil).AddText(cell, &style.FontStyle{Size: 9}, nil)
		}
	}
}

// chartCategories merges series category lists preserving first-seen order.
func chartCategories(series []chart.Series) []string {
	var cats []string
	seen := map[string]bool{}
	for _, s := range series {
		for _, c := range s.Categories {
			if !seen[c] {
				seen[c] = true
				cats = append(cats, c)
			}
		}
	}
	return cats
}
