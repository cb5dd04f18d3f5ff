package export

import (
	"bytes"
	"fmt"

	gospreadsheet "github.com/VantageDataChat/GoExcel"
)

// GoExcelExportService writes the deck's chart data appendix using
// GoExcel (pure Go)
type GoExcelExportService struct{}

// NewGoExcelExportService creates a new GoExcel export service
func NewGoExcelExportService() *GoExcelExportService {
	return &GoExcelExportService{}
}

// ExportChartDataToExcel writes one worksheet per native chart in the
// deck: categories in the first column, one column per series. Slides
// without native chart data are skipped.
func (s *GoExcelExportService) ExportChartDataToExcel(art *Artifact) ([]byte, error) {
	wb := gospreadsheet.New()

	headerStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
			Name:  art.FontName,
		}).
		SetFill(&gospreadsheet.Fill{
			Type:  "solid",
			Color: "4472C4",
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignCenter,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "FFFFFF"},
		})

	dataStyle := gospreadsheet.NewStyle().
		SetFont(&gospreadsheet.Font{
			Size: 10,
			Name: art.FontName,
		}).
		SetAlignment(&gospreadsheet.Alignment{
			Horizontal: gospreadsheet.AlignLeft,
			Vertical:   gospreadsheet.AlignMiddle,
		}).
		SetBorders(&gospreadsheet.Borders{
			Left:   gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Top:    gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Bottom: gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
			Right:  gospreadsheet.Border{Style: gospreadsheet.BorderThin, Color: "D9D9D9"},
		})

	sheetIndex := 0
	for i, sr := range art.Slides {
		if sr.Chart == nil {
			continue
		}

		sheetName := fmt.Sprintf("Slide %d", i+1)
		var ws *gospreadsheet.Worksheet
		if sheetIndex == 0 {
			ws = wb.GetActiveSheet()
			ws.SetTitle(sheetName)
		} else {
			var err error
			ws, err = wb.AddSheet(sheetName)
			if err != nil {
				return nil, fmt.Errorf("failed to create sheet %s: %w", sheetName, err)
			}
		}
		sheetIndex++

		// Header row: Category plus one column per series
		cellName, _ := gospreadsheet.CellName(0, 0)
		ws.SetCellValue(cellName, "Category")
		ws.SetCellStyle(cellName, headerStyle)
		ws.SetColumnWidth(0, 24)
		for col, series := range sr.Chart.Series {
			cellName, _ := gospreadsheet.CellName(0, col+1)
			ws.SetCellValue(cellName, series.Name)
			ws.SetCellStyle(cellName, headerStyle)
			ws.SetColumnWidth(col+1, 16)
		}
		ws.SetRowHeight(0, 25)

		for row, cat := range chartCategories(sr.Chart.Series) {
			cellName, _ := gospreadsheet.CellName(row+1, 0)
			ws.SetCellValue(cellName, cat)
			ws.SetCellStyle(cellName, dataStyle)
			for col, series := range sr.Chart.Series {
				cellName, _ := gospreadsheet.CellName(row+1, col+1)
				if v, ok := series.Values[cat]; ok {
					ws.SetCellValue(cellName, v)
				}
				ws.SetCellStyle(cellName, dataStyle)
			}
		}

		ws.FreezePane("A2")
	}

	if sheetIndex == 0 {
		return nil, fmt.Errorf("no chart data to export")
	}

	wb.Properties.Title = "Chart Data Appendix"
	wb.Properties.Creator = "deckgen"
	wb.Properties.Description = "Chart data appendix generated by deckgen"

	var buf bytes.Buffer
	writer := gospreadsheet.NewXLSXWriter()
	if err := writer.Write(wb, &buf); err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buf.Bytes(), nil
}
