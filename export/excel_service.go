package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"deckgen/dataset"
)

// ExcelExportService writes dataset table snapshots to xlsx using excelize
type ExcelExportService struct{}

// NewExcelExportService creates a new Excel export service
func NewExcelExportService() *ExcelExportService {
	return &ExcelExportService{}
}

// ExportTableToExcel exports a dataset table snapshot to Excel format
func (s *ExcelExportService) ExportTableToExcel(t *dataset.Table, sheetName string) ([]byte, error) {
	if t == nil || len(t.Columns) == 0 {
		return nil, fmt.Errorf("no table data to export")
	}

	f := excelize.NewFile()
	defer f.Close()

	if sheetName == "" {
		sheetName = t.Name
	}
	if sheetName == "" {
		sheetName = "Data"
	}
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Size:  11,
			Color: "FFFFFF",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"4472C4"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "FFFFFF", Style: 1},
			{Type: "top", Color: "FFFFFF", Style: 1},
			{Type: "bottom", Color: "FFFFFF", Style: 1},
			{Type: "right", Color: "FFFFFF", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	dataStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Size: 10,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "left",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "D9D9D9", Style: 1},
			{Type: "top", Color: "D9D9D9", Style: 1},
			{Type: "bottom", Color: "D9D9D9", Style: 1},
			{Type: "right", Color: "D9D9D9", Style: 1},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create data style: %w", err)
	}

	for i, col := range t.Columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col.Name)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)

		width := float64(len(col.Name)) * 1.5
		if width < 10 {
			width = 10
		}
		if width > 50 {
			width = 50
		}
		colName, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, colName, colName, width)
	}
	f.SetRowHeight(sheetName, 1, 25)

	for rowIdx, rowData := range t.Rows {
		excelRow := rowIdx + 2
		for colIdx := 0; colIdx < len(t.Columns) && colIdx < len(rowData); colIdx++ {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, excelRow)
			f.SetCellValue(sheetName, cell, rowData[colIdx])
			f.SetCellStyle(sheetName, cell, cell, dataStyle)
		}
	}

	lastCol, _ := excelize.ColumnNumberToName(len(t.Columns))
	lastRow := len(t.Rows) + 1
	filterRange := fmt.Sprintf("A1:%s%d", lastCol, lastRow)
	f.AutoFilter(sheetName, filterRange, []excelize.AutoFilterOptions{})

	f.SetPanes(sheetName, &excelize.Panes{
		Freeze:      true,
		Split:       false,
		XSplit:      0,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	f.SetDocProps(&excelize.DocProperties{
		ContentStatus:  "Final",
		Created:        time.Now().Format(time.RFC3339),
		Creator:        "deckgen",
		Description:    "Dataset snapshot generated by deckgen",
		Identifier:     "xlsx",
		LastModifiedBy: "deckgen",
		Revision:       "1",
		Title:          sheetName,
		Version:        "1.0",
	})

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buffer.Bytes(), nil
}
