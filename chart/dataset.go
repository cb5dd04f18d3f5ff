package chart

import (
	"fmt"
	"sort"

	"deckgen/dataset"
	"deckgen/outline"
)

// ValidateDatasetSpec checks a dataset chart reference against the
// attached table without rendering anything. It returns the column
// indexes it resolved so BuildDatasetChart can reuse them.
func ValidateDatasetSpec(slideTitle string, spec *outline.DatasetChart, t *dataset.Table) (xIdx, yIdx, catIdx int, err error) {
	if spec == nil {
		return 0, 0, 0, &DatasetValidationError{Slide: slideTitle, Reason: "no dataset chart specification"}
	}
	if t == nil {
		return 0, 0, 0, &DatasetValidationError{Slide: slideTitle, Reason: "no dataset is attached"}
	}
	if spec.XCol == "" || spec.YCol == "" {
		return 0, 0, 0, &DatasetValidationError{Slide: slideTitle, Reason: "x_col and y_col are both required"}
	}

	xIdx = t.ColumnIndex(spec.XCol)
	if xIdx < 0 {
		return 0, 0, 0, &ColumnNotFoundError{Column: spec.XCol, Table: t.Name}
	}
	yIdx = t.ColumnIndex(spec.YCol)
	if yIdx < 0 {
		return 0, 0, 0, &ColumnNotFoundError{Column: spec.YCol, Table: t.Name}
	}
	if !t.Columns[yIdx].Numeric() {
		return 0, 0, 0, &DatasetValidationError{
			Slide:  slideTitle,
			Reason: fmt.Sprintf("column %q is %s, not numeric", spec.YCol, t.Columns[yIdx].Type),
		}
	}
	catIdx = -1
	if spec.CategoryCol != "" {
		catIdx = t.ColumnIndex(spec.CategoryCol)
		if catIdx < 0 {
			return 0, 0, 0, &ColumnNotFoundError{Column: spec.CategoryCol, Table: t.Name}
		}
	}

	if len(t.Rows) == 0 {
		return 0, 0, 0, &MissingDataError{Column: spec.YCol, Reason: "table has no rows"}
	}
	if t.HasNulls(yIdx) {
		return 0, 0, 0, &MissingDataError{Column: spec.YCol, Reason: "column contains null values"}
	}
	for r := range t.Rows {
		if _, ok := t.Float(r, yIdx); !ok {
			return 0, 0, 0, &DatasetValidationError{
				Slide:  slideTitle,
				Reason: fmt.Sprintf("column %q value %q in row %d is not numeric", spec.YCol, t.CellString(r, yIdx), r+1),
			}
		}
	}
	return xIdx, yIdx, catIdx, nil
}

// BuildDatasetChart resolves a dataset chart reference against the table
// currently attached and returns native chart data. With a category
// column every distinct category value becomes its own series; without
// one there is a single series. A repeated x value within a series keeps
// the row seen last.
func BuildDatasetChart(slideTitle string, spec *outline.DatasetChart, t *dataset.Table) (*NativeChart, error) {
	xIdx, yIdx, catIdx, err := ValidateDatasetSpec(slideTitle, spec, t)
	if err != nil {
		return nil, err
	}

	var kind Kind
	switch spec.Kind {
	case outline.DatasetBar:
		kind = KindBar
	case outline.DatasetLine:
		kind = KindLine
	case outline.DatasetPie:
		kind = KindPie
	case outline.DatasetScatter:
		kind = KindScatter
	default:
		return nil, &DatasetValidationError{Slide: slideTitle, Reason: fmt.Sprintf("unsupported figure type %q", spec.Kind)}
	}

	byName := map[string]*Series{}
	var order []string
	for r := range t.Rows {
		name := "Data"
		if catIdx >= 0 {
			name = t.CellString(r, catIdx)
		}
		s, ok := byName[name]
		if !ok {
			s = &Series{Name: name, Values: map[string]float64{}}
			byName[name] = s
			order = append(order, name)
		}
		x := t.CellString(r, xIdx)
		y, _ := t.Float(r, yIdx)
		if _, dup := s.Values[x]; !dup {
			s.Categories = append(s.Categories, x)
		}
		s.Values[x] = y
	}
	if catIdx >= 0 {
		sort.Strings(order)
	}

	series := make([]Series, 0, len(order))
	for _, name := range order {
		series = append(series, *byName[name])
	}
	return &NativeChart{
		Kind:   kind,
		Title:  slideTitle + " Chart",
		Series: series,
	}, nil
}
