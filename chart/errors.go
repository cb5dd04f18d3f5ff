package chart

import "fmt"

// ChartDataError reports manual chart data that cannot form a chart.
type ChartDataError struct {
	Slide  string
	Reason string
}

func (e *ChartDataError) Error() string {
	return fmt.Sprintf("chart data error on slide %q: %s", e.Slide, e.Reason)
}

// DatasetValidationError reports a dataset-driven chart request that
// cannot be satisfied, before any rendering is attempted.
type DatasetValidationError struct {
	Slide  string
	Reason string
}

func (e *DatasetValidationError) Error() string {
	return fmt.Sprintf("dataset chart error on slide %q: %s", e.Slide, e.Reason)
}

// ColumnNotFoundError reports a chart column reference that does not
// exist in the attached dataset.
type ColumnNotFoundError struct {
	Column string
	Table  string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %q not found in table %q", e.Column, e.Table)
}

// MissingDataError reports a chart column with nulls or no usable rows.
type MissingDataError struct {
	Column string
	Reason string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("missing data in column %q: %s", e.Column, e.Reason)
}
