// Package chart resolves slide chart specifications into renderable chart
// data. Manual specs carry their points inline; dataset specs are resolved
// against the table attached to the session at render time.
package chart

import (
	ppt "github.com/VantageDataChat/GoPPT"
)

// Geometry of the embedded chart placeholder, in EMU.
const (
	emuPerInch int64 = 914400

	chartOffsetX = emuPerInch * 5
	chartOffsetY = emuPerInch * 3 / 2
	chartWidth   = emuPerInch * 4
	chartHeight  = emuPerInch * 3
)

// AddToSlide places a native chart on a slide as a live chart shape at
// the given EMU geometry. fontColor is an "AARRGGBB" string; empty keeps
// the library default.
func AddToSlide(slide *ppt.Slide, nc *NativeChart, x, y, w, h int64, fontName, fontColor string) *ppt.ChartShape {
	shape := slide.CreateChartShape()
	shape.SetOffsetX(x).SetOffsetY(y)
	shape.SetWidth(w).SetHeight(h)

	title := shape.GetTitle()
	title.Visible = true
	title.Text = nc.Title
	if fontName != "" {
		title.Font.Name = fontName
	}
	if fontColor != "" {
		title.Font.Color = ppt.NewColor(fontColor)
	}
	shape.GetLegend().Visible = len(nc.Series) > 1

	series := make([]*ppt.ChartSeries, len(nc.Series))
	for i, s := range nc.Series {
		series[i] = &ppt.ChartSeries{
			Title:      s.Name,
			Categories: append([]string(nil), s.Categories...),
			Values:     copyValues(s.Values),
		}
	}

	switch nc.Kind {
	case KindLine:
		shape.GetPlotArea().SetType(&ppt.LineChart{Series: series})
	case KindPie:
		shape.GetPlotArea().SetType(&ppt.PieChart{Series: series})
	case KindScatter:
		shape.GetPlotArea().SetType(&ppt.ScatterChart{Series: series})
	default:
		shape.GetPlotArea().SetType(&ppt.BarChart{Series: series})
	}
	return shape
}

func copyValues(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// DefaultGeometry returns the standard EMU placement for a chart on a
// content slide.
func DefaultGeometry() (x, y, w, h int64) {
	return chartOffsetX, chartOffsetY, chartWidth, chartHeight
}
