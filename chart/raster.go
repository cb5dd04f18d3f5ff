package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// RasterChart is a chart rendered to a static PNG, used where the output
// target cannot host a live chart object.
type RasterChart struct {
	PNG []byte
}

const defaultRasterWidth = 960

// Rasterize renders a native chart to a PNG image. widthPx <= 0 uses the
// default width; the height keeps a 4:3 aspect.
func Rasterize(nc *NativeChart, widthPx int) (*RasterChart, error) {
	if widthPx <= 0 {
		widthPx = defaultRasterWidth
	}
	height := widthPx * 3 / 4

	var buf bytes.Buffer
	var err error
	switch nc.Kind {
	case KindPie:
		err = rasterPie(nc, widthPx, height, &buf)
	case KindBar:
		err = rasterBar(nc, widthPx, height, &buf)
	default:
		err = rasterXY(nc, widthPx, height, &buf)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to render %s chart %q: %w", nc.Kind, nc.Title, err)
	}
	return &RasterChart{PNG: buf.Bytes()}, nil
}

// pointStyle renders points only, no connecting line.
func pointStyle() gochart.Style {
	return gochart.Style{
		StrokeWidth: gochart.Disabled,
		DotWidth:    4,
	}
}

func rasterPie(nc *NativeChart, w, h int, buf *bytes.Buffer) error {
	s := nc.Series[0]
	values := make([]gochart.Value, 0, len(s.Categories))
	for _, cat := range s.Categories {
		values = append(values, gochart.Value{Label: cat, Value: s.Values[cat]})
	}
	pie := gochart.PieChart{
		Title:  nc.Title,
		Width:  w,
		Height: h,
		Values: values,
	}
	return pie.Render(gochart.PNG, buf)
}

func rasterBar(nc *NativeChart, w, h int, buf *bytes.Buffer) error {
	if len(nc.Series) > 1 {
		return rasterStackedBar(nc, w, h, buf)
	}
	s := nc.Series[0]
	bars := make([]gochart.Value, 0, len(s.Categories))
	for _, cat := range s.Categories {
		bars = append(bars, gochart.Value{Label: cat, Value: s.Values[cat]})
	}
	bar := gochart.BarChart{
		Title:  nc.Title,
		Width:  w,
		Height: h,
		Bars:   bars,
	}
	return bar.Render(gochart.PNG, buf)
}

// rasterStackedBar draws one bar per category with a segment per series,
// the closest bar form go-chart offers for grouped data.
func rasterStackedBar(nc *NativeChart, w, h int, buf *bytes.Buffer) error {
	cats := mergedCategories(nc.Series)
	bars := make([]gochart.StackedBar, 0, len(cats))
	for _, cat := range cats {
		segs := make([]gochart.Value, 0, len(nc.Series))
		for _, s := range nc.Series {
			if v, ok := s.Values[cat]; ok {
				segs = append(segs, gochart.Value{Label: s.Name, Value: v})
			}
		}
		if len(segs) > 0 {
			bars = append(bars, gochart.StackedBar{Name: cat, Values: segs})
		}
	}
	sb := gochart.StackedBarChart{
		Title:  nc.Title,
		Width:  w,
		Height: h,
		Bars:   bars,
	}
	return sb.Render(gochart.PNG, buf)
}

// rasterXY draws line and scatter charts. Categories become evenly spaced
// x positions with tick labels.
func rasterXY(nc *NativeChart, w, h int, buf *bytes.Buffer) error {
	cats := mergedCategories(nc.Series)
	ticks := make([]gochart.Tick, len(cats))
	for i, cat := range cats {
		ticks[i] = gochart.Tick{Value: float64(i), Label: cat}
	}

	graph := gochart.Chart{
		Title:  nc.Title,
		Width:  w,
		Height: h,
		XAxis:  gochart.XAxis{Ticks: ticks},
	}
	for _, s := range nc.Series {
		xs := make([]float64, 0, len(cats))
		ys := make([]float64, 0, len(cats))
		for i, cat := range cats {
			if v, ok := s.Values[cat]; ok {
				xs = append(xs, float64(i))
				ys = append(ys, v)
			}
		}
		cs := gochart.ContinuousSeries{Name: s.Name, XValues: xs, YValues: ys}
		if nc.Kind == KindScatter {
			cs.Style = pointStyle()
		}
		graph.Series = append(graph.Series, cs)
	}
	if len(nc.Series) > 1 {
		graph.Elements = []gochart.Renderable{gochart.Legend(&graph)}
	}
	return graph.Render(gochart.PNG, buf)
}

// mergedCategories merges series category lists preserving first-seen
// order.
func mergedCategories(series []Series) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range series {
		for _, cat := range s.Categories {
			if !seen[cat] {
				seen[cat] = true
				out = append(out, cat)
			}
		}
	}
	return out
}
