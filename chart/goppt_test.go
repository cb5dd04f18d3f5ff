package chart

import (
	"testing"

	ppt "github.com/VantageDataChat/GoPPT"
)

func TestAddToSlideTitleStyling(t *testing.T) {
	p := ppt.New()
	slide := p.GetActiveSlide()
	nc := &NativeChart{Kind: KindBar, Title: "Quarterly Sales", Series: []Series{rasterSeries("sales")}}

	shape := AddToSlide(slide, nc, 0, 0, chartWidth, chartHeight, "Futura", "FF112233")

	title := shape.GetTitle()
	if !title.Visible || title.Text != "Quarterly Sales" {
		t.Errorf("title = %+v", title)
	}
	if title.Font.Name != "Futura" {
		t.Errorf("font name = %q", title.Font.Name)
	}
	c := title.Font.Color
	if c.GetAlpha() != 0xFF || c.GetRed() != 0x11 || c.GetGreen() != 0x22 || c.GetBlue() != 0x33 {
		t.Errorf("title color = %v, want FF112233", c)
	}
	if shape.GetLegend().Visible {
		t.Error("single-series chart should hide the legend")
	}
}

func TestAddToSlideDefaults(t *testing.T) {
	p := ppt.New()
	slide := p.GetActiveSlide()
	north := rasterSeries("North")
	south := rasterSeries("South")
	nc := &NativeChart{Kind: KindLine, Title: "By Region", Series: []Series{north, south}}

	shape := AddToSlide(slide, nc, 0, 0, chartWidth, chartHeight, "", "")

	if !shape.GetLegend().Visible {
		t.Error("multi-series chart should show the legend")
	}
}
