// Package export assembles a validated outline and a resolved style into
// render plans and writes them out as PPTX decks and PDF, DOCX and XLSX
// handouts.
package export

import (
	"deckgen/chart"
	"deckgen/outline"
	"deckgen/style"
)

// Warning records one element that was skipped during assembly. The slide
// it belonged to still renders with everything else intact.
type Warning struct {
	SlideIndex int    // zero-based position in the outline
	Element    string // "chart", "image"
	Message    string
}

// SlideRender is one slide's fully resolved render plan. Exactly one of
// Chart and ChartImage is set when the slide carries a chart; both are nil
// when the chart was skipped or absent.
type SlideRender struct {
	Index  int
	Layout outline.LayoutKind

	Title       string
	TitleFormat style.TextFormat
	Bullets     []string
	BodyFormat  style.TextFormat

	Chart      *chart.NativeChart
	ChartImage *chart.RasterChart

	Image     []byte
	ImageName string

	Note string
}

// Artifact is the assembled document: per-slide render plans plus the
// deck-wide style values every writer needs.
type Artifact struct {
	Slides []SlideRender

	FontName   string
	FontColor  style.RGB
	Background style.Background

	// Logo is stamped in a corner of every deck slide when set.
	Logo     []byte
	LogoMime string
}
