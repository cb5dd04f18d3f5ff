// Package style defines the presentation style model: fonts, colors,
// backgrounds, named presets, the inherit-vs-override resolver, and the
// flat theme exchange format.
package style

import (
	"fmt"

	"deckgen/outline"
)

// RGB is a color as 8-bit channel triple. Colors are stored and compared
// in this form; hex strings exist only at the boundaries.
type RGB struct {
	R, G, B uint8
}

// Hex renders the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ARGB renders the color as an opaque "AARRGGBB" string, the form the
// deck writer's color constructor takes.
func (c RGB) ARGB() string {
	return fmt.Sprintf("FF%02X%02X%02X", c.R, c.G, c.B)
}

// BackgroundKind selects between a solid and a vertical-gradient fill.
type BackgroundKind string

const (
	BackgroundSolid    BackgroundKind = "Solid"
	BackgroundGradient BackgroundKind = "Gradient"
)

// Background describes the slide background. Color2 is only meaningful
// for gradients; a gradient with Color2 unset degrades to Color1 on both
// stops.
type Background struct {
	Kind   BackgroundKind
	Color1 RGB
	Color2 RGB
}

// StyleConfig is the effective style for a render. Exactly one applies per
// render; per-slide text attributes override its sizes and formats.
type StyleConfig struct {
	FontName          string
	TitleSize         int
	BodySize          int
	FontColor         RGB
	Background        Background
	DefaultLayout     outline.LayoutKind
	DefaultTransition outline.Transition
}

// Default returns the built-in style the working style starts from.
func Default() StyleConfig {
	return StyleConfig{
		FontName:  "Calibri",
		TitleSize: 28,
		BodySize:  18,
		FontColor: RGB{0x00, 0x00, 0x80},
		Background: Background{
			Kind:   BackgroundGradient,
			Color1: RGB{0xDD, 0xE4, 0xFF},
			Color2: RGB{0xFF, 0xFF, 0xFF},
		},
		DefaultLayout:     outline.LayoutTitleAndContent,
		DefaultTransition: outline.TransitionFade,
	}
}

// TextFormat is the fully resolved text formatting for one text zone of
// one slide.
type TextFormat struct {
	Size   int
	Align  outline.Align
	Bold   bool
	Italic bool
}

// ResolveSlideText applies the two-level rule for per-slide text
// attributes: the slide-level value when present, else the resolved
// style's value. Titles default to bold, both zones to left alignment.
func ResolveSlideText(s outline.Slide, eff StyleConfig) (title, body TextFormat) {
	title = TextFormat{Size: eff.TitleSize, Align: outline.AlignLeft, Bold: true}
	body = TextFormat{Size: eff.BodySize, Align: outline.AlignLeft}

	if s.TitleSize != nil {
		title.Size = *s.TitleSize
	}
	if s.TitleAlign != nil {
		title.Align = *s.TitleAlign
	}
	if s.TitleBold != nil {
		title.Bold = *s.TitleBold
	}
	if s.TitleItalic != nil {
		title.Italic = *s.TitleItalic
	}
	if s.BodySize != nil {
		body.Size = *s.BodySize
	}
	if s.BodyAlign != nil {
		body.Align = *s.BodyAlign
	}
	if s.BodyBold != nil {
		body.Bold = *s.BodyBold
	}
	if s.BodyItalic != nil {
		body.Italic = *s.BodyItalic
	}
	return title, body
}
