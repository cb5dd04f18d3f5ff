package style

import (
	"fmt"
	"strconv"
	"strings"

	"deckgen/outline"
)

// InvalidColorFormatError reports a color string that is not six hex
// digits after the leading marker.
type InvalidColorFormatError struct {
	Input string
}

func (e *InvalidColorFormatError) Error() string {
	return fmt.Sprintf("invalid color format: %q (want #RRGGBB)", e.Input)
}

// ParseHexColor parses "#RRGGBB" (the marker is optional) into an RGB
// triple.
func ParseHexColor(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return RGB{}, &InvalidColorFormatError{Input: s}
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, &InvalidColorFormatError{Input: s}
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Overrides are explicit field edits layered on top of the base style.
// A nil field means "inherit from the base"; a set field always wins.
type Overrides struct {
	FontName          *string
	TitleSize         *int
	BodySize          *int
	FontColor         *RGB
	Background        *Background
	DefaultLayout     *outline.LayoutKind
	DefaultTransition *outline.Transition
}

// Resolve builds the effective style for a render. When preset is
// non-empty the named preset becomes the base and the global style is
// discarded entirely (presets replace, they do not merge); the overrides
// are then applied field by field on top of whichever base won.
func Resolve(global StyleConfig, preset string, o Overrides) (StyleConfig, error) {
	base := global
	if preset != "" {
		p, err := Preset(preset)
		if err != nil {
			return StyleConfig{}, err
		}
		base = p
	}
	if o.FontName != nil {
		base.FontName = *o.FontName
	}
	if o.TitleSize != nil {
		base.TitleSize = *o.TitleSize
	}
	if o.BodySize != nil {
		base.BodySize = *o.BodySize
	}
	if o.FontColor != nil {
		base.FontColor = *o.FontColor
	}
	if o.Background != nil {
		base.Background = *o.Background
	}
	if o.DefaultLayout != nil {
		base.DefaultLayout = *o.DefaultLayout
	}
	if o.DefaultTransition != nil {
		base.DefaultTransition = *o.DefaultTransition
	}
	return base, nil
}
