package style

import (
	"fmt"
	"sort"

	"deckgen/outline"
)

// Presets are immutable named style constants. Applying a preset replaces
// the entire working style, it does not merge field by field; edits made
// before the preset was applied are discarded. That full-replacement
// behavior is deliberate and pinned by tests.
var presets = map[string]StyleConfig{
	"Minimalist": {
		FontName:  "Helvetica",
		TitleSize: 32,
		BodySize:  16,
		FontColor: RGB{0x20, 0x20, 0x20},
		Background: Background{
			Kind:   BackgroundSolid,
			Color1: RGB{0xFF, 0xFF, 0xFF},
		},
		DefaultLayout:     outline.LayoutTitleAndContent,
		DefaultTransition: outline.TransitionNone,
	},
	"Corporate": {
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
	},
	"Vibrant": {
		FontName:  "Verdana",
		TitleSize: 32,
		BodySize:  20,
		FontColor: RGB{0x7C, 0x2D, 0x12},
		Background: Background{
			Kind:   BackgroundGradient,
			Color1: RGB{0xFF, 0xED, 0xD5},
			Color2: RGB{0xFE, 0xF3, 0xC7},
		},
		DefaultLayout:     outline.LayoutTitleAndContent,
		DefaultTransition: outline.TransitionZoom,
	},
	"Midnight": {
		FontName:  "Georgia",
		TitleSize: 30,
		BodySize:  18,
		FontColor: RGB{0xE2, 0xE8, 0xF0},
		Background: Background{
			Kind:   BackgroundGradient,
			Color1: RGB{0x0F, 0x17, 0x2A},
			Color2: RGB{0x1E, 0x29, 0x3B},
		},
		DefaultLayout:     outline.LayoutTitleAndContent,
		DefaultTransition: outline.TransitionFade,
	},
}

// PresetNames lists the available presets in stable order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Preset returns a copy of the named preset.
func Preset(name string) (StyleConfig, error) {
	p, ok := presets[name]
	if !ok {
		return StyleConfig{}, fmt.Errorf("unknown style preset: %s", name)
	}
	return p, nil
}
