package style

import (
	"encoding/json"
	"fmt"
)

// InvalidThemeError reports a theme payload missing required keys or
// carrying unusable values. The working style is left untouched.
type InvalidThemeError struct {
	Reason string
}

func (e *InvalidThemeError) Error() string {
	return fmt.Sprintf("invalid theme: %s", e.Reason)
}

// themeJSON is the flat theme exchange format. font, font_color, bg_type
// and bg_color1 are required; bg_color2 only matters for gradients.
type themeJSON struct {
	Font      *string `json:"font"`
	FontColor *string `json:"font_color"`
	BgType    *string `json:"bg_type"`
	BgColor1  *string `json:"bg_color1"`
	BgColor2  *string `json:"bg_color2,omitempty"`
}

// ApplyTheme overlays an imported theme onto cur and returns the result.
// On any error cur is returned unchanged, so a failed import never
// disturbs the working style.
func ApplyTheme(cur StyleConfig, data []byte) (StyleConfig, error) {
	var tj themeJSON
	if err := json.Unmarshal(data, &tj); err != nil {
		return cur, &InvalidThemeError{Reason: "not a JSON object: " + err.Error()}
	}
	for _, req := range []struct {
		key string
		val *string
	}{
		{"font", tj.Font},
		{"font_color", tj.FontColor},
		{"bg_type", tj.BgType},
		{"bg_color1", tj.BgColor1},
	} {
		if req.val == nil {
			return cur, &InvalidThemeError{Reason: "missing required key " + req.key}
		}
	}

	var kind BackgroundKind
	switch BackgroundKind(*tj.BgType) {
	case BackgroundSolid:
		kind = BackgroundSolid
	case BackgroundGradient:
		kind = BackgroundGradient
	default:
		return cur, &InvalidThemeError{Reason: fmt.Sprintf("unknown bg_type %q", *tj.BgType)}
	}

	fontColor, err := ParseHexColor(*tj.FontColor)
	if err != nil {
		return cur, err
	}
	color1, err := ParseHexColor(*tj.BgColor1)
	if err != nil {
		return cur, err
	}
	color2 := color1
	if tj.BgColor2 != nil {
		color2, err = ParseHexColor(*tj.BgColor2)
		if err != nil {
			return cur, err
		}
	}

	next := cur
	next.FontName = *tj.Font
	next.FontColor = fontColor
	next.Background = Background{Kind: kind, Color1: color1, Color2: color2}
	return next, nil
}

// ExportTheme renders the background and font of a style as the flat
// theme exchange format.
func ExportTheme(cfg StyleConfig) ([]byte, error) {
	font := cfg.FontName
	fontColor := cfg.FontColor.Hex()
	bgType := string(cfg.Background.Kind)
	bgColor1 := cfg.Background.Color1.Hex()
	tj := themeJSON{
		Font:      &font,
		FontColor: &fontColor,
		BgType:    &bgType,
		BgColor1:  &bgColor1,
	}
	if cfg.Background.Kind == BackgroundGradient {
		c2 := cfg.Background.Color2.Hex()
		tj.BgColor2 = &c2
	}
	return json.MarshalIndent(tj, "", "  ")
}
