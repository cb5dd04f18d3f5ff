package style

import (
	"errors"
	"fmt"
	"sort"
	"testing"

	"pgregory.net/rapid"

	"deckgen/outline"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{"#1A2B3C", RGB{0x1A, 0x2B, 0x3C}, false},
		{"1A2B3C", RGB{0x1A, 0x2B, 0x3C}, false},
		{"  #ffffff ", RGB{0xFF, 0xFF, 0xFF}, false},
		{"#000000", RGB{}, false},
		{"#FFF", RGB{}, true},
		{"#GGGGGG", RGB{}, true},
		{"", RGB{}, true},
		{"#1A2B3C4D", RGB{}, true},
	}
	for _, tt := range tests {
		got, err := ParseHexColor(tt.in)
		if tt.wantErr {
			var ce *InvalidColorFormatError
			if !errors.As(err, &ce) {
				t.Errorf("ParseHexColor(%q) err = %v, want InvalidColorFormatError", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHexColor(%q) = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHexColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestHexRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		c := RGB{
			R: rapid.Uint8().Draw(t, "r"),
			G: rapid.Uint8().Draw(t, "g"),
			B: rapid.Uint8().Draw(t, "b"),
		}
		got, err := ParseHexColor(c.Hex())
		if err != nil {
			t.Fatalf("ParseHexColor(%q) = %v", c.Hex(), err)
		}
		if got != c {
			t.Fatalf("round trip %+v -> %q -> %+v", c, c.Hex(), got)
		}
		if want := "FF" + c.Hex()[1:]; c.ARGB() != want {
			t.Fatalf("ARGB() = %q, want %q", c.ARGB(), want)
		}
	})
}

func TestResolvePresetReplacesGlobal(t *testing.T) {
	global := Default()
	global.FontName = "Comic Sans MS"
	global.TitleSize = 99

	eff, err := Resolve(global, "Minimalist", Overrides{})
	if err != nil {
		t.Fatal(err)
	}
	want, _ := Preset("Minimalist")
	if eff != want {
		t.Errorf("preset resolve = %+v, want the preset verbatim %+v", eff, want)
	}
}

func TestResolveUnknownPreset(t *testing.T) {
	if _, err := Resolve(Default(), "NoSuchPreset", Overrides{}); err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
}

func TestResolveOverridesWinOverPreset(t *testing.T) {
	font := "Futura"
	size := 40
	color := RGB{0x11, 0x22, 0x33}
	tr := outline.TransitionMorph

	eff, err := Resolve(Default(), "Midnight", Overrides{
		FontName:          &font,
		TitleSize:         &size,
		FontColor:         &color,
		DefaultTransition: &tr,
	})
	if err != nil {
		t.Fatal(err)
	}
	if eff.FontName != "Futura" || eff.TitleSize != 40 || eff.FontColor != color {
		t.Errorf("overrides lost: %+v", eff)
	}
	if eff.DefaultTransition != outline.TransitionMorph {
		t.Errorf("transition = %q", eff.DefaultTransition)
	}
	// Fields without overrides still come from the preset.
	mid, _ := Preset("Midnight")
	if eff.BodySize != mid.BodySize || eff.Background != mid.Background {
		t.Errorf("unoverridden fields drifted: %+v", eff)
	}
}

// A single-field override must leave every other field of the base
// untouched, whatever the base is.
func TestResolveSingleOverrideIsolation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := PresetNames()
		preset := ""
		if rapid.Bool().Draw(t, "usePreset") {
			preset = names[rapid.IntRange(0, len(names)-1).Draw(t, "preset")]
		}
		base := Default()
		if preset != "" {
			base, _ = Preset(preset)
		}

		color := RGB{
			R: rapid.Uint8().Draw(t, "r"),
			G: rapid.Uint8().Draw(t, "g"),
			B: rapid.Uint8().Draw(t, "b"),
		}
		eff, err := Resolve(Default(), preset, Overrides{FontColor: &color})
		if err != nil {
			t.Fatal(err)
		}
		if eff.FontColor != color {
			t.Fatalf("FontColor = %+v, want %+v", eff.FontColor, color)
		}
		eff.FontColor = base.FontColor
		if eff != base {
			t.Fatalf("override leaked into other fields: %+v vs %+v", eff, base)
		}
	})
}

func TestPresetNamesSorted(t *testing.T) {
	names := PresetNames()
	if len(names) == 0 {
		t.Fatal("no presets registered")
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("PresetNames() not sorted: %v", names)
	}
	for _, name := range names {
		if _, err := Preset(name); err != nil {
			t.Errorf("Preset(%q) = %v", name, err)
		}
	}
}

func TestResolveSlideText(t *testing.T) {
	eff := Default()
	size := 44
	italic := true
	align := outline.AlignCenter
	bold := false
	s := outline.Slide{
		Title:      "t",
		TitleSize:  &size,
		TitleBold:  &bold,
		BodyAlign:  &align,
		BodyItalic: &italic,
	}
	title, body := ResolveSlideText(s, eff)
	if title.Size != 44 || title.Bold {
		t.Errorf("title = %+v", title)
	}
	if body.Size != eff.BodySize || body.Align != outline.AlignCenter || !body.Italic {
		t.Errorf("body = %+v", body)
	}

	// No per-slide attributes: style defaults, titles bold.
	title, body = ResolveSlideText(outline.Slide{Title: "t"}, eff)
	if !title.Bold || title.Size != eff.TitleSize || title.Align != outline.AlignLeft {
		t.Errorf("default title = %+v", title)
	}
	if body.Bold || body.Size != eff.BodySize {
		t.Errorf("default body = %+v", body)
	}
}

func TestApplyThemeMissingKey(t *testing.T) {
	cur := Default()
	for _, payload := range []string{
		`{"font_color":"#000000","bg_type":"Solid","bg_color1":"#FFFFFF"}`,
		`{"font":"Arial","bg_type":"Solid","bg_color1":"#FFFFFF"}`,
		`{"font":"Arial","font_color":"#000000","bg_color1":"#FFFFFF"}`,
		`{"font":"Arial","font_color":"#000000","bg_type":"Solid"}`,
	} {
		got, err := ApplyTheme(cur, []byte(payload))
		var te *InvalidThemeError
		if !errors.As(err, &te) {
			t.Errorf("ApplyTheme(%s) err = %v, want InvalidThemeError", payload, err)
		}
		if got != cur {
			t.Errorf("failed import changed the style: %+v", got)
		}
	}
}

func TestApplyThemeBadValues(t *testing.T) {
	cur := Default()
	if got, err := ApplyTheme(cur, []byte(`{"font":"Arial","font_color":"#zzz","bg_type":"Solid","bg_color1":"#FFFFFF"}`)); err == nil || got != cur {
		t.Errorf("bad color accepted: %+v, %v", got, err)
	}
	if got, err := ApplyTheme(cur, []byte(`{"font":"Arial","font_color":"#000000","bg_type":"Stripes","bg_color1":"#FFFFFF"}`)); err == nil || got != cur {
		t.Errorf("bad bg_type accepted: %+v, %v", got, err)
	}
	if _, err := ApplyTheme(cur, []byte(`[1,2,3]`)); err == nil {
		t.Error("non-object theme accepted")
	}
}

func TestThemeRoundTrip(t *testing.T) {
	for _, name := range PresetNames() {
		name := name
		t.Run(name, func(t *testing.T) {
			p, _ := Preset(name)
			data, err := ExportTheme(p)
			if err != nil {
				t.Fatal(err)
			}
			got, err := ApplyTheme(Default(), data)
			if err != nil {
				t.Fatal(err)
			}
			if got.FontName != p.FontName || got.FontColor != p.FontColor || got.Background != p.Background {
				t.Errorf("round trip lost theme fields:\n got %+v\nwant %+v", got, p)
			}
		})
	}
}

func TestApplyThemeSolidIgnoresColor2(t *testing.T) {
	got, err := ApplyTheme(Default(), []byte(`{"font":"Arial","font_color":"#102030","bg_type":"Solid","bg_color1":"#405060"}`))
	if err != nil {
		t.Fatal(err)
	}
	want := Background{Kind: BackgroundSolid, Color1: RGB{0x40, 0x50, 0x60}, Color2: RGB{0x40, 0x50, 0x60}}
	if got.Background != want {
		t.Errorf("background = %+v, want %+v", got.Background, want)
	}
	if got.FontName != "Arial" || got.FontColor.Hex() != "#102030" {
		t.Errorf("font fields = %q %s", got.FontName, got.FontColor.Hex())
	}
}

func ExampleRGB_Hex() {
	fmt.Println(RGB{0x00, 0x00, 0x80}.Hex())
	// Output: #000080
}
