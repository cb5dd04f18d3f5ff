package main

import (
	"deckgen/outline"
	"deckgen/style"
)

// ApplyPreset switches the whole style to a named preset. Presets
// replace the working style entirely; field overrides set before the
// switch are cleared.
func (a *App) ApplyPreset(name string) error {
	preset, err := style.Preset(name)
	if err != nil {
		return WrapError("Theme", "ApplyPreset", err)
	}
	a.state.Style = preset
	a.state.Preset = name
	a.state.Overrides = style.Overrides{}
	a.logger.Logf("applied preset %s", name)
	return nil
}

// SetFont overrides the deck font.
func (a *App) SetFont(name string) {
	a.state.Overrides.FontName = &name
}

// SetFontColor overrides the deck font color from a hex string.
func (a *App) SetFontColor(hex string) error {
	c, err := style.ParseHexColor(hex)
	if err != nil {
		return WrapError("Theme", "SetFontColor", err)
	}
	a.state.Overrides.FontColor = &c
	return nil
}

// SetTitleSize overrides the deck-wide title size.
func (a *App) SetTitleSize(pt int) {
	a.state.Overrides.TitleSize = &pt
}

// SetBodySize overrides the deck-wide body size.
func (a *App) SetBodySize(pt int) {
	a.state.Overrides.BodySize = &pt
}

// SetBackground overrides the background. color2 is ignored for solid
// backgrounds.
func (a *App) SetBackground(kind style.BackgroundKind, color1, color2 string) error {
	c1, err := style.ParseHexColor(color1)
	if err != nil {
		return WrapError("Theme", "SetBackground", err)
	}
	c2 := c1
	if kind == style.BackgroundGradient && color2 != "" {
		c2, err = style.ParseHexColor(color2)
		if err != nil {
			return WrapError("Theme", "SetBackground", err)
		}
	}
	bg := style.Background{Kind: kind, Color1: c1, Color2: c2}
	a.state.Overrides.Background = &bg
	return nil
}

// SetDefaultTransition overrides the transition slides inherit when they
// set none of their own.
func (a *App) SetDefaultTransition(name string) {
	t := outline.ParseTransition(name)
	a.state.Overrides.DefaultTransition = &t
}

// ImportTheme replaces the working style from a flat theme JSON file.
// On any validation failure the current style is left untouched.
func (a *App) ImportTheme(data []byte) error {
	cur, err := a.EffectiveStyle()
	if err != nil {
		return WrapError("Theme", "ImportTheme", err)
	}
	next, err := style.ApplyTheme(cur, data)
	if err != nil {
		return WrapError("Theme", "ImportTheme", err)
	}
	a.state.Style = next
	a.state.Preset = ""
	a.state.Overrides = style.Overrides{}
	return nil
}

// ExportTheme renders the effective style as flat theme JSON.
func (a *App) ExportTheme() ([]byte, error) {
	eff, err := a.EffectiveStyle()
	if err != nil {
		return nil, WrapError("Theme", "ExportTheme", err)
	}
	data, err := style.ExportTheme(eff)
	if err != nil {
		return nil, WrapError("Theme", "ExportTheme", err)
	}
	return data, nil
}
