package main

import (
	"path/filepath"
	"testing"

	"deckgen/config"
	"deckgen/outline"
	"deckgen/style"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.OutputDir = filepath.Join(dir, "output")
	cfg.DataCacheDir = filepath.Join(dir, "datacache")
	cfg.ImageDir = filepath.Join(dir, "images")
	app, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(app.Close)
	return app
}

func TestAddSlideAndUndo(t *testing.T) {
	app := newTestApp(t)

	if err := app.AddSlide(outline.Slide{Title: "First"}); err != nil {
		t.Fatal(err)
	}
	if err := app.AddSlide(outline.Slide{Title: "Second"}); err != nil {
		t.Fatal(err)
	}
	if got := app.Slides(); len(got) != 2 || got[1].Title != "Second" {
		t.Fatalf("slides = %+v", got)
	}

	if err := app.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := app.Slides(); len(got) != 1 || got[0].Title != "First" {
		t.Fatalf("after undo: %+v", got)
	}
	if err := app.Redo(); err != nil {
		t.Fatal(err)
	}
	if got := app.Slides(); len(got) != 2 {
		t.Fatalf("after redo: %+v", got)
	}
}

func TestAddSlideRejectsUntitled(t *testing.T) {
	app := newTestApp(t)
	if err := app.AddSlide(outline.Slide{Title: "   "}); err == nil {
		t.Fatal("untitled slide accepted")
	}
	if len(app.Slides()) != 0 {
		t.Error("rejected slide was committed")
	}
}

func TestSlideEditing(t *testing.T) {
	app := newTestApp(t)
	for _, title := range []string{"a", "b", "c"} {
		if err := app.AddSlide(outline.Slide{Title: title}); err != nil {
			t.Fatal(err)
		}
	}

	if err := app.MoveSlide(2, 0); err != nil {
		t.Fatal(err)
	}
	if got := app.Slides(); got[0].Title != "c" || got[1].Title != "a" {
		t.Fatalf("after move: %+v", got)
	}

	if err := app.DuplicateSlide(0); err != nil {
		t.Fatal(err)
	}
	if got := app.Slides(); len(got) != 4 || got[1].Title != "c" {
		t.Fatalf("after duplicate: %+v", got)
	}

	if err := app.DeleteSlide(1); err != nil {
		t.Fatal(err)
	}
	if got := app.Slides(); len(got) != 3 {
		t.Fatalf("after delete: %+v", got)
	}

	if err := app.UpdateSlide(0, outline.Slide{Title: "renamed"}); err != nil {
		t.Fatal(err)
	}
	if app.Slides()[0].Title != "renamed" {
		t.Error("update lost")
	}

	if err := app.DeleteSlide(99); err == nil {
		t.Error("out-of-range delete accepted")
	}
}

func TestLoadOutlineJSONAllOrNothing(t *testing.T) {
	app := newTestApp(t)
	if err := app.AddSlide(outline.Slide{Title: "keep"}); err != nil {
		t.Fatal(err)
	}

	// Second slide is untitled: the whole load must fail.
	bad := []byte(`[{"title":"ok"},{"title":""}]`)
	if err := app.LoadOutlineJSON(bad); err == nil {
		t.Fatal("invalid outline accepted")
	}
	if got := app.Slides(); len(got) != 1 || got[0].Title != "keep" {
		t.Fatalf("failed load disturbed the outline: %+v", got)
	}

	good := []byte(`[{"title":"one"},{"title":"two","content":["x"]}]`)
	if err := app.LoadOutlineJSON(good); err != nil {
		t.Fatal(err)
	}
	if len(app.Slides()) != 2 {
		t.Fatalf("slides = %+v", app.Slides())
	}
	// The replaced outline is one undo away.
	if err := app.Undo(); err != nil {
		t.Fatal(err)
	}
	if got := app.Slides(); len(got) != 1 || got[0].Title != "keep" {
		t.Fatalf("undo after load: %+v", got)
	}
}

func TestLoadDefaultOutline(t *testing.T) {
	app := newTestApp(t)
	if err := app.LoadDefaultOutline(); err != nil {
		t.Fatal(err)
	}
	if len(app.Slides()) != 16 {
		t.Fatalf("default outline has %d slides", len(app.Slides()))
	}
	data, err := app.ExportOutlineJSON()
	if err != nil {
		t.Fatal(err)
	}
	reparsed, err := outline.ParseOutline(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(reparsed) != 16 {
		t.Fatalf("exported outline reparsed to %d slides", len(reparsed))
	}
}

func TestApplyPresetClearsOverrides(t *testing.T) {
	app := newTestApp(t)
	app.SetFont("Futura")
	if err := app.SetFontColor("#FF0000"); err != nil {
		t.Fatal(err)
	}

	if err := app.ApplyPreset("Minimalist"); err != nil {
		t.Fatal(err)
	}
	eff, err := app.EffectiveStyle()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := style.Preset("Minimalist")
	if eff != want {
		t.Errorf("preset must replace everything: %+v", eff)
	}

	if err := app.ApplyPreset("NoSuchPreset"); err == nil {
		t.Error("unknown preset accepted")
	}
}

func TestOverridesLayerOnPreset(t *testing.T) {
	app := newTestApp(t)
	if err := app.ApplyPreset("Midnight"); err != nil {
		t.Fatal(err)
	}
	app.SetTitleSize(40)
	app.SetDefaultTransition("Wipe")
	if err := app.SetBackground(style.BackgroundSolid, "#101010", ""); err != nil {
		t.Fatal(err)
	}

	eff, err := app.EffectiveStyle()
	if err != nil {
		t.Fatal(err)
	}
	if eff.TitleSize != 40 || eff.DefaultTransition != outline.TransitionWipe {
		t.Errorf("overrides lost: %+v", eff)
	}
	if eff.Background.Kind != style.BackgroundSolid {
		t.Errorf("background = %+v", eff.Background)
	}
	mid, _ := style.Preset("Midnight")
	if eff.FontName != mid.FontName || eff.BodySize != mid.BodySize {
		t.Errorf("preset base drifted: %+v", eff)
	}
}

func TestImportThemeFailureLeavesStateUntouched(t *testing.T) {
	app := newTestApp(t)
	app.SetFont("Futura")
	before, err := app.EffectiveStyle()
	if err != nil {
		t.Fatal(err)
	}

	if err := app.ImportTheme([]byte(`{"font":"Arial"}`)); err == nil {
		t.Fatal("incomplete theme accepted")
	}
	after, err := app.EffectiveStyle()
	if err != nil {
		t.Fatal(err)
	}
	if after != before {
		t.Errorf("failed import changed the style:\n before %+v\n after  %+v", before, after)
	}
}

func TestThemeExportImportRoundTrip(t *testing.T) {
	app := newTestApp(t)
	if err := app.ApplyPreset("Vibrant"); err != nil {
		t.Fatal(err)
	}
	data, err := app.ExportTheme()
	if err != nil {
		t.Fatal(err)
	}

	other := newTestApp(t)
	if err := other.ImportTheme(data); err != nil {
		t.Fatal(err)
	}
	eff, err := other.EffectiveStyle()
	if err != nil {
		t.Fatal(err)
	}
	vib, _ := style.Preset("Vibrant")
	if eff.FontName != vib.FontName || eff.FontColor != vib.FontColor || eff.Background != vib.Background {
		t.Errorf("theme round trip lost fields: %+v", eff)
	}
}

func TestNewAppWithDefaultTheme(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Defaults()
	cfg.OutputDir = filepath.Join(dir, "output")
	cfg.DataCacheDir = filepath.Join(dir, "datacache")
	cfg.ImageDir = filepath.Join(dir, "images")
	cfg.DefaultTheme = "Midnight"

	app, err := NewApp(cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer app.Close()
	eff, err := app.EffectiveStyle()
	if err != nil {
		t.Fatal(err)
	}
	want, _ := style.Preset("Midnight")
	if eff != want {
		t.Errorf("startup style = %+v, want Midnight preset", eff)
	}

	cfg.DefaultTheme = "Bogus"
	if _, err := NewApp(cfg); err == nil {
		t.Error("unknown default theme accepted")
	}
}
