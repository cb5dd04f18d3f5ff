// Package config holds the engine settings file: where generated decks
// land, where imported datasets are staged, and render defaults.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config structure
type Config struct {
	OutputDir    string `json:"outputDir"`    // Where generated documents are written
	DataCacheDir string `json:"dataCacheDir"` // Where imported datasets are staged
	ImageDir     string `json:"imageDir"`     // Root of the image registry
	DefaultTheme string `json:"defaultTheme"` // Preset applied at startup; empty keeps the built-in style
	LogoImage    string `json:"logoImage"`    // Registry name of the logo stamped on deck slides; empty disables
	RasterWidth  int    `json:"rasterWidth"`  // Pixel width of rasterized charts
	DetailedLog  bool   `json:"detailedLog"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		OutputDir:    "output",
		DataCacheDir: "datacache",
		ImageDir:     "images",
		RasterWidth:  960,
		DetailedLog:  false,
	}
}

// Load reads the config file, filling in defaults for zero-valued
// fields. A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Defaults(), err
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = Defaults().OutputDir
	}
	if cfg.DataCacheDir == "" {
		cfg.DataCacheDir = Defaults().DataCacheDir
	}
	if cfg.ImageDir == "" {
		cfg.ImageDir = Defaults().ImageDir
	}
	if cfg.RasterWidth <= 0 {
		cfg.RasterWidth = Defaults().RasterWidth
	}
	return cfg, nil
}

// Save writes the config as indented JSON, creating parent directories.
func Save(path string, cfg Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
