package main

import (
	"os"
	"path/filepath"

	"deckgen/config"
	"deckgen/dataset"
	"deckgen/export"
	"deckgen/logger"
	"deckgen/outline"
	"deckgen/style"
)

// EngineState is the explicit session state every operation works on.
// There are no globals; the CLI owns one instance for its lifetime.
type EngineState struct {
	History   *outline.EditHistory
	Style     style.StyleConfig
	Preset    string // active preset name; empty means the working style applies
	Overrides style.Overrides
	Dataset   *dataset.Table
	Images    export.ImageRegistry
}

// App is the engine facade the CLI talks to. Mutating outline operations
// all go through EditHistory.Commit so undo/redo covers every edit.
type App struct {
	cfg      config.Config
	logger   *logger.Logger
	state    *EngineState
	datasets *dataset.Service
}

// NewApp builds the facade from a config, starting with an empty outline
// and the built-in style (or the configured default preset).
func NewApp(cfg config.Config) (*App, error) {
	log := logger.NewLogger()
	if cfg.DetailedLog {
		if err := log.Init(cfg.OutputDir); err != nil {
			return nil, WrapError("App", "NewApp", err)
		}
	}

	st := &EngineState{
		History: outline.NewEditHistory(),
		Style:   style.Default(),
		Images:  export.NewDirRegistry(cfg.ImageDir),
	}
	if cfg.DefaultTheme != "" {
		preset, err := style.Preset(cfg.DefaultTheme)
		if err != nil {
			return nil, WrapError("App", "NewApp", err)
		}
		st.Style = preset
		st.Preset = cfg.DefaultTheme
	}

	return &App{
		cfg:      cfg,
		logger:   log,
		state:    st,
		datasets: dataset.NewService(cfg.DataCacheDir, log.Log),
	}, nil
}

// State exposes the session state, mainly for tests.
func (a *App) State() *EngineState { return a.state }

// Close flushes and closes the log file.
func (a *App) Close() {
	a.logger.Close()
}

// EffectiveStyle resolves the style a render would use right now.
func (a *App) EffectiveStyle() (style.StyleConfig, error) {
	return style.Resolve(a.state.Style, a.state.Preset, a.state.Overrides)
}

// writeOutput writes a generated document into the output directory.
func (a *App) writeOutput(name string, data []byte) (string, error) {
	if err := os.MkdirAll(a.cfg.OutputDir, 0755); err != nil {
		return "", WrapOperationError("create output directory", err)
	}
	path := filepath.Join(a.cfg.OutputDir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", WrapOperationErrorf("write %s", err, path)
	}
	a.logger.Logf("wrote %s (%d bytes)", path, len(data))
	return path, nil
}
