// ShapeBoard — draggable shapes on a board
//
// A small cross-platform desktop application. Four shapes are scattered on
// the board at startup; the toolbar redraws a single shape in the center.
// Drag shapes with the mouse; every press reports which shape was hit.
//
// Build:
//   go build -o shapeboard ./cmd/shapeboard
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o shapeboard.exe ./cmd/shapeboard
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/ShapeBoard/internal/logger"
	"github.com/piwi3910/ShapeBoard/internal/model"
	"github.com/piwi3910/ShapeBoard/internal/project"
	"github.com/piwi3910/ShapeBoard/internal/ui"
)

func main() {
	configPath := project.DefaultConfigPath()
	if p := os.Getenv("SHAPEBOARD_CONFIG"); p != "" {
		configPath = p
	}

	cfg, cfgErr := project.LoadAppConfig(configPath)
	if cfgErr != nil {
		cfg = model.DefaultAppConfig()
	}

	log, err := logger.NewZapLogger(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shapeboard: logger setup failed: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()
	if cfgErr != nil {
		log.Warn("config load failed, using defaults",
			logger.F("path", configPath), logger.F("error", cfgErr))
	}

	application := app.NewWithID("com.piwi3910.shapeboard")
	window := application.NewWindow("ShapeBoard")

	appUI := ui.NewApp(application, window, cfg, configPath, log)
	appUI.ApplyTheme()
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.CenterOnScreen()

	log.Info("starting", logger.F("config", configPath), logger.F("locale", cfg.Locale))
	window.ShowAndRun()
}
