package ui

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ShapeBoard/internal/logger"
	"github.com/piwi3910/ShapeBoard/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	localeSelect := widget.NewSelect([]string{"en", "ru"}, func(selected string) {
		cfg.Locale = selected
	})
	localeSelect.SetSelected(cfg.Locale)

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	seedEntry := widget.NewEntry()
	seedEntry.SetText(strconv.FormatInt(cfg.RandomSeed, 10))
	seedEntry.OnChanged = func(text string) {
		if v, err := strconv.ParseInt(text, 10, 64); err == nil {
			cfg.RandomSeed = v
		}
	}

	tooltipCheck := widget.NewCheck("", func(on bool) {
		cfg.ShowToolTips = on
	})
	tooltipCheck.SetChecked(cfg.ShowToolTips)

	levelSelect := widget.NewSelect([]string{"debug", "info", "warn", "error"}, func(selected string) {
		cfg.Logging.Level = selected
	})
	levelSelect.SetSelected(cfg.Logging.Level)

	formItems := []*widget.FormItem{
		widget.NewFormItem("Language", localeSelect),
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("Random Seed (0=clock)", seedEntry),
		widget.NewFormItem("Show Tooltips", tooltipCheck),
		widget.NewFormItem("Log Level", levelSelect),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			a.config = cfg
			a.applyConfig()
			if err := a.saveConfig(); err != nil {
				a.log.Error("save settings failed", logger.F("error", err))
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			} else {
				dialog.ShowInformation("Settings Saved",
					"Settings have been saved. Tooltip and log level changes apply after a restart.", a.window)
			}
		},
		a.window,
	)
	d.Resize(fyne.NewSize(420, 320))
	d.Show()
}

// showImportExportDialog lets the user back up or restore settings.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export Settings...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("Settings exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("shapeboard-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import Settings...", func() {
		dialog.ShowConfirm("Import Settings",
			"Importing will replace your current settings.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					backup, err := project.ImportAllData(reader.URI().Path())
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.applyConfig()
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Settings imported from backup created at %s.", backup.CreatedAt), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export settings to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		importBtn,
	)

	d := dialog.NewCustom("Import / Export Settings", "Close", content, a.window)
	d.Resize(fyne.NewSize(420, 220))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(a.configPath, a.config)
}
