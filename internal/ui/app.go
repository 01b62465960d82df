package ui

import (
	"fmt"
	"math/rand"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/ShapeBoard/internal/interaction"
	"github.com/piwi3910/ShapeBoard/internal/logger"
	"github.com/piwi3910/ShapeBoard/internal/model"
	"github.com/piwi3910/ShapeBoard/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	log        logger.Logger

	board      *widgets.ShapeBoard
	toolbar    *fyne.Container
	controller *interaction.Controller
	history    *History
	rng        *rand.Rand

	// startupPending holds while the startup shapes are provisional: until
	// the user first touches the board, each board resize re-scatters them
	// over the new area.
	startupPending bool
}

func NewApp(application fyne.App, window fyne.Window, cfg model.AppConfig, configPath string, log logger.Logger) *App {
	if log == nil {
		log = logger.NewNop()
	}
	seed := cfg.RandomSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a := &App{
		app:        application,
		window:     window,
		config:     cfg,
		configPath: configPath,
		log:        log,
		history:    NewHistory(),
		rng:        rand.New(rand.NewSource(seed)),

		startupPending: true,
	}

	a.board = widgets.NewShapeBoard(log.With(logger.F("component", "board")))
	a.controller = interaction.NewController(a.board,
		interaction.NewTimeScheduler(fyne.Do),
		interaction.WithMessages(cfg.Messages()),
		interaction.WithLogger(log.With(logger.F("component", "interaction"))),
	)
	a.board.SetHandler(a)
	a.board.OnResized = a.boardResized
	a.controller.OnBeforeChange = func(label string) {
		a.startupPending = false
		a.history.Push(MakeSnapshot(a.controller.Shapes(), label))
	}
	return a
}

// PointerDown settles the startup layout before handing the press on.
func (a *App) PointerDown(p model.Point) {
	a.startupPending = false
	a.controller.PointerDown(p)
}

func (a *App) PointerMove(p model.Point) { a.controller.PointerMove(p) }

func (a *App) PointerUp() { a.controller.PointerUp() }

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Settings...", a.showSettingsDialog),
		fyne.NewMenuItem("Import / Export Settings...", a.showImportExportDialog),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	undoItem := fyne.NewMenuItem("Undo", a.undo)
	undoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	redoItem := fyne.NewMenuItem("Redo", a.redo)
	redoItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierShortcutDefault}

	removeItem := fyne.NewMenuItem("Remove Last Hit Shape", a.removeLastHit)
	removeItem.Shortcut = &desktop.CustomShortcut{KeyName: fyne.KeyDelete, Modifier: fyne.KeyModifierShortcutDefault}

	editMenu := fyne.NewMenu("Edit",
		undoItem,
		redoItem,
		fyne.NewMenuItemSeparator(),
		removeItem,
		fyne.NewMenuItem("Clear Shapes", a.controller.Clear),
	)

	shapesMenu := fyne.NewMenu("Shapes",
		fyne.NewMenuItem("Draw Square", func() { a.drawKind(model.Square) }),
		fyne.NewMenuItem("Draw Pentagon", func() { a.drawKind(model.Pentagon) }),
		fyne.NewMenuItem("Draw Hexagon", func() { a.drawKind(model.Hexagon) }),
		fyne.NewMenuItem("Draw Octagon", func() { a.drawKind(model.Octagon) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Scatter All", a.scatter),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", a.showAboutDialog),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, shapesMenu, helpMenu))

	a.window.Canvas().AddShortcut(undoItem.Shortcut, func(fyne.Shortcut) { a.undo() })
	a.window.Canvas().AddShortcut(redoItem.Shortcut, func(fyne.Shortcut) { a.redo() })
	a.window.Canvas().AddShortcut(removeItem.Shortcut, func(fyne.Shortcut) { a.removeLastHit() })
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About ShapeBoard",
		"ShapeBoard\n\n"+
			"Drag shapes around the board. Pressing anywhere tells\n"+
			"you which shape you hit.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.toolbar = container.NewHBox(a.toolbarItems()...)
	content := container.NewBorder(a.toolbar, nil, nil, nil, a.board)
	if a.config.ShowToolTips {
		return fynetooltip.AddWindowToolTipLayer(content, a.window.Canvas())
	}
	return content
}

func (a *App) toolbarItems() []fyne.CanvasObject {
	msgs := a.config.Messages()
	drawButton := func(kind model.ShapeKind) fyne.CanvasObject {
		label := msgs.Label(kind)
		return newToolButton(label, theme.ContentAddIcon(),
			fmt.Sprintf("Clear the board and draw a %s in the center", kind),
			func() { a.drawKind(kind) })
	}

	return []fyne.CanvasObject{
		drawButton(model.Square),
		drawButton(model.Pentagon),
		drawButton(model.Hexagon),
		drawButton(model.Octagon),
		widget.NewSeparator(),
		newToolButton("", theme.ViewRefreshIcon(), "Scatter one of each shape", a.scatter),
		newToolButton("", theme.DeleteIcon(), "Clear the board", a.controller.Clear),
		layout.NewSpacer(),
		newToolButton("", theme.ContentUndoIcon(), "Undo", a.undo),
		newToolButton("", theme.ContentRedoIcon(), "Redo", a.redo),
	}
}

// applyConfig pushes config changes that can take effect immediately.
func (a *App) applyConfig() {
	a.ApplyTheme()
	a.controller.SetMessages(a.config.Messages())
	if a.toolbar != nil {
		a.toolbar.Objects = a.toolbarItems()
		a.toolbar.Refresh()
	}
}

// ApplyTheme installs the configured theme. Call before showing the window.
func (a *App) ApplyTheme() {
	a.app.Settings().SetTheme(NewBoardTheme(a.config.Theme))
}

// ─── commands ──────────────────────────────────────────────

// boardResized places the startup shapes. Before the window settles the
// board may be laid out at its minimum size first, so the layout is redone
// on every resize until the user first interacts with it.
func (a *App) boardResized(fyne.Size) {
	if !a.startupPending {
		return
	}
	a.controller.ClearShapes()
	a.populate()
}

func (a *App) populate() {
	if err := a.controller.Populate(a.rng); err != nil {
		a.log.Error("populate failed", logger.F("error", err))
		dialog.ShowError(err, a.window)
	}
}

func (a *App) drawKind(kind model.ShapeKind) {
	if err := a.controller.Draw(kind); err != nil {
		a.log.Error("draw failed", logger.F("kind", kind), logger.F("error", err))
		dialog.ShowError(err, a.window)
	}
}

func (a *App) scatter() {
	if err := a.controller.Scatter(a.rng); err != nil {
		a.log.Error("scatter failed", logger.F("error", err))
		dialog.ShowError(err, a.window)
	}
}

func (a *App) removeLastHit() {
	if s := a.controller.LastHit(); s != nil {
		a.controller.RemoveShape(s)
	}
}

func (a *App) undo() {
	snap, ok := a.history.Undo(MakeSnapshot(a.controller.Shapes(), "current"))
	if !ok {
		return
	}
	a.controller.Restore(snap.Shapes)
	a.log.Debug("undo", logger.F("label", snap.Label))
}

func (a *App) redo() {
	snap, ok := a.history.Redo(MakeSnapshot(a.controller.Shapes(), "current"))
	if !ok {
		return
	}
	a.controller.Restore(snap.Shapes)
	a.log.Debug("redo", logger.F("label", snap.Label))
}
