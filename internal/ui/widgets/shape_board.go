package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/ShapeBoard/internal/logger"
	"github.com/piwi3910/ShapeBoard/internal/model"
)

const (
	messageTextSize = 40
	messageTop      = 30
)

// PointerHandler receives pointer input in board-local coordinates.
type PointerHandler interface {
	PointerDown(p model.Point)
	PointerMove(p model.Point)
	PointerUp()
}

type boardSprite struct {
	shape *model.Shape
	image *canvas.Image
}

// ShapeBoard is the drawable area shapes live on. It renders shapes as
// rasterized sprites, shows a single message line, and forwards pointer
// input to its handler. It satisfies interaction.Surface.
type ShapeBoard struct {
	widget.BaseWidget

	handler PointerHandler
	log     logger.Logger

	background *canvas.Rectangle
	sprites    []*boardSprite
	message    *canvas.Text
	hasMessage bool

	// OnResized is called whenever the board settles on a new non-zero size.
	OnResized func(size fyne.Size)
	lastSize  fyne.Size
}

var (
	_ desktop.Mouseable = (*ShapeBoard)(nil)
	_ fyne.Draggable    = (*ShapeBoard)(nil)
)

// NewShapeBoard creates an empty board. A nil log discards output.
func NewShapeBoard(log logger.Logger) *ShapeBoard {
	if log == nil {
		log = logger.NewNop()
	}
	b := &ShapeBoard{
		log:        log,
		background: canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground)),
		message:    canvas.NewText("", color.Black),
	}
	b.message.TextSize = messageTextSize
	b.message.Alignment = fyne.TextAlignCenter
	b.background.StrokeColor = theme.Color(theme.ColorNameSeparator)
	b.background.StrokeWidth = 1
	b.ExtendBaseWidget(b)
	return b
}

// SetHandler sets the receiver of pointer events.
func (b *ShapeBoard) SetHandler(h PointerHandler) {
	b.handler = h
}

func (b *ShapeBoard) CreateRenderer() fyne.WidgetRenderer {
	return &shapeBoardRenderer{board: b}
}

func (b *ShapeBoard) MinSize() fyne.Size {
	b.ExtendBaseWidget(b)
	return fyne.NewSize(160, 160)
}

// Resize also reports real size changes to OnResized.
func (b *ShapeBoard) Resize(size fyne.Size) {
	b.BaseWidget.Resize(size)
	if size.Width <= 0 || size.Height <= 0 || size == b.lastSize {
		return
	}
	b.lastSize = size
	if b.OnResized != nil {
		b.OnResized(size)
	}
}

// ─── interaction.Surface ───────────────────────────────────

func (b *ShapeBoard) SurfaceSize() model.Size {
	s := b.Size()
	return model.Size{Width: float64(s.Width), Height: float64(s.Height)}
}

func (b *ShapeBoard) AttachShape(s *model.Shape) {
	img, err := renderSprite(s)
	if err != nil {
		b.log.Error("sprite render failed", logger.F("id", s.ID), logger.F("error", err))
		return
	}
	ci := canvas.NewImageFromImage(img)
	ci.FillMode = canvas.ImageFillStretch
	ci.ScaleMode = canvas.ImageScaleSmooth
	b.sprites = append(b.sprites, &boardSprite{shape: s, image: ci})
	b.Refresh()
}

func (b *ShapeBoard) MoveShape(s *model.Shape) {
	if sp := b.sprite(s); sp != nil {
		sp.image.Move(toFynePos(s.Position))
		canvas.Refresh(sp.image)
	}
}

func (b *ShapeBoard) RemoveShape(s *model.Shape) {
	for i, sp := range b.sprites {
		if sp.shape.ID == s.ID {
			b.sprites = append(b.sprites[:i], b.sprites[i+1:]...)
			b.Refresh()
			return
		}
	}
}

func (b *ShapeBoard) RemoveAllShapes() {
	b.sprites = nil
	b.Refresh()
}

func (b *ShapeBoard) ShowMessage(text string) {
	b.message.Text = text
	b.message.Color = theme.Color(theme.ColorNameForeground)
	b.hasMessage = true
	b.Refresh()
}

func (b *ShapeBoard) HideMessage() {
	b.message.Text = ""
	b.hasMessage = false
	b.Refresh()
}

// ShapeCount returns how many shapes the board currently draws.
func (b *ShapeBoard) ShapeCount() int {
	return len(b.sprites)
}

// MessageText returns the visible message, or "" when none is shown.
func (b *ShapeBoard) MessageText() string {
	if !b.hasMessage {
		return ""
	}
	return b.message.Text
}

func (b *ShapeBoard) sprite(s *model.Shape) *boardSprite {
	for _, sp := range b.sprites {
		if sp.shape.ID == s.ID {
			return sp
		}
	}
	return nil
}

// ─── pointer input ─────────────────────────────────────────

// MouseDown forwards presses of any button; only primary-button presses go
// on to produce drag events.
func (b *ShapeBoard) MouseDown(ev *desktop.MouseEvent) {
	if b.handler != nil {
		b.handler.PointerDown(toModelPoint(ev.Position))
	}
}

func (b *ShapeBoard) MouseUp(*desktop.MouseEvent) {
	if b.handler != nil {
		b.handler.PointerUp()
	}
}

func (b *ShapeBoard) Dragged(ev *fyne.DragEvent) {
	if b.handler != nil {
		b.handler.PointerMove(toModelPoint(ev.Position))
	}
}

func (b *ShapeBoard) DragEnd() {
	if b.handler != nil {
		b.handler.PointerUp()
	}
}

func toModelPoint(p fyne.Position) model.Point {
	return model.Point{X: float64(p.X), Y: float64(p.Y)}
}

func toFynePos(p model.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

func toFyneSize(s model.Size) fyne.Size {
	return fyne.NewSize(float32(s.Width), float32(s.Height))
}

// ─── renderer ──────────────────────────────────────────────

type shapeBoardRenderer struct {
	board *ShapeBoard
}

func (r *shapeBoardRenderer) Layout(size fyne.Size) {
	b := r.board
	b.background.Resize(size)
	b.background.Move(fyne.NewPos(0, 0))

	for _, sp := range b.sprites {
		sp.image.Resize(toFyneSize(sp.shape.Size()))
		sp.image.Move(toFynePos(sp.shape.Position))
	}

	if b.hasMessage {
		ms := b.message.MinSize()
		b.message.Resize(ms)
		b.message.Move(fyne.NewPos((size.Width-ms.Width)/2, messageTop))
	}
}

func (r *shapeBoardRenderer) MinSize() fyne.Size {
	return r.board.MinSize()
}

func (r *shapeBoardRenderer) Refresh() {
	r.board.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.Layout(r.board.Size())
	r.board.background.Refresh()
	for _, sp := range r.board.sprites {
		sp.image.Refresh()
	}
	r.board.message.Refresh()
}

func (r *shapeBoardRenderer) Objects() []fyne.CanvasObject {
	b := r.board
	objects := make([]fyne.CanvasObject, 0, len(b.sprites)+2)
	objects = append(objects, b.background)
	for _, sp := range b.sprites {
		objects = append(objects, sp.image)
	}
	if b.hasMessage {
		objects = append(objects, b.message)
	}
	return objects
}

func (r *shapeBoardRenderer) Destroy() {}
