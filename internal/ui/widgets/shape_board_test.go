package widgets

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/ShapeBoard/internal/model"
)

type recordingHandler struct {
	downs []model.Point
	moves []model.Point
	ups   int
}

func (h *recordingHandler) PointerDown(p model.Point) { h.downs = append(h.downs, p) }
func (h *recordingHandler) PointerMove(p model.Point) { h.moves = append(h.moves, p) }
func (h *recordingHandler) PointerUp()                { h.ups++ }

func newTestBoard(t *testing.T) *ShapeBoard {
	t.Helper()
	test.NewTempApp(t)
	return NewShapeBoard(nil)
}

func TestShapeBoard_SurfaceSize(t *testing.T) {
	b := newTestBoard(t)
	b.Resize(fyne.NewSize(400, 300))
	assert.Equal(t, model.Size{Width: 400, Height: 300}, b.SurfaceSize())
}

func TestShapeBoard_OnResizedSkipsZeroAndRepeats(t *testing.T) {
	b := newTestBoard(t)
	var sizes []fyne.Size
	b.OnResized = func(s fyne.Size) { sizes = append(sizes, s) }

	b.Resize(fyne.NewSize(0, 0))
	assert.Empty(t, sizes, "zero size does not count")

	b.Resize(fyne.NewSize(400, 300))
	b.Resize(fyne.NewSize(400, 300))
	b.Resize(fyne.NewSize(500, 400))
	assert.Equal(t, []fyne.Size{fyne.NewSize(400, 300), fyne.NewSize(500, 400)}, sizes)
}

func TestShapeBoard_AttachAndRemove(t *testing.T) {
	b := newTestBoard(t)
	b.Resize(fyne.NewSize(400, 300))

	sq, err := model.NewShapeOfKind(model.Square)
	require.NoError(t, err)
	hex, err := model.NewShapeOfKind(model.Hexagon)
	require.NoError(t, err)

	b.AttachShape(sq)
	b.AttachShape(hex)
	assert.Equal(t, 2, b.ShapeCount())

	r := test.WidgetRenderer(b)
	assert.Len(t, r.Objects(), 3, "background plus two sprites")

	b.RemoveShape(sq)
	assert.Equal(t, 1, b.ShapeCount())

	b.RemoveAllShapes()
	assert.Equal(t, 0, b.ShapeCount())
	assert.Len(t, r.Objects(), 1)
}

func TestShapeBoard_MoveShapeRepositionsSprite(t *testing.T) {
	b := newTestBoard(t)
	b.Resize(fyne.NewSize(400, 300))

	oct, err := model.NewShapeOfKind(model.Octagon)
	require.NoError(t, err)
	b.AttachShape(oct)

	oct.Position = model.Point{X: 120, Y: 40}
	b.MoveShape(oct)

	assert.Equal(t, fyne.NewPos(120, 40), b.sprites[0].image.Position())
}

func TestShapeBoard_Message(t *testing.T) {
	b := newTestBoard(t)
	b.Resize(fyne.NewSize(400, 300))
	r := test.WidgetRenderer(b)

	b.ShowMessage("Missed!")
	assert.Equal(t, "Missed!", b.MessageText())
	assert.Len(t, r.Objects(), 2)

	b.ShowMessage("You hit the square")
	assert.Equal(t, "You hit the square", b.MessageText())
	assert.Len(t, r.Objects(), 2, "only one message at a time")

	b.HideMessage()
	assert.Equal(t, "", b.MessageText())
	assert.Len(t, r.Objects(), 1)
}

func TestShapeBoard_ForwardsPointerEvents(t *testing.T) {
	b := newTestBoard(t)
	h := &recordingHandler{}
	b.SetHandler(h)

	b.MouseDown(&desktop.MouseEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 20)},
		Button:     desktop.MouseButtonPrimary,
	})
	b.Dragged(&fyne.DragEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(15, 25)}})
	b.DragEnd()
	b.MouseUp(&desktop.MouseEvent{Button: desktop.MouseButtonPrimary})

	assert.Equal(t, []model.Point{{X: 10, Y: 20}}, h.downs)
	assert.Equal(t, []model.Point{{X: 15, Y: 25}}, h.moves)
	assert.Equal(t, 2, h.ups)
}

func TestShapeBoard_ForwardsEveryButton(t *testing.T) {
	b := newTestBoard(t)
	h := &recordingHandler{}
	b.SetHandler(h)

	for _, button := range []desktop.MouseButton{
		desktop.MouseButtonSecondary,
		desktop.MouseButtonTertiary,
	} {
		b.MouseDown(&desktop.MouseEvent{
			PointEvent: fyne.PointEvent{Position: fyne.NewPos(5, 6)},
			Button:     button,
		})
		b.MouseUp(&desktop.MouseEvent{Button: button})
	}

	assert.Equal(t, []model.Point{{X: 5, Y: 6}, {X: 5, Y: 6}}, h.downs)
	assert.Equal(t, 2, h.ups)
}
