package ui

import (
	"testing"

	"github.com/piwi3910/ShapeBoard/internal/model"
)

func shapesOf(t *testing.T, kinds ...model.ShapeKind) []*model.Shape {
	t.Helper()
	var out []*model.Shape
	for _, k := range kinds {
		s, err := model.NewShapeOfKind(k)
		if err != nil {
			t.Fatalf("NewShapeOfKind(%s): %v", k, err)
		}
		out = append(out, s)
	}
	return out
}

func TestNewHistory(t *testing.T) {
	h := NewHistory()
	if h.maxDepth != defaultMaxDepth {
		t.Errorf("expected maxDepth %d, got %d", defaultMaxDepth, h.maxDepth)
	}
	if h.CanUndo() {
		t.Error("new history should not be undoable")
	}
	if h.CanRedo() {
		t.Error("new history should not be redoable")
	}
}

func TestPushAndUndo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, "initial"))

	if !h.CanUndo() {
		t.Fatal("should be able to undo after push")
	}

	current := MakeSnapshot(shapesOf(t, model.Square), "current")
	restored, ok := h.Undo(current)
	if !ok {
		t.Fatal("undo should succeed")
	}
	if len(restored.Shapes) != 0 {
		t.Errorf("expected 0 shapes after undo, got %d", len(restored.Shapes))
	}
	if restored.Label != "initial" {
		t.Errorf("expected label 'initial', got %q", restored.Label)
	}
}

func TestUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, "empty"))
	h.Push(MakeSnapshot(shapesOf(t, model.Square), "one shape"))

	current := MakeSnapshot(shapesOf(t, model.Square, model.Hexagon), "two shapes")

	restored, ok := h.Undo(current)
	if !ok || len(restored.Shapes) != 1 {
		t.Fatalf("first undo: expected 1 shape, got %d", len(restored.Shapes))
	}

	if !h.CanRedo() {
		t.Fatal("should be able to redo")
	}
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("redo should succeed")
	}
	if len(redone.Shapes) != 2 {
		t.Errorf("expected 2 shapes after redo, got %d", len(redone.Shapes))
	}
}

func TestPushClearsRedo(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, "a"))
	h.Undo(MakeSnapshot(nil, "b"))
	if !h.CanRedo() {
		t.Fatal("expected redo to be available")
	}

	h.Push(MakeSnapshot(nil, "c"))
	if h.CanRedo() {
		t.Error("push should clear the redo stack")
	}
}

func TestMaxDepth(t *testing.T) {
	h := NewHistory()
	for i := 0; i < defaultMaxDepth+10; i++ {
		h.Push(MakeSnapshot(nil, "step"))
	}
	if len(h.undoStack) != defaultMaxDepth {
		t.Errorf("expected undo stack capped at %d, got %d", defaultMaxDepth, len(h.undoStack))
	}
}

func TestEmptyUndoRedo(t *testing.T) {
	h := NewHistory()
	if _, ok := h.Undo(Snapshot{}); ok {
		t.Error("undo on empty history should fail")
	}
	if _, ok := h.Redo(Snapshot{}); ok {
		t.Error("redo on empty history should fail")
	}
}

func TestMakeSnapshotIsDeepCopy(t *testing.T) {
	shapes := shapesOf(t, model.Pentagon)
	shapes[0].Position = model.Point{X: 10, Y: 10}

	snap := MakeSnapshot(shapes, "copy")
	shapes[0].Position = model.Point{X: 99, Y: 99}

	if snap.Shapes[0].Position != (model.Point{X: 10, Y: 10}) {
		t.Errorf("snapshot should not see later moves, got %+v", snap.Shapes[0].Position)
	}
	if snap.Shapes[0] == shapes[0] {
		t.Error("snapshot should hold its own shape values")
	}
}

func TestClear(t *testing.T) {
	h := NewHistory()
	h.Push(MakeSnapshot(nil, "a"))
	h.Undo(MakeSnapshot(nil, "b"))
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("clear should empty both stacks")
	}
}
