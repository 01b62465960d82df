// Package interaction turns pointer input on the board into shape drags and
// transient feedback messages.
//
// All Controller methods must be called from the UI goroutine. The only
// asynchronous piece is the message dismissal timer, which is dispatched back
// onto that goroutine by the Scheduler.
package interaction

import "github.com/piwi3910/ShapeBoard/internal/model"

// Surface is the drawable area the controller drives. Coordinates are
// surface-local.
type Surface interface {
	// SurfaceSize reports the current drawable area.
	SurfaceSize() model.Size
	// AttachShape renders s at s.Position on top of existing shapes.
	AttachShape(s *model.Shape)
	// MoveShape updates the on-screen position of an attached shape.
	MoveShape(s *model.Shape)
	// RemoveShape detaches a single shape.
	RemoveShape(s *model.Shape)
	// RemoveAllShapes detaches every shape.
	RemoveAllShapes()
	// ShowMessage displays text, replacing anything currently shown.
	ShowMessage(text string)
	// HideMessage removes the displayed message, if any.
	HideMessage()
}
