package interaction

import (
	"sort"
	"time"

	"github.com/piwi3910/ShapeBoard/internal/model"
)

// fakeSurface records what the controller asked it to show.
type fakeSurface struct {
	size     model.Size
	attached []*model.Shape
	moves    int
	message  string
	visible  bool
	shown    []string
	hides    int
}

func newFakeSurface(w, h float64) *fakeSurface {
	return &fakeSurface{size: model.Size{Width: w, Height: h}}
}

func (f *fakeSurface) SurfaceSize() model.Size { return f.size }

func (f *fakeSurface) AttachShape(s *model.Shape) { f.attached = append(f.attached, s) }

func (f *fakeSurface) MoveShape(*model.Shape) { f.moves++ }

func (f *fakeSurface) RemoveShape(s *model.Shape) {
	for i, a := range f.attached {
		if a == s {
			f.attached = append(f.attached[:i], f.attached[i+1:]...)
			return
		}
	}
}

func (f *fakeSurface) RemoveAllShapes() { f.attached = nil }

func (f *fakeSurface) ShowMessage(text string) {
	f.message = text
	f.visible = true
	f.shown = append(f.shown, text)
}

func (f *fakeSurface) HideMessage() {
	f.message = ""
	f.visible = false
	f.hides++
}

// manualScheduler fires callbacks when virtual time is advanced past their
// deadline. Stopped timers never fire.
type manualScheduler struct {
	now   time.Duration
	tasks []*manualTimer
	seq   int
}

type manualTimer struct {
	due     time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	pending := !t.stopped && !t.fired
	t.stopped = true
	return pending
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.seq++
	t := &manualTimer{due: s.now + d, seq: s.seq, f: f}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.now += d
	sort.SliceStable(s.tasks, func(i, j int) bool {
		if s.tasks[i].due == s.tasks[j].due {
			return s.tasks[i].seq < s.tasks[j].seq
		}
		return s.tasks[i].due < s.tasks[j].due
	})
	for _, t := range s.tasks {
		if t.due <= s.now && !t.stopped && !t.fired {
			t.fired = true
			t.f()
		}
	}
}

// forceFire runs every timer that has not fired yet, stopped or not. It
// models a timer whose Stop lost the race with its own expiry.
func (s *manualScheduler) forceFire() {
	for _, t := range s.tasks {
		if !t.fired {
			t.fired = true
			t.f()
		}
	}
}

func (s *manualScheduler) pending() int {
	n := 0
	for _, t := range s.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
