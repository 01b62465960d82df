package interaction

import "time"

// Timer is a pending delayed call.
type Timer interface {
	// Stop prevents the call from firing. It reports whether the call was
	// still pending.
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// TimeScheduler schedules with the wall clock. Callbacks are handed to
// Dispatch so they run on the UI goroutine; a nil Dispatch runs them on the
// timer goroutine.
type TimeScheduler struct {
	Dispatch func(func())
}

// NewTimeScheduler creates a wall-clock scheduler that marshals callbacks
// through dispatch (fyne.Do in the application).
func NewTimeScheduler(dispatch func(func())) *TimeScheduler {
	return &TimeScheduler{Dispatch: dispatch}
}

func (s *TimeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() {
		if s.Dispatch != nil {
			s.Dispatch(f)
			return
		}
		f()
	})
}
