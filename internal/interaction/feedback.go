package interaction

import (
	"time"

	"github.com/piwi3910/ShapeBoard/internal/logger"
)

// MessageTimeout is how long a feedback message stays visible.
const MessageTimeout = 3 * time.Second

// FeedbackMessage is the transient text currently on screen.
type FeedbackMessage struct {
	Text       string
	CreatedAt  time.Time
	Generation uint64
}

// emit replaces any visible message with text and schedules its dismissal.
func (c *Controller) emit(text string) {
	if c.feedback != nil {
		c.surface.HideMessage()
		c.feedback = nil
	}
	if c.dismissTimer != nil {
		c.dismissTimer.Stop()
		c.dismissTimer = nil
	}

	c.generation++
	gen := c.generation
	c.feedback = &FeedbackMessage{Text: text, CreatedAt: c.now(), Generation: gen}
	c.surface.ShowMessage(text)
	c.log.Debug("message shown", logger.F("text", text), logger.F("generation", gen))

	c.dismissTimer = c.scheduler.AfterFunc(MessageTimeout, func() {
		c.dismiss(gen)
	})
}

// dismiss removes the message only if it is still the one generation gen
// refers to. A superseded message's timer lands here as a no-op.
func (c *Controller) dismiss(gen uint64) {
	if c.feedback == nil || c.feedback.Generation != gen {
		c.log.Debug("stale dismissal ignored", logger.F("generation", gen))
		return
	}
	c.surface.HideMessage()
	c.feedback = nil
	c.dismissTimer = nil
	c.log.Debug("message dismissed", logger.F("generation", gen))
}

// Message returns the visible feedback message, or nil.
func (c *Controller) Message() *FeedbackMessage {
	if c.feedback == nil {
		return nil
	}
	m := *c.feedback
	return &m
}
