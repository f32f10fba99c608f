package notify

import (
	"fmt"
	"io"
)

type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "OK"
	case Warning:
		return "WARN"
	case Error:
		return "ERROR"
	default:
		return "INFO"
	}
}

// Message is a transient banner shown to the user once.
type Message struct {
	Severity Severity
	Text     string
}

// Channel holds at most one pending message: posting a new one replaces
// whatever was queued, and rendering dismisses it.
type Channel struct {
	current *Message
}

func NewChannel() *Channel { return &Channel{} }

func (c *Channel) post(sev Severity, text string) {
	c.current = &Message{Severity: sev, Text: text}
}

func (c *Channel) Info(text string)    { c.post(Info, text) }
func (c *Channel) Success(text string) { c.post(Success, text) }
func (c *Channel) Warning(text string) { c.post(Warning, text) }
func (c *Channel) Error(text string)   { c.post(Error, text) }

// Current peeks at the pending message without dismissing it.
func (c *Channel) Current() (Message, bool) {
	if c.current == nil {
		return Message{}, false
	}
	return *c.current, true
}

// Flush returns the pending message and clears the slot.
func (c *Channel) Flush() (Message, bool) {
	if c.current == nil {
		return Message{}, false
	}
	m := *c.current
	c.current = nil
	return m, true
}

// Render writes and dismisses the pending message, if any.
func (c *Channel) Render(w io.Writer) {
	if m, ok := c.Flush(); ok {
		fmt.Fprintf(w, "[%s] %s\n", m.Severity, m.Text)
	}
}
