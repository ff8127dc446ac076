package task

import (
	"fmt"
	"strings"
	"time"
)

// Style classifies how a task line should be rendered.
type Style int

const (
	StyleNone Style = iota
	StyleWarning
	StyleUrgent
)

const (
	warningThreshold = 4
	urgentThreshold  = 8
)

// Task represents a single to-do entry.
type Task struct {
	Text         string
	CreationDate time.Time
	Done         bool
	Priority     int
	UUID         string

	// Order is the 1-based display position, reassigned every time the
	// store sorts or loads. Never persisted.
	Order int
}

// New creates a Task from raw user-entered text. A leading run mixing '!'
// and '1' sets the priority to the run length ("!1!" counts as 3); the run
// and the whitespace after it are stripped from the stored text. Text that
// starts with neither marker is kept verbatim with priority 0.
func New(text string) *Task {
	t := &Task{
		CreationDate: time.Now(),
		UUID:         NewUUID(),
	}

	run := 0
	for run < len(text) && (text[run] == '!' || text[run] == '1') {
		run++
	}
	if run > 0 {
		t.Priority = run
		text = strings.TrimLeft(text, "!1 ")
	}
	t.Text = text
	return t
}

// String renders the canonical single-line form: "(P) text" when the task
// has a priority, otherwise just the text. Plain, unstyled.
func (t *Task) String() string {
	if t.Priority > 0 {
		return fmt.Sprintf("(%d) %s", t.Priority, t.Text)
	}
	return t.Text
}

// Style returns the urgency classification for display. Completed tasks
// are struck through instead; callers check Done for that.
func (t *Task) Style() Style {
	switch {
	case t.Priority > urgentThreshold:
		return StyleUrgent
	case t.Priority > warningThreshold:
		return StyleWarning
	default:
		return StyleNone
	}
}
