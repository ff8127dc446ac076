package task

import (
	"time"

	"github.com/google/uuid"
)

// TimeFormat is the fixed creationDate layout used in the store file.
const TimeFormat = "2006-01-02T15:04:05"

// Record is the persisted shape of a task. Order is transient and has no
// field here by construction.
type Record struct {
	Text         string `json:"text"`
	CreationDate string `json:"creationDate"`
	Done         bool   `json:"done"`
	Priority     int    `json:"priority"`
	UUID         string `json:"uuid"`
}

// FromRecord builds a Task from a stored record, substituting defaults for
// missing fields. A creationDate that fails to parse degrades to the
// current time rather than failing the load.
func FromRecord(r Record) *Task {
	t := &Task{
		Text:     r.Text,
		Done:     r.Done,
		Priority: r.Priority,
		UUID:     r.UUID,
	}

	created, err := time.Parse(TimeFormat, r.CreationDate)
	if err != nil {
		created = time.Now()
	}
	t.CreationDate = created

	if t.UUID == "" {
		t.UUID = NewUUID()
	}
	return t
}

// ToRecord converts the task to its persisted shape.
func (t *Task) ToRecord() Record {
	return Record{
		Text:         t.Text,
		CreationDate: t.CreationDate.Format(TimeFormat),
		Done:         t.Done,
		Priority:     t.Priority,
		UUID:         t.UUID,
	}
}

// NewUUID generates a random identifier in the canonical 8-4-4-4-12
// hyphenated lowercase hex form.
func NewUUID() string {
	return uuid.NewString()
}
