package output

import (
	"encoding/json"

	"github.com/abatilo/todo/internal/task"
)

// JSONFormatter formats output as JSON.
type JSONFormatter struct{}

// NewJSONFormatter creates a new JSONFormatter.
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// marshalJSON marshals a value to indented JSON with a trailing newline.
func marshalJSON(v any) string {
	data, _ := json.MarshalIndent(v, "", "  ")
	return string(data) + "\n"
}

// taskJSON mirrors the persisted record plus the transient display order.
type taskJSON struct {
	Order        int    `json:"order"`
	Text         string `json:"text"`
	CreationDate string `json:"creationDate"`
	Done         bool   `json:"done"`
	Priority     int    `json:"priority"`
	UUID         string `json:"uuid"`
}

func toTaskJSON(t *task.Task) taskJSON {
	return taskJSON{
		Order:        t.Order,
		Text:         t.Text,
		CreationDate: t.CreationDate.Format(task.TimeFormat),
		Done:         t.Done,
		Priority:     t.Priority,
		UUID:         t.UUID,
	}
}

// FormatTask formats a single task as JSON.
func (f *JSONFormatter) FormatTask(t *task.Task) string {
	return marshalJSON(toTaskJSON(t))
}

// FormatTaskLine formats a task as compact JSON with no trailing newline.
func (f *JSONFormatter) FormatTaskLine(t *task.Task) string {
	data, _ := json.Marshal(toTaskJSON(t))
	return string(data)
}

// FormatTaskList formats a list of tasks as a JSON array.
func (f *JSONFormatter) FormatTaskList(tasks []*task.Task) string {
	jsonTasks := make([]taskJSON, len(tasks))
	for i, t := range tasks {
		jsonTasks[i] = toTaskJSON(t)
	}
	return marshalJSON(jsonTasks)
}

// errorJSON is the JSON representation of an error.
type errorJSON struct {
	Error string `json:"error"`
}

// FormatError formats an error as JSON.
func (f *JSONFormatter) FormatError(err error) string {
	return marshalJSON(errorJSON{Error: err.Error()})
}

// messageJSON is the JSON representation of a message.
type messageJSON struct {
	Message string `json:"message"`
}

// FormatMessage formats a simple message as JSON.
func (f *JSONFormatter) FormatMessage(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}

// FormatPrompt formats a prompt as a standalone JSON message so it never
// interleaves raw text into the output stream.
func (f *JSONFormatter) FormatPrompt(msg string) string {
	return marshalJSON(messageJSON{Message: msg})
}
