package output

import "github.com/abatilo/todo/internal/task"

// Formatter defines the interface for output formatting.
type Formatter interface {
	// FormatTask renders a single task as its canonical line.
	FormatTask(t *task.Task) string
	// FormatTaskLine renders a task prefixed with its display position.
	FormatTaskLine(t *task.Task) string
	// FormatTaskList renders the listing body, one task per line.
	FormatTaskList(tasks []*task.Task) string
	FormatError(err error) string
	FormatMessage(msg string) string
	// FormatPrompt renders an interactive prompt awaiting input.
	FormatPrompt(msg string) string
}
