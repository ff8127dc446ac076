package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abatilo/todo/internal/task"
)

// Styles holds the terminal styles for task rendering.
type Styles struct {
	// Done is applied to completed tasks.
	Done lipgloss.Style
	// Urgent is applied to tasks with priority above 8.
	Urgent lipgloss.Style
	// Warning is applied to tasks with priority above 4.
	Warning lipgloss.Style
}

// DefaultStyles returns the standard task styles.
func DefaultStyles() *Styles {
	return &Styles{
		Done:    lipgloss.NewStyle().Strikethrough(true),
		Urgent:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// HumanFormatter formats output for human-readable terminal display.
type HumanFormatter struct {
	styles *Styles
}

// NewHumanFormatter creates a HumanFormatter with default styles.
func NewHumanFormatter() *HumanFormatter {
	return &HumanFormatter{styles: DefaultStyles()}
}

// FormatTask formats a single task as its styled canonical line.
func (f *HumanFormatter) FormatTask(t *task.Task) string {
	return f.styledLine(t) + "\n"
}

// FormatTaskLine formats a task as its console view: "<order> | " followed
// by the styled line. No trailing newline so callers can embed it.
func (f *HumanFormatter) FormatTaskLine(t *task.Task) string {
	return fmt.Sprintf("%d | %s", t.Order, f.styledLine(t))
}

// FormatTaskList formats tasks as console view lines, one per task. An
// empty listing produces no output; the caller prints the summary line.
func (f *HumanFormatter) FormatTaskList(tasks []*task.Task) string {
	var sb strings.Builder
	for _, t := range tasks {
		sb.WriteString(f.FormatTaskLine(t))
		sb.WriteString("\n")
	}
	return sb.String()
}

// styledLine renders "(P) text" with the strikethrough or urgency style.
func (f *HumanFormatter) styledLine(t *task.Task) string {
	line := t.String()
	if t.Done {
		return f.styles.Done.Render(line)
	}
	switch t.Style() {
	case task.StyleUrgent:
		return f.styles.Urgent.Render(line)
	case task.StyleWarning:
		return f.styles.Warning.Render(line)
	default:
		return line
	}
}

// FormatError formats an error for display.
func (f *HumanFormatter) FormatError(err error) string {
	return fmt.Sprintf("Error: %s\n", err.Error())
}

// FormatMessage formats a simple message.
func (f *HumanFormatter) FormatMessage(msg string) string {
	return msg + "\n"
}

// FormatPrompt renders a prompt with no trailing newline so input stays on
// the same line.
func (f *HumanFormatter) FormatPrompt(msg string) string {
	return msg
}
