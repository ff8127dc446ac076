package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abatilo/todo/internal/config"
	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/output"
	"github.com/abatilo/todo/internal/storage"
	"github.com/abatilo/todo/internal/task"
)

const defaultListCount = 10

//nolint:gochecknoglobals // CLI flags and formatter are package-level by design
var (
	jsonOutput bool
	storeDir   string
	formatter  output.Formatter
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "todo",
		Short: "A minimal, single-file todo list",
		Long: "todo - A single-file todo list.\n" +
			"Task text starting with n '!' or '1' characters gets priority n.",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if jsonOutput {
				formatter = output.NewJSONFormatter()
			} else {
				formatter = output.NewHumanFormatter()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storeDir, "dir", "", "Store directory (default from config, else ~/.todo)")

	rootCmd.AddCommand(
		addCmd(),
		listCmd(),
		doneCmd(),
		editCmd(),
		sortCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func getStore() (*storage.Store, error) {
	dir := storeDir
	if dir == "" {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		dir = cfg.StoreDir
	}
	return storage.New(dir)
}

func printOutput(s string) {
	os.Stdout.WriteString(s) //nolint:gosec // stdout write errors are unrecoverable
}

func printError(err error) {
	os.Stdout.WriteString(formatter.FormatError(err)) //nolint:gosec // stdout write errors are unrecoverable
	os.Exit(1)
}

// addCmd implements 'todo add'.
func addCmd() *cobra.Command {
	var priority int
	cmd := &cobra.Command{
		Use:   "add <text>...",
		Short: "Add a new task",
		Long: "Add a new task. Start the text with n '!' or '1' characters to set\n" +
			"priority n; an explicit --priority overrides the derived value.",
		Args: cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}

			t := task.New(strings.Join(args, " "))
			if priority > 0 {
				t.Priority = priority
			}

			if dup := store.FindDuplicate(t); dup != nil {
				printOutput(formatter.FormatMessage("duplicate: " + formatter.FormatTaskLine(dup)))
				if !confirm(cmd.InOrStdin()) {
					return
				}
			}

			if err = store.Add(t); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
			printOutput(formatter.FormatMessage(fmt.Sprintf("Tasks created: %d", t.Order)))
		},
	}
	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "Explicit priority (overrides '!' markers)")
	return cmd
}

// confirm prompts until the user answers y/n/yes/no. Declined or
// unanswerable (EOF) counts as no.
func confirm(in io.Reader) bool {
	reader := bufio.NewReader(in)
	for {
		printOutput(formatter.FormatPrompt("Create duplicated task? Y/n: "))
		line, err := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		}
		if err != nil {
			return false
		}
	}
}

// listCmd implements 'todo list'.
func listCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "list [count] [filter]...",
		Short: "List tasks",
		Long: "List tasks. A leading integer argument limits output to the first\n" +
			"count tasks (negative means the last count); the default is 10.\n" +
			"Remaining arguments filter tasks by case-insensitive substring.",
		Run: func(_ *cobra.Command, args []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}

			if len(args) > 0 {
				if n, convErr := strconv.Atoi(args[0]); convErr == nil {
					count = n
					args = args[1:]
				}
			}
			filterWord := strings.Join(args, " ")

			tasks := store.List(count, filterWord)
			printOutput(formatter.FormatTaskList(tasks))

			prefix := ""
			if count < 0 {
				prefix = "last "
			}
			printOutput(formatter.FormatMessage(
				fmt.Sprintf("Displayed %s%d/%d tasks", prefix, len(tasks), store.Len())))
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", defaultListCount, "Number of tasks to show (negative for the last n)")
	return cmd
}

// doneCmd implements 'todo done'.
func doneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "done <position>",
		Short: "Mark a task as done",
		Args:  cobra.ExactArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				printError(todoerrors.InvalidPositionError{Value: args[0]})
			}

			store, err := getStore()
			if err != nil {
				printError(err)
			}

			t, err := store.MarkDone(position)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Done: " + formatter.FormatTaskLine(t)))
		},
	}
}

// editCmd implements 'todo edit'.
func editCmd() *cobra.Command {
	var priority int
	cmd := &cobra.Command{
		Use:   "edit <position> [new text]...",
		Short: "Edit a task's text or priority",
		Args:  cobra.MinimumNArgs(1),
		Run: func(_ *cobra.Command, args []string) {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				printError(todoerrors.InvalidPositionError{Value: args[0]})
			}

			var newText *string
			if len(args) > 1 {
				text := strings.Join(args[1:], " ")
				newText = &text
			}
			var newPriority *int
			if priority > 0 {
				newPriority = &priority
			}

			store, err := getStore()
			if err != nil {
				printError(err)
			}

			t, err := store.Edit(position, newText, newPriority)
			if err != nil {
				printError(err)
			}
			printOutput(formatter.FormatTask(t))
		},
	}
	cmd.Flags().IntVarP(&priority, "priority", "p", 0, "New priority")
	return cmd
}

// sortCmd implements 'todo sort'.
func sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort",
		Short: "Re-sort the task list",
		Long:  "Re-sort the task list: incomplete first, then priority, then newest.",
		Run: func(_ *cobra.Command, _ []string) {
			store, err := getStore()
			if err != nil {
				printError(err)
			}

			store.Sort()
			if err = store.Save(); err != nil {
				printError(err)
			}
			printOutput(formatter.FormatMessage("Sorted."))
		},
	}
}
