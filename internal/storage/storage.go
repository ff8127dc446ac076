package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	todoerrors "github.com/abatilo/todo/internal/errors"
	"github.com/abatilo/todo/internal/task"
)

const storeFile = "current.json"

// Store holds the ordered task list and its backing file. One invocation is
// one load-mutate-save cycle; there is no locking, and concurrent
// invocations may clobber each other's writes.
type Store struct {
	dir   string
	tasks []*task.Task
}

// New creates a Store rooted at dir, creating the directory if needed and
// loading current.json. A missing or unparseable file means a fresh store;
// any other read failure is surfaced.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	s := &Store{dir: dir}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, storeFile)
}

// load reads current.json. File-not-found means a first run and malformed
// JSON a corrupt store; both yield an empty list. Every other read failure
// propagates, so a mutating command cannot overwrite a file it could not
// read.
func (s *Store) load() error {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	var records []task.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil
	}
	s.tasks = make([]*task.Task, 0, len(records))
	for i, r := range records {
		t := task.FromRecord(r)
		t.Order = i + 1
		s.tasks = append(s.tasks, t)
	}
	return nil
}

// Save overwrites the backing file with the full task list in current
// order. The write goes to a temp file renamed into place, so a failed
// save never leaves a truncated file that looks valid.
func (s *Store) Save() error {
	records := make([]task.Record, len(s.tasks))
	for i, t := range s.tasks {
		records[i] = t.ToRecord()
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, storeFile+".tmp-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.Path())
}

// Sort reorders tasks: incomplete before completed, then priority
// descending, then creation time descending. Display order is reassigned
// 1..N afterwards. This is the single ordering authority; nothing else
// relies on insertion order for display.
func (s *Store) Sort() {
	sort.SliceStable(s.tasks, func(i, j int) bool {
		a, b := s.tasks[i], s.tasks[j]
		if a.Done != b.Done {
			return !a.Done
		}
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		return a.CreationDate.After(b.CreationDate)
	})
	s.renumber()
}

func (s *Store) renumber() {
	for i, t := range s.tasks {
		t.Order = i + 1
	}
}

// List returns tasks for display without mutating the store. A non-empty
// filterWord restricts to tasks whose text contains it case-insensitively,
// preserving current order. A non-negative count takes the first count of
// the result, a negative count the last |count|.
func (s *Store) List(count int, filterWord string) []*task.Task {
	tasks := s.tasks
	if filterWord != "" {
		needle := strings.ToLower(filterWord)
		filtered := make([]*task.Task, 0, len(tasks))
		for _, t := range tasks {
			if strings.Contains(strings.ToLower(t.Text), needle) {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if count >= 0 {
		if count > len(tasks) {
			count = len(tasks)
		}
		return tasks[:count]
	}
	if -count > len(tasks) {
		return tasks
	}
	return tasks[len(tasks)+count:]
}

// FindDuplicate returns the first task whose text exactly equals the
// candidate's, or nil.
func (s *Store) FindDuplicate(candidate *task.Task) *task.Task {
	for _, t := range s.tasks {
		if t.Text == candidate.Text {
			return t
		}
	}
	return nil
}

// Len returns the total number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Task returns the task at the given 1-based display position.
func (s *Store) Task(position int) (*task.Task, error) {
	if position < 1 || position > len(s.tasks) {
		return nil, todoerrors.PositionOutOfRangeError{Position: position, Count: len(s.tasks)}
	}
	return s.tasks[position-1], nil
}

// Add appends a task, re-sorts, and saves. The task's Order is valid after
// the call.
func (s *Store) Add(t *task.Task) error {
	s.tasks = append(s.tasks, t)
	s.Sort()
	return s.Save()
}

// MarkDone marks the task at the given position done, re-sorts so it sinks
// below incomplete tasks, and saves.
func (s *Store) MarkDone(position int) (*task.Task, error) {
	t, err := s.Task(position)
	if err != nil {
		return nil, err
	}
	t.Done = true
	s.Sort()
	if err := s.Save(); err != nil {
		return nil, err
	}
	return t, nil
}

// Edit replaces the text and/or priority of the task at the given
// position. Nil means leave unchanged; when nothing changes the store is
// not saved.
func (s *Store) Edit(position int, text *string, priority *int) (*task.Task, error) {
	t, err := s.Task(position)
	if err != nil {
		return nil, err
	}
	if text == nil && priority == nil {
		return t, nil
	}
	if text != nil {
		t.Text = *text
	}
	if priority != nil {
		t.Priority = *priority
	}
	s.Sort()
	if err := s.Save(); err != nil {
		return nil, err
	}
	return t, nil
}
