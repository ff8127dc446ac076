//nolint:testpackage // Tests require internal access for thorough testing
package main

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/abatilo/todo/internal/output"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("Pipe failed: %v", err)
	}
	os.Stdout = w
	defer func() { os.Stdout = old }()

	fn()

	w.Close()
	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	return string(data)
}

func TestAddCommandJSONCarriesOrder(t *testing.T) {
	storeDir = t.TempDir()
	formatter = output.NewJSONFormatter()
	defer func() { storeDir = "" }()

	cmd := addCmd()
	cmd.SetArgs([]string{"buy", "milk"})

	out := captureStdout(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Errorf("Execute failed: %v", err)
		}
	})

	// The first JSON document is the created task, printed after the
	// store assigned its display position.
	var created struct {
		Order int    `json:"order"`
		Text  string `json:"text"`
	}
	dec := json.NewDecoder(bytes.NewReader([]byte(out)))
	if err := dec.Decode(&created); err != nil {
		t.Fatalf("add output is not JSON: %v\noutput: %s", err, out)
	}
	if created.Text != "buy milk" {
		t.Errorf("text = %q, want %q", created.Text, "buy milk")
	}
	if created.Order != 1 {
		t.Errorf("order = %d, want 1", created.Order)
	}
}

func TestConfirm(t *testing.T) {
	formatter = output.NewHumanFormatter()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "YES\n", true},
		{"no", "n\n", false},
		{"no word", "No\n", false},
		{"invalid then declined", "maybe\nn\n", false},
		{"eof", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			captureStdout(t, func() {
				got = confirm(strings.NewReader(tt.input))
			})
			if got != tt.want {
				t.Errorf("confirm(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
