package errors

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error",
			err:      nil,
			expected: "",
		},
		{
			name:     "simple error",
			err:      errors.New("habit not found"),
			expected: "Error: habit not found",
		},
		{
			name:     "wrapped error",
			err:      errors.New("failed to open database: permission denied"),
			expected: "Error: failed to open database: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Format(tt.err)
			if result != tt.expected {
				t.Errorf("Format(%v) = %q, want %q", tt.err, result, tt.expected)
			}
		})
	}
}

func TestFormatf(t *testing.T) {
	result := Formatf("no habit named %q", "Morning Run")
	expected := `Error: no habit named "Morning Run"`
	if result != expected {
		t.Errorf("Formatf() = %q, want %q", result, expected)
	}
}

// TestFatal runs Fatal in a subprocess to observe the exit code and stderr.
func TestFatal(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL") == "1" {
		Fatal(errors.New("test error"))
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatal")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL=1")
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	if e, ok := err.(*exec.ExitError); ok && !e.Success() {
		if e.ExitCode() != 1 {
			t.Errorf("Fatal() exit code = %d, want 1", e.ExitCode())
		}
		if !strings.Contains(stderr.String(), "Error: test error") {
			t.Errorf("Fatal() stderr = %q, want to contain %q", stderr.String(), "Error: test error")
		}
	} else {
		t.Errorf("Fatal() did not exit with error: %v", err)
	}
}

func TestFatalNilError(t *testing.T) {
	if os.Getenv("GO_TEST_FATAL_NIL") == "1" {
		Fatal(nil)
		os.Exit(0)
	}

	cmd := exec.Command(os.Args[0], "-test.run=TestFatalNilError")
	cmd.Env = append(os.Environ(), "GO_TEST_FATAL_NIL=1")

	if err := cmd.Run(); err != nil {
		t.Errorf("Fatal(nil) should not exit, but got error: %v", err)
	}
}
