package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/seqkit/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestProductCmd(t *testing.T) {
	tests := map[string]struct {
		args []string
		want string
	}{
		"odometer order": {
			args: []string{"-d", "A,B", "-d", "1,2"},
			want: "A\t1\nA\t2\nB\t1\nB\t2\n",
		},
		"three dimensions": {
			args: []string{"-d", "A,B", "-d", "1", "-d", "x,y"},
			want: "A\t1\tx\nA\t1\ty\nB\t1\tx\nB\t1\ty\n",
		},
		"single dimension": {
			args: []string{"-d", "A,B,C"},
			want: "A\nB\nC\n",
		},
		"empty dimension": {
			args: []string{"-d", "A,B", "-d", ""},
			want: "",
		},
		"limit": {
			args: []string{"-d", "A,B", "-d", "1,2", "--limit", "3"},
			want: "A\t1\nA\t2\nB\t1\n",
		},
		"values are trimmed": {
			args: []string{"-d", "A, B", "-d", " 1"},
			want: "A\t1\nB\t1\n",
		},
		"json": {
			args: []string{"-d", "A,B", "-d", "1", "--format", "json"},
			want: "[\"A\",\"1\"]\n[\"B\",\"1\"]\n",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, append([]string{"product"}, tc.args...)...)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out != tc.want {
				t.Errorf("got %q, want %q", out, tc.want)
			}
		})
	}
}

func TestProductCmdInvalidInput(t *testing.T) {
	tests := map[string][]string{
		"no dimensions":  {"product"},
		"unknown format": {"product", "-d", "A", "--format", "xml"},
		"negative limit": {"product", "-d", "A", "--limit", "-1"},
		"bad run id":     {"product", "-d", "A", "--run-id", "not-a-uuid"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, args...)
			if !errors.IsCode(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("expected INVALID_INPUT, got %v", err)
			}
			if out != "" {
				t.Errorf("expected no output, got %q", out)
			}
		})
	}
}

func TestProductCmdFromConfigFile(t *testing.T) {
	path := writeConfig(t, `
product:
  format: json
  dimensions:
    - [A, B]
    - ["1", "2"]
`)
	out, _, err := execute(t, "product", "--config", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 || lines[1] != `["A","2"]` {
		t.Errorf("unexpected output %q", out)
	}
}

func TestProductCmdFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, `
product:
  format: json
  limit: 1
  dimensions:
    - [A, B]
`)
	out, _, err := execute(t, "product", "--config", path, "-d", "x,y", "--format", "text", "--limit", "0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "x\ny\n" {
		t.Errorf("expected flags to win, got %q", out)
	}
}

func TestProductCmdInvalidTelemetry(t *testing.T) {
	path := writeConfig(t, "telemetry:\n  endpoint: not an endpoint\n")
	_, _, err := execute(t, "product", "--config", path, "-d", "A")
	if err == nil || !strings.Contains(err.Error(), "endpoint") {
		t.Fatalf("expected endpoint validation error, got %v", err)
	}
}

func TestProductCmdLogsRunID(t *testing.T) {
	runID := uuid.NewString()
	_, logs, err := execute(t, "product", "-d", "A,B", "--run-id", runID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(logs, "product complete") || !strings.Contains(logs, runID) {
		t.Errorf("expected completion log with run id, got %q", logs)
	}
}

func TestParseDimensions(t *testing.T) {
	got := parseDimensions([]string{"A,B", "", " 1 , 2 "})
	want := [][]string{{"A", "B"}, {}, {"1", "2"}}
	if !slices.EqualFunc(got, want, slices.Equal) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "seqkit ") {
		t.Errorf("unexpected output %q", out)
	}

	out, _, err = execute(t, "version", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var info map[string]any
	if err := json.Unmarshal([]byte(out), &info); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", out, err)
	}
	if _, ok := info["version"]; !ok {
		t.Errorf("expected version key, got %v", info)
	}
}
