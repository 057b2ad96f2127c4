package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alexshd/cohortsim"
)

func TestRootCmd_InvalidConfigExitsQuietly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := `samples: -1
cohorts:
  - label: x
    firm_size_low: 1
    firm_size_high: 5
    correlation:
      - [1, 0, 0, 0]
      - [0, 1, 0, 0]
      - [0, 0, 1, 0]
      - [0, 0, 0, 1]
`
	if err := os.WriteFile(path, []byte(bad), 0o644); err != nil {
		t.Fatal(err)
	}

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"generate", "--config", path})

	err := cmd.Execute()
	if err == nil {
		t.Fatal("generate succeeded with a negative sample count")
	}
	if !errors.Is(err, cohortsim.ErrInvalidConfig) {
		t.Errorf("error = %v, want ErrInvalidConfig", err)
	}

	// The error goes to the caller once; no usage dump, no double report.
	if s := out.String(); strings.Contains(s, "Usage:") {
		t.Errorf("usage text printed on configuration error:\n%s", s)
	}
}
