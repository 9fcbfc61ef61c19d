// The cmd/ package holds the CLI integration tests. They build the binary
// once and run it against a temporary home directory and a small sample
// book, so the whole stack is exercised: flag parsing, extension wiring,
// corpus loading, ranking and output formatting.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the thebook binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "thebook-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "thebook"
		if os.PathSeparator == '\\' {
			binaryName = "thebook.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Project root is the parent of cmd/
		projectRoot := filepath.Dir(mustGetwd())

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// samplePages is a miniature book. Only the borrowing page mentions
// "borrow", and it does so in its first paragraph's title line.
var samplePages = map[string]string{
	"ch03-01-variables-and-mutability.md": "\n# Variables and Mutability\nlet x = 5;\nvariables are immutable by default\n# Shadowing\nlet x = x + 1;\n",
	"ch04-01-what-is-ownership.md":        "\n# What Is Ownership?\nownership rules\neach value has an owner\n# The Stack\ntail\n",
	"ch04-02-references-and-borrowing.md": "\n# References and Borrowing\nborrow the value\nthe borrow checker\n# Rules\ntail\n",
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // working directory
	home   string // HOME for the binary, holds ~/.thebook
	corpus string // THEBOOK_DIR
	binary string
}

// newTestEnv creates a temporary home and a cached sample book.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := newEmptyEnv(t)
	require.NoError(t, os.MkdirAll(env.corpus, 0755))
	for name, text := range samplePages {
		require.NoError(t, os.WriteFile(filepath.Join(env.corpus, name), []byte(text), 0644))
	}
	return env
}

// newEmptyEnv creates a temporary home where no book has been fetched.
func newEmptyEnv(t *testing.T) *testEnv {
	t.Helper()
	root := t.TempDir()
	env := &testEnv{
		t:      t,
		dir:    filepath.Join(root, "work"),
		home:   filepath.Join(root, "home"),
		corpus: filepath.Join(root, "book"),
		binary: buildBinary(t),
	}
	require.NoError(t, os.MkdirAll(env.dir, 0755))
	require.NoError(t, os.MkdirAll(env.home, 0755))
	return env
}

// writeConfig writes the global config file.
func (e *testEnv) writeConfig(yaml string) {
	e.t.Helper()
	p := filepath.Join(e.home, ".thebook", "config.yaml")
	require.NoError(e.t, os.MkdirAll(filepath.Dir(p), 0755))
	require.NoError(e.t, os.WriteFile(p, []byte(yaml), 0644))
}

// run executes thebook with the given args and returns its output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("thebook %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes thebook and returns its output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()
	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		"THEBOOK_DIR="+e.corpus,
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
