package cli

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"huggable/config"
)

type stubGenerator struct {
	out   string
	err   error
	calls int
}

func (s *stubGenerator) GenerateApp(ctx context.Context, description, style string) (string, error) {
	s.calls++
	return s.out, s.err
}

// resetFlags clears flag-bound package state between test runs; cobra keeps
// flag values across Execute calls.
func resetFlags() {
	apiKey = ""
	appName = ""
	description = ""
	style = ""
	noRun = false
	port = 0
	model = ""
}

func withStub(t *testing.T, stub *stubGenerator) {
	t.Helper()
	orig := newGenerator
	newGenerator = func(apiKey, model string) Generator { return stub }
	t.Cleanup(func() { newGenerator = orig })
}

func TestCreate_NoRun_WritesSanitizedArtifact(t *testing.T) {
	resetFlags()
	tmp := t.TempDir()
	conf = config.Config{Model: "gpt-4o", OutputDir: filepath.Join(tmp, "generated_apps"), Port: 8080}

	stub := &stubGenerator{out: "```html\n<html><body>Todo</body></html>\n```"}
	withStub(t, stub)

	rootCmd.SetArgs([]string{
		"--api-key", "test-key",
		"--name", "Todo App",
		"--description", "A todo list",
		"--no-run",
	})
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("command failed: %v", err)
	}

	if stub.calls != 1 {
		t.Fatalf("generator called %d times, want 1", stub.calls)
	}

	data, err := os.ReadFile(filepath.Join(conf.OutputDir, "todo_app", "index.html"))
	if err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	if string(data) != "<html><body>Todo</body></html>" {
		t.Fatalf("artifact content = %q, want sanitized HTML only", string(data))
	}
}

func TestCreate_MissingAPIKey_FailsBeforeAnyWork(t *testing.T) {
	resetFlags()
	tmp := t.TempDir()
	conf = config.Config{Model: "gpt-4o", OutputDir: filepath.Join(tmp, "generated_apps"), Port: 8080}

	stub := &stubGenerator{out: "<html></html>"}
	withStub(t, stub)

	rootCmd.SetArgs([]string{
		"--name", "Todo App",
		"--description", "A todo list",
		"--no-run",
	})
	err := rootCmd.ExecuteContext(context.Background())
	if err == nil {
		t.Fatal("expected an error without an API key")
	}

	if stub.calls != 0 {
		t.Fatalf("generator called %d times despite missing key", stub.calls)
	}
	if _, statErr := os.Stat(conf.OutputDir); !os.IsNotExist(statErr) {
		t.Fatalf("output directory was created despite missing key: %v", statErr)
	}
}

func TestCreate_GenerationFailurePropagates(t *testing.T) {
	resetFlags()
	tmp := t.TempDir()
	conf = config.Config{Model: "gpt-4o", OutputDir: filepath.Join(tmp, "generated_apps"), Port: 8080}

	genErr := errors.New("rate limited")
	stub := &stubGenerator{err: genErr}
	withStub(t, stub)

	rootCmd.SetArgs([]string{
		"--api-key", "test-key",
		"--name", "Todo App",
		"--description", "A todo list",
		"--no-run",
	})
	err := rootCmd.ExecuteContext(context.Background())
	if !errors.Is(err, genErr) {
		t.Fatalf("want wrapped generation error, got %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("generator called %d times, want exactly 1 (no retry)", stub.calls)
	}

	if _, statErr := os.Stat(filepath.Join(conf.OutputDir, "todo_app")); !os.IsNotExist(statErr) {
		t.Fatal("artifact directory created despite generation failure")
	}
}

func TestCreate_UnsafeNameRejected(t *testing.T) {
	resetFlags()
	tmp := t.TempDir()
	conf = config.Config{Model: "gpt-4o", OutputDir: filepath.Join(tmp, "generated_apps"), Port: 8080}

	stub := &stubGenerator{out: "<html></html>"}
	withStub(t, stub)

	rootCmd.SetArgs([]string{
		"--api-key", "test-key",
		"--name", "../escape",
		"--description", "A todo list",
		"--no-run",
	})
	if err := rootCmd.ExecuteContext(context.Background()); err == nil {
		t.Fatal("expected an error for a path-escaping app name")
	}
}
