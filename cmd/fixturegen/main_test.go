package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_CreatesFixture(t *testing.T) {
	root := t.TempDir()

	out, _, err := run(t, "--root", root, "--log-level", "error")
	if err != nil {
		t.Fatalf("root command failed: %v", err)
	}

	for _, want := range []string{
		"Creating sample data for regression testing...",
		"Saved parquet file to " + filepath.Join(root, "data", "test_sample", "parquet", "sample.parquet"),
		"Saved config file to " + filepath.Join(root, "data", "test_sample", "config", "sample.json"),
		"Sample data creation complete",
		"Sample Data:",
		"Configuration:",
		`"table_name": "sample_data"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}

	if _, err := os.Stat(filepath.Join(root, "data", "test_sample", "batched_output")); err != nil {
		t.Fatalf("batched_output not created: %v", err)
	}
}

func TestRootCommand_LogsToStderr(t *testing.T) {
	out, errOut, err := run(t, "--root", t.TempDir(), "--log-level", "info")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "fixture_written") {
		t.Fatal("log event leaked into stdout")
	}
	if !strings.Contains(errOut, "fixture_written") {
		t.Fatalf("expected fixture_written event on stderr, got:\n%s", errOut)
	}
}

func TestRootCommand_RejectsArgs(t *testing.T) {
	if _, _, err := run(t, "--root", t.TempDir(), "extra"); err == nil {
		t.Fatal("expected error for positional argument")
	}
}

func TestRootCommand_ConfigFileRoot(t *testing.T) {
	dir := t.TempDir()
	outRoot := filepath.Join(dir, "out")
	cfgPath := filepath.Join(dir, "fixturegen.yaml")
	if err := os.WriteFile(cfgPath, []byte("root: "+outRoot+"\nlog_level: error\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, _, err := run(t, "--config", cfgPath); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(outRoot, "data", "test_sample", "config", "sample.json")); err != nil {
		t.Fatalf("expected fixture under config root: %v", err)
	}
}

func TestInspect(t *testing.T) {
	root := t.TempDir()
	if _, _, err := run(t, "--root", root, "--log-level", "error"); err != nil {
		t.Fatal(err)
	}

	out, _, err := run(t, "inspect", "--root", root, "--format", "json")
	if err != nil {
		t.Fatalf("inspect failed: %v", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("inspect json: %v\n%s", err, out)
	}
	if len(rows) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(rows))
	}
	if rows[0]["age"] != float64(62) {
		t.Fatalf("unexpected first age: %v", rows[0]["age"])
	}

	out, _, err = run(t, "inspect", "--root", root, "--schema")
	if err != nil {
		t.Fatalf("inspect --schema failed: %v", err)
	}
	for _, col := range []string{"age", "income", "education", "employed", "join_date", "DATE"} {
		if !strings.Contains(out, col) {
			t.Fatalf("schema output missing %q:\n%s", col, out)
		}
	}
}

func TestInspect_MissingFile(t *testing.T) {
	if _, _, err := run(t, "inspect", filepath.Join(t.TempDir(), "nope.parquet")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestConfigShow(t *testing.T) {
	out, _, err := run(t, "config", "show")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "{\n  \"table_name\": \"sample_data\",") {
		t.Fatalf("unexpected json output:\n%s", out)
	}

	out, _, err = run(t, "config", "show", "--format", "yaml")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "table_name: sample_data") || !strings.Contains(out, "join_date: datetime") {
		t.Fatalf("unexpected yaml output:\n%s", out)
	}
}

func TestExport_SQLite(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "fixture.db")

	out, _, err := run(t, "export", "--log-level", "error", "--kind", "sqlite", "--dsn", dsn)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(out, "Exported 10 rows to sqlite table sample_data") {
		t.Fatalf("unexpected export output: %s", out)
	}

	out, _, err = run(t, "export", "--kind", "sqlite", "--dsn", dsn, "--check")
	if err != nil {
		t.Fatalf("export --check failed: %v", err)
	}
	if !strings.Contains(out, `"ok": true`) {
		t.Fatalf("unexpected check output: %s", out)
	}
}

func TestExport_MissingDSN(t *testing.T) {
	if _, _, err := run(t, "export", "--log-level", "error", "--kind", "sqlite"); err == nil {
		t.Fatal("expected error without dsn")
	}
}
