package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	body := "database:\n  driver: sqlite\n  path: " + filepath.Join(dir, "tracker.db") + "\n" +
		"tracker:\n  timezone: UTC\n" +
		"logging:\n  level: error\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func runCmd(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		t.Fatalf("%v: %v", args, err)
	}
	return out.String()
}

func TestMigrateCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	before := runCmd(t, "migrate", "--status", "--config", cfgPath)
	if strings.Contains(before, "applied") || strings.Count(before, "pending") != 3 {
		t.Fatalf("expected three pending migrations, got:\n%s", before)
	}

	if out := runCmd(t, "migrate", "--config", cfgPath); !strings.Contains(out, "migrations applied") {
		t.Fatalf("unexpected migrate output: %q", out)
	}

	after := runCmd(t, "migrate", "--status", "--config", cfgPath)
	if strings.Contains(after, "pending") || strings.Count(after, "applied") != 3 {
		t.Fatalf("expected three applied migrations, got:\n%s", after)
	}
}

func TestExportCommand(t *testing.T) {
	cfgPath := writeTestConfig(t)

	stdout := runCmd(t, "export", "--config", cfgPath)
	if !strings.HasPrefix(stdout, "\ufeffvideoId,title,channel,studyMinutes,lastProgressSeconds,lastSyncedAt") {
		t.Fatalf("unexpected export output: %q", stdout)
	}

	outPath := filepath.Join(t.TempDir(), "records.csv")
	runCmd(t, "export", "--config", cfgPath, "--out", outPath)
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if string(data) != stdout {
		t.Fatalf("file export differs from stdout export:\n%q\n%q", data, stdout)
	}
}

func TestUnknownDriverRejected(t *testing.T) {
	cfgPath := writeTestConfig(t)
	t.Setenv("TUBESTUDY_DATABASE_DRIVER", "mysql")

	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"migrate", "--config", cfgPath})
	if err := root.Execute(); err == nil || !strings.Contains(err.Error(), "database.driver") {
		t.Fatalf("expected driver validation error, got %v", err)
	}
}
