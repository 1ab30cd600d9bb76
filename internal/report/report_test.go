package report_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/listerr"
	"github.com/sirkon/chklist/internal/report"
	"github.com/sirkon/chklist/internal/tlog"
)

func testClock() time.Time {
	return time.Date(2021, 8, 21, 12, 0, 0, 0, time.UTC)
}

func TestReporterGuard(t *testing.T) {
	logName := filepath.Join(t.TempDir(), report.DefaultLogName)

	var stderr bytes.Buffer
	exitCode := -100
	r := report.New(
		logName,
		report.WithStderr(&stderr),
		report.WithExit(func(code int) { exitCode = code }),
		report.WithClock(testClock),
	)

	func() {
		defer r.Guard()
		panic(&listerr.Fatal{
			Code:      listerr.CodeWrongNextNode,
			Operation: "InsertAfter",
			File:      "main.go",
			Line:      42,
			Function:  "main.main",
			ListName:  "list",
			ListID:    7,
			Cause:     listerr.New(listerr.CodeWrongNextNode, "node 3 at position 1"),
		})
	}()

	if exitCode != int(listerr.CodeWrongNextNode) {
		t.Errorf("expected exit code %d, got %d", listerr.CodeWrongNextNode, exitCode)
	}

	data, err := os.ReadFile(logName)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read log"))
		return
	}

	for _, want := range []string{
		"2021-08-21T12:00:00Z ERROR",
		"main.go:42",
		"main.main",
		"InsertAfter",
		"LIST_WRONG_NEXT_NODE(11)",
		"Wrong pointer to next node found",
		`list "list" id=7`,
		"node 3 at position 1",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("log misses %q: %s", want, data)
		}
		if !strings.Contains(stderr.String(), want) {
			t.Errorf("stderr misses %q: %s", want, stderr.String())
		}
	}
}

func TestReporterGuardNoPanic(t *testing.T) {
	called := false
	r := report.New("", report.WithExit(func(int) { called = true }), report.WithStderr(&bytes.Buffer{}))

	func() {
		defer r.Guard()
	}()

	if called {
		t.Error("exit must not be called without panic")
	}
}

func TestReporterGuardForeignPanic(t *testing.T) {
	r := report.New("", report.WithExit(func(int) { t.Error("exit must not be called") }))

	defer func() {
		if v := recover(); v != "boom" {
			t.Errorf("foreign panic must pass through, got %v", v)
		}
	}()

	func() {
		defer r.Guard()
		panic("boom")
	}()
}

func TestReporterWarnings(t *testing.T) {
	logName := filepath.Join(t.TempDir(), report.DefaultLogName)
	var stderr bytes.Buffer
	r := report.New(logName, report.WithStderr(&stderr), report.WithClock(testClock))

	r.DumpFailed("graph.dot", errors.New("disk is full"))
	r.PersistFailed("Base.dat", errors.New("permission denied"))
	r.ConfigNotFound("/tmp")
	r.PictureFailed("graph.png", errors.New("dot not found"))

	data, err := os.ReadFile(logName)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read log"))
		return
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 log lines, got %d: %q", len(lines), lines)
	}
	for i, want := range []string{"graph.dot", "Base.dat", "/tmp", "graph.png"} {
		if !strings.Contains(lines[i], "WARNING") || !strings.Contains(lines[i], want) {
			t.Errorf("line %d: unexpected content %q", i, lines[i])
		}
	}
}
