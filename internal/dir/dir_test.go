package dir

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/tlog"
)

func TestDir(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out", "nested")
	d, err := New(root)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create dir"))
		return
	}

	if err := d.Replace("file.txt", func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	}); err != nil {
		tlog.Error(t, errors.Wrap(err, "write file"))
		return
	}

	expectedErr := errors.New("write failed")
	err = d.Replace("file.txt", func(w io.Writer) error {
		_, _ = io.WriteString(w, "garbage")
		return expectedErr
	})
	if !errors.Is(err, expectedErr) {
		t.Errorf("unexpected error %v", err)
	}

	data, err := os.ReadFile(d.Path("file.txt"))
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read file"))
		return
	}
	if string(data) != "hello" {
		t.Errorf("failed replace must keep old content, got %q", data)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read dir"))
		return
	}
	if len(entries) != 1 {
		t.Errorf("temporary files must be cleaned up, got %d entries", len(entries))
	}

	if _, err := New(d.Path("file.txt")); err == nil {
		t.Error("file path cannot be used as directory")
	}
}

func TestReplaceFileMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("no unix permissions")
	}

	d, err := New(t.TempDir())
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create dir"))
		return
	}

	if err := d.Replace("graph.dot", func(w io.Writer) error {
		_, err := io.WriteString(w, "digraph {}")
		return err
	}); err != nil {
		tlog.Error(t, errors.Wrap(err, "write file"))
		return
	}

	stat, err := os.Stat(d.Path("graph.dot"))
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "stat file"))
		return
	}
	if perm := stat.Mode().Perm(); perm != 0644 {
		t.Errorf("file mode 0644 expected, got %o", perm)
	}
}
