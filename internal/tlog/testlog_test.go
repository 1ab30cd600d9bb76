package tlog_test

import (
	stderrs "errors"
	"strings"
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/listerr"
	"github.com/sirkon/chklist/internal/tlog"
)

type recorder struct {
	logs   []string
	errors []string
}

func (r *recorder) Helper() {}

func (r *recorder) Log(a ...any) {
	r.logs = append(r.logs, a[0].(string))
}

func (r *recorder) Error(a ...any) {
	r.errors = append(r.errors, a[0].(string))
}

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		tlog.Log(t, errors.New("ctx error").Int("int", 12).Any("map", map[string]string{
			"a": "b",
		}).Str("string", "str"))
	})

	t.Run("check", func(t *testing.T) {
		var r recorder
		if tlog.Check(&r, nil) {
			t.Error("nil error must not be reported")
		}
		if !tlog.Check(&r, errors.New("error").Bool("is-error", true)) {
			t.Error("non-nil error must be reported")
		}
		if len(r.errors) != 1 || !strings.Contains(r.errors[0], "is-error") {
			t.Errorf("unexpected report %q", r.errors)
		}
	})

	t.Run("fatal", func(t *testing.T) {
		var r recorder
		tlog.Log(&r, &listerr.Fatal{
			Code:      listerr.CodeEmptyList,
			Operation: "PopBack",
			File:      "main.go",
			Line:      12,
			ListName:  "list",
		})
		if len(r.logs) != 1 {
			t.Fatalf("one log record expected, got %d", len(r.logs))
		}
		for _, want := range []string{"PopBack", "main.go:12", "List is empty"} {
			if !strings.Contains(r.logs[0], want) {
				t.Errorf("%q is missing in %q", want, r.logs[0])
			}
		}
	})
}
