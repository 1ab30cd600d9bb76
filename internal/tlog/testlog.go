// Package tlog вывод ошибок списка в тестах вместе с их контекстом.
package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/listerr"
)

const (
	bold  = "\033[1m"
	red   = "\033[1;31m"
	reset = "\033[0m"
)

// Log logs error.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, bold))
}

// Error signal error.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, red))
}

// Check do nothing and return false if error is nil.
// Prints error and return true otherwise.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, red))
	return true
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(reset)
	b.WriteByte('\n')

	var c contextCollector
	var fatal *listerr.Fatal
	if errors.As(err, &fatal) {
		c.add("code", int(fatal.Code))
		c.add("operation", fatal.Operation)
		c.add("location", fmt.Sprintf("%s:%d", fatal.File, fatal.Line))
		if fatal.DumpError != nil {
			c.add("dump-error", fatal.DumpError)
		}
	}

	if d := errors.GetContextDeliverer(err); d != nil {
		d.Deliver(&c)
	}

	if len(c.vars) == 0 {
		return b.String()
	}

	var maxname int
	for _, v := range c.vars {
		if len(v.name) > maxname {
			maxname = len(v.name)
		}
	}

	for _, v := range c.vars {
		b.WriteString("    ")
		b.WriteString(bold)
		b.WriteString(v.name)
		b.WriteString(reset)
		b.WriteString(": ")
		b.WriteString(strings.Repeat(" ", maxname-len(v.name)))
		_, _ = fmt.Fprintln(&b, v.value)
	}

	return b.String()
}
