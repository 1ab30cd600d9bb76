package report

import (
	"fmt"
	"io"
	"time"
)

// Option опция вывода ошибок.
type Option interface {
	String() string
	apply(r *Reporter)
}

// WithStderr задаёт замену стандартного потока ошибок.
func WithStderr(w io.Writer) Option {
	return stderrOption{w: w}
}

// WithExit задаёт функцию завершения процесса.
func WithExit(exit func(code int)) Option {
	return exitOption(exit)
}

// WithClock задаёт источник времени для записей лога.
func WithClock(now func() time.Time) Option {
	return clockOption(now)
}

type stderrOption struct {
	w io.Writer
}

func (o stderrOption) String() string {
	return fmt.Sprintf("redirect stderr to %T", o.w)
}

func (o stderrOption) apply(r *Reporter) {
	r.stderr = o.w
}

type exitOption func(code int)

func (exitOption) String() string {
	return "replace process exit"
}

func (o exitOption) apply(r *Reporter) {
	r.exit = o
}

type clockOption func() time.Time

func (clockOption) String() string {
	return "replace clock"
}

func (o clockOption) apply(r *Reporter) {
	r.now = o
}
