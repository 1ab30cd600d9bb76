package dotdump

import (
	"fmt"

	"github.com/sirkon/chklist/internal/logging"
)

// Option опция получателя дампов.
type Option interface {
	String() string
	apply(w *Writer)
}

// WithPicture задаёт имя картинки, которая отрисовывается утилитой dot
// после каждого дампа.
func WithPicture(name string) Option {
	return pictureOption(name)
}

// WithDotTool задаёт путь или имя утилиты отрисовки графов.
func WithDotTool(tool string) Option {
	return dotToolOption(tool)
}

// WithValueWidth ограничение ширины значения в подписи узла.
func WithValueWidth(width int) Option {
	return valueWidthOption(width)
}

// WithLogger задаёт логгер для неудачных отрисовок картинок. С ним
// ошибка отрисовки не считается ошибкой дампа.
func WithLogger(logger logging.Logger) Option {
	return loggerOption{logger: logger}
}

type pictureOption string

func (o pictureOption) String() string {
	return fmt.Sprintf("render picture into '%s'", string(o))
}

func (o pictureOption) apply(w *Writer) {
	w.picture = string(o)
}

type dotToolOption string

func (o dotToolOption) String() string {
	return fmt.Sprintf("use '%s' to render pictures", string(o))
}

func (o dotToolOption) apply(w *Writer) {
	w.dotTool = string(o)
}

type valueWidthOption int

func (o valueWidthOption) String() string {
	return fmt.Sprintf("limit value width to %d", int(o))
}

func (o valueWidthOption) apply(w *Writer) {
	if o > 0 {
		w.valueWidth = int(o)
	}
}

type loggerOption struct {
	logger logging.Logger
}

func (o loggerOption) String() string {
	return fmt.Sprintf("log picture failures with %T", o.logger)
}

func (o loggerOption) apply(w *Writer) {
	w.logger = o.logger
}
