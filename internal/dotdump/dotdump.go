// Package dotdump вывод диагностических слепков списка в формате Graphviz.
package dotdump

import (
	"bufio"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/sirkon/errors"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/sirkon/chklist/internal/dir"
	"github.com/sirkon/chklist/internal/dllist"
	"github.com/sirkon/chklist/internal/listerr"
	"github.com/sirkon/chklist/internal/logging"
)

const (
	defaultValueWidth = 32

	colorLive      = "#c8f7c5"
	colorUnreached = "#d9d9d9"
	colorReleased  = "#f7c5c5"
	colorMissing   = "#ff6060"
)

// New конструктор получателя дампов пишущего в данную директорию.
func New(d *dir.Dir, opts ...Option) *Writer {
	w := &Writer{
		dir:        d,
		valueWidth: defaultValueWidth,
	}
	for _, opt := range opts {
		opt.apply(w)
	}

	return w
}

// Writer получатель дампов.
type Writer struct {
	dir        *dir.Dir
	valueWidth int

	picture  string
	dotTool  string
	pictures []string
	logger   logging.Logger
}

var _ dllist.Dumper = &Writer{}

// Dump для реализации dllist.Dumper.
func (w *Writer) Dump(name string, s dllist.Snapshot) error {
	if err := w.dir.Replace(name, func(dst io.Writer) error {
		return w.Render(dst, s)
	}); err != nil {
		return errors.Wrap(err, "write graph").Str("dump-name", name)
	}

	if w.picture == "" {
		return nil
	}

	if err := w.renderPicture(name); err != nil {
		err = errors.Wrap(err, "render picture").Str("picture-name", w.picture)
		if w.logger == nil {
			return err
		}

		// Картинка необязательна, граф уже записан.
		w.logger.PictureFailed(w.picture, err)
	}

	return nil
}

// Render вывод слепка в формате dot.
func (w *Writer) Render(dst io.Writer, s dllist.Snapshot) error {
	b := bufio.NewWriter(dst)

	p := func(format string, a ...any) {
		_, _ = fmt.Fprintf(b, format, a...)
		_ = b.WriteByte('\n')
	}

	p("digraph %q {", s.Name)
	p("\t// list id %d, instance %s", s.ID, s.UUID)
	p("\trankdir=LR;")
	p("\tlabel=\"%s\";", escape(fmt.Sprintf(
		"list %q id=%d size=%d head=%d tail=%d verdict=%s",
		s.Name,
		s.ID,
		s.Size,
		s.Head,
		s.Tail,
		s.Verdict,
	)))
	if s.Verdict != listerr.CodeOK {
		p("\tfontcolor=red;")
	}
	p("\tnode [shape=record, style=filled];")
	p("")

	known := make(map[uint32]struct{}, len(s.Nodes))
	for _, n := range s.Nodes {
		known[n.Index] = struct{}{}
	}

	missing := map[uint32]struct{}{}
	ref := func(index uint32) {
		if index == 0 {
			return
		}
		if _, ok := known[index]; !ok {
			missing[index] = struct{}{}
		}
	}

	for _, n := range s.Nodes {
		fill := colorLive
		switch {
		case !n.Live:
			fill = colorReleased
		case !n.Reached:
			fill = colorUnreached
		}

		value := "POISON"
		if n.Live {
			value = runewidth.Truncate(n.Value, w.valueWidth, "…")
		}

		p(
			"\t%s [label=\"<i> %d | <v> %s | { <p> prev %d | <n> next %d }\", fillcolor=\"%s\"];",
			nodeID(n.Index),
			n.Index,
			escape(value),
			n.Prev,
			n.Next,
			fill,
		)
		ref(n.Next)
		ref(n.Prev)
	}

	ref(s.Head)
	ref(s.Tail)
	missed := maps.Keys(missing)
	slices.Sort(missed)
	for _, index := range missed {
		p("\t%s [label=\"%d | ?\", fillcolor=\"%s\"];", nodeID(index), index, colorMissing)
	}
	p("")

	for _, n := range s.Nodes {
		if n.Next != 0 {
			p("\t%s:n -> %s:i [color=blue];", nodeID(n.Index), nodeID(n.Next))
		}
		if n.Prev != 0 {
			p("\t%s:p -> %s:i [color=red, style=dashed];", nodeID(n.Index), nodeID(n.Prev))
		}
	}

	p("")
	p("\thead [shape=plaintext];")
	p("\ttail [shape=plaintext];")
	if s.Head != 0 {
		p("\thead -> %s;", nodeID(s.Head))
	}
	if s.Tail != 0 {
		p("\ttail -> %s;", nodeID(s.Tail))
	}
	p("}")

	if err := b.Flush(); err != nil {
		return errors.Wrap(err, "flush graph")
	}

	return nil
}

// Pictures имена отрисованных картинок.
func (w *Writer) Pictures() []string {
	return w.pictures
}

func (w *Writer) renderPicture(dotName string) error {
	tool := w.dotTool
	if tool == "" {
		tool = "dot"
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		return errors.Wrapf(err, "look for %s", tool)
	}

	cmd := exec.Command(path, "-Tpng", w.dir.Path(dotName), "-o", w.dir.Path(w.picture))
	out, err := cmd.CombinedOutput()
	if err != nil {
		return errors.Wrap(err, "run graphviz").Str("output", strings.TrimSpace(string(out)))
	}

	w.pictures = append(w.pictures, w.picture)
	return nil
}

func nodeID(index uint32) string {
	return fmt.Sprintf("n%d", index)
}

var labelEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`{`, `\{`,
	`}`, `\}`,
	`|`, `\|`,
	`<`, `\<`,
	`>`, `\>`,
	"\n", `\n`,
)

func escape(s string) string {
	return labelEscaper.Replace(s)
}
