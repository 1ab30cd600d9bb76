// Package report вывод фатальных ошибок списка в лог и стандартный поток ошибок
// с последующим завершением процесса.
package report

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/listerr"
	"github.com/sirkon/chklist/internal/logging"
)

// DefaultLogName имя лога по умолчанию.
const DefaultLogName = "list.log"

// New конструктор вывода ошибок в лог с данным именем.
func New(logName string, opts ...Option) *Reporter {
	r := &Reporter{
		logName: logName,
		stderr:  os.Stderr,
		exit:    os.Exit,
		now:     time.Now,
		alert:   color.New(color.FgRed, color.Bold),
		notice:  color.New(color.FgYellow),
	}
	for _, opt := range opts {
		opt.apply(r)
	}

	return r
}

// Reporter вывод ошибок.
type Reporter struct {
	logName string
	stderr  io.Writer
	exit    func(code int)
	now     func() time.Time

	alert  *color.Color
	notice *color.Color
}

var _ logging.Logger = &Reporter{}

// SetLogName смена имени лога, пустое имя отключает запись в файл.
func (r *Reporter) SetLogName(name string) {
	r.logName = name
}

// Guard граница обработки фатальных ошибок. Должен вызываться через defer
// в точке входа: перехватывает *listerr.Fatal, пишет его в лог и завершает
// процесс с кодом ошибки. Прочие паники пробрасываются дальше.
func (r *Reporter) Guard() {
	v := recover()
	if v == nil {
		return
	}

	f, ok := listerr.AsFatal(v)
	if !ok {
		panic(v)
	}

	r.Fatal(f)
}

// Fatal вывод фатальной ошибки с завершением процесса.
func (r *Reporter) Fatal(f *listerr.Fatal) {
	if err := r.Report(f); err != nil {
		_, _ = r.notice.Fprintln(r.stderr, "failed to write list log:", err)
	}

	r.exit(int(f.Code))
}

// Report запись фатальной ошибки в лог и поток ошибок без завершения процесса.
func (r *Reporter) Report(f *listerr.Fatal) error {
	line := r.format(f)
	_, _ = r.alert.Fprintln(r.stderr, line)

	return r.appendLog(line)
}

// DumpFailed для реализации logging.Logger
func (r *Reporter) DumpFailed(dumpName string, err error) {
	r.warn(fmt.Sprintf("failed to dump list into %s: %s", dumpName, err))
}

// PersistFailed для реализации logging.Logger
func (r *Reporter) PersistFailed(baseName string, err error) {
	r.warn(fmt.Sprintf("failed to write list base %s: %s", baseName, err))
}

// ConfigNotFound для реализации logging.Logger
func (r *Reporter) ConfigNotFound(startDir string) {
	r.warn(fmt.Sprintf("no config found from %s upwards, using defaults", startDir))
}

// PictureFailed для реализации logging.Logger
func (r *Reporter) PictureFailed(pictureName string, err error) {
	r.warn(fmt.Sprintf("failed to render picture %s: %s", pictureName, err))
}

func (r *Reporter) warn(msg string) {
	line := r.now().Format(time.RFC3339) + " WARNING " + msg
	_, _ = r.notice.Fprintln(r.stderr, line)
	if err := r.appendLog(line); err != nil {
		_, _ = r.notice.Fprintln(r.stderr, "failed to write list log:", err)
	}
}

// format строка лога: время, место, функция, операция, код, пояснение, список, причина.
func (r *Reporter) format(f *listerr.Fatal) string {
	var b strings.Builder
	b.WriteString(r.now().Format(time.RFC3339))
	b.WriteString(" ERROR ")
	_, _ = fmt.Fprintf(&b, "%s:%d: %s: %s: ", f.File, f.Line, f.Function, f.Operation)
	_, _ = fmt.Fprintf(&b, "%s(%d): %s", f.Code, int(f.Code), f.Code.Explain())
	_, _ = fmt.Fprintf(&b, " [list %q id=%d uuid=%s]", f.ListName, f.ListID, f.ListUUID)

	var cause *listerr.Error
	if errors.As(f.Cause, &cause) && cause.Msg != "" {
		b.WriteString(": ")
		b.WriteString(cause.Msg)
	}
	if f.DumpError != nil {
		b.WriteString(": dump failed: ")
		b.WriteString(f.DumpError.Error())
	}

	return b.String()
}

func (r *Reporter) appendLog(line string) error {
	if r.logName == "" {
		return nil
	}

	file, err := os.OpenFile(r.logName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "open log file").Str("log-name", r.logName)
	}

	if _, err := io.WriteString(file, line+"\n"); err != nil {
		_ = file.Close()
		return errors.Wrap(err, "write log record").Str("log-name", r.logName)
	}

	if err := file.Close(); err != nil {
		return errors.Wrap(err, "close log file").Str("log-name", r.logName)
	}

	return nil
}
