package listerr

import (
	"fmt"

	"github.com/google/uuid"
)

// Fatal неустранимая ошибка списка. Передаётся через panic и должна
// перехватываться только на верхнем уровне приложения, которое логирует
// её и завершает процесс с кодом Code.
type Fatal struct {
	Code      Code
	Operation string
	File      string
	Line      int
	Function  string

	ListName string
	ListID   uint64
	ListUUID uuid.UUID

	// Cause ошибка с контекстом, если она есть.
	Cause error

	// DumpError ошибка сохранения диагностического дампа перед завершением.
	DumpError error
}

func (f *Fatal) Error() string {
	msg := fmt.Sprintf(
		"list %q [%d] %s: %s (%s)",
		f.ListName,
		f.ListID,
		f.Operation,
		f.Code.Explain(),
		f.Code,
	)
	if f.Cause != nil {
		msg += ": " + f.Cause.Error()
	}

	return msg
}

func (f *Fatal) Unwrap() error {
	return f.Cause
}

// AsFatal проверяет является ли значение, полученное из recover, фатальной
// ошибкой списка.
func AsFatal(v any) (*Fatal, bool) {
	e, ok := v.(*Fatal)
	if !ok || e == nil {
		return nil, false
	}

	return e, true
}
