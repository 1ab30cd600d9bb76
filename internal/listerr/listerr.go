package listerr

import "strings"

// Error вердикт проверки списка с пояснением.
type Error struct {
	Code Code
	Msg  string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Code.String())
	b.WriteString(": ")
	b.WriteString(e.Code.Explain())
	if e.Msg != "" {
		b.WriteString(" [")
		b.WriteString(e.Msg)
		b.WriteByte(']')
	}

	return b.String()
}

// New ошибка с данным кодом.
func New(code Code, msg ...string) *Error {
	e := &Error{
		Code: code,
	}
	switch len(msg) {
	case 0:
	case 1:
		e.Msg = msg[0]
	default:
		e.Msg = strings.Join(msg, ": ")
	}

	return e
}
