// Package base хранилища значений списка.
package base

import (
	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/dir"
	"github.com/sirkon/chklist/internal/dllist"
)

// DefaultBaseName имя хранилища по умолчанию.
const DefaultBaseName = "Base.dat"

// Format формат хранилища.
type Format string

const (
	// FormatBinary кадры с msgpack значениями после заголовка.
	FormatBinary Format = "binary"

	// FormatMsgpack один msgpack документ.
	FormatMsgpack Format = "msgpack"

	// FormatBolt база bbolt.
	FormatBolt Format = "bolt"
)

// ErrorUnknownFormat неизвестный формат хранилища.
const ErrorUnknownFormat errors.Const = "unknown base format"

// New создание хранилища данного формата в данной директории.
func New(format Format, d *dir.Dir) (dllist.Persister, error) {
	switch format {
	case FormatBinary:
		return NewBinary(d), nil
	case FormatMsgpack:
		return NewMsgpack(d), nil
	case FormatBolt:
		return NewBolt(d, defaultBucket), nil
	default:
		return nil, errors.Wrap(ErrorUnknownFormat, "create persister").Str("format", string(format))
	}
}

// Read вычитка значений из хранилища данного формата.
func Read[T any](format Format, d *dir.Dir, name string) ([]T, error) {
	switch format {
	case FormatBinary:
		return ReadBinary[T](d, name)
	case FormatMsgpack:
		return ReadMsgpack[T](d, name)
	case FormatBolt:
		return ReadBolt[T](d, name, defaultBucket)
	default:
		return nil, errors.Wrap(ErrorUnknownFormat, "read base").Str("format", string(format))
	}
}
