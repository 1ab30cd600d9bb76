package base

import (
	"io"

	"github.com/sirkon/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/sirkon/chklist/internal/dir"
	"github.com/sirkon/chklist/internal/dllist"
)

// msgpackSchema версия формата документа, увеличивается при его изменении.
const msgpackSchema uint16 = 1

// ErrorSchemaMismatch версия документа не поддерживается.
const ErrorSchemaMismatch errors.Const = "unsupported base schema"

type msgpackDocument[T any] struct {
	Schema uint16
	Count  int
	Values []T
}

// NewMsgpack конструктор хранилища в виде единого msgpack документа.
func NewMsgpack(d *dir.Dir) *Msgpack {
	return &Msgpack{
		dir: d,
	}
}

// Msgpack хранилище в виде единого msgpack документа.
type Msgpack struct {
	dir *dir.Dir
}

var _ dllist.Persister = &Msgpack{}

// Persist для реализации dllist.Persister.
func (m *Msgpack) Persist(name string, values []any) error {
	return m.dir.Replace(name, func(w io.Writer) error {
		doc := msgpackDocument[any]{
			Schema: msgpackSchema,
			Count:  len(values),
			Values: values,
		}
		if err := msgpack.NewEncoder(w).Encode(&doc); err != nil {
			return errors.Wrap(err, "encode document")
		}

		return nil
	})
}

// ReadMsgpack вычитка значений из msgpack документа.
func ReadMsgpack[T any](d *dir.Dir, name string) (res []T, err error) {
	file, err := d.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open base").Str("base-name", name)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close base")
		}
	}()

	var doc msgpackDocument[T]
	if err := msgpack.NewDecoder(file).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "decode document").Str("base-name", name)
	}

	if doc.Schema != msgpackSchema {
		return nil, errors.Wrap(ErrorSchemaMismatch, "check document").
			Int("schema", int(doc.Schema)).
			Int("expected-schema", int(msgpackSchema))
	}

	if doc.Count != len(doc.Values) {
		return nil, errors.Newf("document declares %d values but holds %d", doc.Count, len(doc.Values))
	}

	return doc.Values, nil
}
