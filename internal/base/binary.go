package base

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"fortio.org/safecast"
	"github.com/sirkon/errors"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/sirkon/chklist/internal/bindata"
	"github.com/sirkon/chklist/internal/bufmng"
	"github.com/sirkon/chklist/internal/dir"
	"github.com/sirkon/chklist/internal/dllist"
	"github.com/sirkon/chklist/internal/uvarints"
)

// binaryMagic заголовок файла в бинарном формате.
const binaryMagic = "CHKLIST\x01"

const (
	// maxValueSize ограничение на размер одного значения при чтении.
	maxValueSize = 16 << 20

	// maxValuesCount ограничение на число значений при чтении.
	maxValuesCount = 1 << 28
)

// ErrorNotBinaryBase файл не является хранилищем в бинарном формате.
const ErrorNotBinaryBase errors.Const = "not a binary list base"

// NewBinary конструктор хранилища в бинарном формате.
// Формат:
//
//  1. Заголовок binaryMagic.
//  2. Количество значений в uvarint.
//  3. Значения: длина в uvarint и msgpack представление значения.
func NewBinary(d *dir.Dir) *Binary {
	return &Binary{
		dir: d,
	}
}

// Binary хранилище в бинарном формате.
type Binary struct {
	dir *dir.Dir
}

var _ dllist.Persister = &Binary{}

// Persist для реализации dllist.Persister.
func (b *Binary) Persist(name string, values []any) error {
	return b.dir.Replace(name, func(w io.Writer) error {
		dst := bufio.NewWriter(w)
		if _, err := dst.WriteString(binaryMagic); err != nil {
			return errors.Wrap(err, "write header")
		}

		if _, err := uvarints.Write(dst, uint64(len(values))); err != nil {
			return errors.Wrap(err, "write values count")
		}

		var buf bytes.Buffer
		enc := msgpack.NewEncoder(&buf)
		for i, v := range values {
			buf.Reset()
			if err := enc.Encode(v); err != nil {
				return errors.Wrap(err, "encode value").Int("value-index", i)
			}

			if err := bindata.EncodeBinary(dst, buf.Bytes()); err != nil {
				return errors.Wrap(err, "write value").Int("value-index", i)
			}
		}

		if err := dst.Flush(); err != nil {
			return errors.Wrap(err, "flush values")
		}

		return nil
	})
}

// ReadBinary вычитка значений из хранилища в бинарном формате.
func ReadBinary[T any](d *dir.Dir, name string) (res []T, err error) {
	file, err := d.Open(name)
	if err != nil {
		return nil, errors.Wrap(err, "open base").Str("base-name", name)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close base")
		}
	}()

	src := bufio.NewReader(file)
	var header [len(binaryMagic)]byte
	if _, err := io.ReadFull(src, header[:]); err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	if string(header[:]) != binaryMagic {
		return nil, errors.Wrap(ErrorNotBinaryBase, "check header").Str("base-name", name)
	}

	count, err := readCount(src)
	if err != nil {
		return nil, err
	}

	res = make([]T, 0, min(count, 1024))
	buf := bufmng.New(64)
	for i := 0; i < count; i++ {
		data, err := bindata.DecodeBinary(src, buf, maxValueSize)
		if err != nil {
			return nil, errors.Wrap(err, "read value").Int("value-index", i)
		}

		var v T
		if err := msgpack.Unmarshal(data, &v); err != nil {
			return nil, errors.Wrap(err, "decode value").Int("value-index", i)
		}
		res = append(res, v)
	}

	if _, err := src.ReadByte(); err != io.EOF {
		return nil, errors.Wrap(ErrorNotBinaryBase, "check trailing data").Str("base-name", name)
	}

	return res, nil
}

func readCount(src *bufio.Reader) (int, error) {
	raw, err := binary.ReadUvarint(src)
	if err != nil {
		return 0, errors.Wrap(err, "read values count")
	}

	count, err := safecast.Conv[int](raw)
	if err != nil || count > maxValuesCount {
		return 0, errors.Wrap(ErrorNotBinaryBase, "check values count").Uint64("values-count", raw)
	}

	return count, nil
}
