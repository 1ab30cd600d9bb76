package bindata

import (
	"bufio"
	"encoding/binary"
	"io"

	"fortio.org/safecast"
	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/bufmng"
	"github.com/sirkon/chklist/internal/uvarints"
)

// ErrorFrameTooLarge длина кадра превышает допустимую.
const ErrorFrameTooLarge errors.Const = "frame length is out of limit"

// EncodeBinary запись кадра: длина в uvarint и сами данные.
func EncodeBinary(dst *bufio.Writer, data []byte) error {
	if _, err := uvarints.Write(dst, uint64(len(data))); err != nil {
		return errors.Wrap(err, "write data length")
	}

	if _, err := dst.Write(data); err != nil {
		return errors.Wrap(err, "write data")
	}

	return nil
}

// DecodeBinary чтение кадра длиной не более limit байт. Если buf задан,
// то кадр читается в него и действителен до следующего чтения.
func DecodeBinary(src *bufio.Reader, buf *bufmng.BufferManager, limit int) ([]byte, error) {
	length, err := binary.ReadUvarint(src)
	if err != nil {
		return nil, errors.Wrap(err, "read data length")
	}

	size, err := safecast.Conv[int](length)
	if err != nil || size > limit {
		return nil, errors.Wrap(ErrorFrameTooLarge, "check data length").
			Uint64("frame-length", length).
			Int("frame-limit", limit)
	}

	var data []byte
	if buf != nil {
		data = buf.Get(size)
	} else {
		data = make([]byte, size)
	}
	if _, err := io.ReadFull(src, data); err != nil {
		return nil, errors.Wrap(err, "read data")
	}

	return data, nil
}
