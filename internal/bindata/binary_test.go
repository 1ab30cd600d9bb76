package bindata

import (
	"bufio"
	"bytes"
	"io"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/bufmng"
	"github.com/sirkon/chklist/internal/tlog"
)

func TestFrames(t *testing.T) {
	frames := [][]byte{
		[]byte("hello"),
		{},
		bytes.Repeat([]byte{1}, 300),
	}

	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)
	for _, f := range frames {
		if err := EncodeBinary(w, f); err != nil {
			tlog.Error(t, errors.Wrap(err, "encode"))
			return
		}
	}
	if err := w.Flush(); err != nil {
		tlog.Error(t, errors.Wrap(err, "flush"))
		return
	}

	raw := buf.Bytes()
	r := bufio.NewReader(bytes.NewReader(raw))
	var got [][]byte
	for range frames {
		f, err := DecodeBinary(r, nil, 1024)
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "decode"))
			return
		}
		got = append(got, f)
	}
	if !deepequal.Equal(frames, got) {
		deepequal.SideBySide(t, "frames", frames, got)
	}

	if _, err := DecodeBinary(r, nil, 1024); !errors.Is(err, io.EOF) {
		t.Errorf("EOF expected after the last frame, got %v", err)
	}

	t.Run("limit", func(t *testing.T) {
		r := bufio.NewReader(bytes.NewReader(raw))
		_, _ = DecodeBinary(r, nil, 1024)
		_, _ = DecodeBinary(r, nil, 1024)
		_, err := DecodeBinary(r, nil, 100)
		if !errors.Is(err, ErrorFrameTooLarge) {
			t.Errorf("unexpected error %v", err)
		}
		tlog.Log(t, err)
	})

	t.Run("reused-buffer", func(t *testing.T) {
		r := bufio.NewReader(bytes.NewReader(raw))
		b := bufmng.New(16)
		for i, want := range frames {
			f, err := DecodeBinary(r, b, 1024)
			if err != nil {
				tlog.Error(t, errors.Wrap(err, "decode").Int("frame-index", i))
				return
			}
			if !bytes.Equal(want, f) {
				t.Errorf("frame %d mismatch", i)
			}
		}
		if b.Grows() != 1 {
			t.Errorf("only the last frame must grow the buffer, got %d grows", b.Grows())
		}
	})

	t.Run("truncated", func(t *testing.T) {
		r := bufio.NewReader(bytes.NewReader(raw[:3]))
		if _, err := DecodeBinary(r, nil, 1024); err == nil {
			t.Error("truncated frame must fail")
		}
	})
}
