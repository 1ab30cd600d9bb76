package base_test

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/sirkon/deepequal"
	"github.com/sirkon/errors"
	bolt "go.etcd.io/bbolt"

	"github.com/sirkon/chklist/internal/base"
	"github.com/sirkon/chklist/internal/dir"
	"github.com/sirkon/chklist/internal/dllist"
	"github.com/sirkon/chklist/internal/tlog"
)

type point struct {
	X, Y  int
	Label string
}

func newDir(t *testing.T) *dir.Dir {
	t.Helper()

	d, err := dir.New(t.TempDir())
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "create dir"))
		t.FailNow()
	}

	return d
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []base.Format{base.FormatBinary, base.FormatMsgpack, base.FormatBolt} {
		t.Run(string(format), func(t *testing.T) {
			d := newDir(t)
			p, err := base.New(format, d)
			if err != nil {
				tlog.Error(t, errors.Wrap(err, "create persister"))
				return
			}

			t.Run("ints", func(t *testing.T) {
				l := dllist.FromValues("ints", []int{2, 3, 1, 2}, dllist.WithPersister(p))
				if err := l.Write(base.DefaultBaseName); err != nil {
					tlog.Error(t, err)
					return
				}

				values, err := base.Read[int](format, d, base.DefaultBaseName)
				if err != nil {
					tlog.Error(t, errors.Wrap(err, "read values"))
					return
				}

				restored := dllist.FromValues("restored", values)
				if !deepequal.Equal(l.Values(), restored.Values()) {
					deepequal.SideBySide(t, "values", l.Values(), restored.Values())
				}
			})

			t.Run("structs", func(t *testing.T) {
				expected := []point{{1, 2, "a"}, {-3, 4, "ü"}}
				l := dllist.FromValues("points", expected, dllist.WithPersister(p))
				if err := l.Write("points.dat"); err != nil {
					tlog.Error(t, err)
					return
				}

				values, err := base.Read[point](format, d, "points.dat")
				if err != nil {
					tlog.Error(t, errors.Wrap(err, "read values"))
					return
				}
				if !deepequal.Equal(expected, values) {
					deepequal.SideBySide(t, "points", expected, values)
				}
			})

			t.Run("rewrite-shorter", func(t *testing.T) {
				l := dllist.FromValues("long", []string{"a", "b", "c"}, dllist.WithPersister(p))
				if err := l.Write("strings.dat"); err != nil {
					tlog.Error(t, err)
					return
				}
				l.PopBack()
				l.PopBack()
				if err := l.Write("strings.dat"); err != nil {
					tlog.Error(t, err)
					return
				}

				values, err := base.Read[string](format, d, "strings.dat")
				if err != nil {
					tlog.Error(t, errors.Wrap(err, "read values"))
					return
				}
				if !deepequal.Equal([]string{"a"}, values) {
					deepequal.SideBySide(t, "strings", []string{"a"}, values)
				}
			})

			t.Run("missing", func(t *testing.T) {
				if _, err := base.Read[int](format, d, "no-such-base"); err == nil {
					t.Error("reading missing base must fail")
				}
			})
		})
	}
}

func TestBinaryCorrupted(t *testing.T) {
	d := newDir(t)

	if err := os.WriteFile(d.Path("bad.dat"), []byte("NOTABASE\x00"), 0644); err != nil {
		tlog.Error(t, errors.Wrap(err, "write file"))
		return
	}
	_, err := base.ReadBinary[int](d, "bad.dat")
	if !errors.Is(err, base.ErrorNotBinaryBase) {
		t.Errorf("unexpected error %v", err)
	}

	if err := base.NewBinary(d).Persist("short.dat", []any{1, 2, 3}); err != nil {
		tlog.Error(t, errors.Wrap(err, "persist"))
		return
	}
	data, err := os.ReadFile(d.Path("short.dat"))
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read file"))
		return
	}

	if err := os.WriteFile(d.Path("short.dat"), data[:len(data)-1], 0644); err != nil {
		tlog.Error(t, errors.Wrap(err, "truncate file"))
		return
	}
	if _, err := base.ReadBinary[int](d, "short.dat"); err == nil {
		t.Error("truncated base must fail")
	}

	if err := os.WriteFile(d.Path("long.dat"), append(data, 0), 0644); err != nil {
		tlog.Error(t, errors.Wrap(err, "extend file"))
		return
	}
	if _, err := base.ReadBinary[int](d, "long.dat"); !errors.Is(err, base.ErrorNotBinaryBase) {
		t.Errorf("trailing data must be rejected, got %v", err)
	}
}

func TestBoltBucket(t *testing.T) {
	d := newDir(t)
	if err := base.NewBolt(d, "first").Persist("base.db", []any{"x"}); err != nil {
		tlog.Error(t, errors.Wrap(err, "persist"))
		return
	}

	if _, err := base.ReadBolt[string](d, "base.db", "second"); !errors.Is(err, base.ErrorNoBucket) {
		t.Errorf("unexpected error %v", err)
	}

	values, err := base.ReadBolt[string](d, "base.db", "first")
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "read values"))
		return
	}
	if !deepequal.Equal([]string{"x"}, values) {
		deepequal.SideBySide(t, "values", []string{"x"}, values)
	}
}

// writeBoltBucket запись произвольных ключей в корзину list.
func writeBoltBucket(t *testing.T, d *dir.Dir, name string, keys [][]byte) {
	t.Helper()

	db, err := bolt.Open(d.Path(name), 0600, nil)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "open base"))
		t.FailNow()
	}
	defer func() {
		if err := db.Close(); err != nil {
			tlog.Error(t, errors.Wrap(err, "close base"))
		}
	}()

	err = db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte("list"))
		if err != nil {
			return err
		}

		for _, k := range keys {
			// 0x01 это msgpack кодировка единицы.
			if err := b.Put(k, []byte{0x01}); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "fill bucket"))
		t.FailNow()
	}
}

func boltPosition(i uint64) []byte {
	var key [8]byte
	binary.BigEndian.PutUint64(key[:], i)
	return key[:]
}

func TestBoltForeignKeys(t *testing.T) {
	t.Run("short-key", func(t *testing.T) {
		d := newDir(t)
		writeBoltBucket(t, d, "short.db", [][]byte{[]byte("k")})

		_, err := base.ReadBolt[int](d, "short.db", "list")
		if !errors.Is(err, base.ErrorNotBoltBase) {
			t.Errorf("short key must be rejected, got %v", err)
			return
		}
		tlog.Log(t, err)
	})

	t.Run("position-gap", func(t *testing.T) {
		d := newDir(t)
		writeBoltBucket(t, d, "gap.db", [][]byte{boltPosition(0), boltPosition(2)})

		_, err := base.ReadBolt[int](d, "gap.db", "list")
		if err == nil {
			t.Error("missing position must be reported")
			return
		}
		tlog.Log(t, err)
	})

	t.Run("positions-in-order", func(t *testing.T) {
		d := newDir(t)
		writeBoltBucket(t, d, "ok.db", [][]byte{boltPosition(1), boltPosition(0)})

		values, err := base.Read[int](base.FormatBolt, d, "ok.db")
		if err != nil {
			tlog.Error(t, err)
			return
		}
		if !deepequal.Equal([]int{1, 1}, values) {
			deepequal.SideBySide(t, "values", []int{1, 1}, values)
		}
	})
}

func TestUnknownFormat(t *testing.T) {
	d := newDir(t)
	if _, err := base.New("yaml", d); !errors.Is(err, base.ErrorUnknownFormat) {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := base.Read[int]("yaml", d, "x"); !errors.Is(err, base.ErrorUnknownFormat) {
		t.Errorf("unexpected error %v", err)
	}
}
