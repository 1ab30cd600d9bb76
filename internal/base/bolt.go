package base

import (
	"encoding/binary"
	"os"
	"time"

	"github.com/sirkon/errors"
	"github.com/vmihailenco/msgpack/v5"
	bolt "go.etcd.io/bbolt"

	"github.com/sirkon/chklist/internal/dir"
	"github.com/sirkon/chklist/internal/dllist"
)

const (
	defaultBucket = "list"

	boltFileMode os.FileMode = 0600
	boltTimeout              = time.Second
)

// ErrorNoBucket в базе нет корзины со значениями.
const ErrorNoBucket errors.Const = "no values bucket in the base"

// ErrorNotBoltBase корзина содержит ключи, которые не являются позициями значений.
const ErrorNotBoltBase errors.Const = "not a list base"

const positionKeyLength = 8

// NewBolt конструктор хранилища в базе bbolt. Значения лежат в корзине
// bucket под ключами равными их позиции в big endian.
func NewBolt(d *dir.Dir, bucket string) *Bolt {
	return &Bolt{
		dir:    d,
		bucket: []byte(bucket),
	}
}

// Bolt хранилище в базе bbolt.
type Bolt struct {
	dir    *dir.Dir
	bucket []byte
}

var _ dllist.Persister = &Bolt{}

// Persist для реализации dllist.Persister. Предыдущее содержимое корзины заменяется.
func (b *Bolt) Persist(name string, values []any) (err error) {
	db, err := openBolt(b.dir.Path(name), false)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close base")
		}
	}()

	err = db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(b.bucket); err != nil && err != bolt.ErrBucketNotFound {
			return errors.Wrap(err, "drop previous values")
		}

		bucket, err := tx.CreateBucket(b.bucket)
		if err != nil {
			return errors.Wrap(err, "create values bucket")
		}

		for i, v := range values {
			data, err := msgpack.Marshal(v)
			if err != nil {
				return errors.Wrap(err, "encode value").Int("value-index", i)
			}

			if err := bucket.Put(positionKey(i), data); err != nil {
				return errors.Wrap(err, "put value").Int("value-index", i)
			}
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "update base").Str("base-name", name)
	}

	return nil
}

// ReadBolt вычитка значений из базы bbolt.
func ReadBolt[T any](d *dir.Dir, name, bucket string) (res []T, err error) {
	if _, err := os.Stat(d.Path(name)); err != nil {
		return nil, errors.Wrap(err, "check base").Str("base-name", name)
	}

	db, err := openBolt(d.Path(name), true)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "close base")
		}
	}()

	err = db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return errors.Wrap(ErrorNoBucket, "look for values").Str("bucket", bucket)
		}

		return b.ForEach(func(k, data []byte) error {
			if len(k) != positionKeyLength {
				return errors.Wrap(ErrorNotBoltBase, "check value key").
					Int("value-index", len(res)).
					Int("key-length", len(k))
			}

			if pos := binary.BigEndian.Uint64(k); pos != uint64(len(res)) {
				return errors.New("value position is missing").
					Int("expected-position", len(res)).
					Uint64("found-position", pos)
			}

			var v T
			if err := msgpack.Unmarshal(data, &v); err != nil {
				return errors.Wrap(err, "decode value").Int("value-index", len(res))
			}
			res = append(res, v)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "view base").Str("base-name", name)
	}

	return res, nil
}

func openBolt(path string, readonly bool) (*bolt.DB, error) {
	db, err := bolt.Open(path, boltFileMode, &bolt.Options{
		Timeout:  boltTimeout,
		ReadOnly: readonly,
	})
	if err != nil {
		return nil, errors.Wrap(err, "open base").Str("base-path", path)
	}

	return db, nil
}

func positionKey(i int) []byte {
	var key [positionKeyLength]byte
	binary.BigEndian.PutUint64(key[:], uint64(i))
	return key[:]
}
