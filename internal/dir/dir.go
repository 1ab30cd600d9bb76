package dir

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirkon/errors"
)

// New открытие директории для артефактов списка, при отсутствии она создаётся.
// Пустой путь означает текущую директорию.
func New(p string) (res *Dir, err error) {
	if p == "" {
		p = "."
	}
	res = &Dir{
		path: p,
	}

	stat, err := os.Stat(p)
	if err == nil {
		if !stat.IsDir() {
			return nil, errors.Newf("'%s' exists and it is not a directory", p)
		}

		return res, nil
	}

	if !os.IsNotExist(err) {
		return nil, errors.Wrap(err, "check path")
	}

	if err := os.MkdirAll(p, 0755); err != nil {
		return nil, errors.Wrap(err, "create directory")
	}

	return res, nil
}

// Dir представление директории.
type Dir struct {
	path string
}

// Path путь к файлу с данным именем внутри директории.
func (d *Dir) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}

	return filepath.Join(d.path, name)
}

// Open открытие файла из директории на чтение.
func (d *Dir) Open(name string) (*os.File, error) {
	res, err := os.Open(d.Path(name))
	if err != nil {
		return nil, err
	}

	return res, nil
}

// fileMode права файлов, записываемых через Replace.
const fileMode os.FileMode = 0644

// Replace атомарная замена содержимого файла: данные пишутся во временный
// файл рядом с целевым, который затем переименовывается.
func (d *Dir) Replace(name string, write func(w io.Writer) error) (err error) {
	target := d.Path(name)
	tmp, err := os.CreateTemp(filepath.Dir(target), ".tmp-*")
	if err != nil {
		return errors.Wrap(err, "create temporary file")
	}
	defer func() {
		if err == nil {
			return
		}
		_ = tmp.Close()
		if rmErr := os.Remove(tmp.Name()); rmErr != nil && !os.IsNotExist(rmErr) {
			err = errors.Wrap(err, "remove temporary file").Str("remove-error", rmErr.Error())
		}
	}()

	if err := write(tmp); err != nil {
		return errors.Wrap(err, "write data")
	}

	// Временный файл создаётся с правами 0600.
	if err := tmp.Chmod(fileMode); err != nil {
		return errors.Wrap(err, "set file mode")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "close temporary file")
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		return errors.Wrap(err, "move temporary file into place").Str("target", target)
	}

	return nil
}
