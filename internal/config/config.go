// Package config настройки утилиты работы со списками.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/sirkon/errors"

	"github.com/sirkon/chklist/internal/base"
	"github.com/sirkon/chklist/internal/dllist"
	"github.com/sirkon/chklist/internal/report"
)

// FileName имя файла настроек.
const FileName = "chklist.toml"

// Color режимы раскраски вывода.
const (
	ColorAuto = "auto"
	ColorOn   = "on"
	ColorOff  = "off"
)

// Config настройки.
type Config struct {
	Files  Files  `toml:"files"`
	Base   Base   `toml:"base"`
	Output Output `toml:"output"`

	// Path путь к файлу настроек, пустой если использованы значения по умолчанию.
	Path string `toml:"-"`
}

// Files имена артефактов.
type Files struct {
	Dir     string `toml:"dir"`
	Dump    string `toml:"dump"`
	Picture string `toml:"picture"`
	Base    string `toml:"base"`
	Log     string `toml:"log"`
}

// Base настройки хранилища.
type Base struct {
	Format base.Format `toml:"format"`
}

// Output настройки вывода.
type Output struct {
	Color string `toml:"color"`
}

// Default настройки по умолчанию.
func Default() Config {
	return Config{
		Files: Files{
			Dir:     ".",
			Dump:    dllist.DefaultDumpName,
			Picture: "graph.png",
			Base:    base.DefaultBaseName,
			Log:     report.DefaultLogName,
		},
		Base: Base{
			Format: base.FormatBinary,
		},
		Output: Output{
			Color: ColorAuto,
		},
	}
}

// Find поиск файла настроек начиная с данной директории и выше.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}

	d, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, errors.Wrap(err, "resolve start directory").Str("start-dir", startDir)
	}

	for {
		candidate := filepath.Join(d, FileName)
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, true, nil
		}
		if !os.IsNotExist(err) {
			return "", false, errors.Wrap(err, "check config file").Str("config-path", candidate)
		}

		parent := filepath.Dir(d)
		if parent == d {
			return "", false, nil
		}
		d = parent
	}
}

// Load чтение настроек из файла. Отсутствующие в файле значения берутся
// из значений по умолчанию.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(err, "decode config").Str("config-path", path)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, errors.New("unknown config key").
			Str("key", undecoded[0].String()).
			Str("config-path", path)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, errors.Wrap(err, "validate config").Str("config-path", path)
	}

	cfg.Path = path
	return cfg, nil
}

// Resolve загрузка настроек: явно заданный путь обязан существовать, без
// него файл ищется от startDir вверх. Возвращает false, если файл не найден
// и использованы значения по умолчанию.
func Resolve(explicit, startDir string) (Config, bool, error) {
	if explicit != "" {
		cfg, err := Load(explicit)
		return cfg, err == nil, err
	}

	path, ok, err := Find(startDir)
	if err != nil {
		return Config{}, false, err
	}
	if !ok {
		return Default(), false, nil
	}

	cfg, err := Load(path)
	if err != nil {
		return Config{}, false, err
	}

	return cfg, true, nil
}

// Encode запись настроек в формате toml.
func (c Config) Encode(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create config file")
	}

	if err := toml.NewEncoder(file).Encode(c); err != nil {
		_ = file.Close()
		return errors.Wrap(err, "encode config")
	}

	if err := file.Close(); err != nil {
		return errors.Wrap(err, "close config file")
	}

	return nil
}

func (c Config) validate() error {
	switch c.Base.Format {
	case base.FormatBinary, base.FormatMsgpack, base.FormatBolt:
	default:
		return errors.Wrap(base.ErrorUnknownFormat, "check base format").Str("format", string(c.Base.Format))
	}

	switch c.Output.Color {
	case ColorAuto, ColorOn, ColorOff:
	default:
		return errors.Newf("unknown color mode '%s'", c.Output.Color)
	}

	if c.Files.Dump == "" || c.Files.Base == "" {
		return errors.New("dump and base names must not be empty")
	}

	return nil
}
