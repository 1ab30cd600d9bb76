package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/sirkon/errors"
	"github.com/spf13/cobra"

	"github.com/sirkon/chklist/internal/base"
	"github.com/sirkon/chklist/internal/config"
	"github.com/sirkon/chklist/internal/dir"
	"github.com/sirkon/chklist/internal/dllist"
	"github.com/sirkon/chklist/internal/dotdump"
	"github.com/sirkon/chklist/internal/report"
)

// environment общее окружение команд, заполняется перед запуском команды.
type environment struct {
	reporter *report.Reporter
	stdout   io.Writer

	cfg config.Config
	dir *dir.Dir
}

func (e *environment) setup(cmd *cobra.Command) error {
	configPath, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return errors.Wrap(err, "get config flag")
	}

	wd, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "get working directory")
	}

	cfg, found, err := config.Resolve(configPath, wd)
	if err != nil {
		return errors.Wrap(err, "load config")
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return errors.Wrap(err, "get color flag")
	}
	if colorFlag != "" {
		cfg.Output.Color = colorFlag
	}
	switch cfg.Output.Color {
	case config.ColorAuto, config.ColorOn, config.ColorOff:
	default:
		return errors.Newf("unknown color mode '%s'", cfg.Output.Color)
	}
	applyColor(cfg.Output.Color)

	// Относительная директория артефактов отсчитывается от файла настроек.
	artifacts := cfg.Files.Dir
	if found && !filepath.IsAbs(artifacts) {
		artifacts = filepath.Join(filepath.Dir(cfg.Path), artifacts)
	}
	d, err := dir.New(artifacts)
	if err != nil {
		return errors.Wrap(err, "open artifacts directory").Str("artifacts-dir", artifacts)
	}

	e.cfg = cfg
	e.dir = d
	if cfg.Files.Log != "" {
		e.reporter.SetLogName(d.Path(cfg.Files.Log))
	} else {
		e.reporter.SetLogName("")
	}

	if !found {
		e.reporter.ConfigNotFound(wd)
	}

	return nil
}

// listOptions опции списков создаваемых командами: дампы в формате dot
// и хранилище значений в формате из настроек.
func (e *environment) listOptions(format base.Format) ([]dllist.Option, error) {
	persister, err := base.New(format, e.dir)
	if err != nil {
		return nil, err
	}

	dumpOpts := []dotdump.Option{
		dotdump.WithLogger(e.reporter),
	}
	if e.cfg.Files.Picture != "" {
		dumpOpts = append(dumpOpts, dotdump.WithPicture(e.cfg.Files.Picture))
	}

	return []dllist.Option{
		dllist.WithDumper(dotdump.New(e.dir, dumpOpts...)),
		dllist.WithPersister(persister),
		dllist.WithDumpName(e.cfg.Files.Dump),
	}, nil
}

// format формат хранилища: флаг команды, если задан, иначе из настроек.
func (e *environment) format(cmd *cobra.Command) (base.Format, error) {
	f, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", errors.Wrap(err, "get format flag")
	}
	if f == "" {
		return e.cfg.Base.Format, nil
	}

	return base.Format(f), nil
}
