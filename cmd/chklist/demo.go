package main

import (
	"fmt"

	"github.com/sirkon/errors"
	"github.com/spf13/cobra"

	"github.com/sirkon/chklist/internal/dllist"
)

func newDemoCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run the reference list scenario",
		Long: `Demo pushes 1, 2, 3, 2 to the front of a fresh list, pops its back, inserts 1
after the second node, then dumps the list graph and writes the list base`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(env, cmd)
		},
	}
	cmd.Flags().String("format", "", "base format (binary|msgpack|bolt), overrides config")

	return cmd
}

func runDemo(env *environment, cmd *cobra.Command) error {
	format, err := env.format(cmd)
	if err != nil {
		return err
	}

	opts, err := env.listOptions(format)
	if err != nil {
		return errors.Wrap(err, "set up list")
	}

	l := dllist.New[int]("demo", opts...)
	for _, v := range []int{1, 2, 3, 2} {
		l.PushFront(v)
	}
	l.PopBack()
	l.InsertAfter(1, 1)

	if err := l.Dump(env.cfg.Files.Dump); err != nil {
		env.reporter.DumpFailed(env.cfg.Files.Dump, err)
	}

	if err := l.Write(env.cfg.Files.Base); err != nil {
		env.reporter.PersistFailed(env.cfg.Files.Base, err)
		return errors.Wrap(err, "write demo base")
	}

	if _, err := fmt.Fprintln(env.stdout, l.Values()); err != nil {
		return errors.Wrap(err, "print values")
	}

	l.Destroy()
	return nil
}
