package main

import (
	"fmt"

	"github.com/sirkon/errors"
	"github.com/spf13/cobra"

	"github.com/sirkon/chklist/internal/base"
	"github.com/sirkon/chklist/internal/dllist"
	"github.com/sirkon/chklist/internal/listerr"
)

func newCheckCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [flags] base",
		Short: "Load a list base and verify the resulting list",
		Long: `Check builds a list from the values of a base, runs the integrity checks and
prints the verdict. With --dump the list graph is written as well`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(env, cmd, args[0])
		},
	}
	cmd.Flags().String("format", "", "base format (binary|msgpack|bolt), overrides config")
	cmd.Flags().Bool("dump", false, "dump the loaded list graph")

	return cmd
}

func runCheck(env *environment, cmd *cobra.Command, name string) error {
	format, err := env.format(cmd)
	if err != nil {
		return err
	}
	dump, err := cmd.Flags().GetBool("dump")
	if err != nil {
		return errors.Wrap(err, "get dump flag")
	}

	values, err := base.Read[int](format, env.dir, name)
	if err != nil {
		return errors.Wrap(err, "read base").Str("base-format", string(format))
	}

	opts, err := env.listOptions(format)
	if err != nil {
		return errors.Wrap(err, "set up list")
	}

	l := dllist.FromValues(name, values, opts...)
	verdict := l.Check()
	if _, err := fmt.Fprintf(env.stdout, "%s: %s(%d): %d values\n", name, verdict, int(verdict), l.Len()); err != nil {
		return errors.Wrap(err, "print verdict")
	}

	if dump {
		if err := l.Dump(env.cfg.Files.Dump); err != nil {
			env.reporter.DumpFailed(env.cfg.Files.Dump, err)
		}
	}

	if verdict != listerr.CodeOK {
		return errors.Newf("list %s is broken: %s", name, verdict.Explain())
	}

	l.Destroy()
	return nil
}
