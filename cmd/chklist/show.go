package main

import (
	"fmt"

	"github.com/sirkon/errors"
	"github.com/spf13/cobra"

	"github.com/sirkon/chklist/internal/base"
)

func newShowCommand(env *environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [flags] base",
		Short: "Print values stored in a list base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(env, cmd, args[0])
		},
	}
	cmd.Flags().String("format", "", "base format (binary|msgpack|bolt), overrides config")

	return cmd
}

func runShow(env *environment, cmd *cobra.Command, name string) error {
	format, err := env.format(cmd)
	if err != nil {
		return err
	}

	values, err := base.Read[int](format, env.dir, name)
	if err != nil {
		return errors.Wrap(err, "read base").Str("base-format", string(format))
	}

	for i, v := range values {
		if _, err := fmt.Fprintf(env.stdout, "%d\t%d\n", i, v); err != nil {
			return errors.Wrap(err, "print value")
		}
	}

	return nil
}
