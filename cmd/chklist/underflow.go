package main

import (
	"github.com/sirkon/errors"
	"github.com/spf13/cobra"

	"github.com/sirkon/chklist/internal/dllist"
)

func newUnderflowCommand(env *environment) *cobra.Command {
	return &cobra.Command{
		Use:   "underflow",
		Short: "Pop from an empty list",
		Long: `Underflow pops the back of an empty list. The pop is fatal: the failure is
written to the list log and the process exits with the empty list error code`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := env.listOptions(env.cfg.Base.Format)
			if err != nil {
				return errors.Wrap(err, "set up list")
			}

			l := dllist.New[int]("underflow", opts...)
			l.PopBack()

			return errors.New("popping an empty list must not return")
		},
	}
}
