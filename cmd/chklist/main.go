package main

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sirkon/chklist/internal/config"
	"github.com/sirkon/chklist/internal/report"
)

// version версия утилиты, подменяется при сборке через -ldflags.
var version = "dev"

func main() {
	reporter := report.New(report.DefaultLogName)
	defer reporter.Guard()

	if err := newRootCommand(reporter, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand дерево команд. Фатальные ошибки списков всплывают из команд
// паникой и обрабатываются reporter.Guard в точке входа.
func newRootCommand(reporter *report.Reporter, stdout io.Writer) *cobra.Command {
	env := &environment{
		reporter: reporter,
		stdout:   stdout,
	}

	root := &cobra.Command{
		Use:           "chklist",
		Short:         "Self-checking doubly linked list toolkit",
		Long:          `chklist runs self-verifying list scenarios, dumps list graphs and inspects list bases`,
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return env.setup(cmd)
		},
	}
	root.SetOut(stdout)

	// Глобальные флаги
	root.PersistentFlags().String("config", "", "path to "+config.FileName+", looked up from the working directory when empty")
	root.PersistentFlags().String("color", "", "colorize output (auto|on|off), overrides config")

	root.AddCommand(newDemoCommand(env))
	root.AddCommand(newShowCommand(env))
	root.AddCommand(newCheckCommand(env))
	root.AddCommand(newUnderflowCommand(env))

	return root
}

// applyColor включение или выключение раскраски вывода.
func applyColor(mode string) {
	switch mode {
	case config.ColorOn:
		color.NoColor = false
	case config.ColorOff:
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stderr)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
