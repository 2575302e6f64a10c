package terminal

import (
	"io"
	"os"

	"github.com/grid-tools/fuelmix/pkg/export"
	"github.com/grid-tools/fuelmix/pkg/runtime/terminal/commands"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Output io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fuelmix",
		Short: "Rolling fossil/renewable generation share tool",
	}

	cmd.AddCommand(commands.NewComputeCmd(cli.reporter))
	cmd.AddCommand(commands.NewNetworksCmd())

	return cmd
}
