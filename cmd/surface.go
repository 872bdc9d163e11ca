package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

// surfaceCmd represents the surface command.
var surfaceCmd = newSurfaceCmd()

func newSurfaceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "surface [path]",
		Short: "Print the API surface of the changed files",
		Long: `Print the public classes, functions and parameter lists that commitkind
extracts from the changed files of the current working tree. The working tree
is only read, never stashed or rewound.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			wf, err := newWorkflow(cmd, targetPath(args))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := wf.Surface(ctx); err != nil {
				return reportedError{err: err}
			}

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(surfaceCmd)
}
