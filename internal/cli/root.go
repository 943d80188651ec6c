// filepath: internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var (
	// Version info
	Version   = "1.0.0"
	StartTime time.Time

	// frontendFS holds the embedded public assets.
	frontendFS fs.FS
)

// NewRootCMD builds the command tree. The root command runs the server.
func NewRootCMD() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "webapp",
		Short: "DevOps Starter Pack Web App",
		Long:  `A minimal web server with a static landing page and health, time and info JSON endpoints.`,
		// PreRunE loads the configuration before the server starts.
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeConfig(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServer(ctx)
		},
		SilenceUsage: true,
	}

	registerFlags(rootCmd)

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewInitConfigCommand())

	return rootCmd
}

// Execute runs the command given on os.Args. It is called once by main.main().
func Execute(content fs.FS) {
	frontendFS = content
	StartTime = time.Now()

	if err := NewRootCMD().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
