// Package cli wires the cobra command tree. Commands receive their
// dependencies through Services before Execute runs.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/archeteam/workspaced/internal/core/ports/driving"
	"github.com/archeteam/workspaced/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services holds the operation surfaces the commands run against.
type Services struct {
	Auth     driving.AuthOps
	Mail     driving.MailOps
	Calendar driving.CalendarOps
	Storage  driving.StorageOps

	// ListenAddr is the HTTP listen address for the serve command.
	ListenAddr string
}

var services *Services

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "workspaced",
	Short: "Workspace operations service",
	Long: `workspaced exposes mail, calendar, and drive operations over HTTP,
handling OAuth credential lifecycle and name-to-identifier resolution
behind a small request surface.

Run 'workspaced auth login' once to authorise, then 'workspaced serve'
to start the HTTP server.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// SetServices injects the service dependencies for all commands.
func SetServices(s *Services) {
	services = s
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
}
