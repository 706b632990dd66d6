package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/archeteam/workspaced/internal/adapters/driving/httpapi"
	"github.com/archeteam/workspaced/internal/logger"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Long: `Start the HTTP server exposing the mail, meeting, and storage routes.

The server runs until interrupted. Address precedence: --addr flag,
then configuration, then the default.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides configuration)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if services == nil {
		return errors.New("services not configured")
	}

	addr := serveAddr
	if addr == "" {
		addr = services.ListenAddr
	}

	server := httpapi.NewServer(services.Mail, services.Calendar, services.Storage)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Listen(addr)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	logger.Info("listening on %s", addr)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("received %s, shutting down", sig)
		return server.Shutdown()
	}
}
