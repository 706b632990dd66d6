package cli

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/archeteam/workspaced/internal/core/domain"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored Google credential",
	Long: `Inspect and establish the OAuth credential the service operates with.

'auth login' runs the browser consent flow (or a silent refresh when the
stored credential still carries a usable refresh token) and persists the
result. 'auth status' reports whether a usable credential is stored.`,
}

var authLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorise and persist a credential",
	RunE:  runAuthLogin,
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the stored credential state",
	RunE:  runAuthStatus,
}

func init() {
	authCmd.AddCommand(authLoginCmd)
	authCmd.AddCommand(authStatusCmd)
	rootCmd.AddCommand(authCmd)
}

func runAuthLogin(cmd *cobra.Command, _ []string) error {
	if services == nil {
		return errors.New("services not configured")
	}

	cred, err := services.Auth.EnsureValid(cmd.Context(), domain.AllScopes())
	if err != nil {
		return err
	}

	cmd.Println("Credential established and persisted.")
	cmd.Printf("  Scopes: %s\n", strings.Join(cred.Scopes, ", "))
	if !cred.Expiry.IsZero() {
		cmd.Printf("  Expires: %s\n", cred.Expiry.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}

func runAuthStatus(cmd *cobra.Command, _ []string) error {
	if services == nil {
		return errors.New("services not configured")
	}

	cred, err := services.Auth.Peek(cmd.Context())
	if err != nil {
		return err
	}
	if cred == nil {
		cmd.Println("No stored credential. Run 'workspaced auth login'.")
		return nil
	}

	if cred.Valid(domain.AllScopes()) {
		cmd.Println("Credential valid.")
	} else if cred.HasRefreshToken() {
		cmd.Println("Credential expired; will refresh on next use.")
	} else {
		cmd.Println("Credential expired and not refreshable. Run 'workspaced auth login'.")
	}
	cmd.Printf("  Scopes: %s\n", strings.Join(cred.Scopes, ", "))
	if !cred.Expiry.IsZero() {
		cmd.Printf("  Expires: %s\n", cred.Expiry.Format("2006-01-02 15:04:05 MST"))
	}
	return nil
}
