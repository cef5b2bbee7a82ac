// scripts/oauth-bootstrap
//
// Run once locally to obtain OAuth tokens without the HTTP server.
//
// Usage:
//
//	go run ./scripts/oauth-bootstrap keap
//	go run ./scripts/oauth-bootstrap google google-credentials.json
//
// keap prints KEAP_ACCESS_TOKEN / KEAP_REFRESH_TOKEN lines for .env.
// google writes the token file used by leave-api's calendar reminders.
package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"billing-automation/config"
	"billing-automation/pkg/keap"
	"billing-automation/pkg/log"
	"billing-automation/pkg/tokenstore"
)

func main() {
	root := &cobra.Command{
		Use:          "oauth-bootstrap",
		Short:        "Obtain OAuth tokens for Keap or Google Calendar",
		SilenceUsage: true,
	}
	root.AddCommand(keapCmd(), googleCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func keapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keap",
		Short: "Authorize the Keap app and print the resulting tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cfg.Keap.RedirectURI == "" {
				return fmt.Errorf("KEAP_REDIRECT_URI is required")
			}

			store := tokenstore.New(tokenstore.Config{
				ClientID:     cfg.Keap.ClientID,
				ClientSecret: cfg.Keap.ClientSecret,
				RedirectURL:  cfg.Keap.RedirectURI,
				AuthURL:      keap.AuthURL,
				TokenURL:     keap.TokenURL,
				Scopes:       []string{keap.OAuthScope},
			}, log.NewNop())

			authURL, err := store.AuthCodeURL(uuid.NewString(), cfg.Keap.RedirectURI)
			if err != nil {
				return err
			}

			code, err := promptCode(cmd.OutOrStdout(), cmd.InOrStdin(), authURL)
			if err != nil {
				return err
			}

			st, err := store.Exchange(cmd.Context(), code, cfg.Keap.RedirectURI)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Add these lines to .env:")
			fmt.Fprintf(out, "KEAP_ACCESS_TOKEN=%s\n", st.AccessToken)
			fmt.Fprintf(out, "KEAP_REFRESH_TOKEN=%s\n", st.RefreshToken)
			if !st.ExpiresAt.IsZero() {
				fmt.Fprintf(out, "# access token expires at %s\n", st.ExpiresAt.Format("2006-01-02 15:04:05 MST"))
			}
			return nil
		},
	}
}

func googleCmd() *cobra.Command {
	var tokenPath string

	cmd := &cobra.Command{
		Use:   "google [CREDENTIALS_FILE]",
		Short: "Authorize Google Calendar and save the token file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			credsPath := "google-credentials.json"
			if len(args) == 1 {
				credsPath = args[0]
			}

			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials file %q: %w", credsPath, err)
			}

			oc, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
			if err != nil {
				return fmt.Errorf("parse credentials: %w (expected an OAuth Desktop App credentials file)", err)
			}

			code, err := promptCode(cmd.OutOrStdout(), cmd.InOrStdin(), oc.AuthCodeURL(uuid.NewString(), oauth2.AccessTypeOffline))
			if err != nil {
				return err
			}

			tok, err := oc.Exchange(cmd.Context(), code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}

			f, err := os.OpenFile(tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return err
			}
			defer f.Close()

			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("write %s: %w", tokenPath, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\nToken saved to %s. Restart leave-api to enable calendar reminders.\n", tokenPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "Where to write the token file")
	return cmd
}

func promptCode(out io.Writer, in io.Reader, authURL string) (string, error) {
	fmt.Fprintln(out, "1. Open this URL in a browser and approve access:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, authURL)
	fmt.Fprintln(out)
	fmt.Fprint(out, "2. Paste the authorization code here and press Enter: ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("read authorization code: %w", err)
	}
	code := strings.TrimSpace(line)
	if code == "" {
		return "", fmt.Errorf("empty authorization code")
	}
	return code, nil
}

