package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"gantt-chart/pkg/gcalendar"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize external task sources",
	}
	cmd.AddCommand(authCalendarCmd())
	return cmd
}

// authCalendarCmd runs the OAuth desktop flow once and stores the token the
// API uses for calendar import.
func authCalendarCmd() *cobra.Command {
	var (
		credsPath string
		tokenPath string
	)

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Authorize read-only Google Calendar access and save token.json",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credsPath)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", credsPath, err)
			}
			cfg, err := gcalendar.OAuthConfig(data)
			if err != nil {
				return fmt.Errorf("%w (is %q an OAuth desktop app credentials file?)", err, credsPath)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, Bold("1. Open this URL and sign in with your Google account:"))
			fmt.Fprintln(w)
			fmt.Fprintln(w, cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline))
			fmt.Fprintln(w)
			fmt.Fprint(w, Bold("2. Paste the authorization code and press Enter: "))

			var code string
			if _, err := fmt.Fscan(cmd.InOrStdin(), &code); err != nil {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := cfg.Exchange(context.Background(), code)
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(w, "\n%s token saved to %s; restart the API to enable calendar import\n", Green("✔"), tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credsPath, "credentials", "google-credentials.json", "OAuth desktop app credentials")
	cmd.Flags().StringVar(&tokenPath, "token", "token.json", "Where to write the token")

	return cmd
}
