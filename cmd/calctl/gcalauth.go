package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

type gcalAuthOptions struct {
	credentials string
	token       string
}

// newGCalAuthCmd runs the one-time OAuth consent for desktop credentials and
// saves the token the calendar mirror reads at startup.
func newGCalAuthCmd() *cobra.Command {
	opts := gcalAuthOptions{}
	cmd := &cobra.Command{
		Use:   "gcal-auth",
		Short: "Authorize Google Calendar access and save token.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := os.ReadFile(opts.credentials)
			if err != nil {
				return fmt.Errorf("read credentials %q: %w", opts.credentials, err)
			}
			config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
			if err != nil {
				return fmt.Errorf("%q is not an OAuth desktop credentials file: %w", opts.credentials, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "1. Open this URL and sign in with the household Google account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, config.AuthCodeURL("household-calendar", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "2. Paste the authorization code here: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("read authorization code: %w", err)
			}

			tok, err := config.Exchange(cmd.Context(), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("exchange authorization code: %w", err)
			}

			f, err := os.OpenFile(opts.token, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
			if err != nil {
				return fmt.Errorf("create %s: %w", opts.token, err)
			}
			defer f.Close()
			if err := json.NewEncoder(f).Encode(tok); err != nil {
				return fmt.Errorf("write %s: %w", opts.token, err)
			}

			fmt.Fprintf(out, "\nSaved %s. Restart the API to enable the calendar mirror.\n", opts.token)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.credentials, "credentials", "google-credentials.json", "OAuth desktop credentials file")
	f.StringVar(&opts.token, "token", "token.json", "where to save the token")
	return cmd
}
