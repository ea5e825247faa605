package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"campus-advisor/config"
	"campus-advisor/internal/app"
	"campus-advisor/internal/chat"
	"campus-advisor/pkg/gcalendar"
)

var (
	askUser, askMessage, askSession string
	historyUser                     string
	historyLimit                    int
	credentialsPath, tokenPath      string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the campus resource catalog into the database",
	Long: `Upserts the embedded resource catalog, keyed by name.
Safe to run repeatedly: existing entries are updated in place.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Resource.Seed(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d campus resources\n", out.Seeded)
			return nil
		})
	},
}

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Send one message through the full chat pipeline",
	Long: `Runs routing, generation and every side effect (history, advice log,
stress tracking) exactly as POST /api/v1/chat/ask does.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Chat.Ask(ctx, chat.AskInput{UserID: askUser, SessionID: askSession, Message: askMessage})
			if err != nil {
				return err
			}
			printAsk(cmd.OutOrStdout(), out)
			return nil
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print a user's conversation history, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			out, err := a.Chat.History(ctx, chat.HistoryInput{UserID: historyUser, Limit: historyLimit})
			if err != nil {
				return err
			}
			printHistory(cmd.OutOrStdout(), out)
			return nil
		})
	},
}

var calendarAuthCmd = &cobra.Command{
	Use:   "calendar-auth",
	Short: "Authorize Google Calendar access and store the token",
	Long: `Run once with OAuth desktop-app credentials. Open the printed URL,
sign in, paste the authorization code, and the token is written where the
planner looks for it. Service-account credentials need no token.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		creds := firstNonEmpty(credentialsPath, cfg.GoogleCalendar.CredentialsPath)
		if creds == "" {
			return fmt.Errorf("no credentials file: pass --credentials or set google_calendar.credentials_path")
		}
		data, err := os.ReadFile(creds)
		if err != nil {
			return fmt.Errorf("read credentials %q: %w", creds, err)
		}
		oauthCfg, err := gcalendar.OAuthConfig(data)
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "1. Open this URL and sign in with the calendar's Google account:")
		fmt.Fprintln(w)
		fmt.Fprintln(w, gcalendar.AuthCodeURL(oauthCfg))
		fmt.Fprintln(w)
		fmt.Fprint(w, "2. Paste the authorization code and press Enter: ")

		code, err := readLine(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read authorization code: %w", err)
		}

		dest := firstNonEmpty(tokenPath, cfg.GoogleCalendar.TokenPath)
		if err := gcalendar.ExchangeAndSave(cmd.Context(), oauthCfg, code, dest); err != nil {
			return err
		}
		fmt.Fprintf(w, "\nToken saved to %s. Restart the API to enable calendar sync.\n", dest)
		return nil
	},
}

func printAsk(w io.Writer, out chat.AskOutput) {
	fmt.Fprintf(w, "[%s via %s, confidence %.2f]\n", out.Intent, out.HandlerName, out.Confidence)
	if out.CrisisDetected {
		fmt.Fprintln(w, "!! crisis detected: emergency resources shown")
	}
	fmt.Fprintln(w, out.Content)
	if len(out.ToolsUsed) > 0 {
		fmt.Fprintf(w, "tools: %s\n", strings.Join(out.ToolsUsed, ", "))
	}
}

func printHistory(w io.Writer, out chat.HistoryOutput) {
	if len(out.Messages) == 0 {
		fmt.Fprintln(w, "No messages.")
		return
	}
	for _, m := range out.Messages {
		who := m.Role
		if m.HandlerName != "" {
			who += "/" + m.HandlerName
		}
		fmt.Fprintf(w, "%s  %-18s %s\n", m.CreatedAt.Format("2006-01-02 15:04"), who, m.Content)
	}
	fmt.Fprintf(w, "(%d messages)\n", out.Total)
}

func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", fmt.Errorf("empty input")
	}
	return line, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
