package gcalendar

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const (
	defaultCalendarID = "primary"
	defaultTokenPath  = "token.json"
	studyColorID      = "9" // blueberry
)

// Client pushes study plans to one Google Calendar.
type Client struct {
	service    *calendar.Service
	calendarID string
	timezone   string
}

// New creates a Calendar client from the credentials file named in cfg.
// Service account JSON is tried first, then OAuth desktop credentials with
// a stored token.
func New(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.CredentialsPath == "" {
		return nil, errors.New("gcalendar: credentials path is required")
	}
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}

	ts, err := tokenSource(ctx, data, cfg.TokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, cfg), nil
}

// NewWithHTTPClient creates a Calendar client from a pre-configured HTTP client.
func NewWithHTTPClient(ctx context.Context, httpClient *http.Client, cfg Config) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return newClient(svc, cfg), nil
}

func newClient(svc *calendar.Service, cfg Config) *Client {
	c := &Client{service: svc, calendarID: cfg.CalendarID, timezone: cfg.Timezone}
	if c.calendarID == "" {
		c.calendarID = defaultCalendarID
	}
	if c.timezone == "" {
		c.timezone = "UTC"
	}
	return c
}

func tokenSource(ctx context.Context, credentialsJSON []byte, tokenPath string) (oauth2.TokenSource, error) {
	jwtCfg, jwtErr := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if jwtErr == nil {
		return jwtCfg.TokenSource(ctx), nil
	}

	oauthCfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", jwtErr)
	}

	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}
	tokenData, err := os.ReadFile(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("OAuth desktop credentials need a stored token at %s: %w", tokenPath, err)
	}

	var tok oauth2.Token
	if err := json.Unmarshal(tokenData, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", tokenPath, err)
	}
	return oauthCfg.TokenSource(ctx, &tok), nil
}

// InsertEvent creates one event and returns its id and link.
func (c *Client) InsertEvent(ctx context.Context, ev StudyEvent) (string, string, error) {
	if !ev.End.After(ev.Start) {
		return "", "", fmt.Errorf("gcalendar: event %q ends before it starts", ev.Summary)
	}

	event := &calendar.Event{
		Summary:     ev.Summary,
		Description: ev.Description,
		ColorId:     studyColorID,
		Start: &calendar.EventDateTime{
			DateTime: ev.Start.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: ev.End.Format(time.RFC3339),
			TimeZone: c.timezone,
		},
	}
	if ev.ReminderMinutes > 0 {
		event.Reminders = &calendar.EventReminders{
			UseDefault:      false,
			Overrides:       []*calendar.EventReminder{{Method: "popup", Minutes: ev.ReminderMinutes}},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := c.service.Events.Insert(c.calendarID, event).Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to create calendar event: %w", err)
	}
	return created.Id, created.HtmlLink, nil
}

// InsertEvents creates every event it can. Failures are joined into the
// returned error; the result still reports what was created.
func (c *Client) InsertEvents(ctx context.Context, events []StudyEvent) (SyncResult, error) {
	var res SyncResult
	var errs []error

	for _, ev := range events {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		id, link, err := c.InsertEvent(ctx, ev)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		res.Created++
		res.EventIDs = append(res.EventIDs, id)
		res.Links = append(res.Links, link)
	}

	return res, errors.Join(errs...)
}
