package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"campus-advisor/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	httpClient := ts.Client()
	httpClient.Transport = &rewriteTransport{
		Transport: httpClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewWithHTTPClient(context.Background(), httpClient, gcalendar.Config{Timezone: "America/Chicago"})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

func TestNew(t *testing.T) {
	dir := t.TempDir()
	installed := `{"installed":{"client_id":"id.apps.googleusercontent.com","client_secret":"s","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`

	write := func(name, body string) string {
		p := filepath.Join(dir, name)
		if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
		return p
	}

	t.Run("missing path", func(t *testing.T) {
		if _, err := gcalendar.New(context.Background(), gcalendar.Config{}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unreadable file", func(t *testing.T) {
		if _, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: filepath.Join(dir, "nope.json")}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("broken credentials", func(t *testing.T) {
		p := write("broken.json", `{"broken":true}`)
		if _, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: p}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		creds := write("installed.json", installed)
		tok := write("token.json", `{"access_token":"dummy","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`)
		if _, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: creds, TokenPath: tok}); err != nil {
			t.Fatalf("expected success: %v", err)
		}
	})

	t.Run("installed app with bad token", func(t *testing.T) {
		creds := write("installed2.json", installed)
		tok := write("bad-token.json", `{"broken": true`)
		if _, err := gcalendar.New(context.Background(), gcalendar.Config{CredentialsPath: creds, TokenPath: tok}); err == nil {
			t.Fatal("expected failure on bad token")
		}
	})
}

func TestInsertEvent(t *testing.T) {
	var got map[string]any
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/calendar/v3/calendars/primary/events" || r.Method != http.MethodPost {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_ = json.NewDecoder(r.Body).Decode(&got)
		_, _ = w.Write([]byte(`{"id":"event-123","htmlLink":"https://calendar.google.com/event-uri"}`))
	})

	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	id, link, err := client.InsertEvent(context.Background(), gcalendar.StudyEvent{
		Summary:         "Study: CS 101",
		Start:           start,
		End:             start.Add(2 * time.Hour),
		ReminderMinutes: 10,
	})
	if err != nil {
		t.Fatalf("InsertEvent: %v", err)
	}
	if id != "event-123" || link != "https://calendar.google.com/event-uri" {
		t.Errorf("unexpected id/link: %s %s", id, link)
	}
	if got["summary"] != "Study: CS 101" {
		t.Errorf("summary not sent: %v", got)
	}
	startField, _ := got["start"].(map[string]any)
	if startField["timeZone"] != "America/Chicago" {
		t.Errorf("timezone not sent: %v", startField)
	}
	if _, ok := got["reminders"]; !ok {
		t.Errorf("reminders not sent")
	}
}

func TestInsertEvent_Invalid(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})
	start := time.Now()
	if _, _, err := client.InsertEvent(context.Background(), gcalendar.StudyEvent{Start: start, End: start}); err == nil {
		t.Fatal("expected error for zero-length event")
	}
}

func TestInsertEvents_PartialFailure(t *testing.T) {
	var calls int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"id":"ok","htmlLink":"l"}`))
	})

	start := time.Date(2025, 3, 3, 8, 0, 0, 0, time.UTC)
	events := make([]gcalendar.StudyEvent, 3)
	for i := range events {
		events[i] = gcalendar.StudyEvent{Summary: "block", Start: start, End: start.Add(time.Hour)}
	}

	res, err := client.InsertEvents(context.Background(), events)
	if err == nil {
		t.Fatal("expected joined error")
	}
	if res.Created != 2 || len(res.EventIDs) != 2 {
		t.Errorf("expected 2 created, got %+v", res)
	}
}
