package llmprovider

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"campus-advisor/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scriptedProvider struct {
	name string
	// answers are consumed one per call; the last one repeats.
	answers []answer

	mu    sync.Mutex
	calls int
}

type answer struct {
	text string
	err  error
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	a := p.answers[min(p.calls, len(p.answers)-1)]
	p.calls++
	if a.err != nil {
		return nil, a.err
	}
	return &Response{Text: a.text, ProviderName: p.name, ModelName: p.name + "-model"}, nil
}

func (p *scriptedProvider) Name() string  { return p.name }
func (p *scriptedProvider) Model() string { return p.name + "-model" }

func (p *scriptedProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func ok(text string) []answer { return []answer{{text: text}} }
func down() []answer         { return []answer{{err: errors.New("connection refused")}} }

var hello = &Request{Messages: []Message{{Role: RoleUser, Text: "How do I drop a class?"}}}

func TestManager_GenerateContent(t *testing.T) {
	tests := []struct {
		name         string
		cfg          Config
		primary      []answer
		secondary    []answer
		wantProvider string
		wantErr      error
		wantCalls    [2]int
	}{
		{
			name:         "primary answers",
			cfg:          Config{FallbackEnabled: true},
			primary:      ok("Talk to the registrar."),
			secondary:    ok("unused"),
			wantProvider: "local",
			wantCalls:    [2]int{1, 0},
		},
		{
			name:         "falls back after retries",
			cfg:          Config{FallbackEnabled: true, RetryAttempts: 2, RetryDelay: time.Millisecond},
			primary:      down(),
			secondary:    ok("Talk to the registrar."),
			wantProvider: "ollama",
			wantCalls:    [2]int{2, 1},
		},
		{
			name:         "retry recovers on the same provider",
			cfg:          Config{FallbackEnabled: true, RetryAttempts: 3, RetryDelay: time.Millisecond},
			primary:      []answer{{err: errors.New("busy")}, {text: "second try"}},
			secondary:    ok("unused"),
			wantProvider: "local",
			wantCalls:    [2]int{2, 0},
		},
		{
			name:      "fallback disabled stops at the primary",
			cfg:       Config{RetryAttempts: 2, RetryDelay: time.Millisecond},
			primary:   down(),
			secondary: ok("unused"),
			wantErr:   ErrAllProvidersFailed,
			wantCalls: [2]int{2, 0},
		},
		{
			name:      "every provider fails",
			cfg:       Config{FallbackEnabled: true},
			primary:   down(),
			secondary: down(),
			wantErr:   ErrAllProvidersFailed,
			wantCalls: [2]int{1, 1},
		},
		{
			name:         "blank completion counts as a failure",
			cfg:          Config{FallbackEnabled: true},
			primary:      ok("   "),
			secondary:    ok("Talk to the registrar."),
			wantProvider: "ollama",
			wantCalls:    [2]int{1, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			primary := &scriptedProvider{name: "local", answers: tt.primary}
			secondary := &scriptedProvider{name: "ollama", answers: tt.secondary}
			m := NewManager([]Provider{primary, secondary}, tt.cfg, log.NewNop())

			resp, err := m.GenerateContent(context.Background(), hello)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantProvider, resp.ProviderName)
			}
			assert.Equal(t, tt.wantCalls, [2]int{primary.Calls(), secondary.Calls()})
		})
	}
}

func TestManager_RejectsBadInput(t *testing.T) {
	_, err := NewManager(nil, Config{}, log.NewNop()).GenerateContent(context.Background(), hello)
	assert.ErrorIs(t, err, ErrNoProvidersConfigured)

	p := &scriptedProvider{name: "local", answers: ok("x")}
	_, err = NewManager([]Provider{p}, Config{}, log.NewNop()).GenerateContent(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidRequest)
	assert.Zero(t, p.Calls())
}

func TestManager_FailureKeepsEveryCause(t *testing.T) {
	lmStudio := errors.New("lm studio unreachable")
	ollamaErr := errors.New("ollama model not pulled")
	m := NewManager([]Provider{
		&scriptedProvider{name: "local", answers: []answer{{err: lmStudio}}},
		&scriptedProvider{name: "ollama", answers: []answer{{err: ollamaErr}}},
	}, Config{FallbackEnabled: true}, log.NewNop())

	_, err := m.GenerateContent(context.Background(), hello)
	assert.ErrorIs(t, err, lmStudio)
	assert.ErrorIs(t, err, ollamaErr)
}

func TestManager_CooldownSkipsFailedProvider(t *testing.T) {
	now := time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)
	primary := &scriptedProvider{name: "local", answers: down()}
	secondary := &scriptedProvider{name: "ollama", answers: ok("From the backup model.")}

	m := NewManager([]Provider{primary, secondary}, Config{FallbackEnabled: true, Cooldown: time.Minute}, log.NewNop())
	m.now = func() time.Time { return now }

	_, err := m.GenerateContent(context.Background(), hello)
	require.NoError(t, err)
	assert.Equal(t, []string{"local"}, m.Benched())

	// Still benched: the primary is not called again.
	_, err = m.GenerateContent(context.Background(), hello)
	require.NoError(t, err)
	assert.Equal(t, 1, primary.Calls())
	assert.Equal(t, 2, secondary.Calls())

	// After the cooldown the primary gets another chance.
	now = now.Add(time.Minute + time.Second)
	assert.Empty(t, m.Benched())
	_, err = m.GenerateContent(context.Background(), hello)
	require.NoError(t, err)
	assert.Equal(t, 2, primary.Calls())
}

func TestManager_AllBenchedStillTriesFirst(t *testing.T) {
	now := time.Date(2024, 9, 2, 10, 0, 0, 0, time.UTC)
	only := &scriptedProvider{name: "local", answers: []answer{{err: errors.New("down")}, {text: "back up"}}}

	m := NewManager([]Provider{only}, Config{Cooldown: time.Hour}, log.NewNop())
	m.now = func() time.Time { return now }

	_, err := m.GenerateContent(context.Background(), hello)
	require.Error(t, err)

	resp, err := m.GenerateContent(context.Background(), hello)
	require.NoError(t, err)
	assert.Equal(t, "back up", resp.Text)
	assert.Empty(t, m.Benched(), "a success lifts the bench")
}

func TestManager_CallerCancellationDoesNotBench(t *testing.T) {
	p := &scriptedProvider{name: "local", answers: []answer{{err: context.Canceled}}}
	m := NewManager([]Provider{p}, Config{Cooldown: time.Hour}, log.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := m.GenerateContent(ctx, hello)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, m.Benched())
	assert.Zero(t, p.Calls())
}

// hungProvider never answers; it returns only when its context ends.
type hungProvider struct {
	mu    sync.Mutex
	calls int
}

func (h *hungProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	h.mu.Lock()
	h.calls++
	h.mu.Unlock()
	<-ctx.Done()
	return nil, ctx.Err()
}

func (h *hungProvider) Name() string  { return "local" }
func (h *hungProvider) Model() string { return "local-model" }

func (h *hungProvider) Calls() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.calls
}

func TestManager_HungPrimaryIsBenchedAndBackupAnswers(t *testing.T) {
	hung := &hungProvider{}
	backup := &scriptedProvider{name: "ollama", answers: ok("Office hours are on the syllabus.")}
	m := NewManager([]Provider{hung, backup}, Config{
		FallbackEnabled: true,
		MaxTotalTimeout: 200 * time.Millisecond,
		Cooldown:        time.Minute,
	}, log.NewNop())

	for range 3 {
		resp, err := m.GenerateContent(context.Background(), hello)
		require.NoError(t, err)
		assert.Equal(t, "ollama", resp.ProviderName)
	}

	assert.Equal(t, []string{"local"}, m.Benched())
	assert.Equal(t, 1, hung.Calls(), "a hung provider costs one timeout, not one per turn")
	assert.Equal(t, 3, backup.Calls())
}

func TestManager_CallerDeadlineDoesNotBench(t *testing.T) {
	hung := &hungProvider{}
	m := NewManager([]Provider{hung}, Config{MaxTotalTimeout: time.Minute, Cooldown: time.Minute}, log.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := m.GenerateContent(ctx, hello)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, m.Benched())
}
