package llmprovider

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"campus-advisor/pkg/log"
)

const logPrefixGenerate = "pkg.llmprovider.Manager.GenerateContent"

// Manager walks providers in priority order. A provider that fails is
// benched for Cooldown so that a dead local model costs one timeout, not one
// per chat turn.
type Manager struct {
	providers []Provider
	config    Config
	logger    log.Logger
	now       func() time.Time

	mu      sync.Mutex
	benched map[string]time.Time
}

// Config tunes a Manager. Zero values mean: one attempt, no fallback, no
// global timeout, no cooldown.
type Config struct {
	FallbackEnabled bool
	RetryAttempts   int
	RetryDelay      time.Duration
	MaxTotalTimeout time.Duration
	Cooldown        time.Duration
}

// NewManager creates a Manager over providers, highest priority first.
func NewManager(providers []Provider, cfg Config, logger log.Logger) *Manager {
	if cfg.RetryAttempts < 1 {
		cfg.RetryAttempts = 1
	}
	return &Manager{
		providers: providers,
		config:    cfg,
		logger:    logger,
		now:       time.Now,
		benched:   make(map[string]time.Time, len(providers)),
	}
}

// GenerateContent returns the first non-empty answer. Providers on the bench
// are skipped unless every provider is benched, in which case the first one
// is tried anyway. With fallback on, each provider gets an equal share of
// what is left of MaxTotalTimeout, so a hung primary leaves time for the
// next one.
func (m *Manager) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	if len(m.providers) == 0 {
		return nil, ErrNoProvidersConfigured
	}
	if req == nil || len(req.Messages) == 0 {
		return nil, ErrInvalidRequest
	}

	caller := ctx
	if m.config.MaxTotalTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.config.MaxTotalTimeout)
		defer cancel()
	}

	candidates := m.candidates()
	var errs []error
	for i, p := range candidates {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		pctx, cancel := m.providerContext(ctx, len(candidates)-i)
		resp, err := m.attempt(pctx, p, req)
		cancel()
		if err == nil {
			m.release(p)
			m.logger.Debugf(ctx, "%s: %s/%s answered (in=%d out=%d)",
				logPrefixGenerate, p.Name(), p.Model(), resp.inputTokens(), resp.outputTokens())
			return resp, nil
		}

		errs = append(errs, err)
		// A deadline of our own making is the provider's fault; the caller
		// giving up is not.
		if caller.Err() == nil {
			m.bench(p)
		}
		m.logger.Warnf(ctx, "%s: %s/%s failed: %v", logPrefixGenerate, p.Name(), p.Model(), err)

		if !m.config.FallbackEnabled {
			break
		}
	}

	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

// providerContext bounds one provider to remaining/left of the deadline when
// later providers may still run.
func (m *Manager) providerContext(ctx context.Context, left int) (context.Context, context.CancelFunc) {
	deadline, ok := ctx.Deadline()
	if !ok || !m.config.FallbackEnabled || left <= 1 {
		return context.WithCancel(ctx)
	}
	share := time.Until(deadline) / time.Duration(left)
	return context.WithTimeout(ctx, share)
}

// attempt calls p up to RetryAttempts times with a linearly growing delay.
func (m *Manager) attempt(ctx context.Context, p Provider, req *Request) (*Response, error) {
	var lastErr error
	for i := range m.config.RetryAttempts {
		if i > 0 {
			select {
			case <-time.After(time.Duration(i) * m.config.RetryDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		resp, err := p.GenerateContent(ctx, req)
		if err == nil && (resp == nil || strings.TrimSpace(resp.Text) == "") {
			err = &ProviderError{Provider: p.Name(), Err: ErrEmptyResponse}
		}
		if err == nil {
			return resp, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

// candidates lists providers not on the bench, or all of them when none is
// available.
func (m *Manager) candidates() []Provider {
	if m.config.Cooldown <= 0 {
		return m.providers
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	ready := make([]Provider, 0, len(m.providers))
	for _, p := range m.providers {
		if until, ok := m.benched[p.Name()]; ok && now.Before(until) {
			continue
		}
		ready = append(ready, p)
	}
	if len(ready) == 0 {
		return m.providers[:1]
	}
	return ready
}

func (m *Manager) bench(p Provider) {
	if m.config.Cooldown <= 0 {
		return
	}
	m.mu.Lock()
	m.benched[p.Name()] = m.now().Add(m.config.Cooldown)
	m.mu.Unlock()
}

func (m *Manager) release(p Provider) {
	m.mu.Lock()
	delete(m.benched, p.Name())
	m.mu.Unlock()
}

// Benched returns the names of providers currently cooling down.
func (m *Manager) Benched() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	var names []string
	for _, p := range m.providers {
		if until, ok := m.benched[p.Name()]; ok && now.Before(until) {
			names = append(names, p.Name())
		}
	}
	return names
}
