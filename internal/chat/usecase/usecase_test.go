package usecase

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-advisor/internal/advice"
	"campus-advisor/internal/agent"
	"campus-advisor/internal/agent/orchestrator"
	"campus-advisor/internal/chat"
	"campus-advisor/internal/chat/repository"
	"campus-advisor/internal/chat/repository/cache"
	chatSqlite "campus-advisor/internal/chat/repository/sqlite"
	"campus-advisor/internal/profile"
	"campus-advisor/internal/router"
	"campus-advisor/pkg/llmprovider"
	"campus-advisor/pkg/log"
	pkgSqlite "campus-advisor/pkg/sqlite"
)

type fakeGenerator struct {
	out string
	err error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string, opts llmprovider.Options) (string, error) {
	return f.out, f.err
}

type fakeClassifier struct{}

func (fakeClassifier) Classify(ctx context.Context, text string, categories []string, instruction string) string {
	return categories[len(categories)-1]
}

type fakeProfiles struct {
	mu      sync.Mutex
	users   map[string]profile.User
	stress  map[string]int
	failing bool
}

func (f *fakeProfiles) Register(ctx context.Context, in profile.RegisterInput) (profile.RegisterOutput, error) {
	return profile.RegisterOutput{}, nil
}

func (f *fakeProfiles) Detail(ctx context.Context, userID string) (profile.DetailOutput, error) {
	u, ok := f.users[userID]
	if !ok {
		return profile.DetailOutput{}, profile.ErrUserNotFound
	}
	return profile.DetailOutput{User: u}, nil
}

func (f *fakeProfiles) Update(ctx context.Context, in profile.UpdateInput) (profile.UpdateOutput, error) {
	return profile.UpdateOutput{}, nil
}

func (f *fakeProfiles) UpdateStressLevel(ctx context.Context, userID string, level int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("db down")
	}
	if f.stress == nil {
		f.stress = map[string]int{}
	}
	f.stress[userID] = level
	return nil
}

type fakeAdvice struct {
	mu   sync.Mutex
	logs []advice.LogInput
	err  error
}

func (f *fakeAdvice) Log(ctx context.Context, in advice.LogInput) (advice.Entry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logs = append(f.logs, in)
	return advice.Entry{}, f.err
}

func (f *fakeAdvice) List(ctx context.Context, in advice.ListInput) (advice.ListOutput, error) {
	return advice.ListOutput{}, nil
}

type failingRepo struct{}

func (failingRepo) CreateMessage(ctx context.Context, opt repository.CreateMessageOptions) (chat.Message, error) {
	return chat.Message{}, repository.ErrFailedToInsert
}

func (failingRepo) ListRecent(ctx context.Context, opt repository.ListRecentOptions) ([]chat.Message, error) {
	return nil, repository.ErrFailedToList
}

func (failingRepo) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	return 0, repository.ErrFailedToDelete
}

type fixture struct {
	uc       *implUseCase
	repo     repository.Repository
	profiles *fakeProfiles
	advice   *fakeAdvice
	gen      *fakeGenerator
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := pkgSqlite.Open(context.Background(), filepath.Join(t.TempDir(), "chat.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := log.NewNop()
	f := &fixture{
		repo: chatSqlite.New(db, l),
		profiles: &fakeProfiles{users: map[string]profile.User{
			"u1": {ID: "u1", Name: "Alex", Profile: profile.Profile{Major: "Biology", StressLevel: "medium"}},
		}},
		advice: &fakeAdvice{},
		gen:    &fakeGenerator{out: "generated reply"},
	}
	f.uc = New(Deps{
		Repo:      f.repo,
		Cache:     cache.New(10, time.Minute),
		Processor: orchestrator.NewDefault(f.gen, fakeClassifier{}, agent.DefaultConfig(), l),
		Profiles:  f.profiles,
		Advice:    f.advice,
		Logger:    l,
	})
	return f
}

func TestAsk_Validation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Ask(ctx, chat.AskInput{UserID: "u1", Message: "   "})
	assert.ErrorIs(t, err, chat.ErrEmptyMessage)

	_, err = f.uc.Ask(ctx, chat.AskInput{Message: "hello"})
	assert.ErrorIs(t, err, chat.ErrMissingUser)
}

func TestAsk_RoundTripHistory(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.uc.Ask(ctx, chat.AskInput{UserID: "u1", SessionID: "s1", Message: "How do I write a better essay?"})
	require.NoError(t, err)
	assert.Equal(t, "academic", out.Intent)
	assert.Equal(t, router.HandlerAcademic, out.HandlerName)

	hist, err := f.uc.History(ctx, chat.HistoryInput{UserID: "u1"})
	require.NoError(t, err)
	require.Len(t, hist.Messages, 2)
	assert.Equal(t, agent.RoleUser, hist.Messages[0].Role)
	assert.Equal(t, "How do I write a better essay?", hist.Messages[0].Content)
	assert.Equal(t, agent.RoleAssistant, hist.Messages[1].Role)
	assert.Equal(t, out.HandlerName, hist.Messages[1].HandlerName)
	assert.Equal(t, "s1", hist.Messages[1].SessionID)
	assert.Contains(t, hist.Messages[1].Metadata, `"agent_type":"academic"`)
}

func TestAsk_AdviceLogRule(t *testing.T) {
	tests := []struct {
		name         string
		message      string
		genErr       error
		wantLogs     int
		wantCategory string
		wantPriority string
	}{
		{name: "academic above threshold", message: "How do I write a better essay?", wantLogs: 1, wantCategory: advice.CategoryStudyPlan, wantPriority: advice.PriorityMedium},
		{name: "wellness above threshold", message: "I feel so lonely lately", wantLogs: 1, wantCategory: advice.CategoryWellnessCheck, wantPriority: advice.PriorityHigh},
		{name: "campus life never logged", message: "Any good clubs to join?", wantLogs: 0},
		{name: "degraded academic reply not logged", message: "How do I write a better essay?", genErr: errors.New("down"), wantLogs: 0},
		{name: "crisis routes to emergency, not logged", message: "I want to end my life", wantLogs: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.gen.err = tt.genErr

			_, err := f.uc.Ask(context.Background(), chat.AskInput{UserID: "u1", Message: tt.message})
			require.NoError(t, err)
			require.Len(t, f.advice.logs, tt.wantLogs)
			if tt.wantLogs > 0 {
				assert.Equal(t, tt.wantCategory, f.advice.logs[0].Category)
				assert.Equal(t, tt.wantPriority, f.advice.logs[0].Priority)
				assert.Equal(t, "u1", f.advice.logs[0].UserID)
			}
		})
	}
}

func TestAsk_StressWriteBack(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Ask(context.Background(), chat.AskInput{UserID: "u1", Message: "I'm so stressed about everything"})
	require.NoError(t, err)
	assert.Equal(t, "wellness", out.Intent)
	assert.Equal(t, 6, f.profiles.stress["u1"])
	assert.Contains(t, out.ToolsUsed, agent.ToolStressDetection)
	assert.Contains(t, out.ToolsUsed, agent.ToolStressTracking)
}

func TestAsk_StressWriteBackFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	f.profiles.failing = true

	out, err := f.uc.Ask(context.Background(), chat.AskInput{UserID: "u1", Message: "I'm so stressed about everything"})
	require.NoError(t, err)
	assert.NotContains(t, out.ToolsUsed, agent.ToolStressTracking)
}

func TestAsk_CrisisFlags(t *testing.T) {
	f := newFixture(t)

	out, err := f.uc.Ask(context.Background(), chat.AskInput{UserID: "u1", Message: "I don't want to be here anymore, I want to die"})
	require.NoError(t, err)
	assert.Equal(t, "emergency", out.Intent)
	assert.True(t, out.CrisisDetected)
	assert.Equal(t, 1.0, out.Confidence)
	assert.Contains(t, out.Content, "988")
}

func TestAsk_PersistenceFailureStillReplies(t *testing.T) {
	l := log.NewNop()
	adv := &fakeAdvice{err: errors.New("advice store down")}
	uc := New(Deps{
		Repo:      failingRepo{},
		Processor: orchestrator.NewDefault(&fakeGenerator{out: "ok"}, fakeClassifier{}, agent.DefaultConfig(), l),
		Advice:    adv,
		Logger:    l,
	})

	out, err := uc.Ask(context.Background(), chat.AskInput{UserID: "u1", Message: "How do I write a better essay?"})
	require.NoError(t, err)
	assert.Equal(t, "ok", out.Content)
	assert.Len(t, adv.logs, 1)
}

func TestBuildContext_WindowOldestFirst(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		_, err := f.uc.Ask(ctx, chat.AskInput{UserID: "u1", Message: "Any good clubs to join?"})
		require.NoError(t, err)
	}

	c := f.uc.BuildContext(ctx, "u1")
	require.NotNil(t, c.Profile)
	assert.Equal(t, "Alex", c.Profile.Name)
	require.Len(t, c.History, chat.DefaultHistoryWindow)
	assert.Equal(t, agent.RoleUser, c.History[0].Role)
	assert.Equal(t, agent.RoleAssistant, c.History[len(c.History)-1].Role)

	// A write must invalidate the cached window.
	_, err := f.uc.Ask(ctx, chat.AskInput{UserID: "u1", Message: "last one about the dorm"})
	require.NoError(t, err)
	c = f.uc.BuildContext(ctx, "u1")
	assert.Equal(t, "last one about the dorm", c.History[len(c.History)-2].Content)
}

func TestBuildContext_UnknownUser(t *testing.T) {
	f := newFixture(t)
	c := f.uc.BuildContext(context.Background(), "stranger")
	assert.Nil(t, c.Profile)
	assert.Empty(t, c.History)
}

func TestClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.uc.Ask(ctx, chat.AskInput{UserID: "u1", Message: "Any good clubs to join?"})
	require.NoError(t, err)
	require.NotEmpty(t, f.uc.BuildContext(ctx, "u1").History)

	require.NoError(t, f.uc.Clear(ctx, "u1"))
	hist, err := f.uc.History(ctx, chat.HistoryInput{UserID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, hist.Messages)
	assert.Empty(t, f.uc.BuildContext(ctx, "u1").History)
}

type blockingProcessor struct {
	started chan struct{}
}

func (b *blockingProcessor) ProcessMessage(ctx context.Context, in orchestrator.Input) orchestrator.Result {
	close(b.started)
	<-ctx.Done()
	return orchestrator.Result{
		Reply:       agent.Reply{Content: "stopped", ToolsUsed: []string{}},
		Intent:      router.IntentGeneral,
		HandlerName: router.HandlerGeneral,
	}
}

func TestStop_CancelsInFlight(t *testing.T) {
	proc := &blockingProcessor{started: make(chan struct{})}
	uc := New(Deps{Repo: failingRepo{}, Processor: proc, Logger: log.NewNop()})

	done := make(chan chat.AskOutput, 1)
	go func() {
		out, _ := uc.Ask(context.Background(), chat.AskInput{UserID: "u1", Message: "hello"})
		done <- out
	}()

	<-proc.started
	assert.Equal(t, 0, uc.Stop(context.Background(), "someone-else"))
	assert.Equal(t, 1, uc.Stop(context.Background(), "u1"))

	select {
	case out := <-done:
		assert.Equal(t, "stopped", out.Content)
	case <-time.After(2 * time.Second):
		t.Fatal("Ask did not return after Stop")
	}
	assert.Equal(t, 0, uc.Stop(context.Background(), "u1"))
}

// stalledCache never answers Get until released, like an unreachable Redis.
type stalledCache struct {
	release chan struct{}
	mu      sync.Mutex
	gets    int
}

func (s *stalledCache) Get(ctx context.Context, userID string) ([]chat.Message, bool) {
	s.mu.Lock()
	s.gets++
	s.mu.Unlock()
	<-s.release
	return nil, false
}

func (s *stalledCache) Set(ctx context.Context, userID string, msgs []chat.Message) {}
func (s *stalledCache) Invalidate(ctx context.Context, userID string)               {}

func TestAsk_CrisisDoesNotWaitOnHistoryCache(t *testing.T) {
	f := newFixture(t)
	stalled := &stalledCache{release: make(chan struct{})}
	t.Cleanup(func() { close(stalled.release) })
	f.uc.cache = stalled

	done := make(chan chat.AskOutput, 1)
	go func() {
		out, err := f.uc.Ask(context.Background(), chat.AskInput{UserID: "u1", Message: "I want to kill myself"})
		assert.NoError(t, err)
		done <- out
	}()

	select {
	case out := <-done:
		assert.Equal(t, "emergency", out.Intent)
		assert.Contains(t, out.Content, "988")
		assert.True(t, strings.HasPrefix(out.Content, "Alex,"), "crisis reply still uses the profile name")
	case <-time.After(time.Second):
		t.Fatal("crisis reply waited on the history cache")
	}

	stalled.mu.Lock()
	defer stalled.mu.Unlock()
	assert.Zero(t, stalled.gets)
}
