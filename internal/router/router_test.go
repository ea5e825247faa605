package router

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"campus-advisor/pkg/log"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClassifier struct {
	mu     sync.Mutex
	answer string
	calls  int
}

func (f *fakeClassifier) Classify(ctx context.Context, text string, categories []string, instruction string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.answer == "" {
		return categories[len(categories)-1]
	}
	return f.answer
}

func TestRoute(t *testing.T) {
	tests := []struct {
		name        string
		message     string
		answer      string
		wantIntent  Intent
		wantHandler string
		wantSource  Source
		wantDanger  bool
		wantCalls   int
	}{
		{
			name:        "crisis short-circuits",
			message:     "I want to kill myself",
			wantIntent:  IntentEmergency,
			wantHandler: HandlerWellness,
			wantSource:  SourceCrisis,
		},
		{
			name:        "crisis beats every keyword",
			message:     "my exam schedule makes me suicidal, and my club too",
			wantIntent:  IntentEmergency,
			wantHandler: HandlerWellness,
			wantSource:  SourceCrisis,
		},
		{
			name:        "campus life",
			message:     "What clubs should I join?",
			wantIntent:  IntentCampusLife,
			wantHandler: HandlerCampusLife,
			wantSource:  SourceKeyword,
		},
		{
			name:        "wellness wins the tie",
			message:     "I'm stressed about my exam schedule",
			wantIntent:  IntentWellness,
			wantHandler: HandlerWellness,
			wantSource:  SourceKeyword,
		},
		{
			name:        "academic beats campus life",
			message:     "Is the library a good place to study for my exam?",
			wantIntent:  IntentAcademic,
			wantHandler: HandlerAcademic,
			wantSource:  SourceKeyword,
		},
		{
			name:        "danger flag without crisis",
			message:     "my ex is threatening me and I feel scared",
			wantIntent:  IntentWellness,
			wantHandler: HandlerWellness,
			wantSource:  SourceKeyword,
			wantDanger:  true,
		},
		{
			name:        "classifier fallback",
			message:     "asdkjfh",
			wantIntent:  IntentGeneral,
			wantHandler: HandlerGeneral,
			wantSource:  SourceClassifier,
			wantCalls:   1,
		},
		{
			name:        "classifier picks a domain",
			message:     "where do I get a parking permit",
			answer:      "campus_life",
			wantIntent:  IntentCampusLife,
			wantHandler: HandlerCampusLife,
			wantSource:  SourceClassifier,
			wantCalls:   1,
		},
		{
			name:        "classifier answer outside the label set",
			message:     "xyzzy",
			answer:      "emergency",
			wantIntent:  IntentGeneral,
			wantHandler: HandlerGeneral,
			wantSource:  SourceClassifier,
			wantCalls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clf := &fakeClassifier{answer: tt.answer}
			r := New(clf, log.NewNop())

			got := r.Route(context.Background(), tt.message)

			if got.Intent != tt.wantIntent {
				t.Errorf("Intent = %s, want %s", got.Intent, tt.wantIntent)
			}
			if got.HandlerName != tt.wantHandler {
				t.Errorf("HandlerName = %s, want %s", got.HandlerName, tt.wantHandler)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Source = %s, want %s", got.Source, tt.wantSource)
			}
			if got.Danger != tt.wantDanger {
				t.Errorf("Danger = %v, want %v", got.Danger, tt.wantDanger)
			}
			if got.KeywordVersion != KeywordTablesVersion {
				t.Errorf("KeywordVersion = %q", got.KeywordVersion)
			}
			if clf.calls != tt.wantCalls {
				t.Errorf("classifier calls = %d, want %d", clf.calls, tt.wantCalls)
			}
		})
	}
}

// Probes run concurrently; the selection must not depend on their order.
func TestRoute_PriorityIndependentOfProbeOrder(t *testing.T) {
	probes := KeywordProbes()
	reversed := []Probe{probes[2], probes[1], probes[0]}

	for i := 0; i < 50; i++ {
		r := New(&fakeClassifier{}, log.NewNop(), reversed...)
		got := r.Route(context.Background(), "feeling lonely, should I join a club or study more?")
		if got.Intent != IntentWellness {
			t.Fatalf("iteration %d: Intent = %s, want wellness", i, got.Intent)
		}
	}
}

type countingProbe struct {
	intent Intent
	match  bool
	calls  atomic.Int32
}

func (p *countingProbe) Intent() Intent { return p.intent }
func (p *countingProbe) CanHandle(message string) bool {
	p.calls.Add(1)
	return p.match
}

// Every probe runs once per message, even when the request context is
// already done; probing is local and never cut short.
func TestRoute_EveryProbeRunsOnce(t *testing.T) {
	probes := []*countingProbe{
		{intent: IntentAcademic, match: true},
		{intent: IntentWellness},
		{intent: IntentCampusLife, match: true},
	}
	r := New(&fakeClassifier{}, log.NewNop(), probes[0], probes[1], probes[2])

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := r.Route(ctx, "anything")
	if got.Intent != IntentAcademic || got.Source != SourceKeyword {
		t.Fatalf("Route = %+v, want academic by keyword", got)
	}
	for _, p := range probes {
		if n := p.calls.Load(); n != 1 {
			t.Errorf("%s probe called %d times, want 1", p.intent, n)
		}
	}
}

func TestRoute_NilClassifierFallsBackToGeneral(t *testing.T) {
	r := New(nil, log.NewNop())
	if got := r.Route(context.Background(), "qwerty"); got.Intent != IntentGeneral {
		t.Fatalf("Intent = %s, want general", got.Intent)
	}
}

func TestRoute_FallbackIsStableUnderRepeatedFailure(t *testing.T) {
	r := New(&fakeClassifier{}, log.NewNop())
	first := r.Route(context.Background(), "zzz")
	for i := 0; i < 5; i++ {
		if got := r.Route(context.Background(), "zzz"); got != first {
			t.Fatalf("decision changed: %+v vs %+v", got, first)
		}
	}
}

func TestHandlerFor(t *testing.T) {
	cases := map[Intent]string{
		IntentAcademic:   HandlerAcademic,
		IntentWellness:   HandlerWellness,
		IntentEmergency:  HandlerWellness,
		IntentCampusLife: HandlerCampusLife,
		IntentGeneral:    HandlerGeneral,
		Intent("other"):  HandlerGeneral,
	}
	for in, want := range cases {
		if got := HandlerFor(in); got != want {
			t.Errorf("HandlerFor(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestKeywordTablesCoverEveryDomainHandler(t *testing.T) {
	for _, intent := range priority {
		if len(KeywordTables[intent]) == 0 {
			t.Errorf("no keywords for %s", intent)
		}
	}
}
