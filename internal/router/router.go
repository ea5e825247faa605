package router

import (
	"context"

	"campus-advisor/internal/safety"

	"golang.org/x/sync/errgroup"
)

// Route runs crisis detection, then the capability probes, then the
// fallback classifier. Crisis detection never touches the network.
func (r *implRouter) Route(ctx context.Context, message string) Decision {
	if safety.DetectCrisis(message) {
		r.l.Warnf(ctx, "%s: crisis phrase detected, routing to emergency", LogPrefixRoute)
		return Decision{
			Intent:         IntentEmergency,
			HandlerName:    HandlerFor(IntentEmergency),
			Source:         SourceCrisis,
			KeywordVersion: KeywordTablesVersion,
		}
	}

	danger := safety.DetectPotentialDanger(message)

	matched := r.probe(message)
	for _, intent := range priority {
		if matched[intent] {
			r.l.Debugf(ctx, "%s: keyword match %s", LogPrefixRoute, intent)
			return Decision{
				Intent:         intent,
				HandlerName:    HandlerFor(intent),
				Source:         SourceKeyword,
				Danger:         danger,
				KeywordVersion: KeywordTablesVersion,
			}
		}
	}

	intent := r.classify(ctx, message)
	r.l.Infof(ctx, "%s: classifier chose %s", LogPrefixRoute, intent)
	return Decision{
		Intent:         intent,
		HandlerName:    HandlerFor(intent),
		Source:         SourceClassifier,
		Danger:         danger,
		KeywordVersion: KeywordTablesVersion,
	}
}

// probe evaluates every probe concurrently. Selection happens afterwards in
// priority order, so goroutine scheduling cannot change the outcome.
func (r *implRouter) probe(message string) map[Intent]bool {
	results := make([]bool, len(r.probes))

	var g errgroup.Group
	for i, p := range r.probes {
		g.Go(func() error {
			results[i] = p.CanHandle(message)
			return nil
		})
	}
	_ = g.Wait()

	matched := make(map[Intent]bool, len(r.probes))
	for i, p := range r.probes {
		if results[i] {
			matched[p.Intent()] = true
		}
	}
	return matched
}

func (r *implRouter) classify(ctx context.Context, message string) Intent {
	fallback := Intent(ClassifierCategories[len(ClassifierCategories)-1])
	if r.classifier == nil {
		return fallback
	}

	label := Intent(r.classifier.Classify(ctx, message, ClassifierCategories, ClassifierInstruction))
	for _, c := range ClassifierCategories {
		if Intent(c) == label {
			return label
		}
	}
	return fallback
}
