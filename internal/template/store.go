// Package template holds the response templates and their usage counters.
// Selection is least-used-first with stable order, which yields round-robin
// fairness over many invocations instead of random clustering.
package template

import (
	"errors"
	"fmt"
	"log"

	"github.com/mkowalczyk/engagepilot/internal/classify"
)

// ErrNoTemplate means no template matches the category and the fallback
// category has none either. Callers must skip the post, never crash the run.
var ErrNoTemplate = errors.New("no template available for category")

// #region template

// Template is one response body plus its alternate phrasings.
// UseCount is process-lifetime mutable state; all mutation goes through
// Store.MarkUsed. Single-threaded access is the embedding contract.
type Template struct {
	ID         string
	Category   classify.OutcomeCategory
	Body       string
	Variations []string
	UseCount   int
}

// #endregion template

// #region store

// Store owns the template set for a run.
type Store struct {
	templates []*Template
	fallback  classify.OutcomeCategory
	usage     *UsageStore // nil = in-memory counters only
}

// NewStore builds a store over the given templates, preserving input order.
// fallback names the category tried when a classification has no templates
// of its own.
func NewStore(templates []Template, fallback classify.OutcomeCategory) *Store {
	s := &Store{fallback: fallback}
	for i := range templates {
		t := templates[i]
		s.templates = append(s.templates, &t)
	}
	return s
}

// WithUsage attaches persistent usage counters. Previously recorded counts
// are loaded so fairness carries across runs; later MarkUsed calls write
// through.
func (s *Store) WithUsage(u *UsageStore) error {
	counts, err := u.Load()
	if err != nil {
		return fmt.Errorf("load usage counts: %w", err)
	}
	for _, t := range s.templates {
		if n, ok := counts[t.ID]; ok {
			t.UseCount = n
		}
	}
	s.usage = u
	return nil
}

// Len returns the number of templates in the store.
func (s *Store) Len() int { return len(s.templates) }

// All returns the templates in input order. Callers must not mutate.
func (s *Store) All() []*Template { return s.templates }

// #endregion store

// #region selection

// SelectLeastUsed picks the least-used template for the category, falling
// back to the generic category when the requested one has none. Ties break
// by input order, keeping selection deterministic for a given state.
func (s *Store) SelectLeastUsed(cat classify.OutcomeCategory) (*Template, error) {
	if t := s.leastUsed(cat); t != nil {
		return t, nil
	}
	if cat != s.fallback {
		if t := s.leastUsed(s.fallback); t != nil {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrNoTemplate, cat)
}

func (s *Store) leastUsed(cat classify.OutcomeCategory) *Template {
	var best *Template
	for _, t := range s.templates {
		if t.Category != cat {
			continue
		}
		if best == nil || t.UseCount < best.UseCount {
			best = t
		}
	}
	return best
}

// #endregion selection

// #region mark-used

// MarkUsed increments the template's usage counter. This is the only place
// UseCount is mutated. The persistent write-through is best effort: a
// storage error is logged, not surfaced, since the in-memory counter is the
// source of truth for the run.
func (s *Store) MarkUsed(t *Template) {
	t.UseCount++
	if s.usage != nil {
		if err := s.usage.Record(t.ID, t.UseCount); err != nil {
			log.Printf("[TMPL] usage write-through failed for %s: %v", t.ID, err)
		}
	}
}

// #endregion mark-used
