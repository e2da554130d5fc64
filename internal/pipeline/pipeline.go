// Package pipeline coordinates the per-post flow: duplicate check, then
// classification, then generation, then actuation planning. Strictly
// sequential; each stage can short-circuit to a recorded skip.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/mkowalczyk/engagepilot/internal/audit"
	"github.com/mkowalczyk/engagepilot/internal/classify"
	"github.com/mkowalczyk/engagepilot/internal/config"
	"github.com/mkowalczyk/engagepilot/internal/dedupe"
	"github.com/mkowalczyk/engagepilot/internal/generate"
	"github.com/mkowalczyk/engagepilot/internal/humanize"
	"github.com/mkowalczyk/engagepilot/internal/random"
	"github.com/mkowalczyk/engagepilot/internal/template"
)

// #region options

// Options carries the collaborators the pipeline does not build itself.
type Options struct {
	RNG      random.Source          // nil = wall-clock seeded
	External generate.TextGenerator // nil = template path only
	Audit    *audit.Store           // nil = no persistence of outcomes
	Usage    *template.UsageStore   // nil = in-memory use counts only
}

// #endregion options

// #region components

// components is the swappable set rebuilt on every refresh.
type components struct {
	detector   *dedupe.Detector
	classifier *classify.Classifier
	generator  *generate.Generator
	planner    *humanize.Planner
	store      *template.Store
}

// #endregion components

// #region pipeline

// Pipeline is the top-level coordinator. Posts are processed one at a time;
// the lock exists only so a config refresh (from the file watcher) can swap
// the component set between posts.
type Pipeline struct {
	mu   sync.RWMutex
	cur  *components
	opts Options
}

// New builds a pipeline from a validated config.
func New(cfg *config.Config, opts Options) (*Pipeline, error) {
	if opts.RNG == nil {
		opts.RNG = random.New()
	}
	p := &Pipeline{opts: opts}
	if err := p.Refresh(cfg); err != nil {
		return nil, err
	}
	return p, nil
}

// Refresh rebuilds every component from the new configuration. Called at
// startup and whenever operators update the config file; counters persisted
// through the usage store carry over.
func (p *Pipeline) Refresh(cfg *config.Config) error {
	store := template.NewStore(cfg.TemplateSet(), cfg.FallbackCategory())
	if p.opts.Usage != nil {
		if err := store.WithUsage(p.opts.Usage); err != nil {
			return fmt.Errorf("attach usage store: %w", err)
		}
	}

	next := &components{
		detector:   dedupe.NewDetector(cfg.DetectorIdentity()),
		classifier: classify.New(cfg.WeightTable(), cfg.ClassifyThresholds()),
		generator:  generate.New(store, p.opts.RNG, p.opts.External, cfg.Probabilities.Variation),
		planner:    humanize.NewPlanner(cfg.Profile(), p.opts.RNG),
		store:      store,
	}

	p.mu.Lock()
	p.cur = next
	p.mu.Unlock()
	log.Printf("[PIPE] configuration applied: %d templates, thresholds %d/%d/%d",
		store.Len(), cfg.Thresholds.Service, cfg.Thresholds.ISO, cfg.Thresholds.General)
	return nil
}

// #endregion pipeline

// #region process

// Process runs the full decision flow for one post. The returned outcome
// always explains a skip; the only error condition is having no usable
// template, which the caller treats as a skip as well.
func (p *Pipeline) Process(ctx context.Context, post Post) (Outcome, error) {
	p.mu.RLock()
	c := p.cur
	p.mu.RUnlock()

	var out Outcome

	// 1. Duplicate check runs first: engaging twice is the one mistake the
	// pipeline can never walk back.
	out.Duplicate = c.detector.Check(post.ExistingComments)
	if out.Duplicate.AlreadyEngaged {
		out.Skipped = true
		out.SkipReason = fmt.Sprintf("already engaged: matched %q", out.Duplicate.MatchedIndicator)
		out.Classification = classify.Classification{
			Category:   classify.OutcomeSkip,
			Reasoning:  []string{out.SkipReason},
			ShouldSkip: true,
		}
		p.record(post, &out)
		return out, nil
	}

	// 2. Classification.
	out.Classification = c.classifier.Classify(post.Text)
	if out.Classification.ShouldSkip {
		out.Skipped = true
		out.SkipReason = lastReason(out.Classification.Reasoning)
		p.record(post, &out)
		return out, nil
	}

	// 3. Generation.
	resp, err := c.generator.Generate(ctx, out.Classification, generate.Request{
		PostText:   post.Text,
		AuthorName: post.AuthorName,
		Category:   out.Classification.Category,
	})
	if err != nil {
		if errors.Is(err, template.ErrNoTemplate) {
			out.Skipped = true
			out.SkipReason = err.Error()
			p.record(post, &out)
			return out, err
		}
		return out, err
	}
	out.Response = &resp

	// 4. Actuation planning.
	out.Plan = c.planner.Plan(resp.Text)

	p.record(post, &out)
	log.Printf("[PIPE] %s score=%d source=%s events=%d",
		out.Classification.Category, out.Classification.Score, resp.Source, len(out.Plan.Events))
	return out, nil
}

func lastReason(reasoning []string) string {
	if len(reasoning) == 0 {
		return "skipped"
	}
	return reasoning[len(reasoning)-1]
}

// #endregion process

// #region record

// record writes the outcome to the audit log. A storage failure is logged,
// never fatal: the decision already happened.
func (p *Pipeline) record(post Post, out *Outcome) {
	if p.opts.Audit == nil {
		return
	}
	entry := audit.Entry{
		PostExcerpt: post.Text,
		Author:      post.AuthorName,
		Decision:    audit.DecisionRespond,
		Category:    string(out.Classification.Category),
		Score:       out.Classification.Score,
		Reasoning:   out.Classification.Reasoning,
	}
	if out.Skipped {
		entry.Decision = audit.DecisionSkip
		if lastReason(entry.Reasoning) != out.SkipReason {
			entry.Reasoning = append(entry.Reasoning, out.SkipReason)
		}
	}
	if out.Response != nil {
		entry.ResponseSource = string(out.Response.Source)
		entry.ResponseText = out.Response.Text
		entry.TemplateID = out.Response.TemplateID
	}

	id, err := p.opts.Audit.Log(entry)
	if err != nil {
		log.Printf("[PIPE] audit write failed: %v", err)
		return
	}
	out.AuditID = id
}

// #endregion record
