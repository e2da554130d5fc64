// Package generate turns a classification into response text, balancing
// template usage and recovering from external-generator failures.
package generate

import (
	"context"
	"log"
	"strings"

	"github.com/google/uuid"

	"github.com/mkowalczyk/engagepilot/internal/classify"
	"github.com/mkowalczyk/engagepilot/internal/random"
	"github.com/mkowalczyk/engagepilot/internal/template"
)

// #region generator

// Generator selects and varies response templates, optionally delegating to
// an external free-form generator first.
type Generator struct {
	store        *template.Store
	rng          random.Source
	external     TextGenerator // nil = template path only
	variationPct float64
}

// New creates a generator. external may be nil.
func New(store *template.Store, rng random.Source, external TextGenerator, variationProbability float64) *Generator {
	return &Generator{
		store:        store,
		rng:          rng,
		external:     external,
		variationPct: variationProbability,
	}
}

// #endregion generator

// #region generate

// Generate produces the response for a classified post. When the external
// generator is configured it is tried first; any failure falls back to the
// template path, so a valid output is always produced unless no template
// exists at all (template.ErrNoTemplate).
func (g *Generator) Generate(ctx context.Context, class classify.Classification, req Request) (Response, error) {
	if g.external != nil {
		text, err := g.external.Generate(ctx, req)
		if err == nil && strings.TrimSpace(text) != "" {
			return Response{
				ID:     uuid.New().String(),
				Text:   FillName(text, req.AuthorName),
				Source: SourceExternalGenerator,
			}, nil
		}
		if err != nil {
			log.Printf("[GEN] external generator failed, falling back to templates: %v", err)
		} else {
			log.Printf("[GEN] external generator returned empty text, falling back to templates")
		}
	}

	tmpl, err := g.store.SelectLeastUsed(class.Category)
	if err != nil {
		return Response{}, err
	}

	body := tmpl.Body
	source := SourceTemplate
	if len(tmpl.Variations) > 0 && g.rng.Chance(g.variationPct) {
		body = tmpl.Variations[g.rng.IntN(len(tmpl.Variations))]
		source = SourceTemplateVariation
	}

	g.store.MarkUsed(tmpl)

	return Response{
		ID:         uuid.New().String(),
		Text:       FillName(body, req.AuthorName),
		Source:     source,
		TemplateID: tmpl.ID,
	}, nil
}

// #endregion generate
