package generate

import (
	"context"

	"github.com/mkowalczyk/engagepilot/internal/classify"
)

// #region response-source

// ResponseSource records which path produced the response text.
type ResponseSource string

const (
	SourceTemplate          ResponseSource = "template"
	SourceTemplateVariation ResponseSource = "template_variation"
	SourceExternalGenerator ResponseSource = "external_generator"
)

// #endregion response-source

// #region response

// Response is the final text payload handed to the actuator.
type Response struct {
	ID         string
	Text       string
	Source     ResponseSource
	TemplateID string // empty when the external generator produced the text
}

// #endregion response

// #region request

// Request carries the post context a generation call works from.
type Request struct {
	PostText   string
	AuthorName string
	Category   classify.OutcomeCategory
}

// #endregion request

// #region text-generator

// TextGenerator is the optional free-form generator capability. It is always
// treated as fallible; the template path is the unconditional fallback.
type TextGenerator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// #endregion text-generator
