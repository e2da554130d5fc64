// Package config loads and validates the pipeline configuration. All
// keyword tables, thresholds, templates, timing ranges and probability
// knobs live in one YAML file so operators can tune behavior live.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mkowalczyk/engagepilot/internal/classify"
	"github.com/mkowalczyk/engagepilot/internal/dedupe"
	"github.com/mkowalczyk/engagepilot/internal/humanize"
	"github.com/mkowalczyk/engagepilot/internal/scoring"
	"github.com/mkowalczyk/engagepilot/internal/template"
)

// #region config

// Config is the single configuration object loaded at startup and on
// refresh.
type Config struct {
	Keywords      map[string]KeywordGroup `yaml:"keywords"`
	Thresholds    ThresholdConfig         `yaml:"thresholds"`
	Templates     TemplateConfig          `yaml:"templates"`
	Identity      IdentityConfig          `yaml:"identity"`
	Timing        TimingConfig            `yaml:"timing"`
	Probabilities ProbabilityConfig       `yaml:"probabilities"`
	LLM           LLMConfig               `yaml:"llm"`
	Storage       StorageConfig           `yaml:"storage"`
}

// KeywordGroup is one category's keyword list and per-match weight.
type KeywordGroup struct {
	Weight   int      `yaml:"weight"`
	Keywords []string `yaml:"keywords"`
}

// ThresholdConfig holds the category score cutoffs. No silent defaults:
// validation rejects a config that leaves these unset.
type ThresholdConfig struct {
	Service int `yaml:"service"`
	ISO     int `yaml:"iso"`
	General int `yaml:"general"`
	Skip    int `yaml:"skip"`
}

// TemplateConfig holds the response templates and the generic fallback
// category.
type TemplateConfig struct {
	FallbackCategory string         `yaml:"fallback_category"`
	Items            []TemplateItem `yaml:"items"`
}

// TemplateItem is one configured template.
type TemplateItem struct {
	ID         string   `yaml:"id"`
	Category   string   `yaml:"category"`
	Body       string   `yaml:"body"`
	Variations []string `yaml:"variations"`
}

// IdentityConfig holds the duplicate-detection signatures.
type IdentityConfig struct {
	Signatures   []string `yaml:"signatures"`
	PhoneNumbers []string `yaml:"phone_numbers"`
	URLs         []string `yaml:"urls"`
}

// MsRange is a [min,max] range in milliseconds.
type MsRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange is a [min,max] range of plain numbers.
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// TimingConfig mirrors humanize.Profile in config form.
type TimingConfig struct {
	CharsPerSecond  FloatRange `yaml:"chars_per_second"`
	SentencePauseMs MsRange    `yaml:"sentence_pause_ms"`
	ClausePauseMs   MsRange    `yaml:"clause_pause_ms"`
	WordPauseMs     MsRange    `yaml:"word_pause_ms"`
	InterChunkMs    MsRange    `yaml:"inter_chunk_pause_ms"`
	TypoNoticeMs    MsRange    `yaml:"typo_notice_pause_ms"`
	PointerStepMs   MsRange    `yaml:"pointer_step_ms"`
	MaxChunkLen     int        `yaml:"max_chunk_len"`
}

// ProbabilityConfig centralizes every chance knob for auditability.
type ProbabilityConfig struct {
	Variation  float64 `yaml:"variation"`
	Error      float64 `yaml:"error"`
	Correction float64 `yaml:"correction"`
	Scroll     float64 `yaml:"scroll"`
	Hover      float64 `yaml:"hover"`
	SafeClick  float64 `yaml:"safe_click"`
}

// LLMConfig configures the optional external free-form generator.
type LLMConfig struct {
	Enabled bool   `yaml:"enabled"`
	Model   string `yaml:"model"`
	Prompt  string `yaml:"prompt"`
}

// StorageConfig locates the SQLite database used for audit rows and
// template usage counters.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// #endregion config

// #region load

// Load reads and validates a configuration file. Any validation failure is
// fatal to the caller: the pipeline must not run with undefined behavior.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := defaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// defaultConfig seeds only the ambient knobs. Thresholds, keywords and
// templates have no defaults on purpose.
func defaultConfig() *Config {
	prof := humanize.DefaultProfile()
	return &Config{
		Timing: TimingConfig{
			CharsPerSecond:  FloatRange{Min: prof.CharsPerSecond.Min, Max: prof.CharsPerSecond.Max},
			SentencePauseMs: msRange(prof.SentencePause),
			ClausePauseMs:   msRange(prof.ClausePause),
			WordPauseMs:     msRange(prof.WordPause),
			InterChunkMs:    msRange(prof.InterChunkPause),
			TypoNoticeMs:    msRange(prof.TypoNoticePause),
			PointerStepMs:   msRange(prof.PointerStep),
			MaxChunkLen:     prof.MaxChunkLen,
		},
		Probabilities: ProbabilityConfig{
			Variation:  0.4,
			Error:      prof.ErrorProbability,
			Correction: prof.CorrectionProbability,
			Scroll:     prof.ScrollProbability,
			Hover:      prof.HoverProbability,
			SafeClick:  prof.SafeClickProbability,
		},
		Storage: StorageConfig{DBPath: "engagepilot.db"},
	}
}

func msRange(dr humanize.DurationRange) MsRange {
	return MsRange{
		Min: int(dr.Min / time.Millisecond),
		Max: int(dr.Max / time.Millisecond),
	}
}

// #endregion load

// #region converters

// WeightTable builds the normalized scoring table.
func (c *Config) WeightTable() scoring.Table {
	table := make(scoring.Table, len(c.Keywords))
	for name, group := range c.Keywords {
		table[scoring.Category(name)] = scoring.WeightedList{
			Keywords: group.Keywords,
			Weight:   group.Weight,
		}
	}
	return table.Normalize()
}

// ClassifyThresholds converts to the classifier's threshold set.
func (c *Config) ClassifyThresholds() classify.Thresholds {
	return classify.Thresholds{
		Service: c.Thresholds.Service,
		ISO:     c.Thresholds.ISO,
		General: c.Thresholds.General,
		Skip:    c.Thresholds.Skip,
	}
}

// TemplateSet converts the configured templates, preserving file order.
func (c *Config) TemplateSet() []template.Template {
	out := make([]template.Template, 0, len(c.Templates.Items))
	for _, item := range c.Templates.Items {
		out = append(out, template.Template{
			ID:         item.ID,
			Category:   classify.OutcomeCategory(item.Category),
			Body:       item.Body,
			Variations: item.Variations,
		})
	}
	return out
}

// FallbackCategory returns the generic template category, defaulting to
// general.
func (c *Config) FallbackCategory() classify.OutcomeCategory {
	if c.Templates.FallbackCategory == "" {
		return classify.OutcomeGeneral
	}
	return classify.OutcomeCategory(c.Templates.FallbackCategory)
}

// DetectorIdentity converts to the duplicate detector's identity.
func (c *Config) DetectorIdentity() dedupe.Identity {
	return dedupe.Identity{
		Signatures:   c.Identity.Signatures,
		PhoneNumbers: c.Identity.PhoneNumbers,
		URLs:         c.Identity.URLs,
	}
}

// Profile converts the timing and probability knobs to the actuation
// profile.
func (c *Config) Profile() humanize.Profile {
	return humanize.Profile{
		CharsPerSecond:  humanize.Range{Min: c.Timing.CharsPerSecond.Min, Max: c.Timing.CharsPerSecond.Max},
		SentencePause:   durRange(c.Timing.SentencePauseMs),
		ClausePause:     durRange(c.Timing.ClausePauseMs),
		WordPause:       durRange(c.Timing.WordPauseMs),
		InterChunkPause: durRange(c.Timing.InterChunkMs),
		TypoNoticePause: durRange(c.Timing.TypoNoticeMs),
		PointerStep:     durRange(c.Timing.PointerStepMs),
		MaxChunkLen:     c.Timing.MaxChunkLen,

		ErrorProbability:      c.Probabilities.Error,
		CorrectionProbability: c.Probabilities.Correction,
		ScrollProbability:     c.Probabilities.Scroll,
		HoverProbability:      c.Probabilities.Hover,
		SafeClickProbability:  c.Probabilities.SafeClick,
	}
}

func durRange(r MsRange) humanize.DurationRange {
	return humanize.DurationRange{
		Min: time.Duration(r.Min) * time.Millisecond,
		Max: time.Duration(r.Max) * time.Millisecond,
	}
}

// #endregion converters
