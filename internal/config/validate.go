package config

import (
	"errors"
	"fmt"
	"strings"
)

// knownCategories are the keyword buckets the scorer understands.
var knownCategories = map[string]bool{
	"negative":        true,
	"brand_blacklist": true,
	"service":         true,
	"iso":             true,
	"general":         true,
	"modifier":        true,
}

var templateCategories = map[string]bool{
	"service": true,
	"iso":     true,
	"general": true,
}

// #region validate

// Validate checks the loaded config for required fields and sane values.
// Malformed weight, threshold or template configuration is fatal at
// startup: the pipeline never runs with silently defaulted thresholds.
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.New("config is nil")
	}

	if len(cfg.Keywords) == 0 {
		return errors.New("keywords must define at least one category")
	}
	for name, group := range cfg.Keywords {
		if !knownCategories[name] {
			return fmt.Errorf("unknown keyword category %q", name)
		}
		if len(group.Keywords) == 0 {
			return fmt.Errorf("keyword category %q has an empty keyword list", name)
		}
	}

	t := cfg.Thresholds
	if t.Service == 0 && t.ISO == 0 && t.General == 0 {
		return errors.New("thresholds must be set explicitly (service, iso, general, skip)")
	}
	if t.Service < t.ISO || t.ISO < t.General {
		return fmt.Errorf("thresholds must be ordered service >= iso >= general, got %d/%d/%d",
			t.Service, t.ISO, t.General)
	}
	if t.General <= t.Skip {
		return fmt.Errorf("general threshold %d must exceed skip floor %d", t.General, t.Skip)
	}
	if t.Skip < 0 {
		return fmt.Errorf("skip floor must not be negative, got %d", t.Skip)
	}

	if len(cfg.Templates.Items) == 0 {
		return errors.New("at least one template must be configured")
	}
	seen := make(map[string]bool)
	for i, item := range cfg.Templates.Items {
		if strings.TrimSpace(item.ID) == "" {
			return fmt.Errorf("template %d missing id", i)
		}
		if seen[item.ID] {
			return fmt.Errorf("duplicate template id %q", item.ID)
		}
		seen[item.ID] = true
		if strings.TrimSpace(item.Body) == "" {
			return fmt.Errorf("template %q has an empty body", item.ID)
		}
		if !templateCategories[item.Category] {
			return fmt.Errorf("template %q has unknown category %q", item.ID, item.Category)
		}
	}
	if fb := cfg.Templates.FallbackCategory; fb != "" && !templateCategories[fb] {
		return fmt.Errorf("fallback_category %q is not a template category", fb)
	}

	if err := validateTiming(cfg.Timing); err != nil {
		return err
	}
	if err := validateProbabilities(cfg.Probabilities); err != nil {
		return err
	}

	if cfg.LLM.Enabled && strings.TrimSpace(cfg.LLM.Model) == "" {
		return errors.New("llm.model must be set when llm.enabled is true")
	}

	return nil
}

// #endregion validate

// #region timing

func validateTiming(t TimingConfig) error {
	if t.CharsPerSecond.Min <= 0 || t.CharsPerSecond.Max < t.CharsPerSecond.Min {
		return fmt.Errorf("chars_per_second must be a positive range, got [%v,%v]",
			t.CharsPerSecond.Min, t.CharsPerSecond.Max)
	}
	ranges := map[string]MsRange{
		"sentence_pause_ms":    t.SentencePauseMs,
		"clause_pause_ms":      t.ClausePauseMs,
		"word_pause_ms":        t.WordPauseMs,
		"inter_chunk_pause_ms": t.InterChunkMs,
		"typo_notice_pause_ms": t.TypoNoticeMs,
		"pointer_step_ms":      t.PointerStepMs,
	}
	for name, r := range ranges {
		if r.Min < 0 || r.Max < r.Min {
			return fmt.Errorf("%s must satisfy 0 <= min <= max, got [%d,%d]", name, r.Min, r.Max)
		}
	}
	if t.MaxChunkLen <= 0 {
		return fmt.Errorf("max_chunk_len must be positive, got %d", t.MaxChunkLen)
	}
	return nil
}

// #endregion timing

// #region probabilities

func validateProbabilities(p ProbabilityConfig) error {
	probs := map[string]float64{
		"variation":  p.Variation,
		"error":      p.Error,
		"correction": p.Correction,
		"scroll":     p.Scroll,
		"hover":      p.Hover,
		"safe_click": p.SafeClick,
	}
	for name, v := range probs {
		if v < 0 || v > 1 {
			return fmt.Errorf("probability %s must be in [0,1], got %v", name, v)
		}
	}
	return nil
}

// #endregion probabilities
