package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkowalczyk/engagepilot/internal/classify"
	"github.com/mkowalczyk/engagepilot/internal/scoring"
)

const sampleYAML = `
keywords:
  negative:
    weight: -100
    keywords: ["scam", "lawsuit"]
  brand_blacklist:
    weight: 0
    keywords: ["competitorx"]
  modifier:
    weight: 2
    keywords: ["inspired by"]
  service:
    weight: 10
    keywords: ["CAD", "casting"]
  iso:
    weight: 6
    keywords: ["iso", "looking for"]
  general:
    weight: 4
    keywords: ["ring"]
thresholds:
  service: 15
  iso: 12
  general: 8
  skip: 3
templates:
  fallback_category: general
  items:
    - id: svc-1
      category: service
      body: "Hi {name}, we can help."
      variations: ["Hey {name}!"]
    - id: gen-1
      category: general
      body: "Lovely work!"
identity:
  signatures: ["Goldcraft Studio"]
  phone_numbers: ["306-555-0142"]
  urls: ["goldcraft.example.com"]
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	table := cfg.WeightTable()
	if w := table[scoring.CategoryService].Weight; w != 10 {
		t.Errorf("service weight: got %d, want 10", w)
	}
	if kws := table[scoring.CategoryService].Keywords; kws[0] != "cad" {
		t.Errorf("keywords must be folded at load, got %v", kws)
	}

	th := cfg.ClassifyThresholds()
	if th.Service != 15 || th.ISO != 12 || th.General != 8 || th.Skip != 3 {
		t.Errorf("thresholds: got %+v", th)
	}

	tmpls := cfg.TemplateSet()
	if len(tmpls) != 2 || tmpls[0].ID != "svc-1" {
		t.Errorf("templates: got %+v", tmpls)
	}
	if cfg.FallbackCategory() != classify.OutcomeGeneral {
		t.Errorf("fallback: got %s", cfg.FallbackCategory())
	}

	// Ambient defaults fill in when the file omits them.
	prof := cfg.Profile()
	if prof.MaxChunkLen <= 0 {
		t.Error("timing defaults not applied")
	}
	if cfg.Probabilities.Variation != 0.4 {
		t.Errorf("default variation probability: got %v", cfg.Probabilities.Variation)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("missing config file must be an error, not a silent default")
	}
}

func TestValidateRejections(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(writeConfig(t, sampleYAML))
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no-keywords", func(c *Config) { c.Keywords = nil }},
		{"unknown-category", func(c *Config) { c.Keywords["sentiment"] = KeywordGroup{Weight: 1, Keywords: []string{"x"}} }},
		{"empty-keyword-list", func(c *Config) { c.Keywords["service"] = KeywordGroup{Weight: 10} }},
		{"unset-thresholds", func(c *Config) { c.Thresholds = ThresholdConfig{} }},
		{"unordered-thresholds", func(c *Config) { c.Thresholds = ThresholdConfig{Service: 8, ISO: 12, General: 15, Skip: 3} }},
		{"skip-floor-above-general", func(c *Config) { c.Thresholds.Skip = 9 }},
		{"no-templates", func(c *Config) { c.Templates.Items = nil }},
		{"template-no-id", func(c *Config) { c.Templates.Items[0].ID = "" }},
		{"template-dup-id", func(c *Config) { c.Templates.Items[1].ID = "svc-1" }},
		{"template-empty-body", func(c *Config) { c.Templates.Items[0].Body = "  " }},
		{"template-bad-category", func(c *Config) { c.Templates.Items[0].Category = "skip" }},
		{"bad-fallback", func(c *Config) { c.Templates.FallbackCategory = "negative" }},
		{"probability-above-one", func(c *Config) { c.Probabilities.Error = 1.5 }},
		{"probability-negative", func(c *Config) { c.Probabilities.Hover = -0.1 }},
		{"cps-zero", func(c *Config) { c.Timing.CharsPerSecond.Min = 0 }},
		{"inverted-range", func(c *Config) { c.Timing.WordPauseMs = MsRange{Min: 100, Max: 10} }},
		{"chunk-len-zero", func(c *Config) { c.Timing.MaxChunkLen = 0 }},
		{"llm-enabled-no-model", func(c *Config) { c.LLM = LLMConfig{Enabled: true} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := Validate(cfg); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateAccepts(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}
}
