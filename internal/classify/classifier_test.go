package classify

import (
	"strings"
	"testing"

	"github.com/mkowalczyk/engagepilot/internal/scoring"
)

func testClassifier() *Classifier {
	table := scoring.Table{
		scoring.CategoryNegative:  {Keywords: []string{"scam", "lawsuit"}, Weight: -100},
		scoring.CategoryBlacklist: {Keywords: []string{"competitorx"}, Weight: 0},
		scoring.CategoryModifier:  {Keywords: []string{"inspired by", "similar to"}, Weight: 2},
		scoring.CategoryService:   {Keywords: []string{"cad", "casting", "engraving"}, Weight: 5},
		scoring.CategoryISO:       {Keywords: []string{"iso", "looking for"}, Weight: 4},
		scoring.CategoryGeneral:   {Keywords: []string{"ring", "pendant"}, Weight: 4},
	}.Normalize()
	return New(table, Thresholds{Service: 15, ISO: 12, General: 8, Skip: 3})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCategory OutcomeCategory
		wantSkip     bool
	}{
		// Negative dominance: no positive score rescues a negative keyword.
		{"negative-alone", "this is a scam", OutcomeSkip, true},
		{"negative-with-high-score", "scam alert: CAD casting engraving iso ring pendant", OutcomeSkip, true},

		// Blacklist with and without modifier.
		{"blacklist-no-modifier", "got my ring from CompetitorX", OutcomeSkip, true},
		{"blacklist-with-modifier", "want a ring inspired by CompetitorX, need CAD casting engraving", OutcomeService, false},

		// Threshold boundaries: service=15, three service keywords at weight 5.
		{"service-exact-threshold", "cad casting engraving", OutcomeService, false},
		{"below-service-is-iso", "cad casting iso", OutcomeISO, false},
		{"general-only", "lovely ring and pendant", OutcomeGeneral, false},
		{"below-general", "nice ring", OutcomeSkip, true},
		{"no-keywords", "completely unrelated chatter", OutcomeSkip, true},
		{"empty", "", OutcomeSkip, true},
	}

	c := testClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)
			if got.Category != tt.wantCategory {
				t.Errorf("category: got %s, want %s (reasoning: %v)",
					got.Category, tt.wantCategory, got.Reasoning)
			}
			if got.ShouldSkip != tt.wantSkip {
				t.Errorf("shouldSkip: got %v, want %v", got.ShouldSkip, tt.wantSkip)
			}
			if len(got.Reasoning) == 0 {
				t.Error("reasoning trail must never be empty")
			}
		})
	}
}

func TestClassifyThresholdBoundary(t *testing.T) {
	// service=15: a total of exactly 15 is service, 14 is at most iso.
	table := scoring.Table{
		scoring.CategoryService: {Keywords: []string{"cad", "casting", "engraving"}, Weight: 5},
		scoring.CategoryISO:     {Keywords: []string{"wax", "mold"}, Weight: 7},
	}.Normalize()
	c := New(table, Thresholds{Service: 15, ISO: 12, General: 8, Skip: 3})

	exact := c.Classify("cad casting engraving")
	if exact.Score != 15 || exact.Category != OutcomeService {
		t.Errorf("score 15: got %s/%d, want service/15", exact.Category, exact.Score)
	}

	under := c.Classify("wax mold")
	if under.Score != 14 || under.Category != OutcomeISO {
		t.Errorf("score 14: got %s/%d, want iso/14", under.Category, under.Score)
	}
}

func TestClassifyNegativeReasonRecorded(t *testing.T) {
	got := testClassifier().Classify("avoid this scam shop")
	if !got.ShouldSkip {
		t.Fatal("expected skip")
	}
	found := false
	for _, r := range got.Reasoning {
		if strings.Contains(r, "negative keyword matched") && strings.Contains(r, "scam") {
			found = true
		}
	}
	if !found {
		t.Errorf("reasoning missing negative keyword entry: %v", got.Reasoning)
	}
}

func TestClassifyBlacklistReasonNamesBrand(t *testing.T) {
	got := testClassifier().Classify("CompetitorX makes nice pendants")
	if got.Category != OutcomeSkip || !got.ShouldSkip {
		t.Fatalf("expected skip, got %s", got.Category)
	}
	found := false
	for _, r := range got.Reasoning {
		if strings.Contains(r, "competitorx") {
			found = true
		}
	}
	if !found {
		t.Errorf("reasoning should name the blacklisted brand: %v", got.Reasoning)
	}
}

func TestClassifySkipFloor(t *testing.T) {
	// One general keyword at weight 4 with floor 4: meets nothing, and even
	// if general were configured at 4 the floor would force a skip.
	table := scoring.Table{
		scoring.CategoryGeneral: {Keywords: []string{"ring"}, Weight: 4},
	}.Normalize()
	c := New(table, Thresholds{Service: 15, ISO: 12, General: 4, Skip: 4})

	got := c.Classify("a ring")
	if !got.ShouldSkip || got.Category != OutcomeSkip {
		t.Errorf("score at floor must skip: got %s skip=%v", got.Category, got.ShouldSkip)
	}
}
