package dedupe

import "testing"

func testDetector() *Detector {
	return NewDetector(Identity{
		Signatures:   []string{"Goldcraft Studio"},
		PhoneNumbers: []string{"306-555-0142"},
		URLs:         []string{"goldcraft.example.com"},
	})
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name     string
		comments []string
		want     bool
	}{
		{"empty-list", nil, false},
		{"unrelated-comments", []string{"Nice ring!", "Where did you get this?"}, false},
		{"brand-signature", []string{"Contact Goldcraft Studio for repairs"}, true},
		{"brand-case-insensitive", []string{"try GOLDCRAFT STUDIO"}, true},
		{"url-substring", []string{"see https://goldcraft.example.com/services"}, true},
		{"phone-exact-format", []string{"call 306-555-0142"}, true},
		{"phone-reformatted", []string{"call (306) 555 0142 anytime"}, true},
		{"phone-digits-run-on", []string{"3065550142 is the number"}, true},
		{"match-in-later-comment", []string{"lovely", "ping Goldcraft Studio"}, true},
	}

	d := testDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := d.Check(tt.comments)
			if got.AlreadyEngaged != tt.want {
				t.Errorf("AlreadyEngaged: got %v, want %v", got.AlreadyEngaged, tt.want)
			}
			if tt.want && got.MatchedIndicator == "" {
				t.Error("a hit must record which indicator matched")
			}
			if !tt.want && got.MatchedIndicator != "" {
				t.Errorf("no hit but indicator %q recorded", got.MatchedIndicator)
			}
		})
	}
}

func TestCheckFirstMatchWins(t *testing.T) {
	d := testDetector()
	got := d.Check([]string{"Goldcraft Studio — goldcraft.example.com"})
	if got.MatchedIndicator != "goldcraft studio" {
		t.Errorf("expected first signature to win, got %q", got.MatchedIndicator)
	}
}
