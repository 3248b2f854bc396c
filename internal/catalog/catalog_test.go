package catalog

import (
	"testing"

	"github.com/ssoksound/surveywizard/internal/model"
)

func TestQuestionIDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, q := range append(Primary(), Secondary()...) {
		if seen[q.ID] {
			t.Errorf("duplicate question ID %q", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestTrackSizes(t *testing.T) {
	if got := len(Primary()); got != 20 {
		t.Errorf("primary track has %d questions, want 20", got)
	}
	if got := len(Secondary()); got != 26 {
		t.Errorf("secondary track has %d questions, want 26", got)
	}
}

func TestChoiceKindsHaveOptions(t *testing.T) {
	for _, q := range append(Primary(), Secondary()...) {
		if q.Kind.HasOptions() && len(q.Options) == 0 {
			t.Errorf("question %q has kind %s but no options", q.ID, q.Kind)
		}
		if q.Kind.IsText() && len(q.Options) != 0 {
			t.Errorf("question %q is a text kind but carries options", q.ID)
		}
	}
}

func TestStructuredRules(t *testing.T) {
	tests := []struct {
		id   string
		rule model.Rule
	}{
		{"q4", model.RuleContainsComma},
		{"q15", model.RuleMinTwoWords},
		{"q18", model.RuleThreeCommaTokens},
	}
	for _, tt := range tests {
		q, ok := ByID(tt.id)
		if !ok {
			t.Fatalf("question %q not found", tt.id)
		}
		if q.Rule != tt.rule {
			t.Errorf("question %q rule = %q, want %q", tt.id, q.Rule, tt.rule)
		}
	}
}

func TestMultiChoiceCap(t *testing.T) {
	q, ok := ByID("desired_customer_action")
	if !ok {
		t.Fatal("desired_customer_action not found")
	}
	if q.Kind != model.KindMultiChoice {
		t.Fatalf("kind = %s, want multi_choice", q.Kind)
	}
	if q.MaxSelections != 2 {
		t.Errorf("MaxSelections = %d, want 2", q.MaxSelections)
	}
}

func TestNotApplicableFlags(t *testing.T) {
	want := map[string]bool{
		"narration_specific_content": true,
		"existing_script_concept":    true,
		"reference_style":            true,
	}
	for _, q := range Secondary() {
		if q.AllowsNotApplicable != want[q.ID] {
			t.Errorf("question %q AllowsNotApplicable = %v, want %v", q.ID, q.AllowsNotApplicable, want[q.ID])
		}
	}
}

func TestTracksPerService(t *testing.T) {
	tests := []struct {
		svc    model.Service
		tracks []model.Track
		count  int
	}{
		{model.ServiceBrandSong, []model.Track{model.TrackPrimary}, 20},
		{model.ServiceNarration, []model.Track{model.TrackSecondary}, 26},
		{model.ServiceCombo, []model.Track{model.TrackPrimary, model.TrackSecondary}, 46},
		{model.ServicePlaylist, nil, 0},
	}
	for _, tt := range tests {
		t.Run(string(tt.svc), func(t *testing.T) {
			got := Tracks(tt.svc)
			if len(got) != len(tt.tracks) {
				t.Fatalf("Tracks = %v, want %v", got, tt.tracks)
			}
			for i, tr := range tt.tracks {
				if got[i] != tr {
					t.Errorf("Tracks[%d] = %v, want %v", i, got[i], tr)
				}
			}
			if n := QuestionCount(tt.svc); n != tt.count {
				t.Errorf("QuestionCount = %d, want %d", n, tt.count)
			}
		})
	}
}

func TestRankedQuestion(t *testing.T) {
	q, ok := ByID("priority_ranking")
	if !ok {
		t.Fatal("priority_ranking not found")
	}
	if q.Kind != model.KindRankedChoice {
		t.Errorf("kind = %s, want ranked_choice", q.Kind)
	}
	if len(q.Options) != 6 {
		t.Errorf("options = %d, want 6", len(q.Options))
	}
}
