package insight

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"profile-stack/internal/models"
)

type fakeOracle struct {
	response string
	err      error
	payload  string
}

func (f *fakeOracle) Generate(_ context.Context, _, payload string) (string, error) {
	f.payload = payload
	return f.response, f.err
}

func validResponse() map[string]any {
	traits := make([]map[string]any, 0, len(models.TraitNames))
	for _, name := range models.TraitNames {
		traits = append(traits, map[string]any{"name": name, "score": 0.5})
	}
	return map[string]any{
		"narrativeSummary": "You are a curious late-night learner.",
		"traits":           traits,
		"suggestedShifts":  []string{"a", "b", "c"},
		"faq": []map[string]string{
			{"question": "q1", "answer": "a1"},
			{"question": "q2", "answer": "a2"},
			{"question": "q3", "answer": "a3"},
		},
		"visualMetaphor": "A lighthouse sweeping the dark.",
	}
}

func respond(t *testing.T, body map[string]any) string {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	return string(raw)
}

func snapshot() *models.Snapshot {
	return &models.Snapshot{V: 1, Timeframes: map[string]models.FrameStats{}}
}

func TestRunParsesValidResponse(t *testing.T) {
	oracle := &fakeOracle{response: respond(t, validResponse())}
	got, err := New(oracle, nil, time.Second).Run(context.Background(), snapshot())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got.NarrativeSummary == "" || len(got.Traits) != 7 {
		t.Errorf("payload = %+v", got)
	}
	if got.Traits[0].Name != "Curiosity" || got.Traits[6].Name != "Exploration Breadth" {
		t.Errorf("trait order = %v", got.Traits)
	}
	if !strings.Contains(oracle.payload, `"v":1`) {
		t.Error("snapshot JSON was not sent to the oracle")
	}
}

func TestRunToleratesSurroundingProse(t *testing.T) {
	oracle := &fakeOracle{response: "Here is the profile:\n```json\n" + respond(t, validResponse()) + "\n```\nHope this helps."}
	if _, err := New(oracle, nil, time.Second).Run(context.Background(), snapshot()); err != nil {
		t.Fatalf("Run failed on fenced response: %v", err)
	}
}

func TestRunClampsScores(t *testing.T) {
	body := validResponse()
	traits := body["traits"].([]map[string]any)
	traits[0]["score"] = 1.7
	traits[1]["score"] = -0.3

	oracle := &fakeOracle{response: respond(t, body)}
	got, err := New(oracle, nil, time.Second).Run(context.Background(), snapshot())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if got.Traits[0].Score != 1 || got.Traits[1].Score != 0 {
		t.Errorf("scores = %f, %f, want clamped to 1 and 0", got.Traits[0].Score, got.Traits[1].Score)
	}
}

func TestRunRejectsMalformedPayloads(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"missing narrative", func(b map[string]any) { b["narrativeSummary"] = "" }},
		{"six traits", func(b map[string]any) {
			b["traits"] = b["traits"].([]map[string]any)[:6]
		}},
		{"wrong trait order", func(b map[string]any) {
			traits := b["traits"].([]map[string]any)
			traits[0], traits[1] = traits[1], traits[0]
		}},
		{"too few shifts", func(b map[string]any) { b["suggestedShifts"] = []string{"a"} }},
		{"too many shifts", func(b map[string]any) {
			b["suggestedShifts"] = []string{"a", "b", "c", "d", "e", "f"}
		}},
		{"empty faq answer", func(b map[string]any) {
			b["faq"].([]map[string]string)[1]["answer"] = ""
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := validResponse()
			tt.mutate(body)
			oracle := &fakeOracle{response: respond(t, body)}
			if _, err := New(oracle, nil, time.Second).Run(context.Background(), snapshot()); err == nil {
				t.Error("expected a stage error")
			}
		})
	}
}

func TestRunOracleFailureIsHard(t *testing.T) {
	oracle := &fakeOracle{err: errors.New("rate limited")}
	_, err := New(oracle, nil, time.Second).Run(context.Background(), snapshot())
	if err == nil || !strings.Contains(err.Error(), "insight stage") {
		t.Errorf("error = %v, want stage-named failure", err)
	}
}

func TestRunEmptyResponseIsHard(t *testing.T) {
	oracle := &fakeOracle{response: ""}
	if _, err := New(oracle, nil, time.Second).Run(context.Background(), snapshot()); err == nil {
		t.Error("expected error on empty oracle response")
	}
}

func TestRunBoundsPayloadSize(t *testing.T) {
	snap := snapshot()
	snap.EvidenceHints.TopFacts = []string{strings.Repeat("x", maxPayloadBytes)}

	oracle := &fakeOracle{response: respond(t, validResponse())}
	_, err := New(oracle, nil, time.Second).Run(context.Background(), snap)
	if err == nil || !strings.Contains(err.Error(), "limit") {
		t.Errorf("error = %v, want payload size rejection", err)
	}
	if oracle.payload != "" {
		t.Error("oversized payload must not reach the oracle")
	}
}

func TestSanitizeRecoversUnescapedQuotes(t *testing.T) {
	body := validResponse()
	raw := respond(t, body)
	// Re-indent so each value sits on its own line, then break one value.
	var pretty map[string]any
	if err := json.Unmarshal([]byte(raw), &pretty); err != nil {
		t.Fatal(err)
	}
	indented, _ := json.MarshalIndent(pretty, "", "  ")
	broken := strings.Replace(string(indented),
		`"You are a curious late-night learner."`,
		`"You are a "curious" late-night learner."`, 1)

	got, err := parseResponse(broken)
	if err != nil {
		t.Fatalf("parseResponse failed on sanitizable input: %v", err)
	}
	if !strings.Contains(got.NarrativeSummary, "curious") {
		t.Errorf("narrative = %q", got.NarrativeSummary)
	}
}
