// Package insight implements the fourth pipeline stage: the snapshot goes to
// the narrative oracle and the response is parsed and validated into an
// InsightPayload. Unlike enrichment there is no degraded path; any oracle or
// format failure fails the stage.
package insight

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"profile-stack/internal/models"

	"go.uber.org/zap"
)

// maxPayloadBytes bounds the serialized snapshot sent to the oracle.
const maxPayloadBytes = 64 << 10

const (
	minListEntries = 3
	maxListEntries = 5
)

// NarrativeOracle generates the profile text for one snapshot payload. The
// production implementation is the Gemini client; tests use a canned fake.
type NarrativeOracle interface {
	Generate(ctx context.Context, instructions, payload string) (string, error)
}

// Generator builds the narrative profile from a snapshot.
type Generator struct {
	oracle  NarrativeOracle
	log     *zap.SugaredLogger
	timeout time.Duration
}

func New(oracle NarrativeOracle, log *zap.SugaredLogger, timeout time.Duration) *Generator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{oracle: oracle, log: log, timeout: timeout}
}

func (g *Generator) Accepts(source models.Source) bool {
	return source == models.SourceYouTube
}

// Run submits the snapshot and validates the oracle's answer against the
// declared shape: non-empty narrative, the seven fixed traits in order, and
// three to five shifts and FAQ entries.
func (g *Generator) Run(ctx context.Context, snap *models.Snapshot) (*models.InsightPayload, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return nil, fmt.Errorf("insight stage: encode snapshot: %w", err)
	}
	if len(payload) > maxPayloadBytes {
		return nil, fmt.Errorf("insight stage: snapshot payload is %d bytes, limit %d", len(payload), maxPayloadBytes)
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	response, err := g.oracle.Generate(ctx, systemPrompt, string(payload))
	if err != nil {
		return nil, fmt.Errorf("insight stage: oracle: %w", err)
	}
	if response == "" {
		return nil, fmt.Errorf("insight stage: empty oracle response")
	}

	insight, err := parseResponse(response)
	if err != nil {
		return nil, fmt.Errorf("insight stage: %w", err)
	}

	g.log.Infow("insight stage complete",
		"traits", len(insight.Traits),
		"faqEntries", len(insight.FAQ))

	return insight, nil
}

func validate(p *models.InsightPayload) error {
	if p.NarrativeSummary == "" {
		return fmt.Errorf("narrativeSummary is empty")
	}

	if len(p.Traits) != len(models.TraitNames) {
		return fmt.Errorf("got %d traits, want %d", len(p.Traits), len(models.TraitNames))
	}
	for i, trait := range p.Traits {
		if trait.Name != models.TraitNames[i] {
			return fmt.Errorf("trait %d is %q, want %q", i, trait.Name, models.TraitNames[i])
		}
		// Out-of-range scores clamp rather than fail; the axis set is the
		// contract, the numbers are estimates.
		if trait.Score < 0 {
			p.Traits[i].Score = 0
		} else if trait.Score > 1 {
			p.Traits[i].Score = 1
		}
	}

	if n := len(p.SuggestedShifts); n < minListEntries || n > maxListEntries {
		return fmt.Errorf("got %d suggested shifts, want %d-%d", n, minListEntries, maxListEntries)
	}
	if n := len(p.FAQ); n < minListEntries || n > maxListEntries {
		return fmt.Errorf("got %d faq entries, want %d-%d", n, minListEntries, maxListEntries)
	}
	for i, entry := range p.FAQ {
		if entry.Question == "" || entry.Answer == "" {
			return fmt.Errorf("faq entry %d has an empty question or answer", i)
		}
	}
	return nil
}
