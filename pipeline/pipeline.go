// Package pipeline wires the four profile stages into one sequential run:
// direct aggregation, enrichment, snapshot, insight. Stage implementations
// register per source; the pipeline picks the first that accepts a digest's
// source tag.
package pipeline

import (
	"context"
	"fmt"

	"profile-stack/internal/models"

	"go.uber.org/zap"
)

// DirectTransformer turns raw digest events into counts and projections.
type DirectTransformer interface {
	Accepts(source models.Source) bool
	Run(ctx context.Context, digest *models.Digest) (*models.DirectStats, error)
}

// EnrichedTransformer merges metadata into the watch projection and derives
// the sentiment, engagement and preference aggregates.
type EnrichedTransformer interface {
	Accepts(source models.Source) bool
	Run(ctx context.Context, direct *models.DirectStats) (*models.EnrichedPayload, error)
}

// SnapshotBuilder collapses an enriched history into the timeframe summary.
type SnapshotBuilder interface {
	Accepts(source models.Source) bool
	Run(ctx context.Context, enriched *models.EnrichedPayload, bio models.UserBio) (*models.Snapshot, error)
}

// InsightGenerator produces the validated narrative profile.
type InsightGenerator interface {
	Accepts(source models.Source) bool
	Run(ctx context.Context, snap *models.Snapshot) (*models.InsightPayload, error)
}

// Result carries every stage artifact of one run.
type Result struct {
	Direct   *models.DirectStats
	Enriched *models.EnrichedPayload
	Snapshot *models.Snapshot
	Insight  *models.InsightPayload
}

// Pipeline is the stage registry. Stages run strictly in order; each consumes
// the previous stage's full output.
type Pipeline struct {
	log       *zap.SugaredLogger
	directs   []DirectTransformer
	enrichers []EnrichedTransformer
	builders  []SnapshotBuilder
	insights  []InsightGenerator
}

func New(log *zap.SugaredLogger) *Pipeline {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Pipeline{log: log}
}

func (p *Pipeline) RegisterDirect(t DirectTransformer) {
	p.directs = append(p.directs, t)
}

func (p *Pipeline) RegisterEnriched(t EnrichedTransformer) {
	p.enrichers = append(p.enrichers, t)
}

func (p *Pipeline) RegisterSnapshot(b SnapshotBuilder) {
	p.builders = append(p.builders, b)
}

func (p *Pipeline) RegisterInsight(g InsightGenerator) {
	p.insights = append(p.insights, g)
}

// Run executes all four stages for one digest. It fails fast on the first
// stage error; there are no partial results.
func (p *Pipeline) Run(ctx context.Context, digest *models.Digest, bio models.UserBio) (*Result, error) {
	source := digest.Source

	direct, err := pick(p.directs, source, "direct")
	if err != nil {
		return nil, err
	}
	enricher, err := pick(p.enrichers, source, "enriched")
	if err != nil {
		return nil, err
	}
	builder, err := pick(p.builders, source, "snapshot")
	if err != nil {
		return nil, err
	}
	generator, err := pick(p.insights, source, "insight")
	if err != nil {
		return nil, err
	}

	result := &Result{}

	p.log.Infow("pipeline run starting", "source", source)

	if result.Direct, err = direct.Run(ctx, digest); err != nil {
		return nil, fmt.Errorf("direct stage: %w", err)
	}
	if result.Enriched, err = enricher.Run(ctx, result.Direct); err != nil {
		return nil, err
	}
	if result.Snapshot, err = builder.Run(ctx, result.Enriched, bio); err != nil {
		return nil, fmt.Errorf("snapshot stage: %w", err)
	}
	if result.Insight, err = generator.Run(ctx, result.Snapshot); err != nil {
		return nil, err
	}

	p.log.Infow("pipeline run complete", "source", source)

	return result, nil
}

// pick returns the first registered stage accepting the source.
func pick[T interface{ Accepts(models.Source) bool }](stages []T, source models.Source, stage string) (T, error) {
	for _, s := range stages {
		if s.Accepts(source) {
			return s, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("no %s transformer registered for source %q", stage, source)
}
