// Package profilebuilder runs the full profile pipeline over a local takeout
// export and writes the stage artifacts to disk.
package profilebuilder

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"profile-stack/agents/profile-builder/takeout"
	"profile-stack/agents/profile-builder/youtube"
	"profile-stack/pipeline"
	"profile-stack/pipeline/direct"
	"profile-stack/pipeline/enrich"
	"profile-stack/pipeline/insight"
	"profile-stack/pipeline/snapshot"
	"profile-stack/shared/cache"
	"profile-stack/shared/config"
	"profile-stack/shared/email"
	"profile-stack/shared/oracle"
	"profile-stack/shared/scheduler"

	"go.uber.org/zap"
)

// Metrics summarises one completed run for the scheduler's monitor.
type Metrics struct {
	WatchEvents int
	Enriched    int
	Emailed     bool
}

func (m *Metrics) GetSummary() string {
	return fmt.Sprintf("%d watch events, %d enriched, emailed=%v", m.WatchEvents, m.Enriched, m.Emailed)
}

// ProfileAgent implements the scheduler.Agent interface.
type ProfileAgent struct {
	config      *config.Config
	log         *zap.SugaredLogger
	pipe        *pipeline.Pipeline
	emailSender *email.Sender
}

func NewProfileAgent(cfg *config.Config, log *zap.SugaredLogger) *ProfileAgent {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ProfileAgent{config: cfg, log: log}
}

func (p *ProfileAgent) Name() string {
	return "Profile Builder"
}

func (p *ProfileAgent) Initialize() error {
	if p.pipe != nil {
		return nil
	}

	ctx := context.Background()
	cfg := p.config

	store, err := p.buildCache(ctx)
	if err != nil {
		return err
	}

	client, err := youtube.NewClient(ctx, &cfg.YouTube)
	if err != nil {
		return fmt.Errorf("failed to create YouTube client: %w", err)
	}

	gemini, err := oracle.NewGemini(ctx, &cfg.AI)
	if err != nil {
		return fmt.Errorf("failed to create oracle: %w", err)
	}

	fetcher := enrich.NewFetcher(client, store, p.log,
		cfg.Pipeline.MetadataBatchSize,
		time.Duration(cfg.Pipeline.ProviderTimeoutSeconds)*time.Second)

	pipe := pipeline.New(p.log)
	pipe.RegisterDirect(direct.New(p.log))
	pipe.RegisterEnriched(enrich.New(fetcher, p.log))
	pipe.RegisterSnapshot(snapshot.New(p.log))
	pipe.RegisterInsight(insight.New(gemini, p.log,
		time.Duration(cfg.Pipeline.OracleTimeoutSeconds)*time.Second))
	p.pipe = pipe

	p.emailSender = email.NewSender(&cfg.Email)

	p.log.Infow("agent initialized", "takeoutDir", cfg.Takeout.Dir, "outDir", cfg.Takeout.OutDir)
	return nil
}

// buildCache picks Redis when an address is configured, otherwise the local
// file cache.
func (p *ProfileAgent) buildCache(ctx context.Context) (cache.Cache, error) {
	cfg := p.config.Cache
	ttl := time.Duration(cfg.TTLHours) * time.Hour

	if cfg.RedisAddr != "" {
		r, err := cache.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, ttl)
		if err != nil {
			return nil, fmt.Errorf("failed to connect cache: %w", err)
		}
		p.log.Infow("using redis cache", "addr", cfg.RedisAddr)
		return r, nil
	}

	f, err := cache.NewFile(cfg.Dir, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to open file cache: %w", err)
	}
	p.log.Infow("using file cache", "dir", cfg.Dir, "entries", f.Len())
	return f, nil
}

func (p *ProfileAgent) RunOnce(ctx context.Context, events *scheduler.AgentEvents) error {
	startTime := time.Now()

	digest, err := takeout.Load(p.config.Takeout.Dir, p.config.Takeout.UserID)
	if err != nil {
		return fmt.Errorf("failed to load takeout export: %w", err)
	}
	p.log.Infow("takeout export loaded",
		"watchEvents", len(digest.Payload.Watch),
		"searchEvents", len(digest.Payload.Search))

	result, err := p.pipe.Run(ctx, digest, p.config.Bio)
	if err != nil {
		return err
	}

	if err := p.writeArtifacts(result); err != nil {
		return fmt.Errorf("failed to write artifacts: %w", err)
	}

	metrics := &Metrics{
		WatchEvents: len(digest.Payload.Watch),
		Enriched:    len(result.Enriched.EnrichedWatchHistory),
	}

	if p.config.EmailEnabled() {
		if err := p.emailSender.SendProfileReport(result.Insight, result.Snapshot); err != nil {
			// The profile is already on disk; a mail hiccup shouldn't fail
			// the run.
			p.log.Warnw("failed to email report", "error", err)
			if events != nil && events.OnPartialFailure != nil {
				events.OnPartialFailure(fmt.Errorf("email report: %w", err), time.Since(startTime))
			}
		} else {
			metrics.Emailed = true
		}
	}

	if events != nil && events.OnSuccess != nil {
		events.OnSuccess(metrics, time.Since(startTime))
	}

	p.log.Infow("profile build complete", "summary", metrics.GetSummary())
	return nil
}

// writeArtifacts dumps every stage output so the caller can inspect or serve
// them; the pipeline itself persists nothing.
func (p *ProfileAgent) writeArtifacts(result *pipeline.Result) error {
	outDir := p.config.Takeout.OutDir
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	artifacts := map[string]any{
		"direct.json":   result.Direct,
		"enriched.json": result.Enriched,
		"snapshot.json": result.Snapshot,
		"insight.json":  result.Insight,
	}
	for name, artifact := range artifacts {
		data, err := json.MarshalIndent(artifact, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", name, err)
		}
		if err := os.WriteFile(filepath.Join(outDir, name), data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", name, err)
		}
	}
	return nil
}
