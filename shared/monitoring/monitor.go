package monitoring

import (
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Monitor tracks the outcome of the most recent pipeline run for health
// reporting.
type Monitor struct {
	log            *zap.SugaredLogger
	lastRunSuccess bool
	lastRunTime    time.Time
}

func NewMonitor(log *zap.SugaredLogger) *Monitor {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Monitor{log: log}
}

func (m *Monitor) RecordSuccess(summary string, duration time.Duration) {
	m.lastRunSuccess = true
	m.lastRunTime = time.Now()

	m.log.Infow("run completed", "summary", summary, "duration", duration)
}

// RecordPartialFailure logs a degraded run without flipping health; partial
// enrichment still produces a complete profile.
func (m *Monitor) RecordPartialFailure(err error, duration time.Duration) {
	m.log.Warnw("partial failure", "error", err, "duration", duration)
}

func (m *Monitor) RecordCriticalFailure(err error, duration time.Duration) {
	m.lastRunSuccess = false
	m.lastRunTime = time.Now()

	m.log.Errorw("critical failure", "error", err, "duration", duration)
}

func (m *Monitor) IsHealthy() bool {
	if m.lastRunTime.IsZero() {
		return true // No runs yet, assume healthy
	}
	return m.lastRunSuccess
}

func (m *Monitor) StatusSummary() string {
	if m.lastRunTime.IsZero() {
		return "No runs yet"
	}
	if m.lastRunSuccess {
		return fmt.Sprintf("Last run: %s", m.lastRunTime.Format("Jan 2 15:04"))
	}
	return fmt.Sprintf("Last run failed: %s", m.lastRunTime.Format("Jan 2 15:04"))
}
