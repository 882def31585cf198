package monitoring

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// HealthServer exposes /health and /status for liveness probes.
type HealthServer struct {
	monitor *Monitor
	log     *zap.SugaredLogger
	port    string
}

func NewHealthServer(monitor *Monitor, log *zap.SugaredLogger, port string) *HealthServer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if port == "" {
		port = "8080"
	}
	return &HealthServer{monitor: monitor, log: log, port: port}
}

func (h *HealthServer) Start() {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.healthHandler)
	mux.HandleFunc("/status", h.statusHandler)

	h.log.Infow("health check server starting", "port", h.port)
	go func() {
		if err := http.ListenAndServe(":"+h.port, mux); err != nil {
			h.log.Errorw("health server error", "error", err)
		}
	}()
}

func (h *HealthServer) healthHandler(w http.ResponseWriter, _ *http.Request) {
	if h.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", h.monitor.StatusSummary())
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "Service unhealthy - %s", h.monitor.StatusSummary())
	}
}

func (h *HealthServer) statusHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s", h.monitor.StatusSummary())
}
