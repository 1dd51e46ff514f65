package observability

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/architectus/pkg/geom"
)

// LogHooks writes generation, cache and HTTP events to a logger at debug
// level, HTTP responses at info. The CLI installs them at startup.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks returns hooks logging to logger.
func NewLogHooks(logger *log.Logger) *LogHooks {
	return &LogHooks{logger: logger}
}

// Install registers h for every hook category.
func (h *LogHooks) Install() {
	SetGenerationHooks(h)
	SetCacheHooks(h)
	SetHTTPHooks(h)
}

func (h *LogHooks) OnGenerateStart(_ context.Context, component string, plot geom.Vector2Int) {
	h.logger.Debug("generate", "component", component, "plot", plot)
}

func (h *LogHooks) OnAttempt(_ context.Context, attempt int, seed uint64, err error) {
	if err != nil {
		h.logger.Debug("attempt failed", "attempt", attempt, "seed", seed, "err", err)
		return
	}
	h.logger.Debug("attempt succeeded", "attempt", attempt, "seed", seed)
}

func (h *LogHooks) OnGenerateComplete(_ context.Context, component string, attempts int, d time.Duration, err error) {
	h.logger.Debug("generated", "component", component, "attempts", attempts, "took", d, "err", err)
}

func (h *LogHooks) OnCacheHit(_ context.Context, keyType string) {
	h.logger.Debug("cache hit", "type", keyType)
}

func (h *LogHooks) OnCacheMiss(_ context.Context, keyType string) {
	h.logger.Debug("cache miss", "type", keyType)
}

func (h *LogHooks) OnCacheSet(_ context.Context, keyType string, size int) {
	h.logger.Debug("cache set", "type", keyType, "bytes", size)
}

func (h *LogHooks) OnRequest(_ context.Context, method, route string) {}

func (h *LogHooks) OnResponse(_ context.Context, method, route string, status int, d time.Duration) {
	h.logger.Info("http", "method", method, "route", route, "status", status, "took", d)
}
