package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/filectx/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Resolved 3 file trees (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// hookLogger reports resolution and manifest events at debug level.
type hookLogger struct {
	logger *log.Logger
}

var (
	_ observability.ResolveHooks  = hookLogger{}
	_ observability.ManifestHooks = hookLogger{}
)

func (h hookLogger) OnResolveStart(shape string, pending int) {
	h.logger.Debug("resolve", "shape", shape, "pending", pending)
}

func (h hookLogger) OnElement(shape string, depth int, kind string, value any) {
	h.logger.Debug("element", "depth", depth, "kind", kind, "type", typeName(value))
}

func (h hookLogger) OnResolveComplete(shape string, entries int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("resolve failed", "shape", shape, "err", err)
		return
	}
	h.logger.Debug("resolved", "shape", shape, "entries", entries, "took", d.Round(time.Microsecond))
}

func (h hookLogger) OnManifestLoad(path, format string, inputs int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("manifest failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("manifest", "path", path, "format", format, "inputs", inputs, "took", d.Round(time.Microsecond))
}

// installHooks routes engine events to l until the returned func is called.
func installHooks(l *log.Logger) func() {
	h := hookLogger{logger: l}
	observability.SetResolveHooks(h)
	observability.SetManifestHooks(h)
	return observability.Reset
}
