package llm

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// LoggingProvider logs latency and outcome of every completion call.
type LoggingProvider struct {
	inner Provider
}

func WithLogging(p Provider) Provider {
	return &LoggingProvider{inner: p}
}

func (l *LoggingProvider) Complete(ctx context.Context, req Request) (string, error) {
	start := time.Now()
	text, err := l.inner.Complete(ctx, req)

	event := log.Debug()
	if err != nil {
		event = log.Error().Err(err)
	}
	event.Str("model", l.inner.ModelID()).
		Bool("json", req.JSON).
		Dur("latency", time.Since(start)).
		Int("response_bytes", len(text)).
		Msg("llm_completion")
	return text, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// Unwrap exposes the wrapped provider.
func (l *LoggingProvider) Unwrap() Provider {
	return l.inner
}
