package obs

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// Build a timestamped logger. Unknown levels fall back to info.
func NewLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}

// Time an operation; call the returned func with a pointer to its error.
func Time(ctx context.Context, logger zerolog.Logger, name string) func(errp *error) {
	start := time.Now()

	reqID, _ := ctx.Value(RequestIDKey).(string)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			logger.Warn().
				Str("req_id", reqID).
				Str("op", name).
				Int64("dur_ms", dur.Milliseconds()).
				Err(*errp).
				Msg("operation failed")
			return
		}
		logger.Debug().
			Str("req_id", reqID).
			Str("op", name).
			Int64("dur_ms", dur.Milliseconds()).
			Msg("operation done")
	}
}
