// Package trace logs executed SQL statements through zerolog. Repositories
// call Trace after every statement; the logger picks the level from the
// outcome: errors at error level, slow statements at warn, everything else
// at debug.
package trace

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// DefaultSlowThreshold is the elapsed time above which a statement is
// logged as slow.
const DefaultSlowThreshold = 200 * time.Millisecond

// Logger traces SQL statement execution.
type Logger struct {
	log           zerolog.Logger
	slowThreshold time.Duration
}

// New returns a Logger writing to the given zerolog logger.
func New(log zerolog.Logger) *Logger {
	return &Logger{log: log, slowThreshold: DefaultSlowThreshold}
}

// Disabled returns a Logger that discards everything.
func Disabled() *Logger {
	return &Logger{log: zerolog.Nop()}
}

// Trace logs one executed statement. A no-rows result is not an error at
// this layer; the repository decides what it means.
func (l *Logger) Trace(begin time.Time, query string, rows int64, err error) {
	elapsed := time.Since(begin)

	var event *zerolog.Event
	switch {
	case err != nil && !errors.Is(err, sql.ErrNoRows):
		event = l.log.Error().Err(err)
	case l.slowThreshold != 0 && elapsed > l.slowThreshold:
		event = l.log.Warn().Str("slow_threshold", l.slowThreshold.String())
	default:
		event = l.log.Debug()
	}

	event = event.
		Str("duration", fmt.Sprintf("%.3fms", float64(elapsed.Nanoseconds())/1e6)).
		Str("sql", query)
	if rows != -1 {
		event = event.Int64("rows", rows)
	}
	event.Msg("sql executed")
}
