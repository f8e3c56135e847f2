package telemetry

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Tracker records telemetry events
type Tracker interface {
	Track(e event)
	Close()
}

type noopTracker struct{}

func (t *noopTracker) Track(e event) {}

func (t *noopTracker) Close() {}

// loggerTracker writes every event as a structured log line
type loggerTracker struct {
	logger zerolog.Logger
	closer io.Closer
}

func newStdoutTracker(w io.Writer) Tracker {
	if w == nil {
		w = os.Stdout
	}
	return &loggerTracker{
		logger: zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}),
	}
}

// newFileTracker appends JSON events to the file at path,
// falling back to a no-op tracker if the file cannot be opened
func newFileTracker(path string) Tracker {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return &noopTracker{}
	}
	return &loggerTracker{
		logger: zerolog.New(f),
		closer: f,
	}
}

func (t *loggerTracker) Track(e event) {
	entry := t.logger.Info().
		Time("time", e.time).
		Str("id", e.id).
		Str("type", string(e.eventType)).
		Str("user_id", e.userID).
		Str("execution_id", e.executionID).
		Str("command", e.command).
		Str("version", e.version)

	for _, d := range e.data {
		switch v := d.Value.(type) {
		case error:
			entry = entry.Str(string(d.Key), v.Error())
		case fmt.Stringer:
			entry = entry.Str(string(d.Key), v.String())
		default:
			entry = entry.Interface(string(d.Key), v)
		}
	}

	entry.Msg("tracking")
}

func (t *loggerTracker) Close() {
	if t.closer != nil {
		t.closer.Close()
	}
}
