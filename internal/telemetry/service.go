package telemetry

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Service tracks telemetry events
type Service struct {
	userID      string
	command     string
	version     string
	executionID string
	tracker     Tracker
}

// Options are the options to configure the telemetry service
type Options struct {
	UserID  string
	Command string
	Version string

	// Stdout is where events are written in stdout mode
	Stdout io.Writer

	// FilePath is the file events are appended to when telemetry is on
	FilePath string
}

// NewService creates a new telemetry service
func NewService(mode Mode, options Options) *Service {
	service := Service{
		userID:      options.UserID,
		command:     options.Command,
		version:     options.Version,
		executionID: uuid.New().String(),
	}

	switch mode {
	case ModeOn:
		service.tracker = newFileTracker(options.FilePath)
	case ModeStdout:
		service.tracker = newStdoutTracker(options.Stdout)
	default:
		service.tracker = &noopTracker{}
	}

	return &service
}

// TrackEvent tracks an event
func (service *Service) TrackEvent(eventType EventType, data ...EventData) {
	service.tracker.Track(event{
		id:          uuid.New().String(),
		eventType:   eventType,
		userID:      service.userID,
		time:        time.Now(),
		executionID: service.executionID,
		command:     service.command,
		version:     service.version,
		data:        data,
	})
}

// Close shuts down the service
func (service *Service) Close() {
	service.tracker.Close()
}
