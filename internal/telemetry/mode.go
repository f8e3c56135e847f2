package telemetry

import (
	"fmt"
	"strings"
)

// set of telemetry flags
const (
	FlagMode      = "telemetry"
	FlagModeUsage = `Enable or disable telemetry (this setting is remembered), available options: ["on", "off", "stdout"]`
)

// Mode is the telemetry mode
type Mode string

// String returns the mode display
func (m Mode) String() string { return string(m) }

// Type returns the mode type
func (m Mode) Type() string { return "string" }

// Set validates and sets the mode value
func (m *Mode) Set(val string) error {
	mode := Mode(val)

	if !isValidMode(mode) {
		allModes := []string{ModeOn.String(), ModeOff.String(), ModeStdout.String()}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allModes, ", "))
	}

	*m = mode
	return nil
}

// set of supported telemetry modes
const (
	ModeEmpty  Mode = "" // zero-valued to be flag's default
	ModeOn     Mode = "on"
	ModeOff    Mode = "off"
	ModeStdout Mode = "stdout"
)

func isValidMode(mode Mode) bool {
	switch mode {
	case
		ModeEmpty,
		ModeOn,
		ModeOff,
		ModeStdout:
		return true
	}
	return false
}
