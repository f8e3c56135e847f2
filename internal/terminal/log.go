package terminal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/iancoleman/orderedmap"
	"gopkg.in/yaml.v2"
)

// LogLevel is the level of a terminal log
type LogLevel string

// set of supported log levels
const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
	LogLevelDebug LogLevel = "debug"
)

const levelWidth = len(LogLevelError)

// LogData produces the log data
type LogData interface {
	Message() (string, error)
	Payload() ([]string, map[string]interface{}, error)
}

// Log is a terminal log
type Log struct {
	Level LogLevel
	Time  time.Time
	Data  LogData
}

// NewTextLog creates a new log with a text message
func NewTextLog(format string, args ...interface{}) Log {
	return newLog(LogLevelInfo, newTextMessage(format, args...))
}

// NewDebugLog creates a new debug log with a text message
func NewDebugLog(format string, args ...interface{}) Log {
	return newLog(LogLevelDebug, newTextMessage(format, args...))
}

// NewWarningLog creates a new warning log with a text message
func NewWarningLog(format string, args ...interface{}) Log {
	return newLog(LogLevelWarn, newTextMessage(format, args...))
}

// NewErrorLog creates a new error log
func NewErrorLog(err error) Log {
	return newLog(LogLevelError, errorMessage{err})
}

// NewJSONLog creates a new log with a JSON document
func NewJSONLog(data interface{}) Log {
	return newLog(LogLevelInfo, jsonDocument{data: data})
}

// NewTitledJSONLog creates a new log with a titled JSON document
func NewTitledJSONLog(title string, data interface{}) Log {
	return newLog(LogLevelInfo, jsonDocument{title: title, data: data})
}

// NewTableLog creates a new log with a table
func NewTableLog(message string, headers []string, rows ...map[string]interface{}) Log {
	return newLog(LogLevelInfo, newTable(message, headers, rows))
}

// NewListLog creates a new log with a list
func NewListLog(message string, items ...interface{}) Log {
	return newLog(LogLevelInfo, newList(message, "", items))
}

// NewFollowupLog creates a new log with suggested commands to run next
func NewFollowupLog(message string, commands ...interface{}) Log {
	return newLog(LogLevelDebug, newList(message, "$ ", commands))
}

// set of follow up messages
const (
	FollowupCommandMessage = "Try running instead"
	FollowupNextMessage    = "Try running next"
)

func newLog(level LogLevel, data LogData) Log {
	return Log{level, time.Now(), data}
}

// Print produces the log output based on the specified format
func (l Log) Print(outputFormat OutputFormat) (string, error) {
	switch outputFormat {
	case OutputFormatText:
		return l.textOutput()
	case OutputFormatJSON:
		return l.jsonOutput()
	case OutputFormatYAML:
		return l.yamlOutput()
	}
	return "", fmt.Errorf("unsupported output format type: %s", outputFormat)
}

func (l Log) textOutput() (string, error) {
	message, err := l.Data.Message()
	if err != nil {
		return "", err
	}

	level := fmt.Sprintf("%-*s", levelWidth, strings.ToUpper(string(l.Level)))
	switch l.Level {
	case LogLevelWarn:
		level = color.New(color.FgYellow).Sprint(level)
	case LogLevelError:
		level = color.New(color.FgRed).Sprint(level)
	}

	return fmt.Sprintf("%s UTC %s %s", l.Time.In(time.UTC).Format("15:04:05"), level, message), nil
}

const (
	logFieldLevel = "level"
	logFieldTime  = "time"
)

func (l Log) jsonOutput() (string, error) {
	keys, payload, err := l.Data.Payload()
	if err != nil {
		return "", err
	}

	out := orderedmap.New()
	out.Set(logFieldTime, l.Time.In(time.UTC))
	out.Set(logFieldLevel, l.Level)
	for _, key := range keys {
		out.Set(key, payload[key])
	}

	output, err := json.Marshal(out)
	return string(output), err
}

func (l Log) yamlOutput() (string, error) {
	keys, payload, err := l.Data.Payload()
	if err != nil {
		return "", err
	}

	out := yaml.MapSlice{
		{Key: logFieldTime, Value: l.Time.In(time.UTC).Format(time.RFC3339)},
		{Key: logFieldLevel, Value: string(l.Level)},
	}
	for _, key := range keys {
		value, err := yamlValue(payload[key])
		if err != nil {
			return "", err
		}
		out = append(out, yaml.MapItem{Key: key, Value: value})
	}

	output, err := yaml.Marshal(out)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(output), "\n"), nil
}

// yamlValue converts v through its JSON form so that json tags
// and ordered documents are respected when rendered as yaml
func yamlValue(v interface{}) (interface{}, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var wrapper yaml.MapSlice
	if err := yaml.Unmarshal([]byte(`{"v":`+string(data)+`}`), &wrapper); err != nil {
		return nil, err
	}
	if len(wrapper) == 0 {
		return nil, nil
	}
	return wrapper[0].Value, nil
}
