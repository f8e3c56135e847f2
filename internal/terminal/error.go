package terminal

import (
	"errors"
)

const (
	logFieldErr    = "err"
	logFieldStatus = "status"
)

var (
	errorMessageFields       = []string{logFieldErr}
	statusErrorMessageFields = []string{logFieldErr, logFieldStatus}
)

// StatusCoder is an error that carries the HTTP status it was produced from
type StatusCoder interface {
	error
	Status() int
}

type errorMessage struct {
	error
}

func (e errorMessage) Message() (string, error) {
	return e.Error(), nil
}

func (e errorMessage) Payload() ([]string, map[string]interface{}, error) {
	var statusErr StatusCoder
	if errors.As(e.error, &statusErr) {
		return statusErrorMessageFields, map[string]interface{}{
			logFieldErr:    e.Error(),
			logFieldStatus: statusErr.Status(),
		}, nil
	}
	return errorMessageFields, map[string]interface{}{
		logFieldErr: e.Error(),
	}, nil
}
