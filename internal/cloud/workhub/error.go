package workhub

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sa67/workhub-cli/internal/utils/api"
)

// ErrNoResumeID is returned when the session holds no resume id to look up
var ErrNoResumeID = errors.New("no resume id found in the current session, please login first")

// ServerError is a WorkHub server error
type ServerError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"error"`
}

func (se ServerError) Error() string {
	return se.Message
}

// Status returns the HTTP status code of the failed response
func (se ServerError) Status() int {
	return se.StatusCode
}

// TransportError is returned when a request receives no response
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (te TransportError) Error() string {
	return fmt.Sprintf("failed to %s %s: %s", te.Method, te.URL, te.Err)
}

// Unwrap returns the underlying transport failure
func (te TransportError) Unwrap() error {
	return te.Err
}

// parseResponseError builds a ServerError from a non-2xx response,
// preferring the server's error message when the body carries one
func parseResponseError(res Response) error {
	serverError := ServerError{StatusCode: res.StatusCode}

	status := fmt.Sprintf("%d %s", res.StatusCode, http.StatusText(res.StatusCode))

	if len(res.Body) == 0 || !strings.HasPrefix(res.Header.Get(api.HeaderContentType), api.MediaTypeJSON) {
		serverError.Message = status
		return serverError
	}

	if err := json.Unmarshal(res.Body, &serverError); err != nil {
		serverError.Message = string(res.Body)
	}
	if serverError.Message == "" {
		serverError.Message = status
	}
	return serverError
}
