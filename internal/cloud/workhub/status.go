package workhub

import (
	"errors"
	"net/http"

	"github.com/sa67/workhub-cli/internal/utils/api"
)

const (
	statusPath = "/"
)

// Status checks that the WorkHub server is reachable
// Any response, whatever its status code, counts as reachable
func (c *client) Status() error {
	_, err := c.do(http.MethodGet, statusPath, api.RequestOptions{})

	var transportErr TransportError
	if errors.As(err, &transportErr) {
		return err
	}
	return nil
}
