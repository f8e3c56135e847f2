package testutils

import (
	"os"
	"testing"

	"github.com/sa67/workhub-cli/internal/cloud/workhub"
)

const (
	envNoSkipTest = "WORKHUB_NO_SKIP_TEST"
	envServerURL  = "WORKHUB_SERVER_BASE_URL"
)

// MustSkipf skips a test suite, but panics if WORKHUB_NO_SKIP_TEST is set
func MustSkipf(t *testing.T, format string, args ...interface{}) {
	if len(os.Getenv(envNoSkipTest)) > 0 {
		panic("test was skipped, but " + envNoSkipTest + " is set")
	}
	t.Skipf(format, args...)
}

// ServerURL returns the WorkHub server url to use for testing
func ServerURL() string {
	if uri := os.Getenv(envServerURL); uri != "" {
		return uri
	}
	return workhub.DefaultBaseURL
}

var serverRunning *bool

// SkipUnlessServerRunning skips tests if there is no WorkHub server running
// at the configured testing url (see: ServerURL())
func SkipUnlessServerRunning(t *testing.T) {
	t.Helper()
	if serverRunning == nil {
		running := workhub.NewClient(workhub.Config{BaseURL: ServerURL()}).Status() == nil
		serverRunning = &running
	}
	if !*serverRunning {
		MustSkipf(t, "WorkHub server not running at %s", ServerURL())
	}
}
