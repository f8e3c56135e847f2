package mock

import (
	"path/filepath"
	"testing"

	"github.com/sa67/workhub-cli/internal/auth"
	"github.com/sa67/workhub-cli/internal/cli/user"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const profileDir = "/home/workhub/.config/workhub-cli"

// NewProfile returns a new CLI profile with a random name
// backed by an in-memory file system
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	return user.NewProfileWithFs(uuid.New().String(), profileDir, afero.NewMemMapFs())
}

// NewProfileWithSession returns a new CLI profile with a session
func NewProfileWithSession(t *testing.T, session auth.Session) *user.Profile {
	t.Helper()
	profile := NewProfile(t)
	profile.SetSession(session)
	return profile
}

// ProfileDir returns the directory mock profiles are saved to
func ProfileDir() string {
	return filepath.Clean(profileDir)
}
