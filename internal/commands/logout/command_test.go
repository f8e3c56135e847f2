package logout

import (
	"testing"

	"github.com/sa67/workhub-cli/internal/auth"
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/utils/test/assert"
	"github.com/sa67/workhub-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func TestLogoutHandler(t *testing.T) {
	t.Run("should clear the password and session but keep the email", func(t *testing.T) {
		profile := mock.NewProfileWithSession(t, auth.Session{TokenType: "Bearer", Token: "token", UserID: "7", ResumeID: "42"})
		profile.SetCredentials(user.Credentials{Email: "jane@example.com", Password: "secret"})

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}))

		assert.Equal(t, user.Credentials{Email: "jane@example.com"}, profile.Credentials())
		assert.Equal(t, auth.Session{}, profile.Session())
		assert.Equal(t, "01:23:45 UTC INFO  Successfully logged out\n", out.String())

		contents, err := afero.ReadFile(profile.Fs(), profile.Path())
		assert.Nil(t, err)
		assert.Contains(t, string(contents), "email: jane@example.com")
		assert.Contains(t, string(contents), `token: ""`)
	})
}
