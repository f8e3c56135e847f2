package profile

import (
	"testing"

	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/utils/test/assert"
	"github.com/sa67/workhub-cli/internal/utils/test/mock"
)

func TestProfileList(t *testing.T) {
	t.Run("should print a message when no profile is saved", func(t *testing.T) {
		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, cli.Clients{}))

		assert.Equal(t, "01:23:45 UTC INFO  No available profiles to show\n", out.String())
	})

	t.Run("should print every saved profile", func(t *testing.T) {
		profile := mock.NewProfile(t)

		for _, name := range []string{"default", "staging"} {
			p := user.NewProfileWithFs(name, profile.Dir(), profile.Fs())
			p.SetBaseURL("http://localhost:8000")
			assert.Nil(t, p.Save())
		}

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}))

		assert.Equal(t, `01:23:45 UTC INFO  Profiles
  Profile  File
  -------  ----------------------------------------------
  default  /home/workhub/.config/workhub-cli/default.yaml
  staging  /home/workhub/.config/workhub-cli/staging.yaml
`, out.String())
	})
}
