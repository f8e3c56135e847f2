package logout

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/terminal"
)

// Command is the `logout` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	creds := profile.Credentials()
	creds.Password = "" // ensures subsequent `login` commands prompt for password

	profile.SetCredentials(creds)
	profile.ClearSession()

	if err := profile.Save(); err != nil {
		return err
	}

	return ui.Print(terminal.NewTextLog("Successfully logged out"))
}
