package profile

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/terminal"
)

const (
	headerProfile = "Profile"
	headerFile    = "File"
)

// CommandList is the `profiles` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	profileMetas, err := user.ProfilesIn(profile.Fs(), profile.Dir())
	if err != nil {
		return err
	}

	if len(profileMetas) == 0 {
		return ui.Print(terminal.NewTextLog("No available profiles to show"))
	}

	rows := make([]map[string]interface{}, 0, len(profileMetas))
	for _, profileMeta := range profileMetas {
		rows = append(rows, map[string]interface{}{
			headerProfile: profileMeta.Name,
			headerFile:    profileMeta.Filepath,
		})
	}

	return ui.Print(terminal.NewTableLog(
		"Profiles",
		[]string{headerProfile, headerFile},
		rows...,
	))
}
