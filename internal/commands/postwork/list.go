package postwork

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"
)

// CommandList is the `postwork list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	res, err := shared.Call(ui, "Fetching postworks...", func() (workhub.Response, error) {
		return clients.Workhub.GetPostwork()
	})
	if err != nil {
		return cli.NewPrivilegedErr("failed to list postworks", err)
	}
	return shared.PrintRecords(ui, resourcePlural, res)
}
