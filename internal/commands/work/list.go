package work

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"
)

// CommandList is the `work list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	res, err := shared.Call(ui, "Fetching works...", func() (workhub.Response, error) {
		return clients.Workhub.GetWork()
	})
	if err != nil {
		return cli.NewPrivilegedErr("failed to list works", err)
	}
	return shared.PrintRecords(ui, resourcePlural, res)
}
