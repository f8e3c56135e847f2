package postwork

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandGet is the `postwork get` command
type CommandGet struct {
	inputs shared.IDInputs
}

// Flags is the command flags
func (cmd *CommandGet) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs, resource)
}

// Inputs is the command inputs
func (cmd *CommandGet) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandGet) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	res, err := shared.Call(ui, "Fetching postwork...", func() (workhub.Response, error) {
		return clients.Workhub.GetPostworkByID(cmd.inputs.ID)
	})
	if err != nil {
		return cli.NewPrivilegedErr("failed to get postwork", err)
	}
	return shared.PrintRecord(ui, "Postwork "+cmd.inputs.ID, res)
}
