package work

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandGet is the `work get` command
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
	res, err := shared.Call(ui, "Fetching work...", func() (workhub.Response, error) {
		return clients.Workhub.GetWorkByID(cmd.inputs.ID)
	})
	if err != nil {
		return cli.NewPrivilegedErr("failed to get work", err)
	}
	return shared.PrintRecord(ui, "Work "+cmd.inputs.ID, res)
}
