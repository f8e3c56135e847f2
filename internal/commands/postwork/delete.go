package postwork

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandDelete is the `postwork delete` command
type CommandDelete struct {
	inputs shared.IDInputs
}

// Flags is the command flags
func (cmd *CommandDelete) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs, resource)
}

// Inputs is the command inputs
func (cmd *CommandDelete) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDelete) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	proceed, err := shared.ConfirmDelete(ui, resource, cmd.inputs.ID)
	if err != nil {
		return err
	}
	if !proceed {
		return nil
	}

	if _, err := shared.Call(ui, "Deleting postwork...", func() (workhub.Response, error) {
		return clients.Workhub.DeletePostworkByID(cmd.inputs.ID)
	}); err != nil {
		return cli.NewPrivilegedErr("failed to delete postwork", err)
	}
	return ui.Print(terminal.NewTextLog("Successfully deleted postwork %s", cmd.inputs.ID))
}
