package work

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandCreate is the `work create` command
type CommandCreate struct {
	inputs createInputs
}

type createInputs struct {
	shared.PayloadInputs
}

func (i *createInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	return i.Validate()
}

// Flags is the command flags
func (cmd *CommandCreate) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs, resource)
}

// Inputs is the command inputs
func (cmd *CommandCreate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandCreate) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	work, err := cmd.inputs.Record(profile.Fs())
	if err != nil {
		return err
	}

	res, err := shared.Call(ui, "Creating work...", func() (workhub.Response, error) {
		return clients.Workhub.CreateWork(work)
	})
	if err != nil {
		return cli.NewPrivilegedErr("failed to create work", err)
	}
	return shared.PrintResult(ui, "Successfully created work", res)
}
