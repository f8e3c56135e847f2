package resume

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandUpdate is the `resume update` command
type CommandUpdate struct {
	inputs updateInputs
}

type updateInputs struct {
	shared.IDInputs
	shared.PayloadInputs
}

func (i *updateInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if err := i.PayloadInputs.Validate(); err != nil {
		return err
	}
	return i.IDInputs.Resolve(profile, ui)
}

// Flags is the command flags
func (cmd *CommandUpdate) Flags(fs *pflag.FlagSet) {
	cmd.inputs.IDInputs.Flags(fs, resource)
	cmd.inputs.PayloadInputs.Flags(fs, resource)
}

// Inputs is the command inputs
func (cmd *CommandUpdate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandUpdate) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	resume, err := cmd.inputs.Record(profile.Fs())
	if err != nil {
		return err
	}

	res, err := shared.Call(ui, "Updating resume...", func() (workhub.Response, error) {
		return clients.Workhub.UpdateResumeByID(cmd.inputs.ID, resume)
	})
	if err != nil {
		return cli.NewPrivilegedErr("failed to update resume", err)
	}
	return shared.PrintResult(ui, "Successfully updated resume "+cmd.inputs.ID, res)
}
