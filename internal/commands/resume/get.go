package resume

import (
	"errors"

	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"
)

// CommandGet is the `resume get` command
type CommandGet struct{}

// Handler is the command handler
func (cmd *CommandGet) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	res, err := shared.Call(ui, "Fetching resume...", func() (workhub.Response, error) {
		return clients.Workhub.SessionResume()
	})
	if errors.Is(err, workhub.ErrNoResumeID) {
		return errNoSessionResume{}
	}
	if err != nil {
		return cli.NewPrivilegedErr("failed to get resume", err)
	}
	return shared.PrintRecord(ui, "Resume "+profile.ResumeID(), res)
}

type errNoSessionResume struct{}

func (errNoSessionResume) Error() string { return workhub.ErrNoResumeID.Error() }

func (errNoSessionResume) Unwrap() error { return workhub.ErrNoResumeID }

func (errNoSessionResume) SuggestedCommands() []interface{} {
	return []interface{}{cli.Name + " login", cli.Name + " resume list"}
}
