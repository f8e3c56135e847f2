package login

import (
	"github.com/sa67/workhub-cli/internal/auth"
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "specify the email to sign in with"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "specify the password to sign in with"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	existing := profile.Credentials()

	if profile.Session().Authenticated() && existing.Email != "" && existing.Email != cmd.inputs.Email {
		proceed, err := ui.Confirm(
			"This action will terminate the existing session for user: %s (%s), would you like to proceed?",
			existing.Email,
			existing.RedactedPassword(),
		)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	var session auth.Session
	if _, err := shared.Call(ui, "Signing in...", func() (res workhub.Response, err error) {
		session, res, err = clients.Workhub.SignIn(workhub.SignInRequest{
			Email:    cmd.inputs.Email,
			Password: cmd.inputs.Password,
		})
		return res, err
	}); err != nil {
		return cli.NewPrivilegedErr("failed to sign in", err)
	}

	profile.SetCredentials(user.Credentials{Email: cmd.inputs.Email, Password: cmd.inputs.Password})
	if err := profile.Save(); err != nil {
		return err
	}

	logs := []terminal.Log{terminal.NewTextLog("Successfully logged in as %s (user id: %s)", cmd.inputs.Email, session.UserID)}
	if session.ResumeID == "" {
		logs = append(logs, terminal.NewWarningLog("No resume is linked to this user"))
	}
	return ui.Print(logs...)
}
