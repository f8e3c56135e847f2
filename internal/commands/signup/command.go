package signup

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/terminal"
	"github.com/sa67/workhub-cli/internal/utils/flags"

	"github.com/spf13/pflag"
)

const (
	flagFirstName = "first-name"
	flagLastName  = "last-name"
	flagEmail     = "email"
	flagPassword  = "password"
	flagAge       = "age"
	flagBirthday  = "birthday"
	flagGenderID  = "gender-id"
	flagAddress   = "address"
	flagCategory  = "category"
	flagWages     = "wages"
	flagContact   = "contact"
	flagProfile   = "profile-image"
)

// Command is the `signup` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.FirstName, flagFirstName, "", "specify the first name of the user")
	fs.StringVar(&cmd.inputs.LastName, flagLastName, "", "specify the last name of the user")
	fs.StringVarP(&cmd.inputs.Email, flagEmail, "e", "", "specify the email of the user")
	fs.StringVarP(&cmd.inputs.Password, flagPassword, "p", "", "specify the password of the user")
	fs.Uint8Var(&cmd.inputs.Age, flagAge, 0, "specify the age of the user")
	fs.Var(&cmd.inputs.Birthday, flagBirthday, "specify the birthday of the user (e.g. 1999-02-03)")
	fs.UintVar(&cmd.inputs.GenderID, flagGenderID, 0, "specify the gender id of the user")
	fs.StringVar(&cmd.inputs.Address, flagAddress, "", "specify the address of the user")
	fs.StringVar(&cmd.inputs.Category, flagCategory, "", "specify the job category of the user")
	fs.UintVar(&cmd.inputs.Wages, flagWages, 0, "specify the expected wages of the user")
	fs.StringVar(&cmd.inputs.Contact, flagContact, "", "specify the contact details of the user")
	fs.StringVar(&cmd.inputs.Profile, flagProfile, "", "specify the profile image of the user")
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	res, err := shared.Call(ui, "Signing up...", func() (workhub.Response, error) {
		return clients.Workhub.CreateUser(cmd.inputs.user())
	})
	if err != nil {
		return cli.NewPrivilegedErr("failed to sign up", err)
	}

	var result workhub.SignUpResult
	if err := res.Decode(&result); err != nil {
		return err
	}

	return ui.Print(
		terminal.NewTextLog("%s: %s (resume id: %d)", result.Message, cmd.inputs.Email, result.ResumeID),
		terminal.NewFollowupLog(terminal.FollowupNextMessage, flags.Command(
			cli.Name+" login",
			flags.Arg{Name: flagEmail, Value: cmd.inputs.Email},
		)),
	)
}
