package login

import (
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldEmail    = "email"
	inputFieldPassword = "password"
)

type inputs struct {
	Email    string
	Password string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	creds := profile.Credentials()
	var questions []*survey.Question

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldEmail,
			Prompt:   &survey.Input{Message: "Email", Default: creds.Email},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		if creds.Password != "" && i.Email != "" && i.Email == creds.Email {
			i.Password = creds.Password
		} else {
			questions = append(questions, &survey.Question{
				Name:     inputFieldPassword,
				Prompt:   &survey.Password{Message: "Password"},
				Validate: survey.Required,
			})
		}
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
