package signup

import (
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/terminal"
	"github.com/sa67/workhub-cli/internal/utils/flags"

	"github.com/AlecAivazis/survey/v2"
)

type inputs struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Age       uint8
	Birthday  flags.Date
	GenderID  uint
	Address   string
	Category  string
	Wages     uint
	Contact   string
	Profile   string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.FirstName == "" {
		questions = append(questions, &survey.Question{
			Name:   "firstname",
			Prompt: &survey.Input{Message: "First Name"},
		})
	}

	if i.LastName == "" {
		questions = append(questions, &survey.Question{
			Name:   "lastname",
			Prompt: &survey.Input{Message: "Last Name"},
		})
	}

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     "email",
			Prompt:   &survey.Input{Message: "Email"},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     "password",
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}

func (i inputs) user() workhub.User {
	return workhub.User{
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Email:     i.Email,
		Password:  i.Password,
		Age:       i.Age,
		BirthDay:  i.Birthday.Ptr(),
		GenderID:  i.GenderID,
		Address:   i.Address,
		Category:  i.Category,
		Wages:     i.Wages,
		Contact:   i.Contact,
		Profile:   i.Profile,
	}
}
