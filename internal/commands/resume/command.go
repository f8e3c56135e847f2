package resume

import "github.com/sa67/workhub-cli/internal/cli"

const (
	resource       = "resume"
	resourcePlural = "resumes"
)

// Command is the `resume` command
var Command = cli.CommandDefinition{
	Use:         "resume",
	Aliases:     []string{"resumes"},
	Description: "Manage the resumes of WorkHub",
	Help: `Every user is given an empty resume when signing up. Its id is saved to the
CLI profile when logging in, and "resume get" always shows that resume.`,
	SubCommands: []cli.CommandDefinition{
		{
			Command:     &CommandList{},
			Use:         "list",
			Aliases:     []string{"ls"},
			Display:     "resume list",
			Description: "List the resumes of WorkHub",
		},
		{
			Command:     &CommandGet{},
			Use:         "get",
			Display:     "resume get",
			Description: "Show the resume of the logged in user",
		},
		{
			Command:     &CommandCreate{},
			Use:         "create",
			Display:     "resume create",
			Description: "Create a resume",
		},
		{
			Command:     &CommandUpdate{},
			Use:         "update",
			Display:     "resume update",
			Description: "Update a resume",
		},
		{
			Command:     &CommandDelete{},
			Use:         "delete",
			Display:     "resume delete",
			Description: "Delete a resume",
		},
	},
}
