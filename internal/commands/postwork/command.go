package postwork

import "github.com/sa67/workhub-cli/internal/cli"

const (
	resource       = "postwork"
	resourcePlural = "postworks"
)

// Command is the `postwork` command
var Command = cli.CommandDefinition{
	Use:         "postwork",
	Aliases:     []string{"postworks"},
	Description: "Manage the work postings of WorkHub",
	SubCommands: []cli.CommandDefinition{
		{
			Command:     &CommandList{},
			Use:         "list",
			Aliases:     []string{"ls"},
			Display:     "postwork list",
			Description: "List the work postings of WorkHub",
		},
		{
			Command:     &CommandGet{},
			Use:         "get",
			Display:     "postwork get",
			Description: "Show a work posting",
		},
		{
			Command:     &CommandDelete{},
			Use:         "delete",
			Display:     "postwork delete",
			Description: "Delete a work posting",
		},
	},
}
