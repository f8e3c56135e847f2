package work

import "github.com/sa67/workhub-cli/internal/cli"

const (
	resource       = "work"
	resourcePlural = "works"
)

// Command is the `work` command
var Command = cli.CommandDefinition{
	Use:         "work",
	Aliases:     []string{"works"},
	Description: "Manage the works posted on WorkHub",
	Help: `Works are opaque JSON documents owned by the WorkHub server. Commands that
write a work read it from a JSON document, provided either inline with "--data"
or from a file with "--file".`,
	SubCommands: []cli.CommandDefinition{
		{
			Command:     &CommandList{},
			Use:         "list",
			Aliases:     []string{"ls"},
			Display:     "work list",
			Description: "List the works posted on WorkHub",
		},
		{
			Command:     &CommandGet{},
			Use:         "get",
			Display:     "work get",
			Description: "Show a work",
		},
		{
			Command:     &CommandCreate{},
			Use:         "create",
			Display:     "work create",
			Description: "Post a new work",
		},
		{
			Command:     &CommandUpdate{},
			Use:         "update",
			Display:     "work update",
			Description: "Update a work",
		},
		{
			Command:     &CommandDelete{},
			Use:         "delete",
			Display:     "work delete",
			Description: "Delete a work",
		},
	},
}
