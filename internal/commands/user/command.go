package user

import "github.com/sa67/workhub-cli/internal/cli"

// Command is the `user` command
var Command = cli.CommandDefinition{
	Use:         "user",
	Aliases:     []string{"users"},
	Description: "Manage the users of WorkHub",
	Help:        "Lists, shows, updates and deletes WorkHub users. New users are created with the `signup` command.",
	SubCommands: []cli.CommandDefinition{
		{
			Command:     &CommandList{},
			Use:         "list",
			Aliases:     []string{"ls"},
			Display:     "user list",
			Description: "List the users of WorkHub",
		},
		{
			Command:     &CommandGet{},
			Use:         "get",
			Display:     "user get",
			Description: "Show a WorkHub user",
		},
		{
			Command:     &CommandUpdate{},
			Use:         "update",
			Display:     "user update",
			Description: "Update a WorkHub user",
			Help: `The updated user fields are read from a JSON document, provided either inline
with "--data" or from a file with "--file". Fields left out of the document
are not changed.`,
		},
		{
			Command:     &CommandDelete{},
			Use:         "delete",
			Display:     "user delete",
			Description: "Delete a WorkHub user",
		},
	},
}
