package cli

import (
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is an executable CLI command
// This interface maps 1:1 to Cobra's Command.RunE phase
//
// Optionally, a Command may implement any of the other interfaces found below.
// The order of operations is:
//   1. CommandFlagger.Flags: use this hook to register flags to parse
//   2. CommandInputs.Inputs().Resolve: use this hook to prompt for any flags not provided
//   3. Command.Handler: this is the command hook
// At any point should an error occur, command execution will terminate
// and the ensuing steps will not be run
type Command interface {
	Handler(profile *user.Profile, ui terminal.UI, clients Clients) error
}

// CommandFlagger is a hook for commands to register local flags to be parsed
type CommandFlagger interface {
	Flags(fs *pflag.FlagSet)
}

// CommandInputs returns the command inputs
type CommandInputs interface {
	Inputs() InputResolver
}

// InputResolver is an input resolver
type InputResolver interface {
	Resolve(profile *user.Profile, ui terminal.UI) error
}

// Clients are the CLI clients
type Clients struct {
	Workhub workhub.Client
}

// CommandDefinition is a command's definition that the CommandFactory
// can build a *cobra.Command from
type CommandDefinition struct {
	// Command is the command's implementation
	// If present, this value is used to specify the cobra.Command execution phases
	Command Command

	// SubCommands are the command's sub commands
	SubCommands []CommandDefinition

	// Description is the short command description shown in the 'help' output
	Description string

	// Help is the long message shown in the 'help <this-command>' output
	Help string

	// Use defines how the command is used
	Use string

	// Display controls how the command is described in output
	// If left blank, the command's Use value will be used instead
	Display string

	// Aliases is the list of supported aliases for the command
	Aliases []string
}
