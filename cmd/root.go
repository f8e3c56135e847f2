package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to manage your WorkHub account, works and resumes",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Whoami))
	cmd.AddCommand(factory.Build(commands.Signup))
	cmd.AddCommand(factory.Build(commands.Login))
	cmd.AddCommand(factory.Build(commands.Logout))
	cmd.AddCommand(factory.Build(commands.User))
	cmd.AddCommand(factory.Build(commands.Work))
	cmd.AddCommand(factory.Build(commands.Postwork))
	cmd.AddCommand(factory.Build(commands.Resume))
	cmd.AddCommand(factory.Build(commands.Profiles))

	os.Exit(factory.Run(cmd))
}
