package commands

import (
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/commands/login"
	"github.com/sa67/workhub-cli/internal/commands/logout"
	"github.com/sa67/workhub-cli/internal/commands/postwork"
	"github.com/sa67/workhub-cli/internal/commands/profile"
	"github.com/sa67/workhub-cli/internal/commands/resume"
	"github.com/sa67/workhub-cli/internal/commands/signup"
	"github.com/sa67/workhub-cli/internal/commands/user"
	"github.com/sa67/workhub-cli/internal/commands/whoami"
	"github.com/sa67/workhub-cli/internal/commands/work"
)

// set of commands
var (
	Signup = cli.CommandDefinition{
		Command:     &signup.Command{},
		Use:         "signup",
		Description: "Create a new WorkHub user",
		Help: `Create a new WorkHub user

	Signs up a new user with the WorkHub server. The server creates an empty resume
	for the user, whose id is printed once the user is created. Any required
	field not provided as a flag is prompted for.`,
	}
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Log in to WorkHub with an email and password",
		Help: `Log in to WorkHub with an email and password

	The session token, user id and resume id returned by the server are saved to
	the CLI profile and sent along with every subsequent request.`,
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Terminate the current user's session",
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's details",
	}
	Profiles = cli.CommandDefinition{
		Command:     &profile.CommandList{},
		Use:         "profiles",
		Description: "List the CLI profiles saved on this machine",
	}

	User     = user.Command
	Work     = work.Command
	Postwork = postwork.Command
	Resume   = resume.Command
)
