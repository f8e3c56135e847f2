package whoami

import (
	"time"

	"github.com/sa67/workhub-cli/internal/auth"
	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/terminal"
)

const (
	headerEmail     = "Email"
	headerUserID    = "User ID"
	headerResumeID  = "Resume ID"
	headerExpiresAt = "Expires At"
)

var headers = []string{headerEmail, headerUserID, headerResumeID, headerExpiresAt}

// Command is the `whoami` command
type Command struct {
	now func() time.Time
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	creds := profile.Credentials()
	session := profile.Session()

	if creds.Email == "" && !session.Authenticated() {
		return cli.ErrNotLoggedIn
	}

	if !session.Authenticated() {
		return ui.Print(terminal.NewTextLog("The user, %s, is not currently logged in", creds.Email))
	}

	row := map[string]interface{}{
		headerEmail:    creds.Email,
		headerUserID:   session.UserID,
		headerResumeID: session.ResumeID,
	}

	var logs []terminal.Log

	claims, err := auth.ParseClaims(session.Token)
	if err != nil {
		logs = append(logs, terminal.NewWarningLog("Unable to read the session token: %s", err))
	} else {
		if claims.Email != "" {
			row[headerEmail] = claims.Email
		}
		if claims.ExpiresAt != nil {
			row[headerExpiresAt] = claims.ExpiresAt.UTC().Format(time.RFC3339)
		}
		if claims.Expired(cmd.timeNow()) {
			logs = append(logs, terminal.NewWarningLog("The session has expired, please login again"))
		}
	}

	logs = append([]terminal.Log{
		terminal.NewTableLog("Currently logged in user", headers, row),
	}, logs...)
	return ui.Print(logs...)
}

func (cmd *Command) timeNow() time.Time {
	if cmd.now == nil {
		return time.Now()
	}
	return cmd.now()
}
