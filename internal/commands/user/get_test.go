package user

import (
	"errors"
	"testing"

	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/utils/test/assert"
	"github.com/sa67/workhub-cli/internal/utils/test/mock"
)

func TestUserGetHandler(t *testing.T) {
	t.Run("should print the user document", func(t *testing.T) {
		var capturedID string
		client := mock.WorkhubClient{
			GetUsersByIDFn: func(id string) (workhub.Response, error) {
				capturedID = id
				return workhub.Response{StatusCode: 200, Body: []byte(`{"ID":7,"email":"jane@example.com"}`)}, nil
			},
		}

		out, ui := mock.NewUI()

		cmd := &CommandGet{shared.IDInputs{ID: "7"}}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, cli.Clients{Workhub: client}))

		assert.Equal(t, "7", capturedID)
		assert.Equal(t, `01:23:45 UTC INFO  User 7
{
  "ID": 7,
  "email": "jane@example.com"
}
`, out.String())
	})

	t.Run("should return the client error", func(t *testing.T) {
		client := mock.WorkhubClient{
			GetUsersByIDFn: func(id string) (workhub.Response, error) {
				return workhub.Response{StatusCode: 404}, workhub.ServerError{StatusCode: 404, Message: "record not found"}
			},
		}

		_, ui := mock.NewUI()

		cmd := &CommandGet{shared.IDInputs{ID: "7"}}
		err := cmd.Handler(mock.NewProfile(t), ui, cli.Clients{Workhub: client})
		assert.Equal(t, errors.New("failed to get user: record not found"), err)
	})
}
