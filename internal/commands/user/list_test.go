package user

import (
	"errors"
	"testing"

	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/utils/test/assert"
	"github.com/sa67/workhub-cli/internal/utils/test/mock"
)

func TestUserListHandler(t *testing.T) {
	t.Run("should print a table of users", func(t *testing.T) {
		client := mock.WorkhubClient{
			GetUsersFn: func() (workhub.Response, error) {
				return workhub.Response{StatusCode: 200, Body: []byte(`{"data":[
					{"ID":1,"first_name":"Jane","email":"jane@example.com"},
					{"ID":2,"first_name":"John","email":"john@example.com"}
				]}`)}, nil
			},
		}

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, cli.Clients{Workhub: client}))

		assert.Equal(t, `01:23:45 UTC INFO  Found 2 users
  ID  first_name  email
  --  ----------  ----------------
  1   Jane        jane@example.com
  2   John        john@example.com
`, out.String())
	})

	t.Run("should print a message when there are no users", func(t *testing.T) {
		client := mock.WorkhubClient{
			GetUsersFn: func() (workhub.Response, error) {
				return workhub.Response{StatusCode: 200, Body: []byte(`[]`)}, nil
			},
		}

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, cli.Clients{Workhub: client}))

		assert.Equal(t, "01:23:45 UTC INFO  No users found\n", out.String())
	})

	t.Run("should return the client error", func(t *testing.T) {
		client := mock.WorkhubClient{
			GetUsersFn: func() (workhub.Response, error) {
				return workhub.Response{StatusCode: 401}, workhub.ServerError{StatusCode: 401, Message: "unauthorized"}
			},
		}

		_, ui := mock.NewUI()

		cmd := &CommandList{}
		err := cmd.Handler(mock.NewProfile(t), ui, cli.Clients{Workhub: client})
		assert.Equal(t, errors.New("failed to list users: unauthorized"), err)
	})
}
