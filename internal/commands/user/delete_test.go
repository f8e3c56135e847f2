package user

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/utils/test/assert"
	"github.com/sa67/workhub-cli/internal/utils/test/mock"
)

func TestUserDeleteHandler(t *testing.T) {
	t.Run("with auto confirm should delete the user", func(t *testing.T) {
		var capturedID string
		client := mock.WorkhubClient{
			DeleteUsersByIDFn: func(id string) (workhub.Response, error) {
				capturedID = id
				return workhub.Response{StatusCode: 200}, nil
			},
		}

		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, out)

		cmd := &CommandDelete{shared.IDInputs{ID: "7"}}
		assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, cli.Clients{Workhub: client}))

		assert.Equal(t, "7", capturedID)
		assert.Equal(t, "01:23:45 UTC INFO  Successfully deleted user 7\n", out.String())
	})

	t.Run("should not delete the user when the deletion is declined", func(t *testing.T) {
		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("Are you sure you want to delete user 7?")
			console.SendLine("n")
			console.ExpectEOF()
		}()

		var deleted bool
		client := mock.WorkhubClient{
			DeleteUsersByIDFn: func(id string) (workhub.Response, error) {
				deleted = true
				return workhub.Response{StatusCode: 200}, nil
			},
		}

		cmd := &CommandDelete{shared.IDInputs{ID: "7"}}
		err := cmd.Handler(mock.NewProfile(t), ui, cli.Clients{Workhub: client})

		console.Tty().Close() // flush the writers
		<-doneCh              // wait for procedure to complete

		assert.Nil(t, err)
		assert.False(t, deleted, "expected the user to not be deleted")
	})

	t.Run("should return the client error", func(t *testing.T) {
		client := mock.WorkhubClient{
			DeleteUsersByIDFn: func(id string) (workhub.Response, error) {
				return workhub.Response{StatusCode: 404}, workhub.ServerError{StatusCode: 404, Message: "record not found"}
			},
		}

		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, new(bytes.Buffer))

		cmd := &CommandDelete{shared.IDInputs{ID: "7"}}
		err := cmd.Handler(mock.NewProfile(t), ui, cli.Clients{Workhub: client})
		assert.Equal(t, errors.New("failed to delete user: record not found"), err)
	})
}
