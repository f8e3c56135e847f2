package work

import (
	"encoding/json"
	"testing"

	"github.com/sa67/workhub-cli/internal/cli"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/commands/shared"
	"github.com/sa67/workhub-cli/internal/utils/test/assert"
	"github.com/sa67/workhub-cli/internal/utils/test/mock"
)

func TestWorkUpdateHandler(t *testing.T) {
	var capturedID string
	var captured []byte
	client := mock.WorkhubClient{
		UpdateWorkByIDFn: func(id string, work workhub.Record) (workhub.Response, error) {
			capturedID = id
			data, err := json.Marshal(work)
			captured = data
			return workhub.Response{StatusCode: 200}, err
		},
	}

	out, ui := mock.NewUI()

	cmd := &CommandUpdate{updateInputs{
		IDInputs:      shared.IDInputs{ID: "3"},
		PayloadInputs: shared.PayloadInputs{Data: `{"salary":350}`},
	}}
	assert.Nil(t, cmd.Handler(mock.NewProfile(t), ui, cli.Clients{Workhub: client}))

	assert.Equal(t, "3", capturedID)
	assert.Equal(t, `{"salary":350}`, string(captured))
	assert.Equal(t, "01:23:45 UTC INFO  Successfully updated work 3\n", out.String())
}
