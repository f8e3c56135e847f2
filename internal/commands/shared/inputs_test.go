package shared

import (
	"testing"

	"github.com/sa67/workhub-cli/internal/utils/test/assert"
	"github.com/sa67/workhub-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
)

func TestIDInputsResolve(t *testing.T) {
	t.Run("should not prompt when the id is provided", func(t *testing.T) {
		out, ui := mock.NewUI()

		inputs := IDInputs{ID: "7"}
		assert.Nil(t, inputs.Resolve(mock.NewProfile(t), ui))

		assert.Equal(t, "7", inputs.ID)
		assert.Equal(t, "", out.String())
	})

	t.Run("should prompt for the id when it is missing", func(t *testing.T) {
		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan struct{})
		go func() {
			defer close(doneCh)
			console.ExpectString("ID")
			console.SendLine("42")
			console.ExpectEOF()
		}()

		var inputs IDInputs
		err := inputs.Resolve(mock.NewProfile(t), ui)

		console.Tty().Close() // flush the writers
		<-doneCh              // wait for procedure to complete

		assert.Nil(t, err)
		assert.Equal(t, "42", inputs.ID)
	})
}

func TestPayloadInputs(t *testing.T) {
	fs := afero.NewMemMapFs()
	assert.Nil(t, afero.WriteFile(fs, "/tmp/work.json", []byte(`{"title":"dev","salary":1000}`), 0600))

	t.Run("should parse inline data", func(t *testing.T) {
		record, err := PayloadInputs{Data: `{"title":"ops"}`}.Record(fs)
		assert.Nil(t, err)

		title, _ := record.Field("title")
		assert.Equal(t, "ops", title)
	})

	t.Run("should read the document from a file", func(t *testing.T) {
		record, err := PayloadInputs{File: "/tmp/work.json"}.Record(fs)
		assert.Nil(t, err)
		assert.Equal(t, []string{"title", "salary"}, record.Keys())
	})

	for _, tc := range []struct {
		description string
		inputs      PayloadInputs
		expectedErr error
	}{
		{"should fail without a payload", PayloadInputs{}, ErrNoPayload},
		{"should fail with both payloads", PayloadInputs{Data: "{}", File: "/tmp/work.json"}, ErrMultiplePayloads},
	} {
		t.Run(tc.description, func(t *testing.T) {
			_, err := tc.inputs.Record(fs)
			assert.Equal(t, tc.expectedErr, err)
		})
	}

	t.Run("should fail on a missing file", func(t *testing.T) {
		_, err := PayloadInputs{File: "/tmp/missing.json"}.Record(fs)
		assert.NotNil(t, err)
	})

	t.Run("should fail on invalid JSON", func(t *testing.T) {
		_, err := PayloadInputs{Data: "{"}.Record(fs)
		assert.NotNil(t, err)
	})
}
