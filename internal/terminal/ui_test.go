package terminal_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/sa67/workhub-cli/internal/terminal"
	"github.com/sa67/workhub-cli/internal/utils/test/assert"
	"github.com/sa67/workhub-cli/internal/utils/test/mock"
)

func TestUIPrint(t *testing.T) {
	for _, tc := range []struct {
		description string
		log         terminal.Log
		expectedOut string
		expectedErr string
	}{
		{
			description: "should use the default writer while printing an info log",
			log:         terminal.NewTextLog("test log"),
			expectedOut: "01:23:45 UTC INFO  test log\n",
		},
		{
			description: "should use the error writer while printing a warning log",
			log:         terminal.NewWarningLog("careful"),
			expectedErr: "01:23:45 UTC WARN  careful\n",
		},
		{
			description: "should use the error writer while printing an error log",
			log:         terminal.NewErrorLog(errors.New("something bad happened")),
			expectedErr: "01:23:45 UTC ERROR something bad happened\n",
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			out, errOut := new(bytes.Buffer), new(bytes.Buffer)
			ui := terminal.NewUI(terminal.UIConfig{DisableColors: true}, nil, out, errOut)

			tc.log.Time = mock.StaticTime
			assert.Nil(t, ui.Print(tc.log))

			assert.Equal(t, tc.expectedOut, out.String())
			assert.Equal(t, tc.expectedErr, errOut.String())
		})
	}
}

func TestUIConfirm(t *testing.T) {
	t.Run("should proceed without prompting when auto confirm is set", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, out)

		proceed, err := ui.Confirm("delete work %s?", "7")
		assert.Nil(t, err)
		assert.True(t, proceed, "expected confirm to proceed")
		assert.Equal(t, "", out.String())
	})

	for _, tc := range []struct {
		answer   string
		expected bool
	}{
		{"y", true},
		{"n", false},
	} {
		t.Run("should prompt the user and return the answer "+tc.answer, func(t *testing.T) {
			_, console, _, ui, consoleErr := mock.NewVT10XConsole()
			assert.Nil(t, consoleErr)
			defer console.Close()

			doneCh := make(chan struct{})
			go func() {
				defer close(doneCh)
				console.ExpectString("delete work 7?")
				console.SendLine(tc.answer)
				console.ExpectEOF()
			}()

			proceed, err := ui.Confirm("delete work %s?", "7")

			console.Tty().Close() // flush the writers
			<-doneCh              // wait for procedure to complete

			assert.Nil(t, err)
			assert.Equal(t, tc.expected, proceed)
		})
	}
}

func TestUISpinner(t *testing.T) {
	t.Run("should not animate when writing to a buffer", func(t *testing.T) {
		out := new(bytes.Buffer)
		ui := terminal.NewUI(terminal.UIConfig{}, nil, out, out)

		s := ui.Spinner("signing in", terminal.SpinnerOptions{})
		s.Start()
		s.SetMessage("still signing in")
		s.Stop()

		assert.Equal(t, "", out.String())
	})
}
