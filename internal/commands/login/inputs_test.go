package login

import (
	"testing"

	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/utils/test/assert"
	"github.com/sa67/workhub-cli/internal/utils/test/mock"

	"github.com/Netflix/go-expect"
)

func TestLoginInputs(t *testing.T) {
	for _, tc := range []struct {
		description    string
		inputs         inputs
		prepareProfile func(p *user.Profile)
		procedure      func(c *expect.Console)
		expected       inputs
	}{
		{
			description: "should prompt for the email when not provided",
			inputs:      inputs{Password: "secret"},
			procedure: func(c *expect.Console) {
				c.ExpectString("Email")
				c.SendLine("jane@example.com")
				c.ExpectEOF()
			},
			expected: inputs{Email: "jane@example.com", Password: "secret"},
		},
		{
			description: "should prompt for the password when not provided",
			inputs:      inputs{Email: "jane@example.com"},
			procedure: func(c *expect.Console) {
				c.ExpectString("Password")
				c.SendLine("secret")
				c.ExpectEOF()
			},
			expected: inputs{Email: "jane@example.com", Password: "secret"},
		},
		{
			description: "should prompt for both the email and password when not provided",
			procedure: func(c *expect.Console) {
				c.ExpectString("Email")
				c.SendLine("jane@example.com")
				c.ExpectString("Password")
				c.SendLine("secret")
				c.ExpectEOF()
			},
			expected: inputs{Email: "jane@example.com", Password: "secret"},
		},
		{
			description: "should reuse the saved password for the same email",
			inputs:      inputs{Email: "jane@example.com"},
			prepareProfile: func(p *user.Profile) {
				p.SetCredentials(user.Credentials{Email: "jane@example.com", Password: "saved"})
			},
			procedure: func(c *expect.Console) { c.ExpectEOF() },
			expected:  inputs{Email: "jane@example.com", Password: "saved"},
		},
		{
			description: "should not prompt when flags provide the data",
			inputs:      inputs{Email: "jane@example.com", Password: "secret"},
			procedure:   func(c *expect.Console) { c.ExpectEOF() },
			expected:    inputs{Email: "jane@example.com", Password: "secret"},
		},
	} {
		t.Run(tc.description, func(t *testing.T) {
			profile := mock.NewProfile(t)
			if tc.prepareProfile != nil {
				tc.prepareProfile(profile)
			}

			_, console, _, ui, consoleErr := mock.NewVT10XConsole()
			assert.Nil(t, consoleErr)
			defer console.Close()

			doneCh := make(chan struct{})
			go func() {
				defer close(doneCh)
				tc.procedure(console)
			}()

			err := tc.inputs.Resolve(profile, ui)

			console.Tty().Close() // flush the writers
			<-doneCh              // wait for procedure to complete

			assert.Nil(t, err)
			assert.Equal(t, tc.expected, tc.inputs)
		})
	}
}
