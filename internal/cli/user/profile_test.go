package user

import (
	"testing"

	"github.com/sa67/workhub-cli/internal/auth"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/telemetry"
	"github.com/sa67/workhub-cli/internal/utils/test/assert"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

const testDir = "/home/test/.config/workhub-cli"

func newTestProfile() *Profile {
	return NewProfileWithFs(uuid.New().String(), testDir, afero.NewMemMapFs())
}

func TestProfileResolveFlags(t *testing.T) {
	t.Run("should provide defaults if flags are empty and set them in the profile", func(t *testing.T) {
		profile := newTestProfile()

		assert.Equal(t, telemetry.ModeEmpty, profile.Flags.TelemetryMode)
		assert.Equal(t, "", profile.Flags.BaseURL)

		assert.Nil(t, profile.ResolveFlags())

		assert.Equal(t, telemetry.ModeEmpty, profile.Flags.TelemetryMode)
		assert.Equal(t, telemetry.ModeEmpty, profile.TelemetryMode())

		assert.Equal(t, workhub.DefaultBaseURL, profile.Flags.BaseURL)
		assert.Equal(t, workhub.DefaultBaseURL, profile.BaseURL())
	})

	t.Run("should use flags to set them in the profile", func(t *testing.T) {
		profile := newTestProfile()
		profile.Flags = Flags{
			TelemetryMode: telemetry.ModeStdout,
			BaseURL:       "http://workhub.example.com",
		}

		assert.Nil(t, profile.ResolveFlags())

		assert.Equal(t, telemetry.ModeStdout, profile.TelemetryMode())
		assert.Equal(t, "http://workhub.example.com", profile.BaseURL())
	})

	t.Run("should keep a previously saved base url when no flag is set", func(t *testing.T) {
		profile := newTestProfile()
		profile.SetBaseURL("http://saved.example.com")

		assert.Nil(t, profile.ResolveFlags())

		assert.Equal(t, "http://saved.example.com", profile.Flags.BaseURL)
	})
}

func TestProfileSession(t *testing.T) {
	t.Run("should set get and clear the session", func(t *testing.T) {
		profile := newTestProfile()
		assert.Equal(t, auth.Session{}, profile.Session())

		session := auth.Session{TokenType: "Bearer", Token: "tok", UserID: "7", ResumeID: "42"}
		profile.SetSession(session)

		assert.Equal(t, session, profile.Session())
		assert.Equal(t, "42", profile.ResumeID())

		profile.ClearSession()
		assert.Equal(t, auth.Session{}, profile.Session())
	})

	t.Run("should replace only the resume id of the session", func(t *testing.T) {
		profile := newTestProfile()
		profile.SetSession(auth.Session{TokenType: "Bearer", Token: "tok", UserID: "7", ResumeID: "42"})

		profile.SetResumeID("43")

		assert.Equal(t, "43", profile.ResumeID())
		assert.Equal(t, auth.Session{TokenType: "Bearer", Token: "tok", UserID: "7", ResumeID: "43"}, profile.Session())
	})

	t.Run("should satisfy the auth service used by the workhub client", func(t *testing.T) {
		var service auth.Service = newTestProfile()
		service.SetSession(auth.Session{Token: "tok"})
		assert.True(t, service.Session().Authenticated(), "expected session to be authenticated")
	})
}

func TestProfileCredentials(t *testing.T) {
	profile := newTestProfile()
	profile.SetCredentials(Credentials{Email: "jane@example.com", Password: "secret"})

	assert.Equal(t, Credentials{Email: "jane@example.com", Password: "secret"}, profile.Credentials())
	assert.Equal(t, "******", profile.Credentials().RedactedPassword())

	profile.ClearCredentials()
	assert.Equal(t, Credentials{}, profile.Credentials())
}

func TestProfileSave(t *testing.T) {
	t.Run("should write the profile as yaml with owner only permissions", func(t *testing.T) {
		profile := newTestProfile()
		profile.SetSession(auth.Session{TokenType: "Bearer", Token: "tok"})

		assert.Nil(t, profile.Save())

		info, err := profile.Fs().Stat(profile.Path())
		assert.Nil(t, err)
		assert.False(t, info.IsDir(), "expected profile to be a file")

		contents, err := afero.ReadFile(profile.Fs(), profile.Path())
		assert.Nil(t, err)
		assert.Contains(t, string(contents), "token: tok")
		assert.Contains(t, string(contents), "token_type: Bearer")
	})

	t.Run("should list saved profiles", func(t *testing.T) {
		profile := newTestProfile()
		assert.Nil(t, profile.Save())
		assert.Nil(t, afero.WriteFile(profile.Fs(), testDir+"/telemetry.log", []byte("{}"), 0600))

		metas, err := ProfilesIn(profile.Fs(), testDir)
		assert.Nil(t, err)
		assert.Equal(t, []ProfileMeta{{Name: profile.Name, Filepath: profile.Path()}}, metas)
	})

	t.Run("should list no profiles when the home directory is missing", func(t *testing.T) {
		metas, err := ProfilesIn(afero.NewMemMapFs(), testDir)
		assert.Nil(t, err)
		assert.Equal(t, 0, len(metas))
	})
}

func TestRedact(t *testing.T) {
	for _, tc := range []struct {
		in  string
		out string
	}{
		{"", ""},
		{"a", "*"},
		{"p@ss", "****"},
	} {
		t.Run("should redact "+tc.in, func(t *testing.T) {
			assert.Equal(t, tc.out, Redact(tc.in))
		})
	}
}
