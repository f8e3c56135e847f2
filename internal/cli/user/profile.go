package user

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sa67/workhub-cli/internal/auth"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/telemetry"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

const (
	// DefaultProfile is the default profile name
	DefaultProfile = "default"

	// ProfileType is the file type for profiles
	ProfileType = "yaml"

	envPrefix = "workhub"

	telemetryFile = "telemetry.log"
)

// set of supported CLI user profile flags
const (
	FlagProfile      = "profile"
	FlagProfileUsage = `Specify your profile (Default value: "default")`

	FlagBaseURL      = "base-url"
	FlagBaseURLUsage = "specify the base WorkHub server URL"
)

// Profile is the CLI profile
type Profile struct {
	Flags
	Name string

	dir string
	fs  afero.Fs
}

// Flags are the CLI profile flags
type Flags struct {
	BaseURL       string
	TelemetryMode telemetry.Mode
}

// NewDefaultProfile creates a new default CLI profile
func NewDefaultProfile() (*Profile, error) {
	return NewProfile(DefaultProfile)
}

// NewProfile creates a new CLI profile
func NewProfile(name string) (*Profile, error) {
	dir, dirErr := HomeDir()
	if dirErr != nil {
		return nil, fmt.Errorf("failed to create CLI profile: %w", dirErr)
	}

	return &Profile{
		Name: name,
		dir:  dir,
		fs:   afero.NewOsFs(),
	}, nil
}

// NewProfileWithFs creates a new CLI profile stored in the provided file system
func NewProfileWithFs(name, dir string, fs afero.Fs) *Profile {
	return &Profile{Name: name, dir: dir, fs: fs}
}

// Clear clears the specified CLI profile property
func (p Profile) Clear(name string) {
	p.SetString(name, "")
}

// SetString sets the specified CLI profile property
func (p Profile) SetString(name, value string) {
	viper.Set(p.propertyKey(name), value)
}

// GetString gets the specified CLI profile property
func (p Profile) GetString(name string) string {
	return viper.GetString(p.propertyKey(name))
}

func (p Profile) propertyKey(name string) string {
	return fmt.Sprintf("%s.%s", p.Name, name)
}

// Load loads the CLI profile
func (p Profile) Load() error {
	viper.SetFs(p.fs)
	viper.SetConfigName(p.Name)
	viper.AddConfigPath(p.dir)
	viper.SetConfigPermissions(0600)
	viper.SetConfigType(ProfileType)

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil // proceed if profile doesn't exist
		}
		return fmt.Errorf("failed to load CLI profile: %w", err)
	}
	return nil
}

// Save saves the CLI profile
func (p *Profile) Save() error {
	exists, existsErr := afero.DirExists(p.fs, p.dir)
	if existsErr != nil {
		return fmt.Errorf("failed to save CLI profile: %w", existsErr)
	}

	if !exists {
		if err := p.fs.MkdirAll(p.dir, 0700); err != nil {
			return fmt.Errorf("failed to save CLI profile: %w", err)
		}
	}

	viper.SetFs(p.fs)
	if err := viper.WriteConfigAs(p.Path()); err != nil {
		return fmt.Errorf("failed to save CLI profile: %w", err)
	}
	return nil
}

// ResolveFlags resolves the user profile flags
func (p *Profile) ResolveFlags() error {
	if p.Flags.TelemetryMode == telemetry.ModeEmpty {
		p.Flags.TelemetryMode = p.TelemetryMode()
	}
	p.SetString(keyTelemetryMode, string(p.Flags.TelemetryMode))

	if p.Flags.BaseURL == "" {
		baseURL := p.BaseURL()
		if baseURL == "" {
			baseURL = workhub.DefaultBaseURL
		}
		p.Flags.BaseURL = baseURL
	}
	p.SetBaseURL(p.Flags.BaseURL)

	return p.Save()
}

// Fs returns the CLI profile file system
func (p Profile) Fs() afero.Fs {
	return p.fs
}

// Dir returns the CLI profile directory
func (p Profile) Dir() string {
	return p.dir
}

// Path returns the CLI profile filepath
func (p Profile) Path() string {
	return filepath.Join(p.dir, p.Name+"."+ProfileType)
}

// TelemetryPath returns the filepath telemetry events are written to
func (p Profile) TelemetryPath() string {
	return filepath.Join(p.dir, telemetryFile)
}

// set of supported CLI profile keys
const (
	keyEmail     = "email"
	keyPassword  = "password"
	keyTokenType = "token_type"
	keyToken     = "token"
	keyUserID    = "user_id"
	keyResumeID  = "resume_id"

	keyBaseURL       = "base_url"
	keyTelemetryMode = "telemetry_mode"
)

// TelemetryMode gets the CLI profile telemetry mode
func (p Profile) TelemetryMode() telemetry.Mode {
	return telemetry.Mode(p.GetString(keyTelemetryMode))
}

// Credentials gets the CLI profile credentials
func (p Profile) Credentials() Credentials {
	return Credentials{
		Email:    p.GetString(keyEmail),
		Password: p.GetString(keyPassword),
	}
}

// SetCredentials sets the CLI profile credentials
func (p Profile) SetCredentials(creds Credentials) {
	p.SetString(keyEmail, creds.Email)
	p.SetString(keyPassword, creds.Password)
}

// ClearCredentials clears the CLI profile credentials
func (p Profile) ClearCredentials() {
	p.Clear(keyEmail)
	p.Clear(keyPassword)
}

// Session gets the CLI profile session
func (p Profile) Session() auth.Session {
	return auth.Session{
		TokenType: p.GetString(keyTokenType),
		Token:     p.GetString(keyToken),
		UserID:    p.GetString(keyUserID),
		ResumeID:  p.GetString(keyResumeID),
	}
}

// SetSession sets the CLI profile session
func (p Profile) SetSession(session auth.Session) {
	p.SetString(keyTokenType, session.TokenType)
	p.SetString(keyToken, session.Token)
	p.SetString(keyUserID, session.UserID)
	p.SetString(keyResumeID, session.ResumeID)
}

// ClearSession clears the CLI profile session
func (p Profile) ClearSession() {
	p.Clear(keyTokenType)
	p.Clear(keyToken)
	p.Clear(keyUserID)
	p.Clear(keyResumeID)
}

// ResumeID gets the resume id saved at sign in
func (p Profile) ResumeID() string {
	return p.GetString(keyResumeID)
}

// SetResumeID sets the resume id of the CLI profile session
func (p Profile) SetResumeID(resumeID string) {
	p.SetString(keyResumeID, resumeID)
}

// BaseURL gets the CLI profile WorkHub base url
func (p Profile) BaseURL() string {
	return p.GetString(keyBaseURL)
}

// SetBaseURL sets the CLI profile WorkHub base url
func (p Profile) SetBaseURL(baseURL string) {
	p.SetString(keyBaseURL, baseURL)
}
