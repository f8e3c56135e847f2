package shared

import (
	"errors"
	"fmt"

	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// set of shared resource flags
const (
	FlagID      = "id"
	FlagIDUsage = "specify the id of the %s"

	FlagData      = "data"
	FlagDataShort = "d"
	FlagDataUsage = "specify the %s as an inline JSON document"

	FlagFile      = "file"
	FlagFileUsage = "specify the path of a JSON file holding the %s"
)

// set of resource input errors
var (
	ErrNoID             = errors.New("must specify an id")
	ErrNoPayload        = errors.New("must specify either --data or --file")
	ErrMultiplePayloads = errors.New("must specify only one of --data or --file")
)

// IDInputs resolves the id of the resource a command targets
type IDInputs struct {
	ID string
}

// Flags registers the --id flag
func (i *IDInputs) Flags(fs *pflag.FlagSet, resource string) {
	fs.StringVar(&i.ID, FlagID, "", fmt.Sprintf(FlagIDUsage, resource))
}

// Resolve prompts for the id when it is not provided
func (i *IDInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.ID != "" {
		return nil
	}
	if err := ui.AskOne(&survey.Input{Message: "ID"}, &i.ID); err != nil {
		return err
	}
	if i.ID == "" {
		return ErrNoID
	}
	return nil
}

// PayloadInputs resolves the JSON document a command sends
type PayloadInputs struct {
	Data string
	File string
}

// Flags registers the --data and --file flags
func (i *PayloadInputs) Flags(fs *pflag.FlagSet, resource string) {
	fs.StringVarP(&i.Data, FlagData, FlagDataShort, "", fmt.Sprintf(FlagDataUsage, resource))
	fs.StringVar(&i.File, FlagFile, "", fmt.Sprintf(FlagFileUsage, resource))
}

// Validate checks exactly one payload source is set
func (i PayloadInputs) Validate() error {
	switch {
	case i.Data == "" && i.File == "":
		return ErrNoPayload
	case i.Data != "" && i.File != "":
		return ErrMultiplePayloads
	}
	return nil
}

// Bytes returns the raw JSON document, reading --file through fs
func (i PayloadInputs) Bytes(fs afero.Fs) ([]byte, error) {
	if err := i.Validate(); err != nil {
		return nil, err
	}
	if i.Data != "" {
		return []byte(i.Data), nil
	}

	data, err := afero.ReadFile(fs, i.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", i.File, err)
	}
	return data, nil
}

// Record parses the JSON document into a record
func (i PayloadInputs) Record(fs afero.Fs) (workhub.Record, error) {
	data, err := i.Bytes(fs)
	if err != nil {
		return workhub.Record{}, err
	}

	record, err := workhub.ParseRecord(data)
	if err != nil {
		return workhub.Record{}, fmt.Errorf("failed to parse JSON document: %w", err)
	}
	return record, nil
}
