package terminal

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/fatih/color"
)

// UI is a terminal UI
type UI interface {
	AutoConfirm() bool
	Ask(answers interface{}, questions ...*survey.Question) error
	AskOne(prompt survey.Prompt, answer interface{}) error
	Confirm(format string, args ...interface{}) (bool, error)
	Print(logs ...Log) error
	Spinner(message string, opts SpinnerOptions) Spinner
}

// UIConfig holds the global config for the CLI ui
type UIConfig struct {
	AutoConfirm   bool
	DisableColors bool
	OutputFormat  OutputFormat
	OutputTarget  string
}

// NewUI creates a new terminal UI
func NewUI(config UIConfig, in io.Reader, out, err io.Writer) UI {
	color.NoColor = config.DisableColors || config.OutputFormat != OutputFormatText

	return &ui{
		config: config,
		in:     in,
		out:    out,
		err:    err,
	}
}

type ui struct {
	config UIConfig
	in     io.Reader
	out    io.Writer
	err    io.Writer
}

func (ui *ui) AutoConfirm() bool {
	return ui.config.AutoConfirm
}

func (ui *ui) Ask(answers interface{}, questions ...*survey.Question) error {
	stdio := ui.toStdio()
	return survey.Ask(questions, answers, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
}

func (ui *ui) AskOne(prompt survey.Prompt, answer interface{}) error {
	stdio := ui.toStdio()
	return survey.AskOne(prompt, answer, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
}

func (ui *ui) Confirm(format string, args ...interface{}) (bool, error) {
	if ui.config.AutoConfirm {
		return true, nil
	}

	var proceed bool
	if err := ui.AskOne(&survey.Confirm{Message: fmt.Sprintf(format, args...)}, &proceed); err != nil {
		return false, err
	}
	return proceed, nil
}

func (ui *ui) Print(logs ...Log) error {
	for _, log := range logs {
		output, err := log.Print(ui.config.OutputFormat)
		if err != nil {
			return err
		}

		writer := ui.out
		if log.Level == LogLevelError || log.Level == LogLevelWarn {
			writer = ui.err
		}

		if _, err := fmt.Fprintln(writer, output); err != nil {
			return err
		}
	}
	return nil
}

// Spinner only animates on an interactive stderr with text output
func (ui *ui) Spinner(message string, opts SpinnerOptions) Spinner {
	if ui.config.OutputFormat != OutputFormatText {
		return noopSpinner{}
	}
	if f, ok := ui.err.(*os.File); !ok || f != os.Stderr {
		return noopSpinner{}
	}
	return newUISpinner(ui.err, message, opts)
}

func (ui *ui) toStdio() terminal.Stdio {
	in, ok := ui.in.(terminal.FileReader)
	if !ok {
		in = noopFdReader{ui.in}
	}
	out, ok := ui.out.(terminal.FileWriter)
	if !ok {
		out = noopFdWriter{ui.out}
	}
	return terminal.Stdio{In: in, Out: out, Err: ui.err}
}

type noopFdReader struct {
	io.Reader
}

func (r noopFdReader) Fd() uintptr { return 0 }

type noopFdWriter struct {
	io.Writer
}

func (w noopFdWriter) Fd() uintptr { return 0 }
