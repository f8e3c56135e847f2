package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sa67/workhub-cli/internal/cli/user"
	"github.com/sa67/workhub-cli/internal/cloud/workhub"
	"github.com/sa67/workhub-cli/internal/telemetry"
	"github.com/sa67/workhub-cli/internal/terminal"
	"github.com/sa67/workhub-cli/internal/utils/flags"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// set of global CLI flags
const (
	FlagVerbose      = "verbose"
	FlagVerboseShort = "v"
	FlagVerboseUsage = "log every WorkHub request to stderr"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile          *user.Profile
	ui               terminal.UI
	uiConfig         terminal.UIConfig
	verbose          bool
	inReader         io.Reader
	outWriter        io.Writer
	errWriter        io.Writer
	outCloser        io.Closer
	errLogger        zerolog.Logger
	telemetryService *telemetry.Service

	// workhubClient replaces the client built from the profile when set
	workhubClient workhub.Client
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	profile, err := user.NewDefaultProfile()
	if err != nil {
		return nil, err
	}

	return &CommandFactory{
		profile: profile,
		errLogger: zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
			With().
			Timestamp().
			Logger(),
	}, nil
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command == nil {
		return &cmd
	}

	if command, ok := command.Command.(CommandFlagger); ok {
		fs := cmd.Flags()
		fs.SortFlags = false // ensures command flags are added unsorted
		command.Flags(fs)
	}

	cmd.PersistentPreRunE = func(c *cobra.Command, a []string) error {
		factory.ensureUI()
		c.SetOut(factory.outWriter)
		c.SetErr(factory.errWriter)

		if err := factory.profile.ResolveFlags(); err != nil {
			return err
		}

		factory.telemetryService = telemetry.NewService(
			factory.profile.TelemetryMode(),
			telemetry.Options{
				UserID:   factory.profile.Session().UserID,
				Command:  display,
				Version:  Version,
				Stdout:   factory.outWriter,
				FilePath: factory.profile.TelemetryPath(),
			},
		)
		return nil
	}

	if command, ok := command.Command.(CommandInputs); ok {
		cmd.PreRunE = func(c *cobra.Command, a []string) error {
			if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
				return fmt.Errorf("%s setup failed: %w", display, err)
			}
			return nil
		}
	}

	cmd.RunE = func(c *cobra.Command, a []string) error {
		factory.telemetryService.TrackEvent(telemetry.EventTypeCommandStart)

		err := command.Command.Handler(factory.profile, factory.ui, Clients{
			Workhub: factory.newWorkhubClient(),
		})
		if err != nil {
			data := []telemetry.EventData{{Key: telemetry.EventDataKeyErr, Value: err.Error()}}

			var statusErr terminal.StatusCoder
			if errors.As(err, &statusErr) {
				data = append(data, telemetry.EventData{Key: telemetry.EventDataKeyStatus, Value: statusErr.Status()})
			}

			factory.telemetryService.TrackEvent(telemetry.EventTypeCommandError, data...)
			return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
		}

		factory.telemetryService.TrackEvent(telemetry.EventTypeCommandComplete)
		return nil
	}

	return &cmd
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.telemetryService != nil {
		factory.telemetryService.Close()
	}

	if factory.outCloser != nil {
		factory.outCloser.Close()
	}
}

// Run executes the command and returns the process exit code
func (factory *CommandFactory) Run(cmd *cobra.Command) int {
	defer factory.Close()

	if err := factory.execute(cmd); err != nil {
		return 1
	}
	return 0
}

func (factory *CommandFactory) execute(cmd *cobra.Command) error {
	err := cmd.Execute()
	if err == nil {
		return nil
	}

	if factory.ui == nil {
		factory.errLogger.Error().Err(err).Msg("command failed")
		return err
	}

	var disableUsage DisableUsage
	if !errors.As(err, &disableUsage) {
		fmt.Fprintln(factory.errWriter, cmd.UsageString())
	}

	logs := []terminal.Log{terminal.NewErrorLog(err)}

	var suggester CommandSuggester
	if errors.As(err, &suggester) {
		logs = append(logs, terminal.NewFollowupLog(terminal.FollowupCommandMessage, suggester.SuggestedCommands()...))
	}

	if printErr := factory.ui.Print(logs...); printErr != nil {
		factory.errLogger.Error().Err(printErr).Msg("failed to print error")
	}
	return err
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, user.FlagProfile, user.DefaultProfile, user.FlagProfileUsage)
	fs.Var(&factory.profile.Flags.TelemetryMode, telemetry.FlagMode, telemetry.FlagModeUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, terminal.FlagOutputTargetShort, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)

	fs.BoolVarP(&factory.verbose, FlagVerbose, FlagVerboseShort, false, FlagVerboseUsage)

	// hidden flags
	fs.StringVar(&factory.profile.Flags.BaseURL, user.FlagBaseURL, "", user.FlagBaseURLUsage)
	flags.MarkHidden(fs, user.FlagBaseURL)
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal().Err(err).Msg("failed to start " + Name)
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" {
		f, err := factory.profile.Fs().OpenFile(filepath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal().Err(err).Msg("failed to open target file")
		}
		factory.outWriter = f
		factory.outCloser = f
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}

func (factory *CommandFactory) newWorkhubClient() workhub.Client {
	if factory.workhubClient != nil {
		return factory.workhubClient
	}
	return workhub.NewAuthClient(
		workhub.Config{
			BaseURL: factory.profile.BaseURL(),
			Logger:  newRequestLogger(factory.errWriter, factory.verbose),
		},
		factory.profile,
	)
}

func newRequestLogger(w io.Writer, verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}).
		Level(zerolog.DebugLevel).
		With().
		Timestamp().
		Logger()
}
