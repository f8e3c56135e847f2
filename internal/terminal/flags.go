package terminal

import (
	"fmt"
	"strings"
)

// set of supported terminal ui flags
const (
	FlagAutoConfirm      = "yes"
	FlagAutoConfirmShort = "y"
	FlagAutoConfirmUsage = "automatically proceed through command confirmations"

	FlagDisableColors      = "disable-colors"
	FlagDisableColorsUsage = "disable all output styling"

	FlagOutputFormat      = "output-format"
	FlagOutputFormatShort = "f"
	FlagOutputFormatUsage = "set the output format, available options: [json, yaml]"

	FlagOutputTarget      = "output-target"
	FlagOutputTargetShort = "o"
	FlagOutputTargetUsage = "write output to the specified filepath"
)

// OutputFormat is the terminal output format
type OutputFormat string

// set of supported terminal output formats
const (
	OutputFormatText OutputFormat = "" // zero-valued to be flag's default
	OutputFormatJSON OutputFormat = "json"
	OutputFormatYAML OutputFormat = "yaml"
)

var allOutputFormats = []OutputFormat{OutputFormatJSON, OutputFormatYAML}

func (of OutputFormat) String() string { return string(of) }

// Type returns the OutputFormat type
func (of OutputFormat) Type() string { return "string" }

// Set validates and sets the output format value
func (of *OutputFormat) Set(val string) error {
	outputFormat := OutputFormat(val)

	if !isValidOutputFormat(outputFormat) {
		formats := make([]string, len(allOutputFormats))
		for i, format := range allOutputFormats {
			formats[i] = string(format)
		}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(formats, ", "))
	}

	*of = outputFormat
	return nil
}

func isValidOutputFormat(outputFormat OutputFormat) bool {
	switch outputFormat {
	case
		OutputFormatText,
		OutputFormatJSON,
		OutputFormatYAML:
		return true
	}
	return false
}
