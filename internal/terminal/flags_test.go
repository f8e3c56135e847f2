package terminal

import (
	"errors"
	"testing"

	"github.com/sa67/workhub-cli/internal/utils/test/assert"
)

func TestOutputFormatSet(t *testing.T) {
	for _, tc := range []struct {
		value       string
		expected    OutputFormat
		expectedErr error
	}{
		{value: "", expected: OutputFormatText},
		{value: "json", expected: OutputFormatJSON},
		{value: "yaml", expected: OutputFormatYAML},
		{value: "xml", expectedErr: errors.New("unsupported value, use one of [json, yaml] instead")},
	} {
		t.Run("should set the output format for value: "+tc.value, func(t *testing.T) {
			var of OutputFormat

			err := of.Set(tc.value)

			assert.Equal(t, tc.expectedErr, err)
			assert.Equal(t, tc.expected, of)
		})
	}
}
