// Package flags holds pflag values and helpers shared by the CLI commands.
package flags

import (
	"github.com/spf13/pflag"
)

// MarkHidden marks the named flag as hidden, the flag must be registered first
func MarkHidden(fs *pflag.FlagSet, name string) {
	if err := fs.MarkHidden(name); err != nil {
		panic(err)
	}
}
