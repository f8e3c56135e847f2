package flags

import (
	"fmt"
)

// Arg is a flag arg represented by its name and optional value
type Arg struct {
	Name  string
	Value interface{}
}

func (a Arg) String() string {
	if a.Value == nil {
		return " --" + a.Name
	}
	return fmt.Sprintf(" --%s %v", a.Name, a.Value)
}

// Command renders a suggested command line from its name and args
func Command(name string, args ...Arg) string {
	cmd := name
	for _, arg := range args {
		cmd += arg.String()
	}
	return cmd
}
