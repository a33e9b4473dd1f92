package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute runs args on the global executor, exiting with status 2 on error.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(2)
	}
}

// Positional collects every non-flag argument of the global executor.
func Positional() *[]string {
	var values []string
	GlobalExecutor.OnPositional(func(arg string) error {
		values = append(values, arg)
		return nil
	})
	return &values
}
