package main

import (
	"context"
	"fmt"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/runs"
)

var sources = cmds.Positional()

func main() {
	cmds.Execute(os.Args[1:])

	scope := dscope.New(
		new(runs.Module),
		modes.ForProduction(),
	)

	// bad config files should not surface as panics from providers
	scope.Call(func(
		loader configs.Loader,
	) {
		if err := loader.Check(); err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(2)
		}
	})

	var code int
	scope.Call(func(
		runSources runs.RunSources,
	) {
		code = runSources(context.Background(), *sources)
	})
	os.Exit(code)
}
