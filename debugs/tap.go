package debugs

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/reusee/taibf/logs"
	"go.starlark.net/repl"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
}

// Tap opens an interactive starlark session with globals bound.
type Tap func(ctx context.Context, what string, globals map[string]any)

func (Module) Tap(
	logger logs.Logger,
) Tap {
	return func(ctx context.Context, what string, globals map[string]any) {
		logger.InfoContext(ctx, "tap: "+what,
			"globals", slices.Sorted(maps.Keys(globals)),
		)
		defer func() {
			logger.InfoContext(ctx, "tap end: "+what)
		}()

		thread := &starlark.Thread{
			Name: what,
		}
		repl.REPLOptions(fileOptions, thread, toStringDict(globals))
	}
}

// Eval runs a starlark script with globals bound. print() writes to out.
type Eval func(ctx context.Context, name string, src []byte, globals map[string]any, out io.Writer) error

func (Module) Eval(
	logger logs.Logger,
) Eval {
	return func(ctx context.Context, name string, src []byte, globals map[string]any, out io.Writer) error {
		logger.DebugContext(ctx, "eval: "+name)
		thread := &starlark.Thread{
			Name: name,
			Print: func(_ *starlark.Thread, msg string) {
				fmt.Fprintln(out, msg)
			},
		}
		thread.SetLocal("context", ctx)
		_, err := starlark.ExecFileOptions(fileOptions, thread, name, src, toStringDict(globals))
		if err != nil {
			return fmt.Errorf("eval %s: %w", name, err)
		}
		return nil
	}
}
