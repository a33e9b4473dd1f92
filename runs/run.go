package runs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/programs"
)

// RunProgram runs program on a fresh machine and reports any fault.
type RunProgram func(ctx context.Context, program bfvm.Program) error

func (Module) RunProgram(
	newVM bfvm.NewVM,
	input Input,
	output Output,
	diagnostics Diagnostics,
	newSpan logs.NewSpan,
	logger logs.Logger,
	onFault OnFault,
) RunProgram {
	return func(ctx context.Context, program bfvm.Program) error {
		ctx, _ = newSpan(ctx, "",
			"program", program.Name,
			"digest", program.Digest,
		)

		vm := newVM(program, input, output)
		start := time.Now()
		err := vm.Run()

		var fault *bfvm.Fault
		if !errors.As(err, &fault) {
			logger.InfoContext(ctx, "run done",
				"duration", time.Since(start),
			)
			return nil
		}

		fmt.Fprintln(diagnostics, Diagnostic(program, fault))
		// the diagnostic already went to stderr
		logger.InfoContext(ctx, "run faulted",
			"status", fault.Status.String(),
			"pc", fault.PC,
			"pointer", fault.Pointer,
			"cell", fault.Cell,
		)
		onFault(ctx, vm, fault)

		return logs.WrapSpan(ctx, err)
	}
}

// RunSources runs every source in order and returns the process exit code.
// No sources means one program read from standard input.
type RunSources func(ctx context.Context, sources []string) int

func (Module) RunSources(
	open programs.Open,
	runProgram RunProgram,
	diagnostics Diagnostics,
	logger logs.Logger,
) RunSources {
	return func(ctx context.Context, sources []string) int {
		if len(sources) == 0 {
			sources = []string{"-"}
		}

		code := 0
		for _, source := range sources {
			program, err := open(ctx, source)
			if err != nil {
				fmt.Fprintf(diagnostics, "%v\n", err)
				logger.InfoContext(ctx, "load failed", "source", source, "error", err)
				code = 1
				continue
			}
			if err := runProgram(ctx, program); err != nil {
				code = 1
			}
		}

		return code
	}
}

// OnFault inspects the machine state of a faulted run.
type OnFault func(ctx context.Context, vm *bfvm.VM, fault *bfvm.Fault)

func (Module) OnFault(
	tapOnFault bfconfigs.TapOnFault,
	tapScript bfconfigs.TapScript,
	tap debugs.Tap,
	eval debugs.Eval,
	diagnostics Diagnostics,
	logger logs.Logger,
) OnFault {
	return func(ctx context.Context, vm *bfvm.VM, fault *bfvm.Fault) {
		switch {

		case tapScript != "":
			src, err := os.ReadFile(string(tapScript))
			if err != nil {
				logger.ErrorContext(ctx, "read tap script", "error", err)
				return
			}
			if err := eval(ctx, string(tapScript), src, FaultGlobals(vm, fault), diagnostics); err != nil {
				logger.ErrorContext(ctx, "tap script", "error", err)
			}

		case bool(tapOnFault):
			tap(ctx, "fault", FaultGlobals(vm, fault))

		}
	}
}

const windowRadius = 16

// FaultGlobals exposes the machine state to tap scripts.
func FaultGlobals(vm *bfvm.VM, fault *bfvm.Fault) map[string]any {
	start, cells := vm.Tape.Window(fault.Pointer, windowRadius)
	window := make([]int, len(cells))
	for i, cell := range cells {
		window[i] = int(cell)
	}
	return map[string]any{
		"name":    vm.Program.Name,
		"program": string(vm.Program.Source()),
		"status":  fault.Status.String(),
		"pc":      fault.PC,
		"op":      string(rune(fault.Op)),
		"pointer": fault.Pointer,
		"cell":    int(fault.Cell),
		"start":   start,
		"window":  window,
		"detail":  fmt.Sprint(fault.Err),
		"read": func(i int) int {
			if i < 0 || i >= bfvm.TapeSize {
				return -1
			}
			return int(vm.Tape[i])
		},
	}
}
