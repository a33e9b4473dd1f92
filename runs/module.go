package runs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/programs"
)

type Module struct {
	dscope.Module
	VM       bfvm.Module
	Configs  bfconfigs.Module
	Programs programs.Module
	Debugs   debugs.Module
	Logs     logs.Module
}

// Input feeds ',' for every run of the process.
type Input io.ByteReader

func (Module) Input(
	stdin programs.StdinBuffer,
) Input {
	return stdin
}

// Output receives '.' bytes.
type Output io.Writer

func (Module) Output() Output {
	return os.Stdout
}

// Diagnostics receives fault and load error reports.
type Diagnostics io.Writer

func (Module) Diagnostics() Diagnostics {
	return os.Stderr
}
