package bfconfigs

import (
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/vars"
)

type TapOnFault bool

func (TapOnFault) ConfigExpr() string {
	return "tap_on_fault"
}

var _ configs.Configurable = TapOnFault(false)

// TapScript is the path of a starlark script run on faults.
type TapScript string

func (TapScript) ConfigExpr() string {
	return "tap_script"
}

var _ configs.Configurable = TapScript("")

var (
	tapFlag       = cmds.Switch("-tap", "open a starlark session when a run faults")
	tapScriptFlag = cmds.Var[string]("-tap-script", "starlark script evaluated when a run faults")
)

func (Module) TapOnFault(
	loader configs.Loader,
) TapOnFault {
	return TapOnFault(*tapFlag || bool(configs.Configured[TapOnFault](loader)))
}

func (Module) TapScript(
	loader configs.Loader,
) TapScript {
	return vars.FirstNonZero(
		TapScript(*tapScriptFlag),
		configs.Configured[TapScript](loader),
	)
}
