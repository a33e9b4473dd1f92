package bfconfigs

import (
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/cmds"
	"github.com/reusee/taibf/configs"
)

// set by -eof; nil means the config file decides
var eofFlag *bfvm.EOFPolicy

var noJumpTableFlag = cmds.Switch("-no-jump-table",
	"match brackets by scanning instead of a precomputed table")

func init() {
	cmds.Define("-eof", cmds.Func(func(str string) error {
		policy, err := bfvm.ParseEOFPolicy(str)
		if err != nil {
			return err
		}
		eofFlag = &policy
		return nil
	}).Desc("what ',' stores at end of input: unchanged, zero or max"))
}

func (Module) EOFPolicy(
	loader configs.Loader,
) bfvm.EOFPolicy {
	if eofFlag != nil {
		return *eofFlag
	}
	// the schema only admits parsable values
	policy, err := bfvm.ParseEOFPolicy(configs.First[string](loader, "eof"))
	if err != nil {
		panic(err)
	}
	return policy
}

func (Module) UseJumpTable(
	loader configs.Loader,
) bfvm.UseJumpTable {
	if *noJumpTableFlag {
		return false
	}
	var use bool
	if err := loader.AssignFirst("jump_table", &use); err == nil {
		return bfvm.UseJumpTable(use)
	}
	return true
}
