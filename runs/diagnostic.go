package runs

import (
	"bytes"
	"fmt"

	"github.com/reusee/taibf/bfvm"
)

// Diagnostic formats a fault as "name:line:col: kind: detail (pc N)".
func Diagnostic(program bfvm.Program, fault *bfvm.Fault) string {
	line, col := position(program.Source(), fault.PC)
	msg := fmt.Sprintf("%s:%d:%d: %s", program.Name, line, col, fault.Status)
	if fault.Err != nil {
		msg += ": " + fault.Err.Error()
	}
	switch fault.Status {
	case bfvm.MemoryFault:
		msg += fmt.Sprintf(" (pc %d, pointer %d)", fault.PC, fault.Pointer)
	default:
		msg += fmt.Sprintf(" (pc %d)", fault.PC)
	}
	return msg
}

func position(src []byte, pc int) (line, col int) {
	pc = min(max(pc, 0), len(src))
	before := src[:pc]
	line = bytes.Count(before, []byte("\n")) + 1
	col = pc - (bytes.LastIndexByte(before, '\n') + 1) + 1
	return
}
