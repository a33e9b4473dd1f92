package bfvm

import (
	"io"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type UseJumpTable bool

type NewVM func(program Program, input io.ByteReader, output io.Writer) *VM

func (Module) NewVM(
	eof EOFPolicy,
	useJumpTable UseJumpTable,
) NewVM {
	return func(program Program, input io.ByteReader, output io.Writer) *VM {
		vm := New(program, input, output)
		vm.EOF = eof
		if useJumpTable {
			vm.Resolver = NewJumpTable(program.Code)
		}
		return vm
	}
}
