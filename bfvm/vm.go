package bfvm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

type VM struct {
	Program  Program
	Tape     Tape
	Pointer  int
	PC       int
	EOF      EOFPolicy
	Resolver Resolver

	input  io.ByteReader
	output *bufio.Writer
	cause  error
}

// New returns a machine with a zeroed tape positioned at the start of program.
// A nil input behaves as an exhausted stream; a nil output discards.
func New(program Program, input io.ByteReader, output io.Writer) *VM {
	if output == nil {
		output = io.Discard
	}
	return &VM{
		Program:  program,
		Resolver: Scan{},
		input:    input,
		output:   bufio.NewWriter(output),
	}
}

// Run steps until the sentinel or a fault. It returns nil on normal
// termination and a *Fault otherwise.
func (v *VM) Run() error {
	for {
		switch status := v.Step(); status {
		case Continuing:
		case Done:
			if err := v.output.Flush(); err != nil {
				v.cause = err
				return v.fault(InterpreterFault)
			}
			return nil
		default:
			// keep what was printed before the fault
			_ = v.output.Flush()
			return v.fault(status)
		}
	}
}

// Step executes the instruction at PC. On a fault, PC and Pointer are left
// at their values before the instruction.
func (v *VM) Step() Status {
	code := v.Program.Code
	if v.PC < 0 || v.PC >= len(code) {
		v.cause = fmt.Errorf("program counter %d out of range [0, %d)", v.PC, len(code))
		return InterpreterFault
	}

	switch op := code[v.PC]; op {

	case Sentinel:
		return Done

	case '>':
		next, ok := shift(v.Pointer, 1)
		if !ok {
			v.cause = errors.New("pointer moved past tape end")
			return MemoryFault
		}
		v.Pointer = next

	case '<':
		next, ok := shift(v.Pointer, -1)
		if !ok {
			v.cause = errors.New("pointer moved before tape start")
			return MemoryFault
		}
		v.Pointer = next

	case '+':
		v.Tape[v.Pointer]++

	case '-':
		v.Tape[v.Pointer]--

	case '.':
		if err := v.output.WriteByte(v.Tape[v.Pointer]); err != nil {
			v.cause = err
			return InterpreterFault
		}

	case ',':
		if err := v.read(); err != nil {
			v.cause = err
			return InterpreterFault
		}

	case '[', ']':
		bracket := Open
		if op == ']' {
			bracket = Close
		}
		target, taken, status := v.Resolver.Resolve(code, v.PC, v.Tape[v.Pointer], bracket)
		switch status {
		case Continuing:
		case IllegalProgram:
			v.cause = fmt.Errorf("unmatched %c", op)
			return status
		default:
			v.cause = fmt.Errorf("cannot resolve %q at %d", op, v.PC)
			return status
		}
		if taken {
			v.PC = target
			return Continuing
		}

	}

	v.PC++
	return Continuing
}

func (v *VM) read() error {
	// prompts must be visible before blocking on input
	if err := v.output.Flush(); err != nil {
		return err
	}
	if v.input == nil {
		v.Tape[v.Pointer] = v.EOF.apply(v.Tape[v.Pointer])
		return nil
	}
	b, err := v.input.ReadByte()
	if errors.Is(err, io.EOF) {
		v.Tape[v.Pointer] = v.EOF.apply(v.Tape[v.Pointer])
		return nil
	} else if err != nil {
		return err
	}
	v.Tape[v.Pointer] = b
	return nil
}

func (v *VM) fault(status Status) *Fault {
	f := &Fault{
		Status:  status,
		PC:      v.PC,
		Pointer: v.Pointer,
		Cell:    v.Tape[v.Pointer],
		Err:     v.cause,
	}
	if v.PC >= 0 && v.PC < len(v.Program.Code) {
		f.Op = v.Program.Code[v.PC]
	}
	return f
}
