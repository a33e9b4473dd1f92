package bfvm

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalProgram   = errors.New("illegal program")
	ErrMemoryFault      = errors.New("memory fault")
	ErrInterpreterFault = errors.New("interpreter fault")
)

// Fault is the terminal state of a run that did not reach the sentinel.
type Fault struct {
	Status  Status
	PC      int
	Op      byte
	Pointer int
	Cell    byte
	Err     error
}

var _ error = new(Fault)

func (f *Fault) Error() string {
	msg := fmt.Sprintf("%s at %d", f.Status, f.PC)
	if f.Op >= 0x20 && f.Op < 0x7f {
		msg += fmt.Sprintf(" (%q)", f.Op)
	}
	if f.Err != nil {
		msg += ": " + f.Err.Error()
	}
	return msg
}

func (f *Fault) Unwrap() []error {
	ret := []error{f.Status.sentinel()}
	if f.Err != nil {
		ret = append(ret, f.Err)
	}
	return ret
}

func (s Status) sentinel() error {
	switch s {
	case IllegalProgram:
		return ErrIllegalProgram
	case MemoryFault:
		return ErrMemoryFault
	}
	return ErrInterpreterFault
}
