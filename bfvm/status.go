package bfvm

type Status uint8

const (
	Continuing Status = iota
	Done
	IllegalProgram
	InterpreterFault
	MemoryFault
)

func (s Status) String() string {
	switch s {
	case Continuing:
		return "continuing"
	case Done:
		return "done"
	case IllegalProgram:
		return "illegal program"
	case InterpreterFault:
		return "interpreter fault"
	case MemoryFault:
		return "memory fault"
	}
	return "unknown status"
}
