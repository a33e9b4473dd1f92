package bfvm

// Sentinel marks the end of a program. A NUL inside the source ends it too.
const Sentinel byte = 0

type Program struct {
	Name   string
	Code   []byte
	Digest string
}

// NewProgram copies src and appends the sentinel.
func NewProgram(name string, src []byte) Program {
	code := make([]byte, len(src)+1)
	copy(code, src)
	code[len(src)] = Sentinel
	return Program{
		Name: name,
		Code: code,
	}
}

// Source returns the program text without the sentinel.
func (p Program) Source() []byte {
	if len(p.Code) == 0 {
		return nil
	}
	return p.Code[:len(p.Code)-1]
}
