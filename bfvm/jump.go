package bfvm

type Bracket uint8

const (
	Open Bracket = iota + 1
	Close
)

func (b Bracket) Char() byte {
	switch b {
	case Open:
		return '['
	case Close:
		return ']'
	}
	return 0
}

func (b Bracket) taken(cell byte) bool {
	if b == Open {
		return cell == 0
	}
	return cell != 0
}

// Resolver decides whether the bracket at pc jumps, and where to.
// A taken branch continues right after the matching bracket.
type Resolver interface {
	Resolve(code []byte, pc int, cell byte, bracket Bracket) (target int, taken bool, status Status)
}

// Scan resolves brackets by scanning the program text on every jump.
type Scan struct{}

var _ Resolver = Scan{}

func (Scan) Resolve(code []byte, pc int, cell byte, bracket Bracket) (int, bool, Status) {
	return Resolve(code, pc, cell, bracket)
}

func Resolve(code []byte, pc int, cell byte, bracket Bracket) (target int, taken bool, status Status) {
	if status := checkBracket(code, pc, bracket); status != Continuing {
		return pc, false, status
	}
	if !bracket.taken(cell) {
		return pc, false, Continuing
	}

	depth := 0
	switch bracket {

	case Open:
		for i := pc + 1; i < len(code); i++ {
			switch code[i] {
			case Sentinel:
				return pc, false, IllegalProgram
			case '[':
				depth++
			case ']':
				if depth == 0 {
					return i + 1, true, Continuing
				}
				depth--
			}
		}

	case Close:
		for i := pc - 1; i >= 0; i-- {
			switch code[i] {
			case ']':
				depth++
			case '[':
				if depth == 0 {
					return i + 1, true, Continuing
				}
				depth--
			}
		}

	}

	return pc, false, IllegalProgram
}

func checkBracket(code []byte, pc int, bracket Bracket) Status {
	char := bracket.Char()
	if char == 0 {
		return InterpreterFault
	}
	if pc < 0 || pc >= len(code) || code[pc] != char {
		return InterpreterFault
	}
	return Continuing
}
