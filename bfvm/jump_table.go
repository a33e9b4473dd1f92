package bfvm

// JumpTable maps every bracket position to its match, or -1 when the
// bracket is unmatched. Unmatched brackets still fault only when a taken
// branch reaches them.
type JumpTable []int

var _ Resolver = JumpTable(nil)

func NewJumpTable(code []byte) JumpTable {
	table := make(JumpTable, len(code))
	for i := range table {
		table[i] = -1
	}
	var opens []int
loop:
	for i, c := range code {
		switch c {
		case Sentinel:
			break loop
		case '[':
			opens = append(opens, i)
		case ']':
			if len(opens) == 0 {
				continue
			}
			open := opens[len(opens)-1]
			opens = opens[:len(opens)-1]
			table[open] = i
			table[i] = open
		}
	}
	return table
}

func (t JumpTable) Resolve(code []byte, pc int, cell byte, bracket Bracket) (target int, taken bool, status Status) {
	if status := checkBracket(code, pc, bracket); status != Continuing {
		return pc, false, status
	}
	if pc >= len(t) {
		return pc, false, InterpreterFault
	}
	if !bracket.taken(cell) {
		return pc, false, Continuing
	}
	match := t[pc]
	if match < 0 {
		return pc, false, IllegalProgram
	}
	return match + 1, true, Continuing
}
