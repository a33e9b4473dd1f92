package bfvm

import "fmt"

// EOFPolicy decides what ',' stores when the input is exhausted.
type EOFPolicy uint8

const (
	EOFUnchanged EOFPolicy = iota
	EOFZero
	EOFMax
)

func (p EOFPolicy) String() string {
	switch p {
	case EOFUnchanged:
		return "unchanged"
	case EOFZero:
		return "zero"
	case EOFMax:
		return "max"
	}
	return fmt.Sprintf("EOFPolicy(%d)", uint8(p))
}

func ParseEOFPolicy(str string) (EOFPolicy, error) {
	switch str {
	case "", "unchanged", "keep":
		return EOFUnchanged, nil
	case "zero", "0":
		return EOFZero, nil
	case "max", "255", "-1":
		return EOFMax, nil
	}
	return 0, fmt.Errorf("unknown eof policy: %s", str)
}

func (p EOFPolicy) apply(cell byte) byte {
	switch p {
	case EOFZero:
		return 0
	case EOFMax:
		return 0xff
	}
	return cell
}
