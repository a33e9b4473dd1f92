package bfvm

const TapeSize = 30000

type Tape [TapeSize]byte

// shift returns pointer moved by delta, or false if the result leaves the tape.
func shift(pointer, delta int) (int, bool) {
	next := pointer + delta
	if next < 0 || next >= TapeSize {
		return pointer, false
	}
	return next, true
}

// Window returns a copy of the cells within radius of center, clipped to the tape.
func (t *Tape) Window(center, radius int) (start int, cells []byte) {
	start = max(center-radius, 0)
	end := min(center+radius+1, TapeSize)
	if start >= end {
		return start, nil
	}
	cells = make([]byte, end-start)
	copy(cells, t[start:end])
	return start, cells
}
