package programs

import (
	"fmt"
	"io"

	"github.com/mr-tron/base58"
	"github.com/reusee/taibf/bfvm"
	"github.com/zeebo/blake3"
)

const StdinName = "<stdin>"

// Load reads r to the end and returns the program with its digest.
func Load(name string, r io.Reader) (bfvm.Program, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return bfvm.Program{}, fmt.Errorf("read %s: %w", name, err)
	}
	program := bfvm.NewProgram(name, src)
	program.Digest = Digest(src)
	return program, nil
}

func Digest(src []byte) string {
	sum := blake3.Sum256(src)
	return base58.Encode(sum[:])
}
