package logs

import (
	"io"
	"os"

	"github.com/reusee/dscope"
)

type Module struct {
	dscope.Module
}

type Span string

type spanKey struct{}

var SpanKey spanKey

// Writer receives terminal logs. Program output never goes here.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
