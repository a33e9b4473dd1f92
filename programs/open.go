package programs

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/nets"
)

var ErrOpen = errors.New("cannot open program source")

type Stdin io.Reader

func (Module) Stdin() Stdin {
	return os.Stdin
}

// StdinBuffer is the only reader of Stdin. Programs loaded from "-" and
// bytes read by ',' come from the same buffer, so neither loses the other's
// data.
type StdinBuffer interface {
	io.Reader
	io.ByteReader
}

func (Module) StdinBuffer(
	stdin Stdin,
) StdinBuffer {
	return bufio.NewReader(stdin)
}

// Open loads a program from a source argument: "-" or "" for standard input,
// an http(s) URL, a zstd compressed file ending in ".zst", or a plain file.
type Open func(ctx context.Context, source string) (bfvm.Program, error)

func (Module) Open(
	client nets.HTTPClient,
	stdin StdinBuffer,
	logger logs.Logger,
) Open {
	return func(ctx context.Context, source string) (program bfvm.Program, err error) {
		defer func() {
			if err == nil {
				logger.DebugContext(ctx, "program loaded",
					"source", source,
					"size", len(program.Source()),
					"digest", program.Digest,
				)
			}
		}()

		switch {

		case source == "" || source == "-":
			return Load(StdinName, stdin)

		case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
			return fetch(ctx, client, source)

		}

		f, err := os.Open(source)
		if err != nil {
			return bfvm.Program{}, fmt.Errorf("%w: %w", ErrOpen, err)
		}
		defer f.Close()

		var r io.Reader = f
		if strings.HasSuffix(source, ".zst") {
			decoder, err := zstd.NewReader(f)
			if err != nil {
				return bfvm.Program{}, fmt.Errorf("%w: %s: %w", ErrOpen, source, err)
			}
			defer decoder.Close()
			r = decoder
		}

		return Load(source, r)
	}
}

func fetch(ctx context.Context, client nets.HTTPClient, url string) (bfvm.Program, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return bfvm.Program{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return bfvm.Program{}, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return bfvm.Program{}, fmt.Errorf("%w: %s: %s", ErrOpen, url, resp.Status)
	}
	return Load(url, resp.Body)
}
