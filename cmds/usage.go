package cmds

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.WriteUsage(os.Stderr)
}

// WriteUsage writes one line per command, aliases joined.
func (p *Executor) WriteUsage(w io.Writer) {
	names := make(map[*Command][]string)
	for name, command := range p.commands {
		names[command] = append(names[command], name)
	}
	lines := make([]string, 0, len(names))
	for command, ns := range names {
		slices.Sort(ns)
		line := strings.Join(ns, ", ")
		if command.Description != "" {
			line += "\t" + command.Description
		}
		lines = append(lines, line)
	}
	slices.Sort(lines)
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
