package runs

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/taibf/bfconfigs"
	"github.com/reusee/taibf/bfvm"
	"github.com/reusee/taibf/configs"
	"github.com/reusee/taibf/debugs"
	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/modes"
	"github.com/reusee/taibf/programs"
)

const hello = "++++++++[>++++[>++>+++>+++>+<<<<-]>+>+>->>+[<]<-]>>.>---.+++++++..+++."

type env struct {
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	dir    string
}

func newScope(t *testing.T, stdin string, config string) (dscope.Scope, *env) {
	e := &env{
		stdout: new(bytes.Buffer),
		stderr: new(bytes.Buffer),
		dir:    t.TempDir(),
	}
	var paths []string
	if config != "" {
		path := filepath.Join(e.dir, "taibf.cue")
		if err := os.WriteFile(path, []byte(config), 0644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	scope := dscope.New(
		modes.ForTest(t),
		new(Module),
	).Fork(
		func() configs.Loader {
			return configs.NewLoader(paths, bfconfigs.Schema)
		},
		func() programs.Stdin {
			return strings.NewReader(stdin)
		},
		func() Output {
			return e.stdout
		},
		func() Diagnostics {
			return e.stderr
		},
	)
	return scope, e
}

func (e *env) write(t *testing.T, name string, content string) string {
	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunSources(t *testing.T) {
	scope, e := newScope(t, "", "")
	scope.Call(func(
		runSources RunSources,
	) {
		a := e.write(t, "a.bf", hello)
		b := e.write(t, "b.bf", "+++++[>+++++++++++++<-]>.")
		if code := runSources(t.Context(), []string{a, b}); code != 0 {
			t.Fatalf("got %d: %s", code, e.stderr)
		}
		if out := e.stdout.String(); out != "HelloA" {
			t.Fatalf("got %q", out)
		}
		if e.stderr.Len() != 0 {
			t.Fatalf("got %s", e.stderr)
		}
	})
}

func TestFaultsAndMissingFiles(t *testing.T) {
	scope, e := newScope(t, "", "")
	scope.Call(func(
		runSources RunSources,
	) {
		bad := e.write(t, "bad.bf", "+.\n<")
		good := e.write(t, "good.bf", "+++.")
		missing := filepath.Join(e.dir, "missing.bf")

		code := runSources(t.Context(), []string{bad, missing, good})
		if code != 1 {
			t.Fatalf("got %d", code)
		}
		// later sources still run
		if out := e.stdout.String(); out != "\x01\x03" {
			t.Fatalf("got %q", out)
		}
		lines := strings.Split(strings.TrimSpace(e.stderr.String()), "\n")
		if len(lines) != 2 {
			t.Fatalf("got %q", lines)
		}
		if lines[0] != bad+":2:1: memory fault: pointer moved before tape start (pc 3, pointer 0)" {
			t.Fatalf("got %s", lines[0])
		}
		if !strings.Contains(lines[1], "missing.bf") ||
			!strings.Contains(lines[1], programs.ErrOpen.Error()) {
			t.Fatalf("got %s", lines[1])
		}
	})
}

func TestStdinProgram(t *testing.T) {
	scope, e := newScope(t, "[", "")
	scope.Call(func(
		runSources RunSources,
	) {
		if code := runSources(t.Context(), nil); code != 1 {
			t.Fatalf("got %d", code)
		}
		expected := "<stdin>:1:1: illegal program: unmatched [ (pc 0)\n"
		if e.stderr.String() != expected {
			t.Fatalf("got %q", e.stderr.String())
		}
	})
}

func TestFreshTapePerRun(t *testing.T) {
	scope, e := newScope(t, "", "")
	scope.Call(func(
		runSources RunSources,
	) {
		a := e.write(t, "a.bf", "+++++>++")
		b := e.write(t, "b.bf", ".>.")
		if code := runSources(t.Context(), []string{a, b}); code != 0 {
			t.Fatalf("got %d", code)
		}
		if out := e.stdout.String(); out != "\x00\x00" {
			t.Fatalf("got %q", out)
		}
	})
}

func TestInputSharedAcrossRuns(t *testing.T) {
	scope, e := newScope(t, "ab", `eof: "zero"`)
	scope.Call(func(
		runSources RunSources,
	) {
		a := e.write(t, "a.bf", ",.")
		if code := runSources(t.Context(), []string{a, a, a}); code != 0 {
			t.Fatalf("got %d", code)
		}
		if out := e.stdout.String(); out != "ab\x00" {
			t.Fatalf("got %q", out)
		}
	})
}

func TestStdinProgramAfterInput(t *testing.T) {
	program := "++++++++[>++++++++<-]>+."
	scope, e := newScope(t, "x"+program, "")
	scope.Call(func(
		runSources RunSources,
	) {
		a := e.write(t, "a.bf", ",.")
		if code := runSources(t.Context(), []string{a, "-"}); code != 0 {
			t.Fatalf("got %d: %s", code, e.stderr)
		}
		// ',' consumed one byte, the rest of stdin is the second program
		if out := e.stdout.String(); out != "xA" {
			t.Fatalf("got %q", out)
		}
	})
}

func TestFaultReportedOnce(t *testing.T) {
	scope, e := newScope(t, "", "")
	logged := new(bytes.Buffer)
	scope.Fork(
		func() logs.Writer {
			return logged
		},
	).Call(func(
		runSources RunSources,
	) {
		bad := e.write(t, "bad.bf", "<")
		missing := filepath.Join(e.dir, "missing.bf")
		if code := runSources(t.Context(), []string{bad, missing}); code != 1 {
			t.Fatalf("got %d", code)
		}
		if lines := strings.Split(strings.TrimSpace(e.stderr.String()), "\n"); len(lines) != 2 {
			t.Fatalf("got %q", lines)
		}
		if logged.Len() != 0 {
			t.Fatalf("got %s", logged)
		}
	})
}

func TestRunProgram(t *testing.T) {
	scope, _ := newScope(t, "", "")
	scope.Call(func(
		runProgram RunProgram,
	) {
		err := runProgram(t.Context(), bfvm.NewProgram("test", []byte("+]")))
		if !errors.Is(err, bfvm.ErrIllegalProgram) {
			t.Fatalf("got %v", err)
		}
		if !strings.Contains(err.Error(), "span: ") {
			t.Fatalf("got %v", err)
		}
		if err := runProgram(t.Context(), bfvm.NewProgram("test", []byte("+[-]"))); err != nil {
			t.Fatal(err)
		}
	})
}

func TestTapScript(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "fault.star")
	if err := os.WriteFile(script, []byte(`
print("tap", status, pc, pointer, op)
print(window[pointer - start])
`), 0644); err != nil {
		t.Fatal(err)
	}
	scope, e := newScope(t, "", `tap_script: "`+script+`"`)
	scope.Call(func(
		runSources RunSources,
	) {
		src := e.write(t, "bad.bf", strings.Repeat(">", bfvm.TapeSize-1)+"+++>")
		if code := runSources(t.Context(), []string{src}); code != 1 {
			t.Fatalf("got %d", code)
		}
		lines := strings.Split(strings.TrimSpace(e.stderr.String()), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %q", lines)
		}
		if lines[1] != "tap memory fault 30002 29999 >" {
			t.Fatalf("got %s", lines[1])
		}
		if lines[2] != "3" {
			t.Fatalf("got %s", lines[2])
		}
	})
}

func TestTapOnFault(t *testing.T) {
	scope, e := newScope(t, "", `tap_on_fault: true`)
	var tapped map[string]any
	scope.Fork(
		func() debugs.Tap {
			return func(ctx context.Context, what string, globals map[string]any) {
				tapped = globals
			}
		},
	).Call(func(
		runSources RunSources,
	) {
		src := e.write(t, "bad.bf", "+++<")
		if code := runSources(t.Context(), []string{src}); code != 1 {
			t.Fatalf("got %d", code)
		}
		if tapped == nil {
			t.Fatal("not tapped")
		}
		if tapped["status"] != "memory fault" || tapped["pc"] != 3 || tapped["op"] != "<" {
			t.Fatalf("got %v", tapped)
		}
		window, ok := tapped["window"].([]int)
		if !ok || tapped["start"] != 0 || window[0] != 3 {
			t.Fatalf("got %v", tapped["window"])
		}
	})
}

func TestDiagnosticPosition(t *testing.T) {
	program := bfvm.NewProgram("x.bf", []byte("ab\ncd\nef"))
	for pc, expected := range map[int]string{
		0: "x.bf:1:1:",
		1: "x.bf:1:2:",
		3: "x.bf:2:1:",
		7: "x.bf:3:2:",
		8: "x.bf:3:3:",
	} {
		msg := Diagnostic(program, &bfvm.Fault{
			Status: bfvm.InterpreterFault,
			PC:     pc,
		})
		if !strings.HasPrefix(msg, expected) {
			t.Fatalf("%d: got %s", pc, msg)
		}
	}
}
