package e2e

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

var (
	fmeBin   string
	projRoot string
)

func TestMain(m *testing.M) {
	var err error

	// Build the fme binary once for all tests
	tmpBinDir, err := os.MkdirTemp("", "fme-bin")
	if err != nil {
		panic(err)
	}
	defer func() {
		if err := os.RemoveAll(tmpBinDir); err != nil {
			panic(err)
		}
	}()

	fmeBin = filepath.Join(tmpBinDir, "fme")

	// Determine project root
	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		panic("cannot determine current file path")
	}
	projRoot = filepath.Join(filepath.Dir(thisFile), "..", "..")
	src := filepath.Join(projRoot, "cmd", "main.go")

	cmd := exec.Command("go", "build", "-o", fmeBin, src)
	cmd.Dir = projRoot
	if out, err := cmd.CombinedOutput(); err != nil {
		panic(string(out))
	}

	code := m.Run()
	os.Exit(code)
}

// BatchBuilder assembles a batch file line by line
type BatchBuilder struct {
	lines []string
}

func NewBatch() *BatchBuilder {
	return &BatchBuilder{}
}

func (b *BatchBuilder) Line(line string) *BatchBuilder {
	b.lines = append(b.lines, line)
	return b
}

// Write stores the batch in a temp dir and returns its path
func (b *BatchBuilder) Write(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.txt")
	if err := os.WriteFile(path, []byte(strings.Join(b.lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("failed to write batch: %v", err)
	}
	return path
}

type runResult struct {
	code   int
	stdout string
	stderr string
}

func runFme(t *testing.T, stdin string, args ...string) runResult {
	t.Helper()
	cmd := exec.Command(fmeBin, append([]string{"--no-color"}, args...)...)
	cmd.Stdin = strings.NewReader(stdin)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	code := 0
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("failed to run fme: %v", err)
	}
	return runResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
}

func expectTree(t *testing.T, res runResult, lines ...string) {
	t.Helper()
	want := "The FME file tree:\n" + strings.Join(lines, "\n") + "\n"
	if res.stdout != want {
		t.Fatalf("tree mismatch:\nexpected:\n%s\ngot:\n%s\nstderr:\n%s", want, res.stdout, res.stderr)
	}
}

func expectCode(t *testing.T, res runResult, want int) {
	t.Helper()
	if res.code != want {
		t.Fatalf("exit code mismatch: expected %d, got %d\nstderr:\n%s", want, res.code, res.stderr)
	}
}

func TestE2ECreateCopyMove(t *testing.T) {
	batch := NewBatch().
		Line("md /d1").
		Line("md /d2").
		Line("mf /d1/f1.txt").
		Line("cp /d1 /d2").
		Line("mv /d2/d1/f1.txt /d2/renamed.txt").
		Line("md \"/my dir\"").
		Write(t)

	res := runFme(t, "", batch)

	expectCode(t, res, 0)
	expectTree(t, res,
		"/  [D]",
		"|_d1  [D]",
		"| |_f1.txt  [F]",
		"|_d2  [D]",
		"| |_d1  [D]",
		"| |_renamed.txt  [F]",
		"|_my dir  [D]",
	)
	if !strings.Contains(res.stderr, "Executing command [cp /d1 /d2] ...") {
		t.Fatalf("expected command echo in stderr, got:\n%s", res.stderr)
	}
}

func TestE2EFailFast(t *testing.T) {
	tests := []struct {
		name  string
		batch *BatchBuilder
		code  int
		tree  []string
	}{
		{
			name:  "unknown command",
			batch: NewBatch().Line("md /a").Line("dir /").Line("md /b"),
			code:  2,
			tree:  []string{"/  [D]", "|_a  [D]"},
		},
		{
			name:  "unclosed quote",
			batch: NewBatch().Line(`md "/a`),
			code:  2,
			tree:  []string{"/  [D]"},
		},
		{
			name:  "argument count",
			batch: NewBatch().Line("md /a").Line("rm /a /b").Line("md /b"),
			code:  3,
			tree:  []string{"/  [D]", "|_a  [D]"},
		},
		{
			name:  "self containment",
			batch: NewBatch().Line("md /a").Line("mv /a /a/b").Line("md /b"),
			code:  4,
			tree:  []string{"/  [D]", "|_a  [D]"},
		},
		{
			name:  "missing parent",
			batch: NewBatch().Line("mf /x/f.txt"),
			code:  4,
			tree:  []string{"/  [D]"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := runFme(t, "", tc.batch.Write(t))

			expectCode(t, res, tc.code)
			expectTree(t, res, tc.tree...)
		})
	}
}

func TestE2EStdin(t *testing.T) {
	res := runFme(t, "md /a\nmd /a/b\nmv /a/b /\n")

	expectCode(t, res, 0)
	expectTree(t, res, "/  [D]", "|_a  [D]", "|_b  [D]")
	if strings.Contains(res.stderr, "Executing command") {
		t.Fatalf("commands from stdin must not be echoed:\n%s", res.stderr)
	}
}

func TestE2EMissingBatchFile(t *testing.T) {
	res := runFme(t, "", filepath.Join(t.TempDir(), "nope.txt"))

	expectCode(t, res, 1)
	if res.stdout != "" {
		t.Fatalf("expected no tree, got:\n%s", res.stdout)
	}
}

func TestE2EJSONFormat(t *testing.T) {
	batch := NewBatch().Line("md /a").Write(t)

	res := runFme(t, "", "--format", "json", batch)

	expectCode(t, res, 0)
	if !strings.Contains(res.stdout, `"name": "a"`) {
		t.Fatalf("expected JSON snapshot, got:\n%s", res.stdout)
	}
}
