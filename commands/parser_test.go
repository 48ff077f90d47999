package commands

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/brettbedarf/fme"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(input string) *Parser {
	return NewParser(strings.NewReader(input), DefaultRegistry(), zerolog.Nop())
}

// drain collects every command from p
func drain(p *Parser) []fme.Command {
	var out []fme.Command
	for {
		cmd, ok := p.Next()
		if !ok {
			return out
		}
		out = append(out, cmd)
	}
}

func TestSplitArguments(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", []string{}},
		{"only whitespace", " \t ", []string{}},
		{"single", " /a", []string{"/a"}},
		{"two with extra spaces", "  /a \t /b  ", []string{"/a", "/b"}},
		{"quoted with space", ` "/my dir/x"`, []string{"/my dir/x"}},
		{"quoted is trimmed", ` "  /a b  " /c`, []string{"/a b", "/c"}},
		{"adjacent quoted and unquoted", ` /a"/b c"/d`, []string{"/a", "/b c", "/d"}},
		{"two quoted", ` "/a" "/b"`, []string{"/a", "/b"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := SplitArguments(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSplitArguments_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantMsg string
	}{
		{"empty quoted", ` "" /a`, `Empty argument "" is found.`},
		{"blank quoted", ` "   "`, `Empty argument "" is found.`},
		{"unclosed", ` "/a /b`, `Closing quotes " symbol is not found.`},
		{"unclosed after pair", ` "/a" "/b`, `Closing quotes " symbol is not found.`},
		{"empty before unclosed", ` "" "/b`, `Empty argument "" is found.`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := SplitArguments(tc.input)
			require.ErrorIs(t, err, ErrMalformedCommand)
			assert.Contains(t, err.Error(), tc.wantMsg)
		})
	}
}

func TestParser_Next(t *testing.T) {
	t.Parallel()

	p := newTestParser("md /a\n\n   \ncp /a \"/b c\"\n\tmf /a/f.txt")
	cmds := drain(p)

	require.Len(t, cmds, 3)
	assert.Equal(t, fme.MdCommand, cmds[0].Name)
	assert.Equal(t, []string{"/a"}, cmds[0].Arguments)
	assert.Equal(t, "md /a", cmds[0].Raw)
	assert.Equal(t, fme.CpCommand, cmds[1].Name)
	assert.Equal(t, []string{"/a", "/b c"}, cmds[1].Arguments)
	assert.Equal(t, fme.MfCommand, cmds[2].Name)
	assert.Equal(t, "mf /a/f.txt", cmds[2].Raw)
	for _, c := range cmds {
		assert.NoError(t, c.Err)
	}
	assert.Equal(t, 5, p.Line())
	assert.NoError(t, p.Err())
}

func TestParser_CRLF(t *testing.T) {
	t.Parallel()

	cmds := drain(newTestParser("md /a\r\nmd /b\r\n"))

	require.Len(t, cmds, 2)
	assert.Equal(t, []string{"/a"}, cmds[0].Arguments)
	assert.Equal(t, []string{"/b"}, cmds[1].Arguments)
}

func TestParser_UnknownCommandSkipsLine(t *testing.T) {
	t.Parallel()

	cmds := drain(newTestParser("ls \"unclosed\nmd /a\n"))

	require.Len(t, cmds, 2)
	assert.Equal(t, fme.UnknownCommand, cmds[0].Name)
	assert.Empty(t, cmds[0].Arguments)
	require.ErrorIs(t, cmds[0].Err, ErrUnknownCommand)
	var parseErr *ParseError
	require.True(t, errors.As(cmds[0].Err, &parseErr))
	assert.Equal(t, 1, parseErr.Line)
	assert.Equal(t, "ls", parseErr.Raw)

	assert.Equal(t, fme.MdCommand, cmds[1].Name)
	assert.NoError(t, cmds[1].Err)
}

func TestParser_MalformedArguments(t *testing.T) {
	t.Parallel()

	cmds := drain(newTestParser(`mv "/a" "`))

	require.Len(t, cmds, 1)
	assert.Equal(t, fme.MvCommand, cmds[0].Name)
	require.ErrorIs(t, cmds[0].Err, ErrMalformedCommand)
	assert.Contains(t, cmds[0].Err.Error(), "line 1")
}

func TestParser_DoesNotCheckArity(t *testing.T) {
	t.Parallel()

	cmds := drain(newTestParser("md\nmv /a /b /c"))

	require.Len(t, cmds, 2)
	assert.NoError(t, cmds[0].Err)
	assert.Empty(t, cmds[0].Arguments)
	assert.Len(t, cmds[1].Arguments, 3)
}

func TestParser_ReadError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	p := NewParser(iotest.ErrReader(boom), DefaultRegistry(), zerolog.Nop())

	_, ok := p.Next()
	assert.False(t, ok)
	assert.ErrorIs(t, p.Err(), boom)
}

func TestValidateArity(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateArity(fme.Command{Name: fme.RmCommand, Arguments: []string{"/a"}}))

	err := ValidateArity(fme.Command{Name: fme.CpCommand, Arguments: []string{"/a"}})
	require.ErrorIs(t, err, ErrArgumentCount)
	var argErr *fme.ArgumentCountError
	require.True(t, errors.As(err, &argErr))
	assert.Equal(t, 2, argErr.Expected)
	assert.Equal(t, 1, argErr.Got)
}
