package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/brettbedarf/fme"
	"github.com/brettbedarf/fme/internal/util"
)

const (
	quote         = `"`
	maxLineLength = 1 << 20
)

// Parser reads one command per line from an input stream. It implements
// [fme.CommandSource].
type Parser struct {
	scanner  *bufio.Scanner
	registry *Registry
	logger   util.Logger
	line     int
	err      error
}

var _ fme.CommandSource = (*Parser)(nil)

// NewParser returns a parser over r recognizing the commands in registry
func NewParser(r io.Reader, registry *Registry, logger util.Logger) *Parser {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	return &Parser{
		scanner:  scanner,
		registry: registry,
		logger:   util.Component(logger, "parser"),
	}
}

// Next returns the next non-blank line as a command. A line that cannot be
// parsed is still returned, with Err set. Next returns false at end of input
// or on a read error; see [Parser.Err].
func (p *Parser) Next() (fme.Command, bool) {
	for p.scanner.Scan() {
		p.line++
		text := p.scanner.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}
		cmd := p.parseLine(text)
		p.logger.Trace().Int("line", p.line).Str("name", string(cmd.Name)).
			Strs("arguments", cmd.Arguments).AnErr("parse_error", cmd.Err).Msg("Parsed command")
		return cmd, true
	}
	if err := p.scanner.Err(); err != nil && p.err == nil {
		p.err = fmt.Errorf("read input at line %d: %w", p.line+1, err)
	}
	return fme.Command{}, false
}

// Err returns the first read error encountered, if any
func (p *Parser) Err() error {
	return p.err
}

// Line returns the number of the last line read
func (p *Parser) Line() int {
	return p.line
}

func (p *Parser) parseLine(text string) fme.Command {
	text = strings.TrimLeftFunc(text, unicode.IsSpace)
	token, rest := text, ""
	if i := strings.IndexFunc(text, unicode.IsSpace); i >= 0 {
		token, rest = text[:i], text[i:]
	}

	name, err := p.registry.Lookup(token)
	if err != nil {
		// the arguments of an unknown command are never looked at
		return fme.Command{Name: fme.UnknownCommand, Raw: token, Err: &ParseError{Line: p.line, Raw: token, Err: err}}
	}

	cmd := fme.Command{Name: name, Raw: token + rest}
	args, err := SplitArguments(rest)
	if err != nil {
		cmd.Err = &ParseError{Line: p.line, Raw: cmd.Raw, Err: err}
		return cmd
	}
	cmd.Arguments = args
	return cmd
}

// SplitArguments splits the argument part of a command line. Unquoted text
// splits on whitespace. Text between a pair of double quotes is a single
// argument with surrounding whitespace trimmed, so `"/my dir"` is one
// argument. An empty quoted argument or an unclosed quote is an
// [ErrMalformedCommand].
func SplitArguments(s string) ([]string, error) {
	parts := strings.Split(s, quote)
	args := make([]string, 0, len(parts))
	for i, part := range parts {
		if i%2 == 0 {
			args = append(args, strings.Fields(part)...)
			continue
		}
		if i == len(parts)-1 {
			return nil, fmt.Errorf("%w: Closing quotes %s symbol is not found.", ErrMalformedCommand, quote)
		}
		arg := strings.TrimSpace(part)
		if arg == "" {
			return nil, fmt.Errorf("%w: Empty argument %s%s is found.", ErrMalformedCommand, quote, quote)
		}
		args = append(args, arg)
	}
	return args, nil
}
