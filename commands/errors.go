package commands

import (
	"errors"
	"fmt"

	"github.com/brettbedarf/fme"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedCommand = errors.New("malformed command")
	ErrArgumentCount    = errors.New("wrong number of arguments")
)

// ParseError reports a line that could not be turned into a command
type ParseError struct {
	Line int    // 1-based input line number
	Raw  string // offending line, or just the name token for unknown commands
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidateArity checks a parsed command against its expected argument count.
// The returned error matches both [ErrArgumentCount] and [*fme.ArgumentCountError].
func ValidateArity(cmd fme.Command) error {
	if err := cmd.ValidateArity(); err != nil {
		return fmt.Errorf("%w: %w", ErrArgumentCount, err)
	}
	return nil
}
