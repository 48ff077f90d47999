package fme

import "fmt"

// CommandName is one of the recognized batch commands
type CommandName string

const (
	CpCommand      CommandName = "cp"
	MdCommand      CommandName = "md"
	MfCommand      CommandName = "mf"
	MvCommand      CommandName = "mv"
	RmCommand      CommandName = "rm"
	UnknownCommand CommandName = ""
)

// CommandNames lists every recognized command in a stable order
var CommandNames = []CommandName{CpCommand, MdCommand, MfCommand, MvCommand, RmCommand}

// Arity returns the exact number of arguments the command accepts; 0 for unknown commands
func (n CommandName) Arity() int {
	switch n {
	case CpCommand, MvCommand:
		return 2
	case MdCommand, MfCommand, RmCommand:
		return 1
	default:
		return 0
	}
}

// Command is a single parsed line of input.
type Command struct {
	Name      CommandName
	Arguments []string
	Raw       string // original line for diagnostics
	Err       error  // set when the line could not be parsed
}

// ArgumentCountError reports a command called with the wrong number of arguments
type ArgumentCountError struct {
	Name     CommandName
	Expected int
	Got      int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("command %s accepts %d argument(-s) (the number of passed arguments is %d)",
		e.Name, e.Expected, e.Got)
}

// ValidateArity checks the argument count contract before any tree mutation
func (c *Command) ValidateArity() error {
	if want := c.Name.Arity(); len(c.Arguments) != want {
		return &ArgumentCountError{Name: c.Name, Expected: want, Got: len(c.Arguments)}
	}
	return nil
}
