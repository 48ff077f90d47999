package fme

// RunResult is the outcome of a whole batch run. Its numeric value is the
// process exit code.
type RunResult int

const (
	ResultSuccess         RunResult = iota // every command applied
	ResultCannotOpenInput                  // batch file could not be opened
	ResultParseError                       // unknown command or malformed syntax
	ResultArgumentCount                    // wrong number of arguments
	ResultLogicError                       // a tree operation failed
	ResultUnexpected                       // panic or other unexpected failure
)

var resultNames = [...]string{
	ResultSuccess:         "success",
	ResultCannotOpenInput: "cannot-open-input",
	ResultParseError:      "parse-error",
	ResultArgumentCount:   "argument-count-error",
	ResultLogicError:      "logic-error",
	ResultUnexpected:      "unexpected-error",
}

func (r RunResult) String() string {
	if r < 0 || int(r) >= len(resultNames) {
		return "unknown"
	}
	return resultNames[r]
}

// ExitCode returns the process exit code for the result
func (r RunResult) ExitCode() int {
	return int(r)
}
