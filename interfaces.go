package fme

// CommandSource yields parsed commands one at a time until the input is
// exhausted. Implementations are consumed by a single run loop and need not
// be safe for concurrent use.
type CommandSource interface {
	// Next returns the next command and true, or a zero Command and false
	// once there is no more input.
	Next() (Command, bool)
}

// TreeOperator defines the mutations a command can resolve to.
// Every method takes raw (unnormalized) path arguments.
type TreeOperator interface {
	MakeDir(path string) error
	MakeFile(path string) error
	Remove(path string) error
	Copy(source, destination string) error
	Move(source, destination string) error
}
