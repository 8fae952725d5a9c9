package model

// Invocation is the parsed CLI intent handed to the resolver. Subcommand may
// be empty (no command word given) or a word that matches no known action;
// the resolver decides which case it is.
type Invocation struct {
	Subcommand  string
	Interactive bool
}

// RunResult is the outcome of one spawned external process. Output streams
// are captured so the caller decides what to forward.
type RunResult struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}
