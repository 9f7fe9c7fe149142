package consts

const (
	VERSION = "0.1.0"

	// Name of the chunk read from the REPL.
	StdinChunkName = "stdin"
)
