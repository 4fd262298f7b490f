package dfa

// Config controls subset construction's resource bounds, following this
// module's Config/DefaultConfig idiom.
type Config struct {
	// MaxStates caps the number of DFA states subset construction may
	// produce before aborting with a ResourceLimitError. Default: 10000.
	MaxStates int
}

// DefaultConfig returns the default subset-construction configuration.
func DefaultConfig() Config {
	return Config{MaxStates: 10000}
}
