package prog

import "math"

// CompilerConfig configures pattern compilation.
//
// Example:
//
//	config := prog.DefaultCompilerConfig()
//	config.MaxNodes = 256 // reject patterns needing a larger arena
//	p, err := prog.NewCompiler(config).Compile(`[a-z]+`)
type CompilerConfig struct {
	// InitialCapacity is the number of nodes the arena reserves up front.
	// It is a hint: the arena grows past it as needed and never reserves
	// more than MaxNodes.
	// Default: 16
	InitialCapacity int

	// MaxNodes caps the arena size. A pattern needing more nodes fails
	// with ErrOutOfMemory.
	// Default: 1 << 20
	MaxNodes int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		InitialCapacity: 16,
		MaxNodes:        1 << 20,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - MaxNodes: 1 to math.MaxInt32
//   - InitialCapacity: 0 or more (capped at MaxNodes when used)
func (c CompilerConfig) Validate() error {
	if c.MaxNodes < 1 || c.MaxNodes > math.MaxInt32 {
		return &ConfigError{
			Field:   "MaxNodes",
			Message: "must be between 1 and 2147483647",
		}
	}
	if c.InitialCapacity < 0 {
		return &ConfigError{
			Field:   "InitialCapacity",
			Message: "must not be negative",
		}
	}
	return nil
}
