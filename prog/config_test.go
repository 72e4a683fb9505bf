package prog

import (
	"errors"
	"math"
	"testing"
)

func TestCompilerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*CompilerConfig)
		wantErr bool
		field   string
	}{
		{"default", func(c *CompilerConfig) {}, false, ""},
		{"zero capacity", func(c *CompilerConfig) { c.InitialCapacity = 0 }, false, ""},
		{"capacity equals max", func(c *CompilerConfig) { c.InitialCapacity, c.MaxNodes = 8, 8 }, false, ""},
		{"max int32", func(c *CompilerConfig) { c.MaxNodes = math.MaxInt32 }, false, ""},
		{"zero max", func(c *CompilerConfig) { c.MaxNodes = 0 }, true, "MaxNodes"},
		{"negative max", func(c *CompilerConfig) { c.MaxNodes = -1 }, true, "MaxNodes"},
		{"negative capacity", func(c *CompilerConfig) { c.InitialCapacity = -1 }, true, "InitialCapacity"},
		{"capacity above max", func(c *CompilerConfig) { c.InitialCapacity, c.MaxNodes = 9, 8 }, false, ""},
		{"default capacity, small max", func(c *CompilerConfig) { c.MaxNodes = 4 }, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultCompilerConfig()
			tt.modify(&config)

			err := config.Validate()
			if !tt.wantErr {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("err = %v, want *ConfigError", err)
			}
			if ce.Field != tt.field {
				t.Errorf("Field = %q, want %q", ce.Field, tt.field)
			}
		})
	}
}

func TestNewCompiler_ZeroMaxNodesUsesDefault(t *testing.T) {
	c := NewCompiler(CompilerConfig{})
	if c.config.MaxNodes != DefaultCompilerConfig().MaxNodes {
		t.Errorf("MaxNodes = %d, want default", c.config.MaxNodes)
	}
	if _, err := c.Compile("abc"); err != nil {
		t.Errorf("Compile: %v", err)
	}
}

func TestCompiler_CapacityAboveMaxNodes(t *testing.T) {
	// The capacity hint is capped at MaxNodes; the node limit still applies.
	config := CompilerConfig{InitialCapacity: 64, MaxNodes: 3}
	if err := config.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	c := NewCompiler(config)
	if _, err := c.Compile("ab"); err != nil {
		t.Errorf("Compile(ab) under 3 nodes: %v", err)
	}
	if _, err := c.Compile("abc"); !errors.Is(err, ErrOutOfMemory) {
		t.Errorf("Compile(abc) under 3 nodes: err = %v, want ErrOutOfMemory", err)
	}
}
