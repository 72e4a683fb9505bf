package main

import (
	"io"
	"os"

	"github.com/coregx/tinyre"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color    bool `cli:"name=color desc='color output even when not on a terminal'"`
	NoColor  bool `cli:"name=nocolor desc='never color output'"`
	MaxNodes int  `cli:"name=maxnodes desc='reject patterns needing more program nodes'"`

	Main *cli.Command
}

// compileConfig returns the compiler configuration selected by the flags.
func (cfg *MainConfig) compileConfig() tinyre.Config {
	config := tinyre.DefaultConfig()
	if cfg.MaxNodes > 0 {
		config.MaxNodes = cfg.MaxNodes
	}
	return config
}

// colors reports whether output to w should be colored. Without -color,
// only terminals get color, and NO_COLOR still applies.
func (cfg *MainConfig) colors(w io.Writer) bool {
	switch {
	case cfg.NoColor:
		return false
	case cfg.Color:
		return true
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) && !color.NoColor
}

// palette returns the verdict colors for output to w.
func (cfg *MainConfig) palette(w io.Writer) palette {
	return newPalette(cfg.colors(w))
}

// palette colors verdicts for one writer. The zero value prints plain
// text.
type palette struct {
	good, bad *color.Color
}

func newPalette(enabled bool) palette {
	if !enabled {
		return palette{}
	}
	good := color.New(color.FgGreen)
	good.EnableColor()
	bad := color.New(color.FgRed)
	bad.EnableColor()
	return palette{good: good, bad: bad}
}

func (p palette) ok(s string) string {
	if p.good == nil {
		return s
	}
	return p.good.Sprint(s)
}

func (p palette) fail(s string) string {
	if p.bad == nil {
		return s
	}
	return p.bad.Sprint(s)
}

type MatchConfig struct {
	*cli.Command
	*MainConfig

	Quiet bool `cli:"name=q aliases=quiet desc='print nothing, only set the exit code'"`
}

type DumpConfig struct {
	*MainConfig
	YAML bool `cli:"name=yaml desc='print the program as a YAML node table'"`

	Dump *cli.Command
}

type CheckConfig struct {
	*MainConfig
	Verbose bool `cli:"name=v desc='report passing cases too'"`

	Check *cli.Command
}
