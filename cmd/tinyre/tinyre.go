package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/coregx/tinyre"
	"github.com/coregx/tinyre/prog"
	"github.com/scott-cotton/cli"
)

func tinyreMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Color && cfg.NoColor {
		return fmt.Errorf("%w: only one of -color, -nocolor may be specified", cli.ErrUsage)
	}
	if cfg.MaxNodes < 0 {
		return fmt.Errorf("%w: -maxnodes must not be negative", cli.ErrUsage)
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

// compile compiles pattern, naming the error kind on failure.
func compile(cfg *MainConfig, pattern string) (*tinyre.Regex, error) {
	re, err := tinyre.CompileWithConfig(pattern, cfg.compileConfig())
	if err != nil {
		if kind, ok := prog.KindOf(err); ok {
			return nil, fmt.Errorf("%s: %w", kind, err)
		}
		return nil, err
	}
	return re, nil
}
