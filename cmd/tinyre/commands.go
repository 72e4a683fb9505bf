package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "tinyre").
		WithSynopsis("tinyre [opts] command [opts]").
		WithDescription("tinyre compiles and matches small greedy regular expressions.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return tinyreMain(cfg, cc, args)
		}).
		WithSubs(
			MatchCommand(cfg),
			DumpCommand(cfg),
			CheckCommand(cfg))
}

func MatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Command, "match").
		WithAliases("m").
		WithSynopsis("match [opts] <pattern> [texts]").
		WithDescription("match each text, or each line of stdin, against the whole pattern").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return match(cfg, cc, args)
		})
}

func DumpCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DumpConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Dump, "dump").
		WithAliases("d").
		WithSynopsis("dump [opts] <pattern>").
		WithDescription("print the compiled program of a pattern").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return dump(cfg, cc, args)
		})
}

func CheckCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CheckConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Check, "check").
		WithAliases("c").
		WithSynopsis("check [opts] <suite.yaml> [suites]").
		WithDescription(checkDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return check(cfg, cc, args)
		})
}

const checkDescription = `check runs YAML case suites against the engine.

A suite is a list of cases:

  - pattern: '[a-z]+@[a-z]+\.[a-z]+'
    match: [user@example.com]
    reject: [user@example]
  - pattern: '[z-a]'
    error: InvalidRange

Each text under match must fully match the pattern and each text under
reject must not. A case with error expects compilation to fail with that
kind: OutOfMemory, UnexpectedEnd, EmptyClass, InvalidRange,
UnterminatedClass, MalformedGroup or UnterminatedGroup.`
