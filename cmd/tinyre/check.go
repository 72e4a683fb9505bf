package main

import (
	"fmt"
	"io"
	"os"

	"github.com/coregx/tinyre"
	"github.com/coregx/tinyre/prog"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires at least one suite file", cli.ErrUsage)
	}

	c := &checker{
		w:       cc.Out,
		config:  cfg.compileConfig(),
		verbose: cfg.Verbose,
		paint:   cfg.palette(cc.Out),
	}
	failures := 0
	for _, file := range args {
		suite, err := loadSuiteFile(file)
		if err != nil {
			return err
		}
		n, err := c.run(file, suite)
		if err != nil {
			return err
		}
		failures += n
	}
	if failures > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// suiteCase is one entry of a YAML suite.
type suiteCase struct {
	Pattern string   `yaml:"pattern"`
	Match   []string `yaml:"match"`
	Reject  []string `yaml:"reject"`
	Error   string   `yaml:"error"`
}

func loadSuiteFile(file string) ([]suiteCase, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", file, err)
	}
	suite, err := parseSuite(data)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", file, err)
	}
	return suite, nil
}

func parseSuite(data []byte) ([]suiteCase, error) {
	var suite []suiteCase
	if err := yaml.UnmarshalWithOptions(data, &suite, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}
	for i, c := range suite {
		if c.Error == "" {
			continue
		}
		if _, ok := prog.ParseErrorKind(c.Error); !ok {
			return nil, fmt.Errorf("case %d: unknown error kind %q", i, c.Error)
		}
		if len(c.Match) > 0 || len(c.Reject) > 0 {
			return nil, fmt.Errorf("case %d: a case expecting %s cannot list texts", i, c.Error)
		}
	}
	return suite, nil
}

// checker runs suites and reports every failed expectation.
type checker struct {
	w       io.Writer
	config  tinyre.Config
	verbose bool
	paint   palette
}

// run checks every case of suite and returns the number of failures.
func (c *checker) run(name string, suite []suiteCase) (int, error) {
	failures := 0
	for i, sc := range suite {
		problems := c.checkCase(sc)
		failures += len(problems)
		for _, p := range problems {
			if err := c.printf("%s: case %d %q: %s\n", name, i, sc.Pattern, c.fail(p)); err != nil {
				return failures, err
			}
		}
		if len(problems) == 0 && c.verbose {
			if err := c.printf("%s: case %d %q: %s\n", name, i, sc.Pattern, c.ok("ok")); err != nil {
				return failures, err
			}
		}
	}
	summary := fmt.Sprintf("%d cases, %d failures", len(suite), failures)
	if failures == 0 {
		summary = c.ok(summary)
	} else {
		summary = c.fail(summary)
	}
	return failures, c.printf("%s: %s\n", name, summary)
}

// checkCase returns one message per unmet expectation.
func (c *checker) checkCase(sc suiteCase) []string {
	re, err := tinyre.CompileWithConfig(sc.Pattern, c.config)

	if sc.Error != "" {
		want, _ := prog.ParseErrorKind(sc.Error)
		if err == nil {
			return []string{fmt.Sprintf("compiled, want %s", want)}
		}
		if got, ok := prog.KindOf(err); !ok || got != want {
			return []string{fmt.Sprintf("got %v, want %s", err, want)}
		}
		return nil
	}
	if err != nil {
		return []string{err.Error()}
	}

	var problems []string
	for _, text := range sc.Match {
		if !re.MatchString(text) {
			problems = append(problems, fmt.Sprintf("does not match %q", text))
		}
	}
	for _, text := range sc.Reject {
		if re.MatchString(text) {
			problems = append(problems, fmt.Sprintf("matches %q", text))
		}
	}
	return problems
}

func (c *checker) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.w, format, args...)
	return err
}

func (c *checker) ok(s string) string {
	return c.paint.ok(s)
}

func (c *checker) fail(s string) string {
	return c.paint.fail(s)
}
