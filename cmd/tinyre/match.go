package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/coregx/tinyre"
	"github.com/scott-cotton/cli"
)

func match(cfg *MatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Command.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: match requires a pattern", cli.ErrUsage)
	}
	re, err := compile(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}

	var out io.Writer = cc.Out
	if cfg.Quiet {
		out = io.Discard
	}
	r := &matchReporter{w: out}
	if !cfg.Quiet {
		r.paint = cfg.palette(cc.Out)
	}

	var failed int
	if texts := args[1:]; len(texts) > 0 {
		failed, err = r.texts(re, texts)
	} else {
		failed, err = r.lines(re, cc.In)
	}
	if err != nil {
		return err
	}
	if failed > 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// matchReporter prints one verdict line per input.
type matchReporter struct {
	w     io.Writer
	paint palette
}

// texts matches each text and returns how many did not match.
func (r *matchReporter) texts(re *tinyre.Regex, texts []string) (int, error) {
	failed := 0
	for _, text := range texts {
		ok := re.MatchString(text)
		if !ok {
			failed++
		}
		if err := r.report(text, ok); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

// lines matches each line of in, without its line ending, and returns how
// many did not match.
func (r *matchReporter) lines(re *tinyre.Regex, in io.Reader) (int, error) {
	failed := 0
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		line := sc.Bytes()
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		ok := re.Match(line)
		if !ok {
			failed++
		}
		if err := r.report(string(line), ok); err != nil {
			return failed, err
		}
	}
	if err := sc.Err(); err != nil {
		return failed, fmt.Errorf("error reading input: %w", err)
	}
	return failed, nil
}

func (r *matchReporter) report(text string, ok bool) error {
	verdict := "no match"
	if ok {
		verdict = "match"
	}
	pad := strings.Repeat(" ", len("no match")-len(verdict))
	if ok {
		verdict = r.paint.ok(verdict)
	} else {
		verdict = r.paint.fail(verdict)
	}
	_, err := fmt.Fprintf(r.w, "%s%s %q\n", verdict, pad, text)
	return err
}
