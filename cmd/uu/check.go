package main

import (
	"fmt"

	"github.com/signadot/uniutil/version"

	"github.com/fatih/color"
	"github.com/scott-cotton/cli"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: check requires 2 arguments, the current and candidate versions, got %v", cli.ErrUsage, args)
	}
	current, candidate := args[0], args[1]
	var update bool
	if cfg.Semver {
		update, err = version.HasSemverUpdate(current, candidate)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	} else {
		update = version.HasUpdate(current, candidate)
	}
	if !cfg.Quiet {
		fmt.Fprintln(cc.Out, checkLine(cfg.useColor(cc.Out), current, candidate, update))
	}
	if !update {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func checkLine(colored bool, current, candidate string, update bool) string {
	verdict, c := "no update", color.New(color.FgYellow)
	if update {
		verdict, c = "update", color.New(color.FgGreen, color.Bold)
	}
	if colored {
		c.EnableColor()
		verdict = c.Sprint(verdict)
	} else {
		c.DisableColor()
	}
	return fmt.Sprintf("%s: %s -> %s", verdict, current, candidate)
}
