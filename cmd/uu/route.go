package main

import (
	"fmt"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/ir"
	"github.com/signadot/uniutil/parse"
	"github.com/signadot/uniutil/router"

	"github.com/scott-cotton/cli"
)

func route(cfg *RouteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Route.Parse(cc, args)
	if err != nil {
		cfg.Route.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) < 1 || len(args) > 2 || args[0] == "" {
		return fmt.Errorf("%w: route requires a url and optionally a json query, got %v", cli.ErrUsage, args)
	}
	var q *ir.Node
	if len(args) == 2 {
		q, err = parse.Parse([]byte(args[1]), parse.ParseJSON())
		if err != nil {
			return fmt.Errorf("%w: query: %w", cli.ErrUsage, err)
		}
	}
	u, err := router.RouteURL(args[0], q)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, u)
	return err
}

func query(cfg *QueryConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Query.Parse(cc, args)
	if err != nil {
		cfg.Query.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: query requires 1 argument, the encoded query parameter", cli.ErrUsage)
	}
	q, err := router.Query(map[string]string{router.QueryParam: args[0]})
	if err != nil {
		return err
	}
	return encode.Encode(q, cc.Out, cfg.encOpts(cc.Out)...)
}
