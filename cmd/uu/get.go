package main

import (
	"fmt"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/ir"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, an object path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	if path[0] != '$' {
		path = "$" + path
	}
	if _, err := ir.ParsePath(path); err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	docs, err := cfg.getObjFiles(cc, args[1:])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for i, doc := range docs {
		res, err := doc.GetPath(path)
		if err != nil {
			return fmt.Errorf("error getting %s: %w", path, err)
		}
		if res == nil {
			res = ir.Null()
		}
		if err := writeSep(cc.Out, encode.FormatFromOpts(opts...), i > 0); err != nil {
			return err
		}
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
	}
	return nil
}
