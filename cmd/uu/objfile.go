package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/uniutil/ir"
	"github.com/signadot/uniutil/parse"

	"github.com/hashicorp/go-multierror"
	"github.com/scott-cotton/cli"
)

func (cfg *MainConfig) getObjFile(cc *cli.Context, path string) (*ir.Node, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading %q: %w", path, err)
	}
	return parse.Parse(d, cfg.parseOpts(path)...)
}

// getObjFiles reads each path in order; no paths means stdin.  Every
// path is tried and all failures are reported together.
func (cfg *MainConfig) getObjFiles(cc *cli.Context, paths []string) ([]*ir.Node, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var errs error
	res := make([]*ir.Node, 0, len(paths))
	for _, p := range paths {
		node, err := cfg.getObjFile(cc, p)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("error decoding %s: %w", p, err))
			continue
		}
		res = append(res, node)
	}
	if errs != nil {
		return nil, errs
	}
	return res, nil
}
