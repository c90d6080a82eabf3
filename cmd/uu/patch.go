package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/format"
	"github.com/signadot/uniutil/merge"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a json patch file", cli.ErrUsage)
	}
	ops, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	docs, err := cfg.getObjFiles(cc, args[1:])
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	for i, doc := range docs {
		res, err := merge.ApplyJSONPatch(doc, ops)
		if err != nil {
			return fmt.Errorf("error patching document %d: %w", i, err)
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

// writeSep separates yaml documents.  json output is a stream of values
// and needs none.
func writeSep(w io.Writer, f format.Format, sep bool) error {
	if !sep || !f.IsYAML() {
		return nil
	}
	_, err := io.WriteString(w, "---\n")
	if err != nil {
		return fmt.Errorf("unable to write separator: %w", err)
	}
	return nil
}
