package main

import (
	"fmt"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/ir"
	"github.com/signadot/uniutil/libdiff"
	"github.com/signadot/uniutil/merge"

	"github.com/scott-cotton/cli"
)

func mergeFiles(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		cfg.Merge.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	docs, err := cfg.getObjFiles(cc, args)
	if err != nil {
		return err
	}
	res, err := mergeDocs(cfg, docs)
	if err != nil {
		return err
	}
	opts := cfg.encOpts(cc.Out)
	if !cfg.Diff {
		if err := encode.Encode(res, cc.Out, opts...); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	}
	// colors would show up in the diff text
	plain := []encode.EncodeOption{encode.EncodeFormat(encode.FormatFromOpts(opts...)), encode.EncodeIndent(2)}
	from, err := encode.String(docs[0], plain...)
	if err != nil {
		return fmt.Errorf("error encoding first document: %w", err)
	}
	to, err := encode.String(res, plain...)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = fmt.Fprint(cc.Out, libdiff.Lines(from, to))
	return err
}

func mergeDocs(cfg *MergeConfig, docs []*ir.Node) (*ir.Node, error) {
	if !cfg.RFC7386 {
		return merge.MergeWith([]merge.Option{merge.CycleCheck(cfg.CycleCheck)}, docs...)
	}
	res := docs[0]
	for i, p := range docs[1:] {
		next, err := merge.MergePatch(res, p)
		if err != nil {
			return nil, fmt.Errorf("error applying merge patch %d: %w", i+1, err)
		}
		res = next
	}
	return res, nil
}
