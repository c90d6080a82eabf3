package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/format"
	"github.com/signadot/uniutil/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color  bool `cli:"name=color desc='encode with color'"`
	Indent int  `cli:"name=indent desc='indentation width, 0 for compact json'"`

	J bool `cli:"name=j aliases=json desc='do i/o in json'"`
	Y bool `cli:"name=y aliases=yaml desc='do i/o in yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() (format.Format, bool) {
	switch {
	case cfg.InFormat != nil:
		return *cfg.InFormat, true
	case cfg.Y:
		return format.YAMLFormat, true
	case cfg.J:
		return format.JSONFormat, true
	}
	return format.JSONFormat, false
}

// parseOpts gives the parse options for the file at path.  Without an
// explicit input format the file suffix decides.
func (cfg *MainConfig) parseOpts(path string) []parse.ParseOption {
	fmat, ok := cfg.inFormat()
	if !ok {
		fmat = format.FromSuffix(path)
	}
	return []parse.ParseOption{parse.ParseFormat(fmat)}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	fmat, _ := cfg.inFormat()
	if cfg.OutFormat != nil {
		fmat = *cfg.OutFormat
	}
	indent := cfg.Indent
	if indent == 0 && !cfg.optSet("indent") {
		indent = 2
	}
	res := []encode.EncodeOption{
		encode.EncodeFormat(fmat),
		encode.EncodeIndent(indent),
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor is true with -color, or when -color is not given and w is a
// terminal.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.optSet("color") {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) optSet(name string) bool {
	if cfg.Main == nil {
		return false
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name == name {
			return opt.Value != nil
		}
	}
	return false
}

type CheckConfig struct {
	*MainConfig
	Semver bool `cli:"name=semver desc='compare as semantic versions with pre-release ordering'"`
	Quiet  bool `cli:"name=q desc='print nothing, only set the exit status'"`

	Check *cli.Command
}

type MergeConfig struct {
	*MainConfig
	RFC7386    bool `cli:"name=rfc7386 desc='apply later documents as json merge patches'"`
	Diff       bool `cli:"name=diff desc='print a line diff from the first document to the result'"`
	CycleCheck bool `cli:"name=cycles desc='fail on cyclic input'"`

	Merge *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type RouteConfig struct {
	*MainConfig

	Route *cli.Command
}

type QueryConfig struct {
	*MainConfig

	Query *cli.Command
}
