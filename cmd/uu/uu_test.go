package main

import (
	"bytes"
	"testing"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/format"
	"github.com/signadot/uniutil/ir"
	"github.com/signadot/uniutil/parse"
)

func TestCheckLine(t *testing.T) {
	if got := checkLine(false, "1.2", "1.3", true); got != "update: 1.2 -> 1.3" {
		t.Errorf("got %q", got)
	}
	if got := checkLine(false, "1.3", "1.2", false); got != "no update: 1.3 -> 1.2" {
		t.Errorf("got %q", got)
	}
}

func TestMergeDocs(t *testing.T) {
	docs := func() []*ir.Node {
		var res []*ir.Node
		for _, s := range []string{`{"a":[1,2],"b":{"x":1}}`, `{"a":[9],"b":{"x":null}}`} {
			n, err := parse.Parse([]byte(s))
			if err != nil {
				t.Fatal(err)
			}
			res = append(res, n)
		}
		return res
	}
	tests := []struct {
		name string
		cfg  MergeConfig
		want string
	}{
		{"deep", MergeConfig{}, `{"a":{"0":9,"1":2},"b":{"x":null}}`},
		{"rfc7386", MergeConfig{RFC7386: true}, `{"a":[9],"b":{}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cfg.MainConfig = &MainConfig{}
			res, err := mergeDocs(&tt.cfg, docs())
			if err != nil {
				t.Fatal(err)
			}
			if got := encode.MustString(res); got != tt.want {
				t.Errorf("got %s want %s", got, tt.want)
			}
		})
	}
}

func TestParseOptsBySuffix(t *testing.T) {
	cfg := &MainConfig{}
	n, err := parse.Parse([]byte("a: 1\n"), cfg.parseOpts("x.yaml")...)
	if err != nil {
		t.Fatal(err)
	}
	if got := encode.MustString(n); got != `{"a":1}` {
		t.Errorf("got %s", got)
	}
	if _, err := parse.Parse([]byte("a: 1\n"), cfg.parseOpts("x.json")...); err == nil {
		t.Error("expected json parse error")
	}
	y := format.YAMLFormat
	cfg.InFormat = &y
	if _, err := parse.Parse([]byte("a: 1\n"), cfg.parseOpts("x.json")...); err != nil {
		t.Errorf("explicit format should win over suffix: %v", err)
	}
}

func TestWriteSep(t *testing.T) {
	var buf bytes.Buffer
	if err := writeSep(&buf, format.JSONFormat, true); err != nil || buf.Len() != 0 {
		t.Errorf("json sep wrote %q", buf.String())
	}
	if err := writeSep(&buf, format.YAMLFormat, true); err != nil || buf.String() != "---\n" {
		t.Errorf("yaml sep wrote %q", buf.String())
	}
}
