package router

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/signadot/uniutil/encode"
	"github.com/signadot/uniutil/ir"
	"github.com/signadot/uniutil/parse"
)

// QueryParam is the name of the url parameter carrying the query object.
const QueryParam = "query"

// RouteURL appends the query to path as a single URI-component-encoded
// JSON parameter.  Nothing is appended unless query is a container with
// at least one entry.
func RouteURL(path string, query *ir.Node) (string, error) {
	if !query.IsContainer() || query.IsZero() {
		return path, nil
	}
	d, err := encode.MarshalJSON(query)
	if err != nil {
		return "", fmt.Errorf("encoding query: %w", err)
	}
	return path + "?" + QueryParam + "=" + EncodeURIComponent(string(d)), nil
}

// EncodeURIComponent escapes everything except A-Z a-z 0-9 and -_.!~*'()
// as %XX of the UTF-8 bytes.
func EncodeURIComponent(s string) string {
	const hex = "0123456789ABCDEF"
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(hex[c>>4])
		b.WriteByte(hex[c&15])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return strings.IndexByte("-_.!~*'()", c) != -1
}

// Query decodes the query object of a page from its url parameters.  The
// parameter is URI-decoded then parsed as JSON; when that fails the raw
// text is parsed instead.  A missing or empty parameter gives an empty
// object.
func Query(params map[string]string) (*ir.Node, error) {
	raw, ok := params[QueryParam]
	if !ok || raw == "" {
		return ir.FromKeyVals(nil), nil
	}
	if dec, err := url.PathUnescape(raw); err == nil {
		if node, err := parse.Parse([]byte(dec), parse.ParseJSON()); err == nil {
			return node, nil
		}
	}
	node, err := parse.Parse([]byte(raw), parse.ParseJSON())
	if err != nil {
		return nil, fmt.Errorf("query parameter: %w", err)
	}
	return node, nil
}

// Page is an entry of the host page stack.
type Page struct {
	Route  string
	Params map[string]string
}

// PageStack gives access to the open pages, bottom first.
type PageStack interface {
	Pages() []Page
}

// PageAt returns the delta-th page counted from the top of the stack;
// delta 1 is the current page.
func PageAt(ps PageStack, delta int) (Page, error) {
	pages := ps.Pages()
	if delta < 1 || delta > len(pages) {
		return Page{}, fmt.Errorf("%w: %d of %d", ErrNoPage, delta, len(pages))
	}
	return pages[len(pages)-delta], nil
}

// CurrentQuery decodes the query of the top page of ps.
func CurrentQuery(ps PageStack) (*ir.Node, error) {
	p, err := PageAt(ps, 1)
	if err != nil {
		return nil, err
	}
	return Query(p.Params)
}

// Stack is a PageStack over a slice.
type Stack []Page

func (s Stack) Pages() []Page { return s }
