package router

import (
	"errors"
	"fmt"
	"time"

	"github.com/signadot/uniutil/debug"
	"github.com/signadot/uniutil/ir"
)

var (
	ErrNoURL  = errors.New("no url")
	ErrNoPage = errors.New("no page")
)

// Animation describes the page transition of a navigation.
type Animation struct {
	Type     string
	Duration time.Duration
}

// Options are the host navigation options.  The callbacks are passed
// through to the Navigator untouched.
type Options struct {
	Animation Animation
	Success   func()
	Fail      func(error)
	Complete  func()
}

// Request is what a Navigator receives.  Delta is only set for back
// navigation.
type Request struct {
	URL   string
	Delta int
	Options
}

// Navigator is implemented by the host framework.
type Navigator interface {
	NavigateTo(Request) error
	RedirectTo(Request) error
	ReLaunch(Request) error
	SwitchTab(Request) error
	NavigateBack(Request) error
}

// Router builds route urls and hands them to a Navigator.
type Router struct {
	Nav Navigator
}

func New(nav Navigator) *Router {
	return &Router{Nav: nav}
}

// Push opens url on top of the current page.
func (r *Router) Push(url string, query *ir.Node, opts Options) error {
	return r.nav("navigate", r.Nav.NavigateTo, url, query, opts)
}

// Redirect replaces the current page with url.
func (r *Router) Redirect(url string, query *ir.Node, opts Options) error {
	return r.nav("redirect", r.Nav.RedirectTo, url, query, opts)
}

// ReLaunch closes all pages and opens url.
func (r *Router) ReLaunch(url string, query *ir.Node, opts Options) error {
	return r.nav("relaunch", r.Nav.ReLaunch, url, query, opts)
}

// SwitchTab switches to a tab page.  Tab pages take no query.
func (r *Router) SwitchTab(url string, opts Options) error {
	return r.nav("switch-tab", r.Nav.SwitchTab, url, nil, opts)
}

// Back closes delta pages; delta below 1 closes one.
func (r *Router) Back(delta int, opts Options) error {
	if delta < 1 {
		delta = 1
	}
	if debug.Route() {
		debug.Logf("back %d", delta)
	}
	return r.Nav.NavigateBack(Request{Delta: delta, Options: opts})
}

func (r *Router) nav(what string, f func(Request) error, url string, query *ir.Node, opts Options) error {
	if url == "" {
		return fmt.Errorf("%s: %w", what, ErrNoURL)
	}
	target, err := RouteURL(url, query)
	if err != nil {
		return fmt.Errorf("%s: %w", what, err)
	}
	if debug.Route() {
		debug.Logf("%s %s", what, target)
	}
	return f(Request{URL: target, Options: opts})
}
