// Package router wraps host page navigation.
//
// Routes carry their query object as one url parameter holding URI-encoded
// JSON, so a page can receive nested data:
//
//	r := router.New(nav)
//	err := r.Push("/pages/detail/index", query, router.Options{})
//
// The host's page stack is passed explicitly as a PageStack wherever the
// current page is needed.
package router
