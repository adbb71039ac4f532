package router

import "net/http"

// Router is the small routing surface the application needs; the concrete
// implementation lives in a subpackage so swapping routers touches one
// import in main.
type Router interface {
	http.Handler

	// Register mounts a handler for an explicit method and path pattern.
	Register(method, path string, handler http.Handler)
}

// Param returns the named path parameter from a request routed through the
// active implementation, or "" when absent.
type ParamReader interface {
	Param(r *http.Request, name string) string
}
