package router

import "net/http"

// Chain applies middlewares to a handler. Middlewares execute in the order
// given, left to right, same semantics as alice-style chaining: the first
// middleware is the outermost handler.
func Chain(h http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}
