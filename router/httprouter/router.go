package httprouter

import (
	"net/http"

	jshttprouter "github.com/julienschmidt/httprouter"

	"github.com/canaryfilms/portal/router"
)

// Implementation of the router interface backed by julienschmidt/httprouter.
type Router struct {
	rt *jshttprouter.Router
}

var _ router.Router = (*Router)(nil)

func New() *Router {
	return &Router{rt: jshttprouter.New()}
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.rt.ServeHTTP(w, req)
}

func (r *Router) Register(method, path string, handler http.Handler) {
	r.rt.Handler(method, path, handler)
}

// Param reads a named path parameter from the request context.
func (r *Router) Param(req *http.Request, name string) string {
	params := jshttprouter.ParamsFromContext(req.Context())
	return params.ByName(name)
}
