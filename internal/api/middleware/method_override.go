package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideHeader is the header clients use to tunnel PUT/DELETE through POST
const MethodOverrideHeader = "X-HTTP-Method-Override"

var overridableMethods = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride rewrites POST requests that carry an override header
// (or a _method query parameter) to the requested method before routing.
// Only PUT, PATCH and DELETE may be requested.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.Header.Get(MethodOverrideHeader)
			if method == "" {
				method = r.URL.Query().Get("_method")
			}
			method = strings.ToUpper(strings.TrimSpace(method))
			if overridableMethods[method] {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
