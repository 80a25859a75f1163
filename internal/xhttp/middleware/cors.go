package middleware

import (
	"net/http"

	"github.com/altay/inkdash/internal/xhttp"
)

// CORS allows cross-origin GETs from the dashboard pages and answers
// preflight OPTIONS with 204.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(xhttp.AccessControlAllowOrigin, "*")
		w.Header().Set(xhttp.AccessControlAllowMethods, "GET,OPTIONS")
		w.Header().Set(xhttp.AccessControlAllowHeaders, "content-type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
