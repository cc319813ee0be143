package middleware

import "net/http"

// MaxRequestSize caps the request body. Photo uploads arrive as base64 data
// URIs in JSON, so the cap must sit above the decoded upload limit.
func MaxRequestSize(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
