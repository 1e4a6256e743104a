package middleware

import (
	"net/http"
	"strings"
)

// CacheControl sets cache headers by request path. Everything under /api is
// per-user and must never be cached by intermediaries.
type CacheControl struct{}

func NewCacheControl() *CacheControl {
	return &CacheControl{}
}

func (c *CacheControl) Apply(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path

		switch {
		case strings.HasPrefix(path, "/api/"):
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate")
			w.Header().Set("Pragma", "no-cache")

		case strings.HasPrefix(path, "/uploads/"):
			// Uploaded images get a new URL per upload, so they never change.
			w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")

		case path == "/" || path == "":
			// The app shell revalidates so deploys show up promptly.
			w.Header().Set("Cache-Control", "no-cache, must-revalidate")

		default:
			w.Header().Set("Cache-Control", "no-store")
		}

		next.ServeHTTP(w, r)
	})
}
