package middleware

import "net/http"

// CORS allows any origin, like the landing page always has. Exposes
// Content-Disposition so browser downloads keep their filename.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,X-Admin-Secret,X-Request-ID")
		w.Header().Set("Access-Control-Expose-Headers", "Content-Disposition,X-Request-ID")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
