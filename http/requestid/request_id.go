// Package requestid tags every request with an id, read from a header when
// the client sends one and generated otherwise.
package requestid

import "net/http"

// Handler ensures the request carries an id under the header key. The id is
// echoed in the response header and stored in the request context, where
// downstream handlers read it with Context.Value.
//
// Example:
//
//	h = requestid.Handler(h, "X-Request-Id", uuid.NewString)
func Handler(h http.Handler, key string, fn func() string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(key)
		if id == "" {
			id = fn()
			r.Header.Set(key, id)
		}

		w.Header().Set(key, id)
		h.ServeHTTP(w, r.WithContext(Context.WithValue(r.Context(), id)))
	})
}
