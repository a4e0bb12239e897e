package middleware

import (
	"net/http"

	"github.com/alextanhongpin/gcd/http/requestid"
)

// RequestID tags requests with an id under the header key, generating one
// with fn when the client sent none.
//
// Example:
//
//	middleware.RequestID("X-Request-Id", uuid.NewString)
func RequestID(key string, fn func() string) Middleware {
	return func(next http.Handler) http.Handler {
		return requestid.Handler(next, key, fn)
	}
}
