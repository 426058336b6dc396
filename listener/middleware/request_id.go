package middleware

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

const (
	// RequestIDHeader is the HTTP header used for request IDs.
	RequestIDHeader = "X-Request-ID"

	// maxRequestIDLength bounds externally supplied request IDs.
	maxRequestIDLength = 256
)

type requestIDKeyType struct{}

// RequestID returns a middleware that makes sure every request carries an ID.
// A client-supplied X-Request-ID is kept when it is short printable ASCII;
// otherwise a random 16-character hex ID is generated. The ID is stored in
// the request context and echoed in the response header.
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(RequestIDHeader)
			if id == "" || len(id) > maxRequestIDLength || !isPrintableASCII(id) {
				id = newRequestID()
			}

			r.Header.Set(RequestIDHeader, id)
			w.Header().Set(RequestIDHeader, id)

			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKeyType{}, id)))
		})
	}
}

// GetRequestID retrieves the request ID from the context.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKeyType{}).(string)

	return id
}

func newRequestID() string {
	var buf [8]byte

	_, _ = rand.Read(buf[:])

	return hex.EncodeToString(buf[:])
}

func isPrintableASCII(s string) bool {
	for i := range len(s) {
		if s[i] < 0x20 || s[i] > 0x7E {
			return false
		}
	}

	return true
}
