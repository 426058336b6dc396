package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/0xalexb/hjarta-conf/listener/middleware"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	t.Run("panic becomes 500", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		handler := middleware.Recovery(newBufferLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic("boom")
		}))

		rec := httptest.NewRecorder()

		assert.NotPanics(t, func() {
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/config", nil))
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		entry := decodeEntry(t, &buf)
		assert.Equal(t, "panic recovered", entry["msg"])
		assert.Equal(t, "boom", entry["panic"])
		assert.Equal(t, "/config", entry["path"])
		assert.NotEmpty(t, entry["stack"])
	})

	t.Run("no panic passes through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		handler := middleware.Recovery(newBufferLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Zero(t, buf.Len())
	})

	t.Run("abort handler is re-panicked", func(t *testing.T) {
		t.Parallel()

		handler := middleware.Recovery(nil)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			panic(http.ErrAbortHandler)
		}))

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		})
	})
}
