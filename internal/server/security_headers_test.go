package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSecurityHeadersMiddleware(t *testing.T) {
	want := map[string]string{
		HeaderContentType:    HeaderValueNoSniff,
		HeaderFrameOptions:   HeaderValueSameOrigin,
		HeaderXSSProtection:  HeaderValueXSSBlock,
		HeaderReferrerPolicy: HeaderValueReferrerStrictOrigin,
	}

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name:       "no body",
			handler:    func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) },
			wantStatus: http.StatusNoContent,
		},
		{
			name: "handler writes body first",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"items":[]}`))
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"items":[]}`,
		},
		{
			name: "error response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "item not found", http.StatusNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantBody:   "item not found\n",
		},
		{
			name: "streamed response",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.Header().Set("Content-Type", "text/event-stream")
				_, _ = w.Write([]byte(": keepalive\n\n"))
				w.(http.Flusher).Flush()
			},
			wantStatus: http.StatusOK,
			wantBody:   ": keepalive\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			SecurityHeadersMiddleware()(tt.handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody, rec.Body.String())
			for header, value := range want {
				assert.Equal(t, value, rec.Result().Header.Get(header), header)
			}
		})
	}
}

func TestSecurityHeadersMiddleware_HandlerMayOverride(t *testing.T) {
	handler := SecurityHeadersMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set(HeaderFrameOptions, "DENY")
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))

	assert.Equal(t, "DENY", rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
}
