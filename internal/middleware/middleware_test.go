package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
)

type stubVerifier map[string]string

func (s stubVerifier) Verify(token string) (string, error) {
	if id, ok := s[token]; ok {
		return id, nil
	}
	return "", errors.New("bad token")
}

func TestSessionMiddleware(t *testing.T) {
	var seen string
	h := SessionMiddleware(stubVerifier{"good": "sess-1"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = SessionIDFromContext(r.Context())
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantID     string
	}{
		{"valid", "Bearer good", http.StatusOK, "sess-1"},
		{"lower-case scheme", "bearer good", http.StatusOK, "sess-1"},
		{"missing", "", http.StatusUnauthorized, ""},
		{"wrong scheme", "Basic good", http.StatusUnauthorized, ""},
		{"unknown token", "Bearer bad", http.StatusUnauthorized, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seen = ""
			r := httptest.NewRequest(http.MethodGet, "/wizard", nil)
			if tc.header != "" {
				r.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, r)
			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if seen != tc.wantID {
				t.Errorf("session id = %q, want %q", seen, tc.wantID)
			}
		})
	}
}

func TestLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.JSONFormatter{})

	h := LoggingMiddleware(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/plan", nil))

	out := buf.String()
	for _, want := range []string{`"method":"POST"`, `"path":"/plan"`, `"status":418`} {
		if !strings.Contains(out, want) {
			t.Errorf("log line %s missing %s", out, want)
		}
	}
}
