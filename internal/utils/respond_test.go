package utils

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteError(rec, http.StatusNotFound, "session not found")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q", ct)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != `{"error":"session not found"}` {
		t.Errorf("body = %s", got)
	}
}

func TestReadJSON(t *testing.T) {
	type body struct {
		Name string `json:"name"`
	}
	tests := []struct {
		name       string
		in         string
		allowEmpty bool
		wantErr    bool
	}{
		{"valid", `{"name":"Asha"}`, false, false},
		{"empty allowed", ``, true, false},
		{"empty rejected", ``, false, true},
		{"unknown field", `{"nmae":"Asha"}`, false, true},
		{"trailing", `{"name":"a"}{"name":"b"}`, false, true},
		{"malformed", `{"name":`, false, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tc.in))
			var b body
			err := ReadJSON(r, &b, tc.allowEmpty)
			if (err != nil) != tc.wantErr {
				t.Errorf("ReadJSON() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
