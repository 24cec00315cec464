package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dan9191/finplan-service/internal/config"
	"github.com/Dan9191/finplan-service/internal/models"
	"github.com/Dan9191/finplan-service/internal/repository"
	"github.com/Dan9191/finplan-service/internal/service"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func newRouter(t *testing.T) *mux.Router {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	svc := service.NewService(repository.NewMemoryStore(), nil, log, config.Defaults())
	return NewHandler(svc, log).Router()
}

func do(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := do(t, newRouter(t), "GET", "/health", "", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"ok"`) {
		t.Errorf("GET /health = %d %s", rec.Code, rec.Body)
	}
}

func TestPlanEndpoint(t *testing.T) {
	r := newRouter(t)
	body := `{"monthly_income":50000,"fixed_expenses":20000,"debt":0,"risk_profile":"Moderate"}`

	rec := do(t, r, "POST", "/plan", "", body)
	if rec.Code != http.StatusOK {
		t.Fatalf("POST /plan = %d %s", rec.Code, rec.Body)
	}
	var res models.PlanningResult
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.RiskProfile != models.Moderate || res.Projections[1].ProjectedCorpus != 4830812 {
		t.Errorf("unexpected result: %+v", res)
	}

	etag := rec.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing ETag")
	}
	req := httptest.NewRequest("POST", "/plan", strings.NewReader(body))
	req.Header.Set("If-None-Match", etag)
	cached := httptest.NewRecorder()
	r.ServeHTTP(cached, req)
	if cached.Code != http.StatusNotModified {
		t.Errorf("conditional POST /plan = %d, want 304", cached.Code)
	}
}

func TestPlanBadRequest(t *testing.T) {
	r := newRouter(t)
	for _, body := range []string{"", `{"monthly_income":"lots"}`, `{"salary":1}`} {
		if rec := do(t, r, "POST", "/plan", "", body); rec.Code != http.StatusBadRequest {
			t.Errorf("POST /plan %q = %d, want 400", body, rec.Code)
		}
	}
}

func TestPlanDashboardAndReport(t *testing.T) {
	r := newRouter(t)
	body := `{"name":"Kiran","monthly_income":85000,"fixed_expenses":30000,"risk_profile":"aggressive"}`

	rec := do(t, r, "POST", "/plan/dashboard", "", body)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"name":"Kiran"`) {
		t.Errorf("POST /plan/dashboard = %d %s", rec.Code, rec.Body)
	}
	rec = do(t, r, "POST", "/plan/report", "", body)
	if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != "application/pdf" {
		t.Errorf("POST /plan/report = %d %q", rec.Code, rec.Header().Get("Content-Type"))
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")) {
		t.Error("report body is not a PDF")
	}
}

func TestCatalogEndpoints(t *testing.T) {
	r := newRouter(t)
	tests := []struct {
		path       string
		wantStatus int
		wantBody   string
	}{
		{"/instruments", http.StatusOK, `"id":"ppf"`},
		{"/instruments/gold", http.StatusOK, `"id":"gold"`},
		{"/instruments/tulips", http.StatusNotFound, `"error"`},
		{"/allocations/aggressive", http.StatusOK, `"annual_rate":0.16`},
		{"/allocations/unknown", http.StatusOK, `"risk_profile":"moderate"`},
		{"/topics", http.StatusOK, `"id":"debit"`},
		{"/topics?category=offline-banking", http.StatusOK, `"id":"cheques"`},
		{"/topics/categories", http.StatusOK, `"category":"Online Banking"`},
		{"/topics/emi", http.StatusOK, `"title":"EMI Structure"`},
		{"/topics/emi?format=html", http.StatusOK, `<h1>EMI Structure</h1>`},
		{"/topics/emi?format=markdown&simple=true", http.StatusOK, `# `},
		{"/topics/emi?format=yaml", http.StatusBadRequest, `unsupported format`},
		{"/topics/crypto", http.StatusNotFound, `topic not found`},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			rec := do(t, r, "GET", tc.path, "", "")
			if rec.Code != tc.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tc.wantStatus)
			}
			if !strings.Contains(rec.Body.String(), tc.wantBody) {
				t.Errorf("body %s does not contain %s", rec.Body, tc.wantBody)
			}
		})
	}
}

func TestWizardEndpoints(t *testing.T) {
	r := newRouter(t)

	rec := do(t, r, "POST", "/wizard", "", "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /wizard = %d %s", rec.Code, rec.Body)
	}
	var start struct {
		Token   string              `json:"token"`
		Session service.SessionView `json:"session"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &start); err != nil {
		t.Fatalf("decode: %v", err)
	}
	tok := start.Token

	if rec := do(t, r, "GET", "/wizard", "", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("GET /wizard without token = %d", rec.Code)
	}
	if rec := do(t, r, "GET", "/wizard", "not-a-token", ""); rec.Code != http.StatusUnauthorized {
		t.Errorf("GET /wizard with bad token = %d", rec.Code)
	}
	if rec := do(t, r, "GET", "/wizard/dashboard", tok, ""); rec.Code != http.StatusConflict {
		t.Errorf("dashboard before completion = %d, want 409", rec.Code)
	}

	rec = do(t, r, "POST", "/wizard/next", tok, `{"name":"Asha","income":500}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"blocked":true`) {
		t.Errorf("blocked next = %d %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), "Please enter a valid monthly income") {
		t.Errorf("missing notice: %s", rec.Body)
	}

	steps := []string{
		`{"name":"Asha","income":50000}`,
		`{"expenses":20000}`,
		`{}`,
		`{"goals":["home"]}`,
	}
	for _, s := range steps {
		if rec := do(t, r, "POST", "/wizard/next", tok, s); rec.Code != http.StatusOK {
			t.Fatalf("POST /wizard/next %s = %d %s", s, rec.Code, rec.Body)
		}
	}
	rec = do(t, r, "POST", "/wizard/steps/5", tok, `{"risk":"conservative"}`)
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"risk_profile":"conservative"`) {
		t.Errorf("confirm risk = %d %s", rec.Code, rec.Body)
	}

	checks := []struct {
		path, contentType string
	}{
		{"/wizard/dashboard", "application/json"},
		{"/wizard/charts/allocation.svg", "image/svg+xml"},
		{"/wizard/charts/projection.svg", "image/svg+xml"},
		{"/wizard/report.pdf", "application/pdf"},
	}
	for _, c := range checks {
		rec := do(t, r, "GET", c.path, tok, "")
		if rec.Code != http.StatusOK || rec.Header().Get("Content-Type") != c.contentType {
			t.Errorf("GET %s = %d %q", c.path, rec.Code, rec.Header().Get("Content-Type"))
		}
	}

	if rec := do(t, r, "POST", "/wizard/email", tok, `{"to":"a@example.com"}`); rec.Code != http.StatusServiceUnavailable {
		t.Errorf("email without SMTP = %d, want 503", rec.Code)
	}
	if rec := do(t, r, "POST", "/wizard/email", tok, `{}`); rec.Code != http.StatusBadRequest {
		t.Errorf("email without recipient = %d, want 400", rec.Code)
	}
	if rec := do(t, r, "POST", "/wizard/steps/abc", tok, ""); rec.Code != http.StatusBadRequest {
		t.Errorf("non-numeric step = %d, want 400", rec.Code)
	}

	rec = do(t, r, "POST", "/wizard/restart", tok, "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"current_step":1`) {
		t.Errorf("restart = %d %s", rec.Code, rec.Body)
	}

	if rec := do(t, r, "DELETE", "/wizard", tok, ""); rec.Code != http.StatusNoContent {
		t.Errorf("DELETE /wizard = %d", rec.Code)
	}
	if rec := do(t, r, "GET", "/wizard", tok, ""); rec.Code != http.StatusNotFound {
		t.Errorf("GET /wizard after delete = %d, want 404", rec.Code)
	}
}
