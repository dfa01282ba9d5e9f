package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/Geetha-SV/ContractAI/config"
	"github.com/Geetha-SV/ContractAI/model"
	"github.com/Geetha-SV/ContractAI/service"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testContract = `Employment Agreement

BETWEEN Acme Corp AND John Doe (the employee)

1. The company may terminate employment without notice at its discretion.
2. A salary of 50,000 shall be paid monthly to the employee.
3. Disputes go to arbitration and the courts at Mumbai shall have exclusive jurisdiction.`

func newTestHandler(t *testing.T) *AnalysisHandler {
	t.Helper()
	auditPath := filepath.Join(t.TempDir(), "audit_log.json")
	return NewAnalysisHandler(
		service.NewReportService(&config.ReportConfig{Title: "Test Report"}),
		service.NewAuditSink(&config.AuditConfig{Path: auditPath}),
		nil, // archive disabled
		20,
	)
}

func uploadRequest(t *testing.T, filename string, content []byte) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("Failed to write form file: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/analyses", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func routerWithTenant(handler gin.HandlerFunc, method, path string) *gin.Engine {
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		c.Set("tenant", "tenant1")
		handler(c)
	})
	return router
}

func TestAnalysisHandlerCreate(t *testing.T) {
	h := newTestHandler(t)
	router := routerWithTenant(h.Create, "POST", "/analyses")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "contract.txt", []byte(testContract)))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	var result model.Analysis
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if result.ID == "" {
		t.Error("Expected analysis ID")
	}
	if result.Type != model.TypeEmployment {
		t.Errorf("Expected EMPLOYMENT, got %s", result.Type)
	}
	if result.Risk != model.RiskHigh {
		t.Errorf("Expected overall HIGH, got %s", result.Risk)
	}
	if result.Parties["Party 1"] != "Acme Corp" || result.Parties["Party 2"] != "John Doe" {
		t.Errorf("Unexpected parties: %v", result.Parties)
	}
	if len(result.Amounts) == 0 {
		t.Error("Expected at least one amount")
	}
	if result.Jurisdiction["Jurisdiction"] == "" {
		t.Errorf("Expected jurisdiction extracted, got %v", result.Jurisdiction)
	}
	if result.TextHash == "" {
		t.Error("Expected text hash")
	}

	// Cleanup
	h.store.Delete(result.ID)
}

func TestAnalysisHandlerCreateValidation(t *testing.T) {
	h := newTestHandler(t)
	router := routerWithTenant(h.Create, "POST", "/analyses")

	tests := []struct {
		name     string
		filename string
		content  []byte
		wantCode int
	}{
		{"unsupported extension", "contract.exe", []byte("data"), http.StatusBadRequest},
		{"invalid utf8 text", "contract.txt", []byte{0xff, 0xfe}, http.StatusUnprocessableEntity},
		{"malformed pdf", "contract.pdf", []byte("not a pdf"), http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, uploadRequest(t, tt.filename, tt.content))
			if w.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d: %s", tt.wantCode, w.Code, w.Body.String())
			}
		})
	}
}

func TestAnalysisHandlerCreateNoFile(t *testing.T) {
	h := newTestHandler(t)
	router := routerWithTenant(h.Create, "POST", "/analyses")

	req := httptest.NewRequest("POST", "/analyses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", w.Code)
	}
}

func TestAnalysisHandlerGet(t *testing.T) {
	h := newTestHandler(t)

	a := &model.Analysis{
		ID:        "get-test",
		Filename:  "test.txt",
		Tenant:    "tenant1",
		Type:      model.TypeGeneral,
		Risk:      model.RiskLow,
		CreatedAt: time.Now(),
	}
	h.store.Save(a)
	defer h.store.Delete(a.ID)

	router := routerWithTenant(h.Get, "GET", "/analyses/:id")

	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{"found", "get-test", http.StatusOK},
		{"not found", "missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/analyses/"+tt.id, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.wantCode {
				t.Errorf("Expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

func TestAnalysisHandlerGetWrongTenant(t *testing.T) {
	h := newTestHandler(t)

	a := &model.Analysis{ID: "other-tenant", Tenant: "tenant2", CreatedAt: time.Now()}
	h.store.Save(a)
	defer h.store.Delete(a.ID)

	router := routerWithTenant(h.Get, "GET", "/analyses/:id")

	req := httptest.NewRequest("GET", "/analyses/other-tenant", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected cross-tenant access hidden as 404, got %d", w.Code)
	}
}

func TestAnalysisHandlerList(t *testing.T) {
	h := newTestHandler(t)

	h.store.Save(&model.Analysis{ID: "list-1", Tenant: "tenant1", CreatedAt: time.Now()})
	h.store.Save(&model.Analysis{ID: "list-2", Tenant: "tenant1", CreatedAt: time.Now()})
	h.store.Save(&model.Analysis{ID: "list-3", Tenant: "tenant2", CreatedAt: time.Now()})
	defer func() {
		h.store.Delete("list-1")
		h.store.Delete("list-2")
		h.store.Delete("list-3")
	}()

	router := routerWithTenant(h.List, "GET", "/analyses")

	req := httptest.NewRequest("GET", "/analyses", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var response map[string][]map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}

	if len(response["analyses"]) != 2 {
		t.Errorf("Expected 2 analyses for tenant1, got %d", len(response["analyses"]))
	}
}

func TestAnalysisHandlerReport(t *testing.T) {
	h := newTestHandler(t)

	a := &model.Analysis{
		ID:      "report-test",
		Tenant:  "tenant1",
		Type:    model.TypeEmployment,
		Risk:    model.RiskHigh,
		Parties: map[string]string{"Party 1": "Acme Corp", "Party 2": "John Doe"},
		Amounts: []string{"INR 50,000"},
		Clauses: []model.ClauseFinding{
			{Text: "Terminable without notice.", Risk: model.RiskHigh, Explanation: "x", Suggestion: "y"},
		},
		CreatedAt: time.Now(),
	}
	h.store.Save(a)
	defer h.store.Delete(a.ID)

	router := routerWithTenant(h.Report, "GET", "/analyses/:id/report")

	req := httptest.NewRequest("GET", "/analyses/report-test/report", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
		t.Errorf("Expected application/pdf, got %s", ct)
	}
	if !bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")) {
		t.Error("Expected PDF body")
	}
}

func TestAnalysisHandlerDelete(t *testing.T) {
	h := newTestHandler(t)

	h.store.Save(&model.Analysis{ID: "del-test", Tenant: "tenant1", CreatedAt: time.Now()})

	router := routerWithTenant(h.Delete, "DELETE", "/analyses/:id")

	req := httptest.NewRequest("DELETE", "/analyses/del-test", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if h.store.Get("del-test") != nil {
		t.Error("Expected analysis removed")
	}
}
