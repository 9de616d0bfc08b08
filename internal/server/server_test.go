package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aireview/aireview/domain"
	"github.com/aireview/aireview/internal/config"
)

func newTestServer() *Server {
	return New(config.DefaultConfig())
}

func doRequest(t *testing.T, s *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func uploadRequest(t *testing.T, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write upload body: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/analyze", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestRootEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body["message"] != "AI Code Review API" {
		t.Errorf("Unexpected message: %q", body["message"])
	}
	if _, ok := body["version"]; !ok {
		t.Error("Expected version in identity response")
	}
}

func TestHealthEndpoint(t *testing.T) {
	rec := doRequest(t, newTestServer(), httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestAnalyzeEndpoint_FindsIssues(t *testing.T) {
	content := strings.Repeat("a", 130) + "\n"
	rec := doRequest(t, newTestServer(), uploadRequest(t, "wide.js", content))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Issues []domain.Issue `json:"issues"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(body.Issues) != 1 {
		t.Fatalf("Expected 1 issue, got %d: %v", len(body.Issues), body.Issues)
	}
	if body.Issues[0].Type != domain.IssueTypeStyle {
		t.Errorf("Expected style issue, got %s", body.Issues[0].Type)
	}
}

func TestAnalyzeEndpoint_PythonDispatch(t *testing.T) {
	// The temp copy must keep the .py extension or tree analysis never runs
	var b strings.Builder
	b.WriteString("def sprawl():\n")
	for i := 0; i < 51; i++ {
		b.WriteString("    x = 1\n")
	}

	rec := doRequest(t, newTestServer(), uploadRequest(t, "sprawl.py", b.String()))
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body struct {
		Issues []domain.Issue `json:"issues"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if len(body.Issues) != 1 || body.Issues[0].Type != domain.IssueTypeComplexity {
		t.Errorf("Expected one complexity issue, got %v", body.Issues)
	}
}

func TestAnalyzeEndpoint_CleanFile(t *testing.T) {
	rec := doRequest(t, newTestServer(), uploadRequest(t, "tidy.js", "ok\n"))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"issues":[]`) {
		t.Errorf("Expected empty issues array, got %s", rec.Body.String())
	}
}

func TestAnalyzeEndpoint_MissingUpload(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/analyze", nil)
	rec := doRequest(t, newTestServer(), req)

	// Failures still come back as 200 with an error payload
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("Invalid JSON response: %v", err)
	}
	if body["error"] == "" {
		t.Errorf("Expected error payload, got %s", rec.Body.String())
	}
}
