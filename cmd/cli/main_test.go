package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestBuildPath(t *testing.T) {
	got := buildPath("/api/v1/cash-flow", map[string]string{
		"start":           "2026-01-01",
		"end":             "",
		"cash_account_id": "acc-1",
	})

	if !strings.HasPrefix(got, "/api/v1/cash-flow?") {
		t.Fatalf("expected query string, got %q", got)
	}
	if !strings.Contains(got, "start=2026-01-01") || !strings.Contains(got, "cash_account_id=acc-1") {
		t.Fatalf("expected params in path, got %q", got)
	}
	if strings.Contains(got, "end=") {
		t.Fatalf("empty params must be omitted, got %q", got)
	}

	if got := buildPath("/api/v1/dashboard", nil); got != "/api/v1/dashboard" {
		t.Fatalf("expected plain path, got %q", got)
	}
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestDoRequestSendsTenantHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Tenant-ID") != "tenant-1" {
			t.Errorf("expected tenant header, got %q", r.Header.Get("X-Tenant-ID"))
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	origURL, origTenant := baseURL, tenantID
	baseURL, tenantID = srv.URL, "tenant-1"
	defer func() { baseURL, tenantID = origURL, origTenant }()

	body, status, err := doRequest(http.MethodGet, "/api/v1/dashboard", nil)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if status != http.StatusOK || string(body) != `{"ok":true}` {
		t.Fatalf("unexpected response: status=%d body=%s", status, body)
	}
}

func TestSettleCmdPostsBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/obligations/obl-1/settle" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		payload, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(payload), `"cash_account_id":"acc-1"`) {
			t.Errorf("unexpected payload: %s", payload)
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"entry-1","kind":"C"}`))
	}))
	defer srv.Close()

	origURL := baseURL
	baseURL = srv.URL
	defer func() { baseURL = origURL }()

	cmd := settleCmd()
	cmd.SetArgs([]string{"obl-1", "--account", "acc-1", "--date", "2026-02-10"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if !strings.Contains(out, `"entry-1"`) {
		t.Fatalf("expected entry in output, got %q", out)
	}
}
