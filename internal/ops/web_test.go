package ops

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestReadWebPageExtractsHTMLText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head><script>var x = 1;</script><style>p{}</style></head>
<body><h1>Title</h1><p>Some   text.</p></body></html>`))
	}))
	defer server.Close()

	got, err := ReadWebPage(context.Background(), server.Client(), server.URL)
	if err != nil {
		t.Fatalf("ReadWebPage: %v", err)
	}
	if !strings.Contains(got, "Title") || !strings.Contains(got, "Some   text.") {
		t.Errorf("extracted text missing content: %q", got)
	}
	if strings.Contains(got, "var x") || strings.Contains(got, "<h1>") {
		t.Errorf("extracted text should drop scripts and markup: %q", got)
	}
}

func TestReadWebPagePlainBodyVerbatim(t *testing.T) {
	const body = "plain text, no markup"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(body))
	}))
	defer server.Close()

	got, err := ReadWebPage(context.Background(), server.Client(), server.URL)
	if err != nil {
		t.Fatalf("ReadWebPage: %v", err)
	}
	if got != body {
		t.Errorf("body = %q, want %q", got, body)
	}
}

func TestExtractText(t *testing.T) {
	got, err := extractText(`<div><p>first</p><p>  second  </p><script>ignore()</script></div>`)
	if err != nil {
		t.Fatalf("extractText: %v", err)
	}
	if !strings.Contains(got, "first") || !strings.Contains(got, "second") {
		t.Errorf("text = %q", got)
	}
	if strings.Contains(got, "ignore") {
		t.Errorf("script content leaked: %q", got)
	}
}
