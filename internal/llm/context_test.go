package llm

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeContextFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFetchContextFromFile(t *testing.T) {
	path := writeContextFile(t, "notes.txt", "test context")

	fetched, err := fetchContext(context.Background(), http.DefaultClient, []string{path})
	if err != nil {
		t.Fatalf("fetchContext() error: %v", err)
	}
	if len(fetched) != 1 || fetched[0].source != path || fetched[0].content != "test context" {
		t.Errorf("fetchContext() = %+v, want one entry for %s", fetched, path)
	}
}

func TestFetchContextMissingFile(t *testing.T) {
	_, err := fetchContext(context.Background(), http.DefaultClient, []string{"nonexistent_file.txt"})
	if err == nil || !strings.Contains(err.Error(), "failed to read file") {
		t.Errorf("error = %v, want failed to read file", err)
	}
}

func TestFetchContextFromURL(t *testing.T) {
	const content = "<html>Hello World</html>"
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(content))
	}))
	defer srv.Close()

	fetched, err := fetchContext(context.Background(), srv.Client(), []string{srv.URL + "/test-page"})
	if err != nil {
		t.Fatalf("fetchContext() error: %v", err)
	}
	if len(fetched) != 1 || fetched[0].content != content {
		t.Errorf("fetchContext() = %+v, want page content", fetched)
	}
}

func TestFetchContextURLError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := fetchContext(context.Background(), srv.Client(), []string{srv.URL + "/error-page"})
	if err == nil || !strings.Contains(err.Error(), "status: 404") {
		t.Errorf("error = %v, want status: 404", err)
	}
}

func TestCombinedContextFormat(t *testing.T) {
	a := writeContextFile(t, "a.txt", "A")
	b := writeContextFile(t, "b.txt", "B")

	combined, err := combinedContext(context.Background(), http.DefaultClient, []string{a, b})
	if err != nil {
		t.Fatalf("combinedContext() error: %v", err)
	}
	want := "Context from " + a + ":\nA\n\nContext from " + b + ":\nB\n"
	if combined != want {
		t.Errorf("combinedContext() = %q, want %q", combined, want)
	}
}

func TestCombinedContextEmpty(t *testing.T) {
	combined, err := combinedContext(context.Background(), http.DefaultClient, nil)
	if err != nil {
		t.Fatalf("combinedContext() error: %v", err)
	}
	if combined != "" {
		t.Errorf("combinedContext() = %q, want empty string", combined)
	}
}
