package llm

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
)

// contextContent is one fetched context source and its raw content.
type contextContent struct {
	source  string
	content string
}

// fetchContext loads every context source: http(s) URLs are fetched with a
// GET, anything else is read as a local file path.
func fetchContext(ctx context.Context, client *http.Client, sources []string) ([]contextContent, error) {
	var fetched []contextContent
	for _, source := range sources {
		var content string
		if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
			text, err := fetchURL(ctx, client, source)
			if err != nil {
				return nil, err
			}
			content = text
		} else {
			data, err := os.ReadFile(source)
			if err != nil {
				return nil, fmt.Errorf("failed to read file %s: %w", source, err)
			}
			content = string(data)
		}
		fetched = append(fetched, contextContent{source: source, content: content})
	}
	return fetched, nil
}

func fetchURL(ctx context.Context, client *http.Client, source string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return "", fmt.Errorf("invalid context URL %s: %w", source, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL %s: %w", source, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to fetch URL %s - status: %s", source, resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read content from URL %s: %w", source, err)
	}
	return string(body), nil
}

// combinedContext merges all fetched sources into one prompt context block.
// An empty source list yields the empty string.
func combinedContext(ctx context.Context, client *http.Client, sources []string) (string, error) {
	fetched, err := fetchContext(ctx, client, sources)
	if err != nil {
		return "", err
	}
	if len(fetched) == 0 {
		return "", nil
	}
	parts := make([]string, 0, len(fetched))
	for _, c := range fetched {
		parts = append(parts, fmt.Sprintf("Context from %s:\n%s\n", c.source, c.content))
	}
	return strings.Join(parts, "\n"), nil
}
