package ops

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const searchEndpoint = "https://api.duckduckgo.com"

// SearchWeb queries the DuckDuckGo instant-answer API and returns the raw
// response body.
func SearchWeb(ctx context.Context, client *http.Client, query string) (string, error) {
	fmt.Printf("Action: Search web for '%s'\n", query)

	searchURL := fmt.Sprintf("%s/?q=%s&format=json&pretty=1", searchEndpoint, url.QueryEscape(query))
	body, err := fetch(ctx, client, searchURL)
	if err != nil {
		return "", fmt.Errorf("failed to search web for %q: %w", query, err)
	}
	fmt.Printf("Success: Web search completed. %s\n", body)
	return body, nil
}

// ReadWebPage fetches the page at pageURL. HTML responses are reduced to
// their readable text; anything else is returned verbatim.
func ReadWebPage(ctx context.Context, client *http.Client, pageURL string) (string, error) {
	fmt.Printf("Action: Read web page at '%s'\n", pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", fmt.Errorf("invalid URL %s: %w", pageURL, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch URL %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read content from URL %s: %w", pageURL, err)
	}

	text := string(body)
	if strings.Contains(resp.Header.Get("Content-Type"), "text/html") {
		if extracted, err := extractText(text); err == nil {
			text = extracted
		}
	}
	fmt.Printf("Success: Web page read. %s\n", text)
	return text, nil
}

// extractText strips markup from an HTML document, keeping one line per
// text block.
func extractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}
	doc.Find("script, style, noscript").Remove()

	var lines []string
	for _, raw := range strings.Split(doc.Text(), "\n") {
		if line := strings.TrimSpace(raw); line != "" {
			lines = append(lines, line)
		}
	}
	return strings.Join(lines, "\n"), nil
}

func fetch(ctx context.Context, client *http.Client, target string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
