package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/amoilanen/cliff/internal/config"
)

// promptEscaper makes the prompt safe for splicing into a JSON string
// literal inside the request template.
var promptEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// templateBackend POSTs the model's request_format template with {{prompt}}
// and {{model}} substituted, then extracts the answer from the response via
// the model's response_json_path. It makes no assumptions about the API
// beyond "JSON in, JSON out".
type templateBackend struct {
	model *config.Model
	http  *http.Client
}

func newTemplateBackend(model *config.Model, httpClient *http.Client) *templateBackend {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &templateBackend{model: model, http: httpClient}
}

func (b *templateBackend) Name() string {
	return config.ProviderTemplate
}

func (b *templateBackend) Complete(ctx context.Context, prompt string) (string, error) {
	identifier := b.model.ModelIdentifier
	if identifier == "" {
		identifier = "?"
	}
	body := strings.ReplaceAll(b.model.RequestFormat, "{{prompt}}", promptEscaper.Replace(prompt))
	body = strings.ReplaceAll(body, "{{model}}", identifier)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.model.APIURL, strings.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request for %s: %w", b.model.APIURL, err)
	}
	b.applyAuth(req)

	resp, err := b.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request to %s: %w", b.model.APIURL, err)
	}
	defer resp.Body.Close()

	respBody, readErr := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errorBody := "Could not read error body"
		if readErr == nil {
			errorBody = string(respBody)
		}
		return "", fmt.Errorf("LLM API request failed for model '%s' with status: %s. Response: %s",
			b.model.Name, resp.Status, errorBody)
	}
	if readErr != nil {
		return "", fmt.Errorf("failed to read LLM response text: %w", readErr)
	}

	var payload interface{}
	if err := json.Unmarshal(respBody, &payload); err != nil {
		return "", fmt.Errorf("failed to parse LLM response as JSON: %w. Raw response:\n%s", err, respBody)
	}
	value, err := jsonpath.Get(b.model.ResponseJSONPath, payload)
	if err != nil {
		return "", fmt.Errorf("could not extract the value using the defined path, response='%s', path = '%s': %w",
			respBody, b.model.ResponseJSONPath, err)
	}
	answer, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("expected a string at JSONPath '%s', but found: %v", b.model.ResponseJSONPath, value)
	}
	return answer, nil
}

// applyAuth attaches the model's API key. A configured api_key_header of the
// form "Header-Name: value with {{api_key}}" wins; otherwise the key is sent
// as a bearer token.
func (b *templateBackend) applyAuth(req *http.Request) {
	if b.model.APIKey == "" {
		return
	}
	if header := b.model.APIKeyHeader; header != "" {
		if name, value, ok := strings.Cut(header, ":"); ok {
			value = strings.ReplaceAll(value, "{{api_key}}", b.model.APIKey)
			req.Header.Set(strings.TrimSpace(name), strings.TrimSpace(value))
			return
		}
		fmt.Fprintf(os.Stderr, "Warning: Invalid api_key_header format. Expected 'Header-Name: Header-Value': '%s'\n", header)
	}
	req.Header.Set("Authorization", "Bearer "+b.model.APIKey)
}
