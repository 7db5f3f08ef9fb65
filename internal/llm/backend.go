// Package llm builds planner prompts, talks to the configured model through
// a provider backend, and decodes plans and actions out of model responses.
package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amoilanen/cliff/internal/config"
)

// Backend turns a fully built prompt into the model's text completion.
type Backend interface {
	// Name returns the provider name (e.g., "template", "openai")
	Name() string

	// Complete sends the prompt and returns the model's text response
	Complete(ctx context.Context, prompt string) (string, error)
}

// NewBackend selects the provider implementation for a model. Models without
// an explicit provider use the template backend.
func NewBackend(model *config.Model, httpClient *http.Client) (Backend, error) {
	switch model.Provider {
	case "", config.ProviderTemplate:
		return newTemplateBackend(model, httpClient), nil
	case config.ProviderOpenAI:
		return newOpenAIBackend(model), nil
	default:
		return nil, fmt.Errorf("unknown provider %q for model %q", model.Provider, model.Name)
	}
}
