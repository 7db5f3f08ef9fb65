package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/amoilanen/cliff/internal/action"
	"github.com/amoilanen/cliff/internal/config"
)

// Client talks to one configured model. It owns prompt construction and
// response decoding; the wire call itself is delegated to the provider
// backend.
type Client struct {
	model   *config.Model
	backend Backend
	http    *http.Client
}

// New builds a client for the model, selecting its provider backend.
func New(model *config.Model, httpClient *http.Client) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	backend, err := NewBackend(model, httpClient)
	if err != nil {
		return nil, err
	}
	return &Client{model: model, backend: backend, http: httpClient}, nil
}

// Ask sends a free-form question together with the given context sources
// (files or URLs) and returns the model's answer.
func (c *Client) Ask(ctx context.Context, prompt string, contextSources []string) (string, error) {
	combined, err := combinedContext(ctx, c.http, contextSources)
	if err != nil {
		return "", err
	}
	return c.backend.Complete(ctx, askPrompt(prompt, combined))
}

// AskWithHistory sends a question using the execution history as the only
// context and returns the model's answer.
func (c *Client) AskWithHistory(ctx context.Context, question string, hist *action.History) (string, error) {
	return c.backend.Complete(ctx, historyPrompt(question, hist))
}

// Plan asks the model for a step-by-step plan toward the instruction, using
// the context sources and the execution history so far.
func (c *Client) Plan(ctx context.Context, instruction string, contextSources []string, hist *action.History) (*action.Plan, error) {
	combined, err := combinedContext(ctx, c.http, contextSources)
	if err != nil {
		return nil, err
	}
	response, err := c.backend.Complete(ctx, planPrompt(instruction, hist, combined))
	if err != nil {
		return nil, err
	}
	stripped := StripJSONFence(response)
	fmt.Printf("Response = '%s'\n", stripped)
	plan, err := action.DecodePlan([]byte(stripped))
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted plan JSON string: %w. Extracted string:\n%s", err, response)
	}
	return plan, nil
}

// SingleAction asks the model to reply with exactly one action described by
// the instruction. Matching the returned variant against the expected one is
// the caller's job.
func (c *Client) SingleAction(ctx context.Context, instruction string, hist *action.History) (*action.Action, error) {
	response, err := c.AskWithHistory(ctx, instruction, hist)
	if err != nil {
		return nil, fmt.Errorf("failed to get response from LLM: %w", err)
	}
	parsed, err := action.DecodeAction([]byte(StripJSONFence(response)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse LLM response as an action: %w", err)
	}
	return parsed, nil
}
