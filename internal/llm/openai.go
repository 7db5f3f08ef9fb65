package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/amoilanen/cliff/internal/config"
)

// openaiBackend speaks the OpenAI chat completions API (and compatible
// endpoints when api_url overrides the base URL).
type openaiBackend struct {
	client *openai.Client
	model  *config.Model
}

func newOpenAIBackend(model *config.Model) *openaiBackend {
	opts := []option.RequestOption{
		option.WithAPIKey(model.APIKey),
	}
	if model.APIURL != "" {
		opts = append(opts, option.WithBaseURL(model.APIURL))
	}
	client := openai.NewClient(opts...)
	return &openaiBackend{client: &client, model: model}
}

func (b *openaiBackend) Name() string {
	return config.ProviderOpenAI
}

func (b *openaiBackend) Complete(ctx context.Context, prompt string) (string, error) {
	identifier := b.model.ModelIdentifier
	if identifier == "" {
		identifier = b.model.Name
	}
	resp, err := b.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: identifier,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", fmt.Errorf("LLM API request failed for model '%s': %w", b.model.Name, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("LLM API returned no choices for model '%s'", b.model.Name)
	}
	return resp.Choices[0].Message.Content, nil
}
