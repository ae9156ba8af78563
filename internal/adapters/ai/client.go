package ai

import (
	"context"
	"fmt"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"golang.org/x/time/rate"

	"github.com/jooooonyoung/kotreet-scraper/internal/adapters/observability"
)

const systemPrompt = "You are an expert reviewer analyzing Korean local businesses for foreign tourists. Always respond with the exact JSON schema requested."

// Client is the language-model collaborator. It sends one chat completion
// per call and returns the raw response text; callers own the JSON parsing.
type Client struct {
	client openai.Client
	model  string
	rl     *rate.Limiter
}

func New(apiKey, model string, rps int) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if model == "" {
		model = "gpt-4o-mini"
	}
	if rps <= 0 {
		rps = 2
	}
	return &Client{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
		rl:     rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

// Complete sends prompt and returns the model's raw text response.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return "", err
	}

	start := time.Now()
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: c.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{
				OfSystem: &openai.ChatCompletionSystemMessageParam{
					Content: openai.ChatCompletionSystemMessageParamContentUnion{
						OfString: openai.String(systemPrompt),
					},
				},
			},
			{
				OfUser: &openai.ChatCompletionUserMessageParam{
					Content: openai.ChatCompletionUserMessageParamContentUnion{
						OfString: openai.String(prompt),
					},
				},
			},
		},
		Temperature: openai.Float(0.2),
		MaxTokens:   openai.Int(2000),
	})
	observability.ObserveExternal("llm", err, time.Since(start))

	if err != nil {
		return "", fmt.Errorf("llm request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("llm returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
