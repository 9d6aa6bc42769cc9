// Package anthropic implements the generation.LanguageModel interface on the
// Anthropic messages API.
package anthropic

import (
	"context"
	"fmt"
	"strings"

	"github.com/autoflow/autoflow/pkg/generation"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type Provider struct {
	client anthropic.Client
	model  string
}

func New(apiKey, model string) *Provider {
	return &Provider{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (p *Provider) ID() string {
	return fmt.Sprintf("anthropic:%s", p.model)
}

func (p *Provider) Generate(ctx context.Context, req generation.GenerateRequest) (string, error) {
	msgReq := anthropic.MessageNewParams{
		Model: anthropic.Model(p.model),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(req.Prompt)),
		},
	}

	if req.MaxTokens > 0 {
		msgReq.MaxTokens = int64(req.MaxTokens)
	} else {
		// Anthropic requires max_tokens.
		msgReq.MaxTokens = 4096
	}
	if req.System != "" {
		msgReq.System = []anthropic.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature > 0 {
		msgReq.Temperature = anthropic.Float(float64(req.Temperature))
	}

	resp, err := p.client.Messages.New(ctx, msgReq)
	if err != nil {
		return "", fmt.Errorf("anthropic api error: %w", err)
	}

	var text strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return text.String(), nil
}
