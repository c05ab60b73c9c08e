// Package anthropic is the Claude backend of llm.LLMProvider. It is the only
// provider able to read PDF payslips directly.
package anthropic

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"paie-detect-be/pkg/llm"
)

const defaultMaxTokens = 8192

// modelPricing holds per-million-token pricing for known models.
var modelPricing = map[string][2]float64{
	// model → {input $/MTok, output $/MTok}
	"claude-haiku-4-5-20251001":  {0.80, 4.00},
	"claude-sonnet-4-5-20250929": {3.00, 15.00},
}

// Provider implements llm.LLMProvider on the official SDK.
type Provider struct {
	client sdk.Client
	model  string
}

var _ llm.LLMProvider = &Provider{}

// NewProvider builds a provider for model. Extra client options (base URL,
// retries) are mostly useful in tests.
func NewProvider(apiKey, model string, opts ...option.RequestOption) *Provider {
	return &Provider{
		client: sdk.NewClient(append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)...),
		model:  model,
	}
}

func (p *Provider) Chat(ctx context.Context, history []llm.Message, opts ...llm.Option) (string, error) {
	options := llm.Apply(llm.Options{MaxTokens: defaultMaxTokens}, opts...)

	model := p.model
	if options.Model != "" {
		model = options.Model
	}

	messages, err := toSDKMessages(history)
	if err != nil {
		return "", err
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(model),
		MaxTokens: int64(options.MaxTokens),
		Messages:  messages,
	}
	if options.System != "" {
		params.System = []sdk.TextBlockParam{{Text: options.System}}
	}
	if options.Temperature > 0 {
		params.Temperature = sdk.Float(options.Temperature)
	}

	msg, err := p.client.Messages.New(ctx, params)
	if err != nil {
		return "", eris.Wrap(err, "anthropic: create message")
	}

	logCost(model, msg.Usage)

	var text strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}
	if text.Len() == 0 {
		return "", eris.Errorf("anthropic: message %s has no text content (stop reason %s)", msg.ID, msg.StopReason)
	}
	return text.String(), nil
}

func (p *Provider) Generate(ctx context.Context, prompt string, opts ...llm.Option) (string, error) {
	return p.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}}, opts...)
}

// toSDKMessages places attachments before the text of their message.
func toSDKMessages(msgs []llm.Message) ([]sdk.MessageParam, error) {
	out := make([]sdk.MessageParam, 0, len(msgs))
	for _, m := range msgs {
		blocks := make([]sdk.ContentBlockParamUnion, 0, len(m.Attachments)+1)
		for _, att := range m.Attachments {
			encoded := base64.StdEncoding.EncodeToString(att.Data)
			switch {
			case att.IsPDF():
				blocks = append(blocks, sdk.NewDocumentBlock(sdk.Base64PDFSourceParam{Data: encoded}))
			case strings.HasPrefix(att.MediaType, "image/"):
				blocks = append(blocks, sdk.NewImageBlockBase64(att.MediaType, encoded))
			default:
				return nil, fmt.Errorf("anthropic: %s: %w", att.MediaType, llm.ErrUnsupportedAttachment)
			}
		}
		blocks = append(blocks, sdk.NewTextBlock(m.Content))

		switch m.Role {
		case "assistant", "model":
			out = append(out, sdk.NewAssistantMessage(blocks...))
		default:
			out = append(out, sdk.NewUserMessage(blocks...))
		}
	}
	return out, nil
}

// estimateCost returns the USD cost of a call, 0 for unknown models.
func estimateCost(model string, usage sdk.Usage) float64 {
	pricing, ok := modelPricing[model]
	if !ok {
		return 0
	}
	inCost := (float64(usage.InputTokens) / 1e6) * pricing[0]
	outCost := (float64(usage.OutputTokens) / 1e6) * pricing[1]
	cacheWriteCost := (float64(usage.CacheCreationInputTokens) / 1e6) * pricing[0] * 1.25
	cacheReadCost := (float64(usage.CacheReadInputTokens) / 1e6) * pricing[0] * 0.1
	return inCost + outCost + cacheWriteCost + cacheReadCost
}

func logCost(model string, usage sdk.Usage) {
	zap.L().Info("cost attribution",
		zap.String("model", model),
		zap.Int64("input_tokens", usage.InputTokens),
		zap.Int64("output_tokens", usage.OutputTokens),
		zap.Int64("cache_write_tokens", usage.CacheCreationInputTokens),
		zap.Int64("cache_read_tokens", usage.CacheReadInputTokens),
		zap.Float64("estimated_cost_usd", estimateCost(model, usage)),
	)
}
