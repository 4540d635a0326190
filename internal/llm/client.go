package llm

import (
	"context"
	"encoding/base64"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/spherical/image-analyzer/internal/domain"
	"github.com/spherical/image-analyzer/internal/observability"
)

const defaultModel = "claude-3-sonnet-20240229"

// Client handles communication with the Anthropic API
type Client struct {
	client *anthropic.Client
	model  string
	logger *observability.Logger
}

// ImageRequest describes a single vision call: one image plus one prompt
type ImageRequest struct {
	ImagePath     string
	Prompt        string
	MaxTokens     int
	Deterministic bool
}

// NewClient creates a new vision model client
func NewClient(apiKey, model, baseURL string, logger *observability.Logger) *Client {
	if model == "" {
		model = defaultModel
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	client := anthropic.NewClient(opts...)

	return &Client{
		client: &client,
		model:  model,
		logger: logger,
	}
}

// AnalyzeImage sends the image and prompt to the model and returns the text reply
func (c *Client) AnalyzeImage(ctx context.Context, req ImageRequest) (string, error) {
	imageData, err := os.ReadFile(req.ImagePath)
	if err != nil {
		return "", domain.IOError("Failed to read image", err)
	}

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: int64(req.MaxTokens),
		Messages: []anthropic.MessageParam{
			{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					anthropic.NewImageBlockBase64("image/jpeg", base64.StdEncoding.EncodeToString(imageData)),
					anthropic.NewTextBlock(req.Prompt),
				},
			},
		},
	}
	if req.Deterministic {
		params.Temperature = anthropic.Float(0)
	}

	message, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", domain.APIError("Model request failed", err)
	}

	if len(message.Content) == 0 {
		return "", domain.APIError("Model returned empty response", nil)
	}

	var text string
	for _, block := range message.Content {
		if b, ok := block.AsAny().(anthropic.TextBlock); ok {
			text = b.Text
			break
		}
	}

	c.logger.Debug().
		Int64("input_tokens", message.Usage.InputTokens).
		Int64("output_tokens", message.Usage.OutputTokens).
		Msg("Model call complete")

	return text, nil
}
