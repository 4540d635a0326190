package classify

import (
	"context"
	"strings"

	"github.com/spherical/image-analyzer/internal/domain"
	"github.com/spherical/image-analyzer/internal/llm"
	"github.com/spherical/image-analyzer/internal/observability"
)

// ModelClient is the vision model surface the classifier needs
type ModelClient interface {
	AnalyzeImage(ctx context.Context, req llm.ImageRequest) (string, error)
}

// Classifier resolves the analysis domain for an image
type Classifier struct {
	llm       ModelClient
	maxTokens int
	logger    *observability.Logger
}

// New creates a Classifier
func New(llm ModelClient, maxTokens int, logger *observability.Logger) *Classifier {
	return &Classifier{
		llm:       llm,
		maxTokens: maxTokens,
		logger:    logger,
	}
}

// Classify determines the best-fitting domain for an image. It never fails:
// any model error or unusable reply falls back to the default domain.
func (c *Classifier) Classify(ctx context.Context, imagePath string) domain.Domain {
	reply, err := c.llm.AnalyzeImage(ctx, llm.ImageRequest{
		ImagePath:     imagePath,
		Prompt:        domain.ClassificationPrompt,
		MaxTokens:     c.maxTokens,
		Deterministic: true,
	})
	if err != nil {
		c.logger.Error().Err(err).Msg("Domain detection failed, using default")
		return domain.DefaultDomain
	}

	c.logger.Debug().Str("reply", reply).Msg("Raw detected domain")

	fields := strings.Fields(reply)
	if len(fields) == 0 {
		c.logger.Warn().Msg("Empty classification reply, using default")
		return domain.DefaultDomain
	}

	token := strings.Trim(strings.ToLower(fields[0]), ".:!?")
	d, ok := domain.ParseDomain(token)
	if !ok {
		c.logger.Warn().Str("token", token).Msg("Unexpected domain detected, falling back to best match")
		d = domain.NormalizeDomain(token)
	}

	c.logger.Debug().Str("domain", string(d)).Msg("Final detected domain")
	return d
}
