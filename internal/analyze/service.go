// Package analyze orchestrates the full image analysis pipeline: save the
// upload, detect its domain, fetch the domain analysis, parse it, draw the
// annotations, and render the PDF report.
package analyze

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/spherical/image-analyzer/internal/annotate"
	"github.com/spherical/image-analyzer/internal/classify"
	"github.com/spherical/image-analyzer/internal/domain"
	"github.com/spherical/image-analyzer/internal/llm"
	"github.com/spherical/image-analyzer/internal/observability"
	"github.com/spherical/image-analyzer/internal/parse"
	"github.com/spherical/image-analyzer/internal/report"
)

// ModelClient issues image prompts to the vision model.
type ModelClient interface {
	AnalyzeImage(ctx context.Context, req llm.ImageRequest) (string, error)
}

// Config holds the service's tunables.
type Config struct {
	TempDir   string
	MaxTokens int
}

// Service runs analysis requests end to end.
type Service struct {
	classifier *classify.Classifier
	llm        ModelClient
	annotator  *annotate.Annotator
	reports    *report.Builder
	tempDir    string
	maxTokens  int
	logger     *observability.Logger
}

// NewService wires the pipeline stages together.
func NewService(classifier *classify.Classifier, model ModelClient, annotator *annotate.Annotator, reports *report.Builder, cfg Config, logger *observability.Logger) *Service {
	return &Service{
		classifier: classifier,
		llm:        model,
		annotator:  annotator,
		reports:    reports,
		tempDir:    cfg.TempDir,
		maxTokens:  cfg.MaxTokens,
		logger:     logger,
	}
}

// Result is the outcome of one analysis request.
type Result struct {
	Domain      domain.Domain
	Analysis    string
	Sections    domain.AnalysisSections
	Annotations []domain.Annotation
	ReportFile  string
}

// Analyze runs the pipeline on an uploaded image. Classification and
// annotation failures degrade to defaults; analysis and report failures
// abort the request. Temp files are removed on every path.
func (s *Service) Analyze(ctx context.Context, image io.Reader) (*Result, error) {
	start := time.Now()
	requestID := uuid.New().String()
	log := s.logger.With().Str("request_id", requestID).Logger()
	log.Info().Msg("Starting analysis request")

	if err := os.MkdirAll(s.tempDir, 0o755); err != nil {
		return nil, domain.IOError("Failed to create temp directory", err)
	}

	imagePath := filepath.Join(s.tempDir, fmt.Sprintf("temp_%s.jpg", time.Now().Format(domain.TimestampLayout)))
	if err := saveUpload(imagePath, image); err != nil {
		return nil, err
	}

	tempFiles := []string{imagePath}
	defer func() {
		s.cleanup(log, tempFiles)
	}()

	dom := s.classifier.Classify(ctx, imagePath)
	log.Info().Str("domain", string(dom)).Msg("Domain detected")

	analysis, err := s.llm.AnalyzeImage(ctx, llm.ImageRequest{
		ImagePath: imagePath,
		Prompt:    domain.AnalysisPrompt(dom),
		MaxTokens: s.maxTokens,
	})
	if err != nil {
		log.Error().Err(err).Msg("Analysis failed")
		return nil, err
	}

	parsed := parse.Response(analysis)
	if len(parsed.Warnings) > 0 {
		log.Warn().Strs("warnings", parsed.Warnings).Msg("Analysis text parsed with warnings")
	}

	annotatedPath := s.annotator.Annotate(imagePath, parsed.Annotations)
	if annotatedPath != imagePath {
		tempFiles = append(tempFiles, annotatedPath)
	}

	reportFile, err := s.reports.Build(report.Request{
		Domain:        dom,
		Sections:      parsed.Sections,
		ImagePath:     imagePath,
		AnnotatedPath: annotatedPath,
	})
	if err != nil {
		log.Error().Err(err).Msg("Report generation failed")
		return nil, err
	}

	log.Info().
		Str("domain", string(dom)).
		Int("annotations", len(parsed.Annotations)).
		Bool("annotated", annotatedPath != imagePath).
		Str("report", reportFile).
		Dur("elapsed", time.Since(start)).
		Msg("Analysis request complete")

	return &Result{
		Domain:      dom,
		Analysis:    analysis,
		Sections:    parsed.Sections,
		Annotations: parsed.Annotations,
		ReportFile:  reportFile,
	}, nil
}

func saveUpload(path string, r io.Reader) error {
	f, err := os.Create(path)
	if err != nil {
		return domain.IOError("Failed to save uploaded image", err)
	}
	_, err = io.Copy(f, r)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return domain.IOError("Failed to save uploaded image", err)
	}
	return nil
}

func (s *Service) cleanup(log *observability.Logger, files []string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := os.Remove(f); err != nil {
			log.Warn().Err(err).Str("file", f).Msg("Error cleaning up temp file")
		}
	}
}
