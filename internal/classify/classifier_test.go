package classify

import (
	"context"
	"errors"
	"testing"

	"github.com/spherical/image-analyzer/internal/domain"
	"github.com/spherical/image-analyzer/internal/llm"
	"github.com/spherical/image-analyzer/internal/observability"
)

type stubModel struct {
	reply string
	err   error

	gotPrompt        string
	gotDeterministic bool
}

func (s *stubModel) AnalyzeImage(ctx context.Context, req llm.ImageRequest) (string, error) {
	s.gotPrompt = req.Prompt
	s.gotDeterministic = req.Deterministic
	return s.reply, s.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  domain.Domain
	}{
		{"exact label", "healthcare", domain.DomainHealthcare},
		{"capitalized label", "Psychology", domain.DomainPsychology},
		{"trailing period", "education.", domain.DomainEducation},
		{"trailing bang", "undersea!", domain.DomainUndersea},
		{"first token wins", "education is the best fit", domain.DomainEducation},
		{"synonym", "medical", domain.DomainHealthcare},
		{"capitalized synonym", "UNDERWATER", domain.DomainUndersea},
		{"unknown token", "finance", domain.DomainUndersea},
		{"empty reply", "", domain.DomainUndersea},
		{"whitespace reply", "   \n", domain.DomainUndersea},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(&stubModel{reply: tt.reply}, 50, observability.DefaultLogger())
			if got := c.Classify(context.Background(), "in.jpg"); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassifyModelError(t *testing.T) {
	c := New(&stubModel{err: errors.New("connection refused")}, 50, observability.DefaultLogger())

	got := c.Classify(context.Background(), "in.jpg")
	if got != domain.DefaultDomain {
		t.Errorf("Classify() with model error = %q, want default %q", got, domain.DefaultDomain)
	}
}

func TestClassifyRequestShape(t *testing.T) {
	stub := &stubModel{reply: "undersea"}
	c := New(stub, 50, observability.DefaultLogger())
	c.Classify(context.Background(), "in.jpg")

	if stub.gotPrompt != domain.ClassificationPrompt {
		t.Error("Classify should send the classification prompt")
	}
	if !stub.gotDeterministic {
		t.Error("Classify should request deterministic sampling")
	}
}
