// Package report renders analysis results into paginated PDF reports.
package report

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/spherical/image-analyzer/internal/domain"
	"github.com/spherical/image-analyzer/internal/observability"
)

// Layout uses points with y measured upward from the bottom edge, converted
// to the writer's top-down coordinates at each draw call.
const (
	pageHeight = 841.89
	margin     = 100.0
	topY       = 750.0
	bottomY    = 100.0
	lineStep   = 15.0
	wrapWidth  = 70
	imgWidth   = 220.0
	imgHeight  = 160.0
)

// Builder writes PDF reports into a reports directory.
type Builder struct {
	reportsDir string
	logger     *observability.Logger
}

// NewBuilder creates a Builder writing into reportsDir.
func NewBuilder(reportsDir string, logger *observability.Logger) *Builder {
	return &Builder{
		reportsDir: reportsDir,
		logger:     logger,
	}
}

// Request carries everything a report needs. ImagePath and AnnotatedPath are
// optional: the image row is skipped unless both files exist.
type Request struct {
	Domain        domain.Domain
	Sections      domain.AnalysisSections
	ImagePath     string
	AnnotatedPath string
}

// Build renders the report and returns its filename within the reports
// directory.
func (b *Builder) Build(req Request) (string, error) {
	if err := os.MkdirAll(b.reportsDir, 0o755); err != nil {
		return "", domain.IOError("Failed to create reports directory", err)
	}

	filename := fmt.Sprintf("report_%s_%s.pdf", req.Domain, time.Now().Format(domain.TimestampLayout))

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	y := topY

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Text(margin, pageHeight-y, "Domain-Specific Image Analysis Report - "+domain.TitleCase(string(req.Domain)))
	y -= 30

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, pageHeight-y, "Generated on: "+time.Now().Format("2006-01-02 15:04:05"))
	y -= 40

	if fileExists(req.ImagePath) && fileExists(req.AnnotatedPath) {
		opts := fpdf.ImageOptions{ImageType: imageType(req.ImagePath)}
		pdf.ImageOptions(req.ImagePath, margin, pageHeight-y, imgWidth, imgHeight, false, opts, 0, "")
		pdf.Text(margin, pageHeight-(y-imgHeight-20), "Original Image")

		opts = fpdf.ImageOptions{ImageType: imageType(req.AnnotatedPath)}
		pdf.ImageOptions(req.AnnotatedPath, margin+250, pageHeight-y, imgWidth, imgHeight, false, opts, 0, "")
		pdf.Text(margin+250, pageHeight-(y-imgHeight-20), "Annotated Image")
		y -= 200
	}

	for _, key := range req.Sections.Keys() {
		content, _ := req.Sections.Get(key)

		if y < bottomY {
			pdf.AddPage()
			y = topY
			pdf.SetFont("Helvetica", "", 10)
		}

		pdf.SetFont("Helvetica", "B", 12)
		pdf.Text(margin, pageHeight-y, domain.TitleCase(strings.ReplaceAll(key, "_", " ")))
		y -= 20

		pdf.SetFont("Helvetica", "", 10)
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			for _, wrapped := range wrapText(line, wrapWidth) {
				if y < bottomY {
					pdf.AddPage()
					y = topY
					pdf.SetFont("Helvetica", "", 10)
				}
				x := margin
				if strings.HasPrefix(wrapped, "-") {
					x = margin + 20
				}
				pdf.Text(x, pageHeight-y, wrapped)
				y -= lineStep
			}
		}
		y -= 20
	}

	if err := pdf.OutputFileAndClose(filepath.Join(b.reportsDir, filename)); err != nil {
		return "", domain.ReportError("Failed to write report", err)
	}

	b.logger.Debug().Str("report", filename).Msg("Report written")
	return filename, nil
}

func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// imageType sniffs the file contents. Uploads are saved under a .jpg name
// regardless of their real format, so the extension cannot be trusted.
func imageType(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "JPG"
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, _ := f.Read(buf)
	switch http.DetectContentType(buf[:n]) {
	case "image/png":
		return "PNG"
	case "image/gif":
		return "GIF"
	default:
		return "JPG"
	}
}

// wrapText greedily wraps s at width characters, splitting words longer than
// a full line.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	var current string
	for _, word := range words {
		for len(word) > width {
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}
		if word == "" {
			continue
		}
		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			lines = append(lines, current)
			current = word
		}
	}
	if current != "" {
		lines = append(lines, current)
	}
	return lines
}
