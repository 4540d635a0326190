package report

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spherical/image-analyzer/internal/domain"
	"github.com/spherical/image-analyzer/internal/observability"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 64, 48))
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	return img
}

func writeJPEG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, jpeg.Encode(f, testImage(), &jpeg.Options{Quality: 95}))
	return path
}

func writePNG(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, testImage()))
	return path
}

func sampleSections() domain.AnalysisSections {
	var sections domain.AnalysisSections
	sections.Set(domain.SectionDetailedDescription, "2. DETAILED DESCRIPTION\nA rusted hull rests on the seabed.\n- Visible corrosion along the bow")
	sections.Set(domain.SectionContext, "3. ENVIRONMENTAL CONTEXT\nMurky water with low visibility.")
	return sections
}

func TestBuildWritesReport(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir, observability.DefaultLogger())

	imgDir := t.TempDir()
	req := Request{
		Domain:        domain.DomainUndersea,
		Sections:      sampleSections(),
		ImagePath:     writeJPEG(t, imgDir, "temp_20240101_120000.jpg"),
		AnnotatedPath: writeJPEG(t, imgDir, "annotated_20240101_120000.jpg"),
	}

	filename, err := b.Build(req)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^report_undersea_\d{8}_\d{6}\.pdf$`), filename)

	data, err := os.ReadFile(filepath.Join(dir, filename))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "report should be a PDF document")
}

func TestBuildWithoutImages(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir, observability.DefaultLogger())

	filename, err := b.Build(Request{
		Domain:   domain.DomainHealthcare,
		Sections: sampleSections(),
	})
	require.NoError(t, err)
	assert.Contains(t, filename, "report_healthcare_")
	assert.FileExists(t, filepath.Join(dir, filename))
}

func TestBuildSkipsImagesWhenAnnotatedMissing(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir, observability.DefaultLogger())

	imgDir := t.TempDir()
	filename, err := b.Build(Request{
		Domain:        domain.DomainEducation,
		Sections:      sampleSections(),
		ImagePath:     writeJPEG(t, imgDir, "temp_20240101_120000.jpg"),
		AnnotatedPath: filepath.Join(imgDir, "gone.jpg"),
	})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, filename))
}

func TestBuildEmptySections(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir, observability.DefaultLogger())

	filename, err := b.Build(Request{Domain: domain.DomainPsychology})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, filename))
}

func TestBuildPaginatesLongSections(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir, observability.DefaultLogger())

	var sb strings.Builder
	sb.WriteString("2. DETAILED DESCRIPTION\n")
	for i := 0; i < 120; i++ {
		sb.WriteString("- The same observation is repeated to force a page break in the body text.\n")
	}
	var sections domain.AnalysisSections
	sections.Set(domain.SectionDetailedDescription, sb.String())

	filename, err := b.Build(Request{Domain: domain.DomainUndersea, Sections: sections})
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, filename))
}

func TestBuildSniffsUploadFormat(t *testing.T) {
	dir := t.TempDir()
	b := NewBuilder(dir, observability.DefaultLogger())

	// Uploads keep a .jpg name even when the bytes are PNG.
	imgDir := t.TempDir()
	req := Request{
		Domain:        domain.DomainUndersea,
		Sections:      sampleSections(),
		ImagePath:     writePNG(t, imgDir, "temp_20240101_120000.jpg"),
		AnnotatedPath: writeJPEG(t, imgDir, "annotated_20240101_120000.jpg"),
	}

	filename, err := b.Build(req)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, filename))
}

func TestWrapText(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Nil(t, wrapText("   ", wrapWidth))
	})

	t.Run("short line unchanged", func(t *testing.T) {
		assert.Equal(t, []string{"hello world"}, wrapText("hello world", wrapWidth))
	})

	t.Run("wraps at width", func(t *testing.T) {
		line := strings.TrimSpace(strings.Repeat("abcde ", 20))
		lines := wrapText(line, wrapWidth)
		require.Greater(t, len(lines), 1)
		for _, l := range lines {
			assert.LessOrEqual(t, len(l), wrapWidth)
		}
		assert.Equal(t, strings.Fields(line), strings.Fields(strings.Join(lines, " ")))
	})

	t.Run("splits long words", func(t *testing.T) {
		word := strings.Repeat("x", 150)
		lines := wrapText(word, wrapWidth)
		assert.Equal(t, []string{strings.Repeat("x", 70), strings.Repeat("x", 70), strings.Repeat("x", 10)}, lines)
	})

	t.Run("bullet prefix survives on first line only", func(t *testing.T) {
		line := "- " + strings.TrimSpace(strings.Repeat("coral ", 30))
		lines := wrapText(line, wrapWidth)
		require.Greater(t, len(lines), 1)
		assert.True(t, strings.HasPrefix(lines[0], "-"))
		assert.False(t, strings.HasPrefix(lines[1], "-"))
	})
}
