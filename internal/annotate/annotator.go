package annotate

import (
	"fmt"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"

	"github.com/spherical/image-analyzer/internal/domain"
	"github.com/spherical/image-analyzer/internal/observability"
)

const (
	fontPath    = "/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf"
	fontSize    = 16
	jpegQuality = 95
)

// tierColors maps confidence tiers to box colors. The low tier is not
// producible while the parser emits only 0.9 and 0.7 confidences.
var tierColors = map[string]color.RGBA{
	"high":   {R: 255, A: 255},
	"medium": {R: 255, G: 165, A: 255},
	"low":    {R: 255, G: 255, A: 255},
}

// Annotator draws bounding boxes and labels onto images
type Annotator struct {
	tempDir string
	logger  *observability.Logger
}

// New creates an Annotator writing annotated copies into tempDir
func New(tempDir string, logger *observability.Logger) *Annotator {
	return &Annotator{
		tempDir: tempDir,
		logger:  logger,
	}
}

// Annotate draws the annotations onto a copy of the image and returns the
// new file's path. On any failure it logs and returns the original path so
// downstream steps still receive a usable image.
func (a *Annotator) Annotate(imagePath string, annotations []domain.Annotation) string {
	out, err := a.render(imagePath, annotations)
	if err != nil {
		a.logger.Error().Err(err).Str("image", imagePath).Msg("Error annotating image")
		return imagePath
	}
	return out
}

func (a *Annotator) render(imagePath string, annotations []domain.Annotation) (string, error) {
	img, err := gg.LoadImage(imagePath)
	if err != nil {
		return "", domain.AnnotationError("Failed to load image", err)
	}

	dc := gg.NewContextForImage(img)
	width := float64(dc.Width())
	height := float64(dc.Height())

	if face, err := loadFontFace(fontPath, fontSize); err != nil {
		a.logger.Warn().Err(err).Msg("Falling back to built-in font face")
	} else {
		dc.SetFontFace(face)
	}

	for _, ann := range annotations {
		x1 := ann.BBox[0] * width
		y1 := ann.BBox[1] * height
		x2 := ann.BBox[2] * width
		y2 := ann.BBox[3] * height

		col := tierColors["medium"]
		if ann.Confidence >= 0.8 {
			col = tierColors["high"]
		}
		dc.SetColor(col)
		dc.SetLineWidth(2)

		// Concentric strokes thicken the border.
		for i := 0.0; i < 4; i++ {
			dc.DrawRectangle(x1-i, y1-i, (x2-x1)+2*i, (y2-y1)+2*i)
			dc.Stroke()
		}

		label := fmt.Sprintf("%s (%.0f%%)", domain.TitleCase(ann.Label), ann.Confidence*100)
		tw, th := dc.MeasureString(label)
		dc.DrawRectangle(x1, y1-25, tw, th)
		dc.Fill()

		dc.SetColor(color.White)
		dc.DrawStringAnchored(label, x1, y1-25, 0, 1)
	}

	outPath := filepath.Join(a.tempDir, fmt.Sprintf("annotated_%s.jpg", time.Now().Format(domain.TimestampLayout)))
	f, err := os.Create(outPath)
	if err != nil {
		return "", domain.IOError("Failed to create annotated image", err)
	}
	defer f.Close()

	if err := jpeg.Encode(f, dc.Image(), &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", domain.AnnotationError("Failed to encode annotated image", err)
	}

	return outPath, nil
}

func loadFontFace(path string, points float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}
