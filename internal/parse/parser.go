// Package parse extracts structured sections and annotations from the
// free-form analysis text returned by the vision model. The model is not
// guaranteed to follow the requested format, so everything here is a
// best-effort substring scan that degrades to partial output.
package parse

import (
	"fmt"
	"strings"

	"github.com/spherical/image-analyzer/internal/domain"
)

// Result carries whatever could be recovered from the response text plus
// diagnostics for anything that looked off.
type Result struct {
	Annotations []domain.Annotation
	Sections    domain.AnalysisSections
	Warnings    []string
}

// contextHeaders are the domain-specific variants of the section 3 header.
var contextHeaders = []string{
	"3. ENVIRONMENTAL CONTEXT",
	"3. MEDICAL CONTEXT",
	"3. PSYCHOLOGICAL CONTEXT",
	"3. EDUCATIONAL CONTEXT",
}

// considerationHeaders are the domain-specific variants of the section 5 header.
var considerationHeaders = []string{
	"5. SAFETY CONSIDERATIONS",
	"5. CLINICAL CONSIDERATIONS",
	"5. BEHAVIORAL CONSIDERATIONS",
	"5. PEDAGOGICAL CONSIDERATIONS",
}

// locationTerms maps positional phrases to canned rectangles. Scan order
// matters: compound phrases must be checked before the bare "center", which
// is a substring of five of them.
var locationTerms = []struct {
	phrase string
	bbox   [4]float64
}{
	{"top-center", [4]float64{0.3, 0.1, 0.7, 0.4}},
	{"top-left", [4]float64{0.1, 0.1, 0.4, 0.4}},
	{"top-right", [4]float64{0.6, 0.1, 0.9, 0.4}},
	{"center-left", [4]float64{0.1, 0.3, 0.4, 0.7}},
	{"center-right", [4]float64{0.6, 0.3, 0.9, 0.7}},
	{"bottom-left", [4]float64{0.1, 0.6, 0.4, 0.9}},
	{"bottom-right", [4]float64{0.6, 0.6, 0.9, 0.9}},
	{"bottom-center", [4]float64{0.3, 0.6, 0.7, 0.9}},
	{"center", [4]float64{0.3, 0.3, 0.7, 0.7}},
}

// defaultBBox is the center rectangle used when no location phrase matches.
var defaultBBox = [4]float64{0.3, 0.3, 0.7, 0.7}

// Response splits the model's reply into blank-line separated blocks and
// picks out the object identification items and the known analysis sections.
// Blocks without a recognized header are ignored, including the "6.
// ANNOTATIONS" block the prompts request: only the object identification
// items feed annotations.
func Response(text string) Result {
	res := Result{
		Annotations: []domain.Annotation{},
	}

	for _, block := range strings.Split(text, "\n\n") {
		switch {
		case strings.Contains(block, "1. OBJECT IDENTIFICATION"):
			extractAnnotations(&res, block)
		case strings.Contains(block, "2. DETAILED DESCRIPTION"):
			setSection(&res, domain.SectionDetailedDescription, block)
		case containsAny(block, contextHeaders):
			setSection(&res, domain.SectionContext, block)
		case strings.Contains(block, "4. TECHNICAL ASSESSMENT"):
			setSection(&res, domain.SectionTechnicalAssessment, block)
		case containsAny(block, considerationHeaders):
			setSection(&res, domain.SectionConsiderations, block)
		case strings.Contains(block, "7. ADDITIONAL OBSERVATIONS"):
			setSection(&res, domain.SectionAdditionalObservations, block)
		}
	}

	return res
}

// extractAnnotations pulls one annotation out of each bulleted item in the
// object identification block.
func extractAnnotations(res *Result, block string) {
	items := strings.Split(block, "\n-")
	if len(items) < 2 {
		res.Warnings = append(res.Warnings, "object identification block has no items")
		return
	}

	for _, item := range items[1:] {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		item = strings.ToLower(item)

		confidence := 0.7
		if strings.Contains(item, "high confidence") {
			confidence = 0.9
		}

		bbox := defaultBBox
		for _, term := range locationTerms {
			if strings.Contains(item, term.phrase) {
				bbox = term.bbox
				break
			}
		}

		label := item
		if i := strings.Index(label, ","); i >= 0 {
			label = label[:i]
		}
		label = strings.TrimSpace(label)
		if i := strings.Index(label, "("); i >= 0 {
			label = label[:i]
		}
		label = strings.TrimSpace(label)
		if label == "" {
			res.Warnings = append(res.Warnings, "annotation with empty label")
		}

		res.Annotations = append(res.Annotations, domain.Annotation{
			Label:      label,
			Confidence: confidence,
			BBox:       bbox,
		})
	}
}

// setSection stores a block under its section key, keeping whole raw block
// text including the header line.
func setSection(res *Result, key, block string) {
	if _, ok := res.Sections.Get(key); ok {
		res.Warnings = append(res.Warnings, fmt.Sprintf("duplicate section %q, keeping the latest", key))
	}
	res.Sections.Set(key, block)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
