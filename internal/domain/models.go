package domain

import (
	"bytes"
	"encoding/json"
	"strings"
	"unicode"
)

// Domain is one of the fixed analysis categories an image can fall into.
type Domain string

const (
	DomainHealthcare Domain = "healthcare"
	DomainPsychology Domain = "psychology"
	DomainEducation  Domain = "education"
	DomainUndersea   Domain = "undersea"
)

// DefaultDomain is returned whenever classification cannot produce a label.
const DefaultDomain = DomainUndersea

// TimestampLayout names temp images and reports. Collisions are possible for
// requests landing in the same wall-clock second.
const TimestampLayout = "20060102_150405"

// SupportedDomains lists the canonical domains in classification order.
var SupportedDomains = []Domain{
	DomainHealthcare,
	DomainPsychology,
	DomainEducation,
	DomainUndersea,
}

// domainSynonyms maps near-miss classifier tokens onto canonical domains.
var domainSynonyms = map[string]Domain{
	"medical":       DomainHealthcare,
	"health":        DomainHealthcare,
	"clinical":      DomainHealthcare,
	"psychological": DomainPsychology,
	"behavioral":    DomainPsychology,
	"educational":   DomainEducation,
	"academic":      DomainEducation,
	"learning":      DomainEducation,
	"underwater":    DomainUndersea,
	"marine":        DomainUndersea,
	"aquatic":       DomainUndersea,
}

// ParseDomain reports the canonical Domain for a token, if the token is one
// of the four labels. Comparison is case-insensitive and tolerates trailing
// punctuation.
func ParseDomain(token string) (Domain, bool) {
	token = strings.Trim(strings.TrimSpace(token), ".:!?")
	for _, d := range SupportedDomains {
		if strings.EqualFold(string(d), token) {
			return d, true
		}
	}
	return "", false
}

// NormalizeDomain maps an arbitrary classifier token onto a canonical Domain,
// consulting the synonym table and falling back to DefaultDomain.
func NormalizeDomain(token string) Domain {
	token = strings.ToLower(strings.Trim(strings.TrimSpace(token), ".:!?"))
	if d, ok := ParseDomain(token); ok {
		return d
	}
	if d, ok := domainSynonyms[token]; ok {
		return d
	}
	return DefaultDomain
}

// Annotation is a parsed pseudo-detection: a label, a confidence score and a
// normalized [x1,y1,x2,y2] rectangle in [0,1] image-fraction coordinates.
type Annotation struct {
	Label      string     `json:"label"`
	Confidence float64    `json:"confidence"`
	BBox       [4]float64 `json:"bbox"`
}

// Section keys recognized in model responses.
const (
	SectionDetailedDescription    = "detailed_description"
	SectionContext                = "context"
	SectionTechnicalAssessment    = "technical_assessment"
	SectionConsiderations         = "considerations"
	SectionAdditionalObservations = "additional_observations"
)

// AnalysisSections maps section keys to the raw text blocks extracted from a
// model response. Iteration and JSON serialization follow insertion order;
// re-setting an existing key updates the text without moving the key.
type AnalysisSections struct {
	keys   []string
	values map[string]string
}

// Set stores text under key, appending the key on first insertion.
func (s *AnalysisSections) Set(key, text string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = text
}

// Get returns the text stored under key.
func (s *AnalysisSections) Get(key string) (string, bool) {
	text, ok := s.values[key]
	return text, ok
}

// Keys returns the section keys in insertion order.
func (s *AnalysisSections) Keys() []string {
	return s.keys
}

// Len returns the number of stored sections.
func (s *AnalysisSections) Len() int {
	return len(s.keys)
}

// MarshalJSON serializes the sections as a JSON object in insertion order.
// An empty mapping serializes as {}.
func (s AnalysisSections) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range s.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(s.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// TitleCase uppercases the first letter of each alphabetic run and lowercases
// the rest, so "coral reef" renders as "Coral Reef" and "x-ray" as "X-Ray".
func TitleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				r = unicode.ToLower(r)
			} else {
				r = unicode.ToUpper(r)
			}
			prevLetter = true
		} else {
			prevLetter = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
