package domain

import (
	"encoding/json"
	"testing"
)

func TestParseDomain(t *testing.T) {
	tests := []struct {
		input string
		want  Domain
		ok    bool
	}{
		{"healthcare", DomainHealthcare, true},
		{"psychology", DomainPsychology, true},
		{"education", DomainEducation, true},
		{"undersea", DomainUndersea, true},
		{"Healthcare", DomainHealthcare, true},
		{"UNDERSEA", DomainUndersea, true},
		{"education.", DomainEducation, true},
		{"psychology!", DomainPsychology, true},
		{"  undersea  ", DomainUndersea, true},
		{"medical", "", false},
		{"finance", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDomain(tt.input)
			if ok != tt.ok {
				t.Errorf("ParseDomain(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("ParseDomain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeDomain(t *testing.T) {
	tests := []struct {
		input string
		want  Domain
	}{
		{"healthcare", DomainHealthcare},
		{"psychology", DomainPsychology},
		{"education", DomainEducation},
		{"undersea", DomainUndersea},
		{"medical", DomainHealthcare},
		{"health", DomainHealthcare},
		{"clinical", DomainHealthcare},
		{"psychological", DomainPsychology},
		{"behavioral", DomainPsychology},
		{"educational", DomainEducation},
		{"academic", DomainEducation},
		{"learning", DomainEducation},
		{"underwater", DomainUndersea},
		{"marine", DomainUndersea},
		{"aquatic", DomainUndersea},
		{"Medical.", DomainHealthcare},
		{"UNDERWATER!", DomainUndersea},
		{"submarine", DomainUndersea},
		{"gibberish", DomainUndersea},
		{"", DomainUndersea},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeDomain(tt.input); got != tt.want {
				t.Errorf("NormalizeDomain(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAnalysisSectionsOrder(t *testing.T) {
	var s AnalysisSections
	s.Set(SectionDetailedDescription, "first")
	s.Set(SectionContext, "second")
	s.Set(SectionTechnicalAssessment, "third")

	keys := s.Keys()
	want := []string{SectionDetailedDescription, SectionContext, SectionTechnicalAssessment}
	if len(keys) != len(want) {
		t.Fatalf("Keys() returned %d keys, want %d", len(keys), len(want))
	}
	for i, k := range want {
		if keys[i] != k {
			t.Errorf("Keys()[%d] = %q, want %q", i, keys[i], k)
		}
	}
}

func TestAnalysisSectionsOverwrite(t *testing.T) {
	var s AnalysisSections
	s.Set(SectionContext, "old")
	s.Set(SectionConsiderations, "other")
	s.Set(SectionContext, "new")

	if got := s.Len(); got != 2 {
		t.Fatalf("Len() = %d, want 2", got)
	}
	if v, ok := s.Get(SectionContext); !ok || v != "new" {
		t.Errorf("Get(%q) = %q, %v, want %q, true", SectionContext, v, ok, "new")
	}
	if keys := s.Keys(); keys[0] != SectionContext {
		t.Errorf("overwriting a key moved it: Keys()[0] = %q, want %q", keys[0], SectionContext)
	}
}

func TestAnalysisSectionsMarshalJSON(t *testing.T) {
	var s AnalysisSections
	b, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal(empty) error: %v", err)
	}
	if string(b) != "{}" {
		t.Errorf("Marshal(empty) = %s, want {}", b)
	}

	s.Set("zulu", "last alphabetically, first inserted")
	s.Set("alpha", "first alphabetically, second inserted")
	b, err = json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	want := `{"zulu":"last alphabetically, first inserted","alpha":"first alphabetically, second inserted"}`
	if string(b) != want {
		t.Errorf("Marshal = %s, want %s", b, want)
	}
}

func TestTitleCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"coral reef", "Coral Reef"},
		{"UNEXPLODED ORDNANCE", "Unexploded Ordnance"},
		{"x-ray scan", "X-Ray Scan"},
		{"detailed_description", "Detailed_Description"},
		{"detailed description", "Detailed Description"},
		{"3d model", "3D Model"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := TitleCase(tt.input); got != tt.want {
				t.Errorf("TitleCase(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
