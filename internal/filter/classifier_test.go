package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testKeywords() Keywords {
	return Keywords{
		Positive: []string{"medical coding", "icd-10", "cpt"},
		Negative: []string{"software engineer", "frontend"},
	}
}

func TestClassifierKeep(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		description string
		term        string
		expected    bool
	}{
		{
			name:        "positive keyword in title",
			title:       "Medical Coding Specialist",
			description: "",
			term:        "medical coding",
			expected:    true,
		},
		{
			name:        "positive keyword in description only",
			title:       "Coder - Apollo Hospitals",
			description: "Must know ICD-10 and CPT guidelines",
			term:        "medical coding",
			expected:    true,
		},
		{
			name:        "negative in title rejects despite positives in description",
			title:       "Software Engineer - Healthcare",
			description: "Work on medical coding tools, ICD-10, CPT",
			term:        "medical coding",
			expected:    false,
		},
		{
			name:        "negative in description alone does not reject",
			title:       "Medical Coding Auditor",
			description: "Familiarity with EHR software engineer teams a plus",
			term:        "medical coding",
			expected:    true,
		},
		{
			name:        "search term fallback when no keyword matches",
			title:       "CDI Clinical Documentation",
			description: "",
			term:        "CDI Clinical Documentation",
			expected:    true,
		},
		{
			name:        "no match at all",
			title:       "Sales Executive",
			description: "Field sales role",
			term:        "medical coding",
			expected:    false,
		},
		{
			name:        "empty fields reject",
			title:       "",
			description: "",
			term:        "medical coding",
			expected:    false,
		},
		{
			name:        "case insensitive matching",
			title:       "MEDICAL CODING TRAINER",
			description: "",
			term:        "medical coding",
			expected:    true,
		},
		{
			name:        "diacritics folded before matching",
			title:       "Médical Códing Specialist",
			description: "",
			term:        "medical coding",
			expected:    true,
		},
	}

	c := NewClassifier(testKeywords())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Keep(tt.title, tt.description, tt.term)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestClassifierEmptySearchTermNoFallback(t *testing.T) {
	//an empty term must not accept everything via Contains(x, "")
	c := NewClassifier(testKeywords())
	assert.False(t, c.Keep("Warehouse Manager", "forklift", ""))
}

func TestDefaultKeywordsAreLowerCase(t *testing.T) {
	kw := Default()
	for _, list := range [][]string{kw.Positive, kw.Negative} {
		for _, entry := range list {
			assert.Equal(t, Normalize(entry), entry)
		}
	}
}
