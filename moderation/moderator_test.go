package moderation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const replacementChar = '*'

// TestModerator_Censor
// The dictionary uses specific words to avoid partial collisions (e.g., "he" inside "The")
func TestModerator_Censor(t *testing.T) {
	req := require.New(t)
	dictionary := []string{"badger", "snake", "mushroom"}
	mod, err := NewModerator(dictionary, replacementChar)
	req.NoError(err)

	tests := []struct {
		name     string
		input    string
		expected string
		words    []string
	}{
		{
			name:     "Simple word and space preservation",
			input:    "The badger is here",
			expected: "The ****** is here",
			words:    []string{"badger"},
		},
		{
			name:     "Multiple occurrences and preserved spacing",
			input:    "badger badger badger",
			expected: "****** ****** ******",
			words:    []string{"badger", "badger", "badger"},
		},
		{
			name:     "Case insensitive match",
			input:    "BaDgEr crossing",
			expected: "****** crossing",
			words:    []string{"badger"},
		},
		{
			name:     "Clean text stays untouched",
			input:    "nothing to see here",
			expected: "nothing to see here",
			words:    nil,
		},
		{
			name:     "Empty input",
			input:    "",
			expected: "",
			words:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			censored, found := mod.Censor(tt.input)
			req.Equal(tt.expected, censored)
			req.Len(found, len(tt.words))
		})
	}
}

func TestLoadCensoredWords(t *testing.T) {
	req := require.New(t)

	data, err := LoadCensoredWords()
	req.NoError(err)
	req.NotEmpty(data.Words)
	req.Contains(data.Languages, "en")
	req.Contains(data.Languages, "fr")
}

func TestDetectLanguage(t *testing.T) {
	req := require.New(t)

	// Long unambiguous sentences give the detector enough signal
	req.Equal("en", DetectLanguage("This is a perfectly normal english sentence about reading books together."))
	req.Equal("fr", DetectLanguage("Nous lisons ensemble un livre passionnant chaque semaine dans le salon."))

	// Too short or ambiguous: detection declines instead of guessing
	req.Equal("", DetectLanguage("ok"))
}
