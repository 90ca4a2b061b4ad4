package squad

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/XiaoConstantine/qabuild-go/pkg/errors"
)

const sampleCorpus = `{
  "data": [
    {
      "title": "Paris",
      "paragraphs": [
        {
          "context": "Paris is the capital. It is large.",
          "qas": [
            {
              "question": "What is the capital?",
              "id": "q1",
              "answers": [{"answer_start": 0, "text": "Paris"}]
            }
          ]
        },
        {
          "context": "Paris is the capital. It is large. Rome is also a capital.",
          "qas": [
            {
              "question": "What is the capital?",
              "id": "q1-high-conf",
              "answers": [{"answer_start": 0, "text": "Paris"}]
            }
          ]
        }
      ]
    }
  ]
}`

func TestParseCorpus(t *testing.T) {
	corpus, err := ParseCorpus(strings.NewReader(sampleCorpus))
	require.NoError(t, err)
	require.Len(t, corpus, 2)

	clean := corpus["q1"]
	assert.Equal(t, "Paris", clean.Title)
	assert.Equal(t, "Paris is the capital. It is large.", clean.Context)
	assert.Equal(t, "What is the capital?", clean.Question)
	assert.Equal(t, []string{"Paris"}, clean.Answers.Text)
	assert.Equal(t, []int64{0}, clean.Answers.AnswerStart)

	variant := corpus["q1-high-conf"]
	assert.Equal(t, "Paris is the capital. It is large. Rome is also a capital.", variant.Context)
}

func TestParseCorpusErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "not json",
			input: "definitely not json",
		},
		{
			name:  "missing data",
			input: `{"version": "1.1"}`,
		},
		{
			name:  "missing title",
			input: `{"data": [{"paragraphs": []}]}`,
		},
		{
			name:  "missing context",
			input: `{"data": [{"title": "T", "paragraphs": [{"qas": []}]}]}`,
		},
		{
			name:  "missing qa id",
			input: `{"data": [{"title": "T", "paragraphs": [{"context": "C", "qas": [{"question": "Q", "answers": []}]}]}]}`,
		},
		{
			name:  "missing answer_start",
			input: `{"data": [{"title": "T", "paragraphs": [{"context": "C", "qas": [{"question": "Q", "id": "q1", "answers": [{"text": "C"}]}]}]}]}`,
		},
		{
			name:  "wrong type for answer_start",
			input: `{"data": [{"title": "T", "paragraphs": [{"context": "C", "qas": [{"question": "Q", "id": "q1", "answers": [{"answer_start": "zero", "text": "C"}]}]}]}]}`,
		},
		{
			name:  "wrong type for paragraphs",
			input: `{"data": [{"title": "T", "paragraphs": "oops"}]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCorpus(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.True(t, stderrors.Is(err, errors.New(errors.ParseFailed, "")),
				"expected ParseFailed, got: %v", err)
		})
	}
}

func TestParseCorpusDuplicateIDLastWins(t *testing.T) {
	input := `{
  "data": [
    {
      "title": "T",
      "paragraphs": [
        {"context": "first", "qas": [{"question": "Q", "id": "q1", "answers": []}]},
        {"context": "second", "qas": [{"question": "Q", "id": "q1", "answers": []}]}
      ]
    }
  ]
}`
	corpus, err := ParseCorpus(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, corpus, 1)
	assert.Equal(t, "second", corpus["q1"].Context)
}

func TestReadCorpus(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleCorpus), 0644))

	corpus, err := ReadCorpus(path)
	require.NoError(t, err)
	assert.Len(t, corpus, 2)
}

func TestReadCorpusMissingFile(t *testing.T) {
	_, err := ReadCorpus(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.New(errors.IOFailed, "")))
}
