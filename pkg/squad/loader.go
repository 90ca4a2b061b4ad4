package squad

import (
	"encoding/json"
	"io"
	"os"

	"github.com/XiaoConstantine/qabuild-go/pkg/errors"
)

// Raw schema of the source files: a nested passage-group -> paragraph -> Q/A
// layout. Required fields are pointers so that a missing key can be told
// apart from a zero value.
type rawDataset struct {
	Data *[]rawGroup `json:"data"`
}

type rawGroup struct {
	Title      *string         `json:"title"`
	Paragraphs *[]rawParagraph `json:"paragraphs"`
}

type rawParagraph struct {
	Context *string  `json:"context"`
	Qas     *[]rawQA `json:"qas"`
}

type rawQA struct {
	Question *string      `json:"question"`
	ID       *string      `json:"id"`
	Answers  *[]rawAnswer `json:"answers"`
}

type rawAnswer struct {
	AnswerStart *int64  `json:"answer_start"`
	Text        *string `json:"text"`
}

// ReadCorpus loads a SQuAD-format file into an id -> Example mapping.
// Later entries with duplicate ids overwrite earlier ones.
func ReadCorpus(path string) (Corpus, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to open corpus file"),
			errors.Fields{"path": path})
	}
	defer f.Close()

	corpus, err := ParseCorpus(f)
	if err != nil {
		return nil, errors.WithFields(err, errors.Fields{"path": path})
	}
	return corpus, nil
}

// ParseCorpus decodes the nested schema from r and flattens it into a Corpus.
// A missing or wrongly typed required field fails the whole parse.
func ParseCorpus(r io.Reader) (Corpus, error) {
	var raw rawDataset
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, errors.Wrap(err, errors.ParseFailed, "failed to decode corpus")
	}
	if raw.Data == nil {
		return nil, errors.New(errors.ParseFailed, "corpus missing required field \"data\"")
	}

	corpus := make(Corpus)
	for gi, group := range *raw.Data {
		if group.Title == nil || group.Paragraphs == nil {
			return nil, errors.WithFields(
				errors.New(errors.ParseFailed, "passage group missing required field"),
				errors.Fields{"group": gi})
		}

		for pi, paragraph := range *group.Paragraphs {
			if paragraph.Context == nil || paragraph.Qas == nil {
				return nil, errors.WithFields(
					errors.New(errors.ParseFailed, "paragraph missing required field"),
					errors.Fields{"title": *group.Title, "paragraph": pi})
			}

			for _, qa := range *paragraph.Qas {
				if qa.Question == nil || qa.ID == nil || qa.Answers == nil {
					return nil, errors.WithFields(
						errors.New(errors.ParseFailed, "qa entry missing required field"),
						errors.Fields{"title": *group.Title, "paragraph": pi})
				}

				answers := Answers{
					Text:        make([]string, 0, len(*qa.Answers)),
					AnswerStart: make([]int64, 0, len(*qa.Answers)),
				}
				for _, ans := range *qa.Answers {
					if ans.AnswerStart == nil || ans.Text == nil {
						return nil, errors.WithFields(
							errors.New(errors.ParseFailed, "answer missing required field"),
							errors.Fields{"id": *qa.ID})
					}
					answers.AnswerStart = append(answers.AnswerStart, *ans.AnswerStart)
					answers.Text = append(answers.Text, *ans.Text)
				}

				corpus[*qa.ID] = Example{
					Title:    *group.Title,
					Context:  *paragraph.Context,
					Question: *qa.Question,
					Answers:  answers,
				}
			}
		}
	}

	return corpus, nil
}
