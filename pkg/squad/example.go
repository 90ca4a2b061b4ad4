// Package squad models SQuAD-style reading-comprehension corpora: reading
// passages, questions over them, and answer spans located by byte offset
// into the passage text.
package squad

import (
	"strings"
)

// HighConfSuffix marks the adversarial variant of a question produced with
// a high-confidence distractor sentence appended to its passage.
const HighConfSuffix = "-high-conf"

// Answers holds the acceptable answers to a question. Text and AnswerStart
// are parallel arrays: Text[i] is the substring of the owning passage
// starting at byte offset AnswerStart[i].
type Answers struct {
	Text        []string `json:"text"`
	AnswerStart []int64  `json:"answer_start"`
}

// Clone returns an independent copy of the answer set.
func (a Answers) Clone() Answers {
	return Answers{
		Text:        append([]string(nil), a.Text...),
		AnswerStart: append([]int64(nil), a.AnswerStart...),
	}
}

// Example is one flattened question/answer instance. Title and Context are
// shared by every question drawn from the same passage group; they are never
// mutated in place, so plain value copies stand in for the shared ownership
// the dataset format implies.
type Example struct {
	Title    string
	Context  string
	Question string
	Answers  Answers
}

// Clone returns a copy whose answer arrays are independent of the receiver's.
func (e Example) Clone() Example {
	e.Answers = e.Answers.Clone()
	return e
}

// Corpus maps example ids to examples. It is built once by ReadCorpus and
// treated as read-only by every partition rule.
type Corpus map[string]Example

// Split is a derived example collection produced by one partition rule and
// consumed once by WriteSplit.
type Split map[string]Example

// IsBaseID reports whether id denotes an unperturbed example. Base ids carry
// no hyphen; variant ids are "<base>-<suffix>".
func IsBaseID(id string) bool {
	return !strings.Contains(id, "-")
}

// BaseID returns the portion of id before the first hyphen, which is the id
// of the corresponding clean example when one exists in the corpus.
func BaseID(id string) string {
	base, _, _ := strings.Cut(id, "-")
	return base
}

// HighConfID returns the id of the high-confidence adversarial variant of
// the given base id.
func HighConfID(base string) string {
	return base + HighConfSuffix
}
