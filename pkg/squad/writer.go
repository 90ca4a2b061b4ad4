package squad

import (
	"encoding/json"
	"io"
	"os"

	"github.com/XiaoConstantine/qabuild-go/pkg/errors"
)

// flatSplit is the on-disk shape of a derived split: five parallel arrays,
// one element per emitted example, wrapped in {"data": ...}.
type flatSplit struct {
	Title    []string  `json:"title"`
	Context  []string  `json:"context"`
	Question []string  `json:"question"`
	ID       []string  `json:"id"`
	Answers  []Answers `json:"answers"`
}

// WriteSplit serializes a derived split to path. The split is fully
// flattened before the file is created, so a failed transform never leaves
// a partial output behind.
func WriteSplit(split Split, path string, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to create split file"),
			errors.Fields{"path": path})
	}
	defer f.Close()

	if err := EncodeSplit(split, f, pretty); err != nil {
		return errors.WithFields(err, errors.Fields{"path": path})
	}
	return nil
}

// EncodeSplit writes the flattened form of split to w. Array elements appear
// in map-iteration order; the five arrays stay mutually aligned but the
// relative order is not stable across runs.
func EncodeSplit(split Split, w io.Writer, pretty bool) error {
	flat := flatSplit{
		Title:    make([]string, 0, len(split)),
		Context:  make([]string, 0, len(split)),
		Question: make([]string, 0, len(split)),
		ID:       make([]string, 0, len(split)),
		Answers:  make([]Answers, 0, len(split)),
	}

	for id, ex := range split {
		flat.Title = append(flat.Title, ex.Title)
		flat.Context = append(flat.Context, ex.Context)
		flat.Question = append(flat.Question, ex.Question)
		flat.ID = append(flat.ID, id)
		flat.Answers = append(flat.Answers, ex.Answers)
	}

	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(map[string]flatSplit{"data": flat}); err != nil {
		return errors.Wrap(err, errors.IOFailed, "failed to encode split")
	}
	return nil
}

// ReadSplit loads a previously written split file back into an id -> Example
// mapping. Used by the eval surface and round-trip checks.
func ReadSplit(path string) (Split, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.WithFields(
			errors.Wrap(err, errors.IOFailed, "failed to open split file"),
			errors.Fields{"path": path})
	}
	defer f.Close()

	var wrapper struct {
		Data *flatSplit `json:"data"`
	}
	if err := json.NewDecoder(f).Decode(&wrapper); err != nil {
		return nil, errors.Wrap(err, errors.ParseFailed, "failed to decode split")
	}
	if wrapper.Data == nil {
		return nil, errors.New(errors.ParseFailed, "split missing required field \"data\"")
	}

	flat := wrapper.Data
	n := len(flat.ID)
	if len(flat.Title) != n || len(flat.Context) != n || len(flat.Question) != n || len(flat.Answers) != n {
		return nil, errors.WithFields(
			errors.New(errors.ParseFailed, "split arrays are not parallel"),
			errors.Fields{"ids": n})
	}

	split := make(Split, n)
	for i := 0; i < n; i++ {
		split[flat.ID[i]] = Example{
			Title:    flat.Title[i],
			Context:  flat.Context[i],
			Question: flat.Question[i],
			Answers:  flat.Answers[i],
		}
	}
	return split, nil
}
