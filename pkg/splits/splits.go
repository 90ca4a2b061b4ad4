// Package splits implements the partition rules that turn one SQuAD-style
// corpus into the derived training and evaluation splits. Every rule is a
// pure pass over a read-only corpus: it returns a fresh mapping and logs a
// summary count per category.
package splits

import (
	"context"
	"strings"

	"github.com/XiaoConstantine/qabuild-go/pkg/logging"
	"github.com/XiaoConstantine/qabuild-go/pkg/squad"
)

// Sampler supplies the pseudo-random draws used by the mixing rules.
// *math/rand.Rand satisfies it; tests inject fixed sequences.
type Sampler interface {
	Intn(n int) int
}

// Mixture thresholds over the half-open range [0, sampleRange). These encode
// fixed empirical ratios measured on the source corpora and must not change:
// append mixes clean:appended at 26009:43799, twoway mixes
// clean:appended:prepended at 11339:29130:29339.
const (
	sampleRange           = 69808
	appendCleanThreshold  = 26009
	twowayCleanThreshold  = 11339
	twowayAppendThreshold = 40469
)

// Clean copies every base-id example into a split keyed by itself, dropping
// all adversarial variants.
func Clean(ctx context.Context, corpus squad.Corpus) squad.Split {
	out := make(squad.Split)
	for id, ex := range corpus {
		if squad.IsBaseID(id) {
			out[id] = ex
		}
	}

	logging.GetLogger().Info(ctx, "clean: clean_examples: %d", len(out))
	return out
}

// Append builds a training split that mixes clean and adversarially appended
// contexts. Base ids without a high-conf variant pass through unchanged; for
// each variant whose base id is present, one draw decides whether the clean
// or the appended version represents the question. A variant whose base id
// is absent from the corpus is dropped without an error.
func Append(ctx context.Context, corpus squad.Corpus, rng Sampler) squad.Split {
	out := make(squad.Split)

	cleanExamples := 0
	appendedExamples := 0

	for id, ex := range corpus {
		if squad.IsBaseID(id) {
			if _, ok := corpus[squad.HighConfID(id)]; !ok {
				out[id] = ex
				cleanExamples++
			}
			continue
		}

		baseID := squad.BaseID(id)
		base, ok := corpus[baseID]
		if !ok {
			continue
		}

		// The source corpora carry at most one high-conf variant per
		// base id, so overwriting under baseID cannot lose a question.
		if rng.Intn(sampleRange) < appendCleanThreshold {
			out[baseID] = base
			cleanExamples++
		} else {
			out[baseID] = ex
			appendedExamples++
		}
	}

	logging.GetLogger().Info(ctx, "append: clean_examples: %d, appended_examples: %d",
		cleanExamples, appendedExamples)
	return out
}

// Twoway builds a training split that mixes clean, appended and prepended
// contexts three ways. The prepended form moves the adversarial sentence
// from the end of the passage to the front, shifting every answer offset by
// the length of the moved text.
func Twoway(ctx context.Context, corpus squad.Corpus, rng Sampler) squad.Split {
	out := make(squad.Split)

	cleanExamples := 0
	appendedExamples := 0
	prependedExamples := 0

	for id, ex := range corpus {
		if squad.IsBaseID(id) {
			if _, ok := corpus[squad.HighConfID(id)]; !ok {
				out[id] = ex
				cleanExamples++
			}
			continue
		}

		baseID := squad.BaseID(id)
		base, ok := corpus[baseID]
		if !ok {
			continue
		}

		switch sample := rng.Intn(sampleRange); {
		case sample < twowayCleanThreshold:
			out[baseID] = base
			cleanExamples++
		case sample < twowayAppendThreshold:
			out[baseID] = ex
			appendedExamples++
		default:
			out[baseID] = prepend(ex, base)
			prependedExamples++
		}
	}

	logging.GetLogger().Info(ctx, "twoway: clean_examples: %d, appended_examples: %d, prepended_examples: %d",
		cleanExamples, appendedExamples, prependedExamples)
	return out
}

// prepend rebuilds a variant example so the adversarial sentence precedes
// the original passage. The variant context is the base context plus an
// appended sentence, so the sentence is the byte suffix past
// len(base.Context). Offsets are byte offsets into the UTF-8 text, matching
// the dataset format.
func prepend(variant, base squad.Example) squad.Example {
	sentence := strings.TrimSpace(variant.Context[len(base.Context):]) + " "
	offset := int64(len(sentence))

	answers := base.Answers.Clone()
	for i := range answers.AnswerStart {
		answers.AnswerStart[i] += offset
	}

	return squad.Example{
		Title:    base.Title,
		Context:  sentence + base.Context,
		Question: base.Question,
		Answers:  answers,
	}
}

// Challenge keeps every adversarial variant under its full original id and
// drops the clean examples. Unlike the training rules it may retain several
// variants of the same base question.
func Challenge(ctx context.Context, corpus squad.Corpus) squad.Split {
	out := make(squad.Split)

	cleanExamples := 0
	for id, ex := range corpus {
		if squad.IsBaseID(id) {
			cleanExamples++
			continue
		}
		out[id] = ex
	}

	logging.GetLogger().Info(ctx, "challenge: clean_examples: %d, challenge_examples: %d",
		cleanExamples, len(out))
	return out
}
