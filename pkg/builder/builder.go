// Package builder wires the corpus loader, the partition rules and the split
// writer into the train/challenge/eval entry points used by the CLI.
package builder

import (
	"context"
	"math/rand"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"

	"github.com/XiaoConstantine/qabuild-go/pkg/config"
	"github.com/XiaoConstantine/qabuild-go/pkg/errors"
	"github.com/XiaoConstantine/qabuild-go/pkg/logging"
	"github.com/XiaoConstantine/qabuild-go/pkg/splits"
	"github.com/XiaoConstantine/qabuild-go/pkg/squad"
)

// Builder runs dataset builds against a fixed configuration.
type Builder struct {
	cfg    *config.Config
	logger *logging.Logger
}

// New creates a Builder. A nil config selects the defaults.
func New(cfg *config.Config) (*Builder, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Builder{
		cfg:    cfg,
		logger: logging.GetLogger(),
	}, nil
}

// splitJob pairs one partition rule with its output destination. The rule
// runs to completion before the file is created, so no partial split is ever
// written.
type splitJob struct {
	name string
	path string
	run  func(ctx context.Context) squad.Split
}

// BuildTraining reads the corpus once and derives the three training splits
// from it, writing <stem>-clean.json, <stem>-append.json and
// <stem>-twoway.json next to the input.
func (b *Builder) BuildTraining(ctx context.Context, infile string) error {
	ctx = logging.WithRunID(ctx, uuid.NewString())

	corpus, err := squad.ReadCorpus(infile)
	if err != nil {
		return err
	}
	b.logger.Info(ctx, "loaded corpus: %d examples from %s", len(corpus), infile)

	// Each randomized rule gets its own derived seed so the sampling
	// streams stay independent when the rules run concurrently.
	seed := b.baseSeed()
	stem := outputStem(infile)

	jobs := []splitJob{
		{
			name: "clean",
			path: stem + "-clean.json",
			run: func(ctx context.Context) squad.Split {
				return splits.Clean(ctx, corpus)
			},
		},
		{
			name: "append",
			path: stem + "-append.json",
			run: func(ctx context.Context) squad.Split {
				return splits.Append(ctx, corpus, rand.New(rand.NewSource(seed)))
			},
		},
		{
			name: "twoway",
			path: stem + "-twoway.json",
			run: func(ctx context.Context) squad.Split {
				return splits.Twoway(ctx, corpus, rand.New(rand.NewSource(seed+1)))
			},
		},
	}

	if b.cfg.Build.Parallel {
		p := pool.New().WithContext(ctx).WithCancelOnError()
		for _, job := range jobs {
			job := job // capture per iteration; required for go < 1.22 loop semantics
			p.Go(func(ctx context.Context) error {
				return b.runJob(ctx, job)
			})
		}
		return p.Wait()
	}

	for _, job := range jobs {
		if err := b.runJob(ctx, job); err != nil {
			return err
		}
	}
	return nil
}

// BuildChallenge reads the corpus and writes the adversarial-only evaluation
// split to <stem>Challenge.json.
func (b *Builder) BuildChallenge(ctx context.Context, infile string) error {
	ctx = logging.WithRunID(ctx, uuid.NewString())

	corpus, err := squad.ReadCorpus(infile)
	if err != nil {
		return err
	}
	b.logger.Info(ctx, "loaded corpus: %d examples from %s", len(corpus), infile)

	return b.runJob(ctx, splitJob{
		name: "challenge",
		path: outputStem(infile) + "Challenge.json",
		run: func(ctx context.Context) squad.Split {
			return splits.Challenge(ctx, corpus)
		},
	})
}

// DescribeEval is the stub boundary for the scoring surface: it verifies and
// reports the inputs but performs no transformation.
func (b *Builder) DescribeEval(ctx context.Context, infile, idfile string) error {
	ctx = logging.WithRunID(ctx, uuid.NewString())

	corpus, err := squad.ReadCorpus(infile)
	if err != nil {
		return err
	}

	ids, err := readIDFile(idfile)
	if err != nil {
		return err
	}

	present := 0
	for _, id := range ids {
		if _, ok := corpus[id]; ok {
			present++
		}
	}

	b.logger.Info(ctx, "eval: corpus %s has %d examples; id file %s lists %d ids (%d present in corpus)",
		infile, len(corpus), idfile, len(ids), present)
	b.logger.Warn(ctx, "eval scoring is not implemented; inputs verified only")
	return nil
}

func (b *Builder) runJob(ctx context.Context, job splitJob) error {
	if err := errors.CheckContext(ctx, "build "+job.name); err != nil {
		return err
	}

	ctx = logging.WithSplit(ctx, job.name)
	split := job.run(ctx)

	if err := squad.WriteSplit(split, job.path, b.cfg.PrettyOutput()); err != nil {
		return err
	}
	b.logger.Info(ctx, "wrote %d examples to %s", len(split), job.path)
	return nil
}

func (b *Builder) baseSeed() int64 {
	if b.cfg.Build.Seed != nil {
		return *b.cfg.Build.Seed
	}
	return time.Now().UnixNano()
}

// outputStem strips the extension so derived file names can be built from
// the input path.
func outputStem(infile string) string {
	return strings.TrimSuffix(infile, filepath.Ext(infile))
}
