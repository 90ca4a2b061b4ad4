// Package qabuild builds training and evaluation data sets for QA research.
//
// The tool consumes a SQuAD-style corpus whose adversarial examples carry
// ids of the form "<base-id>-high-conf" alongside their clean counterparts,
// and derives the splits used to train and probe a reading-comprehension
// model:
//
//   - Clean: only the unperturbed examples.
//   - Append: a fixed-ratio mixture of clean and adversarially appended
//     contexts, one row per question.
//   - Twoway: a three-way mixture that additionally moves the adversarial
//     sentence to the front of the passage, rewriting answer offsets.
//   - Challenge: every adversarial variant, kept under its full id.
//
// Key packages:
//
//   - pkg/squad: the record model plus the corpus loader and split writer
//     for the SQuAD JSON schemas.
//   - pkg/splits: the partition rules themselves, driven by an injectable
//     sampler for reproducible mixtures.
//   - pkg/builder: orchestration of loader, rules and writer behind the
//     train/challenge/eval commands.
//
// The cmd/qabuild binary exposes the splits through a small CLI:
//
//	qabuild train train-convHighConf.json
//	qabuild challenge dev-convHighConf.json
//	qabuild --seed 42 train train-convHighConf.json
package qabuild
