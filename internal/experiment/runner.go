// SPDX-License-Identifier: Apache-2.0

// Package experiment wires the partition, split, tokenize and evaluate
// stages into configurable runs.
package experiment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"fortio.org/safecast"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/speakerlab/whosaid/internal/corpus"
	"github.com/speakerlab/whosaid/internal/model"
	"github.com/speakerlab/whosaid/internal/split"
)

// Run partitions rows, splits them, trains on the train side and evaluates
// every target character on the test side.
//
// A character with no test lines or no training words is reported as
// skipped. Characters without training words are dropped from the model
// before training, so the remaining characters are still scored.
func Run(ctx context.Context, cfg Config, rows []corpus.Row) (*Report, error) {
	seed, r, err := shuffler(cfg.Seed)
	if err != nil {
		return nil, err
	}

	lines, err := corpus.Partition(rows, cfg.partitionOptions(r))
	if err != nil {
		return nil, fmt.Errorf("partition corpus: %w", err)
	}
	opts, err := cfg.splitOptions(r).Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve split: %w", err)
	}
	sp, err := split.Apply(lines, opts)
	if err != nil {
		return nil, fmt.Errorf("split corpus: %w", err)
	}
	train, untrained := dropUntrained(sp.Train)
	freq := model.Tokenize(train)
	slog.Debug("model trained",
		"characters", train.Len(),
		"untrained", len(untrained),
		"train_lines", sp.Train.TotalLines(),
		"test_lines", sp.Test.TotalLines(),
		"vocabulary", freq.Vocabulary())

	targets := cfg.Characters
	if len(targets) == 0 {
		targets = sp.Train.Characters()
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]CharacterResult, len(targets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(workers, max(len(targets), 1)))
	for i, target := range targets {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res := CharacterResult{
				Character:  target,
				TrainLines: len(sp.Train.Lines(target)),
				TestLines:  len(sp.Test.Lines(target)),
			}
			if untrained[target] {
				err := &model.EmptyTrainingSetError{Character: target}
				slog.Debug("character skipped", "character", target, "reason", err)
				res.Skipped = true
				res.Reason = err.Error()
				results[i] = res
				return nil
			}
			ev, err := model.Evaluate(target, train, sp.Test, freq)
			switch {
			case errors.Is(err, model.ErrEmptyTestSet):
				slog.Debug("character skipped", "character", target, "reason", err)
				res.Skipped = true
				res.Reason = err.Error()
			case err != nil:
				return fmt.Errorf("evaluate %q: %w", target, err)
			default:
				res.Accuracy = ev.Accuracy
				res.Correct = ev.Correct
				res.Total = ev.Total
				res.Confusion = confusionRows(train.Characters(), ev.Confusion)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		RunID:      uuid.NewString(),
		Seed:       seed,
		Policy:     string(opts.Policy),
		TrainLines: sp.Train.TotalLines(),
		TestLines:  sp.Test.TotalLines(),
		Characters: results,
	}
	report.Overall = overallAccuracy(results)
	return report, nil
}

// PredictResult is the outcome of classifying a single line.
type PredictResult struct {
	Prediction model.Prediction
	Scores     model.ScoreVector
	Seed       int64
}

// Predict trains on every partitioned line and classifies line. No test
// lines are held out.
func Predict(cfg Config, rows []corpus.Row, line string) (PredictResult, error) {
	seed, r, err := shuffler(cfg.Seed)
	if err != nil {
		return PredictResult{}, err
	}
	lines, err := corpus.Partition(rows, cfg.partitionOptions(r))
	if err != nil {
		return PredictResult{}, fmt.Errorf("partition corpus: %w", err)
	}
	freq := model.Tokenize(lines)

	scores, err := model.Score(lines, freq, line)
	if err != nil {
		return PredictResult{}, err
	}
	return PredictResult{Prediction: scores.Best(), Scores: scores, Seed: seed}, nil
}

// shuffler resolves the run seed. A zero seed is replaced by one drawn
// from the clock so the report can still name it.
func shuffler(seed int64) (int64, corpus.Shuffler, error) {
	if seed == 0 {
		seed = time.Now().UnixNano() & (1<<62 - 1)
	}
	u, err := safecast.Conv[uint64](seed)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: seed %d: %v", ErrInvalidConfig, seed, err)
	}
	return seed, corpus.NewShuffler(u), nil
}

// dropUntrained splits off the characters whose training lines hold no
// words. Scoring is undefined while any of them stays in the model.
func dropUntrained(lines *corpus.LineCollection) (*corpus.LineCollection, map[string]bool) {
	kept := corpus.NewLineCollection()
	dropped := make(map[string]bool)
	for _, ch := range lines.Characters() {
		words := 0
		for _, line := range lines.Lines(ch) {
			words += corpus.WordCount(line)
		}
		if words == 0 {
			dropped[ch] = true
			continue
		}
		kept.Set(ch, lines.Lines(ch))
	}
	return kept, dropped
}

func confusionRows(order []string, counts model.ConfusionCounts) []ConfusionRow {
	rows := make([]ConfusionRow, 0, len(counts))
	for _, ch := range order {
		if n := counts[ch]; n > 0 {
			rows = append(rows, ConfusionRow{Predicted: ch, Count: n})
		}
	}
	return rows
}

func overallAccuracy(results []CharacterResult) float64 {
	correct, total := 0, 0
	for _, r := range results {
		if r.Skipped {
			continue
		}
		correct += r.Correct
		total += r.Total
	}
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}
