package trainer

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"mushroom-mlp/internal/dataset"
	"mushroom-mlp/internal/metrics"
	"mushroom-mlp/internal/model"
)

// ErrEmptySplit is returned when the split leaves no training or test samples.
var ErrEmptySplit = errors.New("trainer: train/test split left an empty partition")

// RunConfig captures the knobs required by a full training run.
type RunConfig struct {
	DataPath     string
	TrainRatio   float64
	HiddenSize   int
	LearningRate float64
	Epochs       int
	Seed         int64
	Verbose      bool
	LogEvery     int
	Recorder     *metrics.Recorder
}

// Result is the outcome of Run.
type Result struct {
	ID        string
	Summary   Summary
	Test      metrics.Scores
	TrainSize int
	TestSize  int
}

// Run loads the data under cfg.DataPath, normalizes it, splits it, trains a
// network on the training part and scores it on the test part. All
// randomness is drawn from a single source seeded with cfg.Seed.
func Run(cfg RunConfig) (*Result, error) {
	if cfg.HiddenSize <= 0 {
		return nil, errors.New("trainer: hidden size must be > 0")
	}
	if cfg.LearningRate <= 0 {
		cfg.LearningRate = model.DefaultLearningRate
	}

	id := uuid.New().String()
	logger := log.With().Str("run", id).Logger()

	files, err := dataset.Discover(cfg.DataPath)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no data files under %s: %w", cfg.DataPath, dataset.ErrEmpty)
	}
	ds, err := dataset.Load(files...)
	if err != nil {
		return nil, err
	}
	dataset.Normalize(ds.X)

	rng := rand.New(rand.NewSource(cfg.Seed))
	train, test := dataset.Split(ds, cfg.TrainRatio, rng)
	if train.Len() == 0 || test.Len() == 0 {
		return nil, ErrEmptySplit
	}

	_, inputSize := ds.X.Dims()
	logger.Info().
		Int("files", len(files)).
		Int("train", train.Len()).
		Int("test", test.Len()).
		Int("input", inputSize).
		Int("hidden", cfg.HiddenSize).
		Float64("learning_rate", cfg.LearningRate).
		Int64("seed", cfg.Seed).
		Msg("training model")

	net := model.New(inputSize, cfg.HiddenSize, 1, cfg.LearningRate, rng)
	summary := Train(net, train.X, train.Y, Options{
		Epochs:   cfg.Epochs,
		Verbose:  cfg.Verbose,
		LogEvery: cfg.LogEvery,
		Recorder: cfg.Recorder,
		Logger:   &logger,
	})

	scores := net.Evaluate(test.X, test.Y)
	logger.Info().
		Float64("accuracy", scores.Accuracy).
		Float64("precision", scores.Precision).
		Float64("recall", scores.Recall).
		Float64("f1", scores.F1).
		Msg("test set results")

	return &Result{
		ID:        id,
		Summary:   summary,
		Test:      scores,
		TrainSize: train.Len(),
		TestSize:  test.Len(),
	}, nil
}
