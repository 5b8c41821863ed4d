package trainer

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"mushroom-mlp/internal/metrics"
	"mushroom-mlp/internal/model"
)

const (
	// DefaultEpochs is the number of epochs used when none is configured.
	DefaultEpochs = 10000
	// DecayEvery is the epoch interval of the learning rate decay.
	DecayEvery = 1000
)

// Options configures Train.
type Options struct {
	Epochs   int
	Verbose  bool
	LogEvery int
	Recorder *metrics.Recorder
	Logger   *zerolog.Logger
}

// Summary describes a finished training run.
type Summary struct {
	Epochs       int
	LearningRate float64
	LastLoss     float64
	BestAccuracy float64
}

// Train runs full batch forward and backward passes over x and y for
// opts.Epochs epochs. The learning rate decays on every epoch divisible by
// DecayEvery, epoch 0 included. With Verbose set every epoch is scored;
// the best accuracy is reported but never acted upon.
func Train(net *model.Network, x, y mat.Matrix, opts Options) Summary {
	if opts.Epochs <= 0 {
		opts.Epochs = DefaultEpochs
	}
	if opts.LogEvery <= 0 {
		opts.LogEvery = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = &log.Logger
	}

	var window metrics.Window
	summary := Summary{Epochs: opts.Epochs}

	for epoch := 0; epoch < opts.Epochs; epoch++ {
		start := time.Now()
		pass := net.Forward(x)
		net.Backward(x, y, pass)

		if epoch%DecayEvery == 0 {
			net.DecayLearningRate()
		}
		opts.Recorder.Epoch(net.LearningRate())

		if !opts.Verbose {
			continue
		}

		loss := model.MeanSquaredError(y, pass.Output())
		scores := net.Evaluate(x, y)
		window.Record(time.Since(start), loss, scores)
		opts.Recorder.Observe(loss, scores, window.Best())
		summary.LastLoss = loss

		if epoch%opts.LogEvery == 0 || epoch == opts.Epochs-1 {
			snap := window.Snapshot()
			logger.Info().
				Int("epoch", epoch).
				Float64("loss", snap.LastLoss).
				Float64("accuracy", snap.LastScores.Accuracy).
				Float64("best_accuracy", snap.BestAccuracy).
				Float64("learning_rate", net.LearningRate()).
				Float64("epochs_per_sec", snap.EpochsPerSec).
				Msg("epoch")
		}
	}

	summary.LearningRate = net.LearningRate()
	summary.BestAccuracy = window.Best()
	return summary
}
