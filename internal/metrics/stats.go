package metrics

import "time"

// Window accumulates per-epoch measurements between two snapshots.
// The best accuracy survives snapshots.
type Window struct {
	epochs    int
	compute   time.Duration
	lastLoss  float64
	lastScore Scores
	best      float64
}

// Record adds the measurement of one epoch.
func (w *Window) Record(computeTime time.Duration, loss float64, scores Scores) {
	w.epochs++
	w.compute += computeTime
	w.lastLoss = loss
	w.lastScore = scores
	if scores.Accuracy > w.best {
		w.best = scores.Accuracy
	}
}

// Best returns the highest accuracy recorded so far.
func (w *Window) Best() float64 {
	return w.best
}

// Snapshot returns aggregated metrics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{}
	if w.compute > 0 {
		snap.EpochsPerSec = float64(w.epochs) / w.compute.Seconds()
	}
	if w.epochs > 0 {
		snap.AvgEpochMS = (w.compute.Seconds() * 1000) / float64(w.epochs)
	}
	snap.LastLoss = w.lastLoss
	snap.LastScores = w.lastScore
	snap.BestAccuracy = w.best

	w.epochs = 0
	w.compute = 0
	return snap
}

// Snapshot represents loggable metrics.
type Snapshot struct {
	EpochsPerSec float64
	AvgEpochMS   float64
	LastLoss     float64
	LastScores   Scores
	BestAccuracy float64
}
