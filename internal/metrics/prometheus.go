package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "mlp"

// Recorder exports training progress as prometheus metrics.
type Recorder struct {
	Epochs       prometheus.Counter
	LearningRate prometheus.Gauge
	Loss         prometheus.Gauge
	Accuracy     prometheus.Gauge
	BestAccuracy prometheus.Gauge
}

// NewRecorder creates the collectors and registers them with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		Epochs: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "epochs_total",
			Help:      "Completed training epochs.",
		}),
		LearningRate: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "learning_rate",
			Help:      "Current learning rate.",
		}),
		Loss: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "loss",
			Help:      "Mean squared error of the last epoch.",
		}),
		Accuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "accuracy",
			Help:      "Training accuracy of the last epoch.",
		}),
		BestAccuracy: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "best_accuracy",
			Help:      "Best training accuracy seen so far.",
		}),
	}
	for _, c := range []prometheus.Collector{r.Epochs, r.LearningRate, r.Loss, r.Accuracy, r.BestAccuracy} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Epoch records a finished epoch and the learning rate now in effect.
func (r *Recorder) Epoch(learningRate float64) {
	if r == nil {
		return
	}
	r.Epochs.Inc()
	r.LearningRate.Set(learningRate)
}

// Observe records the loss and scores of an epoch.
func (r *Recorder) Observe(loss float64, scores Scores, best float64) {
	if r == nil {
		return
	}
	r.Loss.Set(loss)
	r.Accuracy.Set(scores.Accuracy)
	r.BestAccuracy.Set(best)
}
