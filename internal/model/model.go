package model

import "gonum.org/v1/gonum/mat"

const (
	// DefaultLearningRate is used when callers have no better value.
	DefaultLearningRate = 0.01
	// MinLearningRate is the floor applied by DecayLearningRate.
	MinLearningRate = 1e-6
	// DecayFactor scales the learning rate on every decay step.
	DecayFactor = 0.95
	// Threshold separates positive from negative predictions.
	Threshold = 0.5
)

// Network is a two layer perceptron with sigmoid activations on both layers.
type Network struct {
	inputSize  int
	hiddenSize int
	outputSize int

	w1 *mat.Dense // inputSize x hiddenSize
	b1 *mat.Dense // 1 x hiddenSize
	w2 *mat.Dense // hiddenSize x outputSize
	b2 *mat.Dense // 1 x outputSize

	lr float64
}

// Pass holds the intermediate values of one forward call.
type Pass struct {
	Z1 *mat.Dense
	A1 *mat.Dense
	Z2 *mat.Dense
	A2 *mat.Dense
}

// Output returns the activated output layer.
func (p *Pass) Output() *mat.Dense {
	return p.A2
}

// Params is a snapshot of the network parameters.
type Params struct {
	W1, B1, W2, B2 *mat.Dense
}
