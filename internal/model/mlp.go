package model

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"mushroom-mlp/internal/metrics"
)

// New constructs the network. Weights are drawn from rng with He-style
// scaling, biases start at zero.
func New(inputSize, hiddenSize, outputSize int, learningRate float64, rng *rand.Rand) *Network {
	w1 := mat.NewDense(inputSize, hiddenSize, nil)
	w2 := mat.NewDense(hiddenSize, outputSize, nil)
	fillNormal(w1, math.Sqrt(2.0/float64(inputSize)), rng)
	fillNormal(w2, math.Sqrt(2.0/float64(hiddenSize)), rng)
	return &Network{
		inputSize:  inputSize,
		hiddenSize: hiddenSize,
		outputSize: outputSize,
		w1:         w1,
		b1:         mat.NewDense(1, hiddenSize, nil),
		w2:         w2,
		b2:         mat.NewDense(1, outputSize, nil),
		lr:         learningRate,
	}
}

func fillNormal(m *mat.Dense, scale float64, rng *rand.Rand) {
	raw := m.RawMatrix().Data
	for i := range raw {
		raw[i] = rng.NormFloat64() * scale
	}
}

// Dims returns the layer sizes.
func (n *Network) Dims() (input, hidden, output int) {
	return n.inputSize, n.hiddenSize, n.outputSize
}

// LearningRate returns the current learning rate.
func (n *Network) LearningRate() float64 {
	return n.lr
}

// DecayLearningRate multiplies the rate by DecayFactor, never going below
// MinLearningRate.
func (n *Network) DecayLearningRate() float64 {
	n.lr = math.Max(n.lr*DecayFactor, MinLearningRate)
	return n.lr
}

// Params returns copies of the current weights and biases.
func (n *Network) Params() Params {
	return Params{
		W1: mat.DenseCopyOf(n.w1),
		B1: mat.DenseCopyOf(n.b1),
		W2: mat.DenseCopyOf(n.w2),
		B2: mat.DenseCopyOf(n.b2),
	}
}

// Forward propagates x (n x inputSize) through both layers. Every call
// allocates its own Pass.
func (n *Network) Forward(x mat.Matrix) *Pass {
	z1 := new(mat.Dense)
	z1.Mul(x, n.w1)
	z1.Apply(addRow(n.b1), z1)

	a1 := new(mat.Dense)
	a1.Apply(applySigmoid, z1)

	z2 := new(mat.Dense)
	z2.Mul(a1, n.w2)
	z2.Apply(addRow(n.b2), z2)

	a2 := new(mat.Dense)
	a2.Apply(applySigmoid, z2)

	return &Pass{Z1: z1, A1: a1, Z2: z2, A2: a2}
}

// Backward adjusts the parameters in place using the pass produced by
// Forward(x). The residual y - output is added scaled by the learning rate,
// summed over the whole batch without averaging.
func (n *Network) Backward(x, y mat.Matrix, pass *Pass) {
	outputError := new(mat.Dense)
	outputError.Sub(y, pass.A2)

	outputSlope := new(mat.Dense)
	outputSlope.Apply(applySigmoidDerivative, pass.A2)
	outputDelta := new(mat.Dense)
	outputDelta.MulElem(outputError, outputSlope)

	hiddenError := new(mat.Dense)
	hiddenError.Mul(outputDelta, n.w2.T())

	hiddenSlope := new(mat.Dense)
	hiddenSlope.Apply(applySigmoidDerivative, pass.A1)
	hiddenDelta := new(mat.Dense)
	hiddenDelta.MulElem(hiddenError, hiddenSlope)

	w2Adj := new(mat.Dense)
	w2Adj.Mul(pass.A1.T(), outputDelta)
	w2Adj.Scale(n.lr, w2Adj)

	b2Adj := colSum(outputDelta)
	b2Adj.Scale(n.lr, b2Adj)

	w1Adj := new(mat.Dense)
	w1Adj.Mul(x.T(), hiddenDelta)
	w1Adj.Scale(n.lr, w1Adj)

	b1Adj := colSum(hiddenDelta)
	b1Adj.Scale(n.lr, b1Adj)

	n.w2.Add(n.w2, w2Adj)
	n.b2.Add(n.b2, b2Adj)
	n.w1.Add(n.w1, w1Adj)
	n.b1.Add(n.b1, b1Adj)
}

// Predict thresholds the forward output at 0.5.
func (n *Network) Predict(x mat.Matrix) *mat.Dense {
	out := n.Forward(x).Output()
	pred := new(mat.Dense)
	pred.Apply(func(_, _ int, v float64) float64 {
		if v > Threshold {
			return 1
		}
		return 0
	}, out)
	return pred
}

// Evaluate scores the predictions for x against the labels y.
func (n *Network) Evaluate(x, y mat.Matrix) metrics.Scores {
	return metrics.Score(flatten(n.Predict(x)), flatten(y))
}

// MeanSquaredError returns mean((y - output)^2) over all entries.
func MeanSquaredError(y, output mat.Matrix) float64 {
	diff := new(mat.Dense)
	diff.Sub(y, output)
	diff.MulElem(diff, diff)
	r, c := diff.Dims()
	return mat.Sum(diff) / float64(r*c)
}

func addRow(bias *mat.Dense) func(_, col int, v float64) float64 {
	return func(_, col int, v float64) float64 {
		return v + bias.At(0, col)
	}
}

func colSum(m *mat.Dense) *mat.Dense {
	_, c := m.Dims()
	sums := mat.NewDense(1, c, nil)
	for j := 0; j < c; j++ {
		sums.Set(0, j, floats.Sum(mat.Col(nil, j, m)))
	}
	return sums
}

func flatten(m mat.Matrix) []float64 {
	r, c := m.Dims()
	out := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			out = append(out, m.At(i, j))
		}
	}
	return out
}
