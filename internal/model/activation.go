package model

import "math"

// clipLimit bounds the exponent so math.Exp never overflows.
const clipLimit = 500.0

// Sigmoid is the logistic function with its input clipped to [-500, 500].
func Sigmoid(x float64) float64 {
	if x > clipLimit {
		x = clipLimit
	} else if x < -clipLimit {
		x = -clipLimit
	}
	return 1 / (1 + math.Exp(-x))
}

// SigmoidDerivative expects an already activated value s = Sigmoid(x).
func SigmoidDerivative(s float64) float64 {
	return s * (1 - s)
}

func applySigmoid(_, _ int, v float64) float64 { return Sigmoid(v) }

func applySigmoidDerivative(_, _ int, v float64) float64 { return SigmoidDerivative(v) }
