package dataset

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// epsilon keeps constant columns from dividing by zero.
const epsilon = 1e-8

// Normalize rescales every column of x in place to zero mean and unit
// population standard deviation.
func Normalize(x *mat.Dense) {
	_, cols := x.Dims()
	for j := 0; j < cols; j++ {
		col := mat.Col(nil, j, x)
		mean := stat.Mean(col, nil)
		std := math.Sqrt(stat.Moment(2, col, nil))
		for i, v := range col {
			col[i] = (v - mean) / (std + epsilon)
		}
		x.SetCol(j, col)
	}
}

// Split shuffles the sample indices with rng and returns the first
// int(n*ratio) samples as the training set and the rest as the test set.
func Split(d *Dataset, ratio float64, rng *rand.Rand) (train, test *Dataset) {
	n := d.Len()
	indices := rng.Perm(n)
	rng.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	size := int(float64(n) * ratio)
	return d.rows(indices[:size]), d.rows(indices[size:])
}

func (d *Dataset) rows(indices []int) *Dataset {
	_, cols := d.X.Dims()
	out := &Dataset{}
	if len(indices) == 0 {
		return out
	}
	out.X = mat.NewDense(len(indices), cols, nil)
	out.Y = mat.NewDense(len(indices), 1, nil)
	for i, idx := range indices {
		out.X.SetRow(i, d.X.RawRowView(idx))
		out.Y.Set(i, 0, d.Y.At(idx, 0))
	}
	return out
}
