package dataset

import (
	"math"
	"math/rand"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

const (
	poisonous = "p,x,s,n,t,p,f,c,n,k,e,s,s,w,w,p,w,o,p,k,s,u"
	edible    = "e,x,s,y,t,a,f,c,b,k,e,s,s,w,w,p,w,o,p,n,n,g"
)

func TestEncode(t *testing.T) {
	features, label, err := Encode(strings.Split(poisonous, ","))
	require.NoError(t, err)
	assert.Equal(t, 1.0, label)
	assert.Equal(t, []float64{2, 3, 0, 0, 7, 2, 0, 1, 0, 0, 3, 3, 7, 7, 0, 2, 1, 5, 0, 3, 4}, features)

	_, label, err = Encode(strings.Split(edible, ","))
	require.NoError(t, err)
	assert.Equal(t, 0.0, label)
}

func TestEncodeUnknownValue(t *testing.T) {
	record := strings.Split(poisonous, ",")
	record[1] = "?"
	features, _, err := Encode(record)
	require.NoError(t, err)
	assert.Zero(t, features[0])
}

func TestEncodeErrors(t *testing.T) {
	_, _, err := Encode([]string{"p", "x"})
	assert.ErrorIs(t, err, ErrRecordLength)

	record := strings.Split(poisonous, ",")
	record[0] = "z"
	_, _, err = Encode(record)
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.data")
	second := filepath.Join(dir, "b.data")
	mustWrite(t, first, poisonous+"\n"+edible+"\n\n")
	mustWrite(t, second, edible+"\n")

	ds, err := Load(first, second)
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())

	r, c := ds.X.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, len(Features), c)
	assert.Equal(t, []float64{1, 0, 0}, mat.Col(nil, 0, ds.Y))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty.data")
	mustWrite(t, empty, "")
	_, err := Load(empty)
	assert.ErrorIs(t, err, ErrEmpty)

	short := filepath.Join(dir, "short.data")
	mustWrite(t, short, poisonous+"\np,x\n")
	_, err = Load(short)
	assert.ErrorIs(t, err, ErrRecordLength)

	_, err = Load(filepath.Join(dir, "missing.data"))
	assert.Error(t, err)
}

func TestNormalize(t *testing.T) {
	x := mat.NewDense(4, 3, []float64{
		0, 1, 5,
		0, 2, 5,
		1, 3, 5,
		1, 4, 5,
	})
	Normalize(x)

	for j := 0; j < 2; j++ {
		col := mat.Col(nil, j, x)
		assert.InDelta(t, 0, stat.Mean(col, nil), 1e-9)
		assert.InDelta(t, 1, math.Sqrt(stat.Moment(2, col, nil)), 1e-6)
	}
	// constant columns collapse to zero instead of dividing by zero
	for _, v := range mat.Col(nil, 2, x) {
		assert.Zero(t, v)
	}
	assert.InDelta(t, -1, x.At(0, 0), 1e-6)
	assert.InDelta(t, 1, x.At(3, 0), 1e-6)
}

func TestSplit(t *testing.T) {
	n := 10
	xs := make([]float64, n*2)
	ys := make([]float64, n)
	for i := 0; i < n; i++ {
		xs[2*i] = float64(i)
		xs[2*i+1] = float64(i) * 10
		ys[i] = float64(i % 2)
	}
	ds := &Dataset{X: mat.NewDense(n, 2, xs), Y: mat.NewDense(n, 1, ys)}

	train, test := Split(ds, 0.8, rand.New(rand.NewSource(5)))
	assert.Equal(t, 8, train.Len())
	assert.Equal(t, 2, test.Len())

	seen := make([]int, 0, n)
	for _, part := range []*Dataset{train, test} {
		for i := 0; i < part.Len(); i++ {
			id := part.X.At(i, 0)
			assert.Equal(t, id*10, part.X.At(i, 1), "row was torn apart")
			assert.Equal(t, float64(int(id)%2), part.Y.At(i, 0), "label does not follow its row")
			seen = append(seen, int(id))
		}
	}
	sort.Ints(seen)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, seen)

	again, _ := Split(ds, 0.8, rand.New(rand.NewSource(5)))
	assert.True(t, mat.Equal(train.X, again.X), "same seed must give the same split")
}

func TestSplitEmptyPartition(t *testing.T) {
	ds := &Dataset{X: mat.NewDense(2, 1, []float64{1, 2}), Y: mat.NewDense(2, 1, []float64{0, 1})}
	train, test := Split(ds, 0.4, rand.New(rand.NewSource(1)))
	assert.Zero(t, train.Len())
	assert.Equal(t, 2, test.Len())
}
