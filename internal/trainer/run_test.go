package trainer

import (
	"errors"
	"math/rand"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mushroom-mlp/internal/dataset"
)

func TestRunSeparableData(t *testing.T) {
	dir := t.TempDir()
	writeRecords(t, filepath.Join(dir, "part-1.data"), syntheticRecords(40, 1))
	writeRecords(t, filepath.Join(dir, "part-2.data"), syntheticRecords(40, 2))

	res, err := Run(RunConfig{
		DataPath:     dir,
		TrainRatio:   0.75,
		HiddenSize:   4,
		LearningRate: 0.05,
		Epochs:       300,
		Seed:         3,
		LogEvery:     100,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, res.ID)
	assert.Equal(t, 60, res.TrainSize)
	assert.Equal(t, 20, res.TestSize)
	assert.GreaterOrEqual(t, res.Test.Accuracy, 0.9)
	assert.Less(t, res.Summary.LearningRate, 0.05)
}

func TestRunSameSeedSameResult(t *testing.T) {
	path := filepath.Join(t.TempDir(), "processed.data")
	writeRecords(t, path, syntheticRecords(30, 9))

	cfg := RunConfig{DataPath: path, TrainRatio: 0.8, HiddenSize: 3, LearningRate: 0.01, Epochs: 50, Seed: 5}
	first, err := Run(cfg)
	require.NoError(t, err)
	second, err := Run(cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Test, second.Test)
	assert.Equal(t, first.Summary, second.Summary)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(RunConfig{DataPath: filepath.Join(dir, "missing"), TrainRatio: 0.8, HiddenSize: 2})
	assert.Error(t, err)

	_, err = Run(RunConfig{DataPath: dir, TrainRatio: 0.8, HiddenSize: 2})
	assert.True(t, errors.Is(err, dataset.ErrEmpty), "got %v", err)

	small := filepath.Join(dir, "small.data")
	writeRecords(t, small, syntheticRecords(2, 1))
	_, err = Run(RunConfig{DataPath: small, TrainRatio: 0.2, HiddenSize: 2, Epochs: 1})
	assert.ErrorIs(t, err, ErrEmptySplit)

	_, err = Run(RunConfig{DataPath: small, TrainRatio: 0.5})
	assert.Error(t, err)
}

// syntheticRecords builds records whose class is decided by the odor alone;
// every other attribute is random.
func syntheticRecords(n int, seed int64) []string {
	rng := rand.New(rand.NewSource(seed))
	records := make([]string, 0, n)
	for i := 0; i < n; i++ {
		poisonous := i%2 == 0
		fields := []string{"e"}
		if poisonous {
			fields[0] = "p"
		}
		for _, f := range dataset.Features {
			switch {
			case f.Name == "odor" && poisonous:
				fields = append(fields, "f")
			case f.Name == "odor":
				fields = append(fields, "n")
			default:
				keys := make([]string, 0, len(f.Values))
				for k := range f.Values {
					keys = append(keys, k)
				}
				sort.Strings(keys)
				fields = append(fields, keys[rng.Intn(len(keys))])
			}
		}
		records = append(records, strings.Join(fields, ","))
	}
	return records
}

func writeRecords(t *testing.T, path string, records []string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(strings.Join(records, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
