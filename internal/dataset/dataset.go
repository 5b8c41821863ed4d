package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/mat"
)

// ErrEmpty indicates that no records were found.
var ErrEmpty = errors.New("dataset: no records")

// Dataset pairs a feature matrix with a single column of 0/1 labels.
type Dataset struct {
	X *mat.Dense
	Y *mat.Dense
}

// Len returns the number of samples.
func (d *Dataset) Len() int {
	if d == nil || d.Y == nil {
		return 0
	}
	r, _ := d.Y.Dims()
	return r
}

// Load reads and encodes comma separated records from every path in order.
func Load(paths ...string) (*Dataset, error) {
	var rows []float64
	var labels []float64
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open data: %w", err)
		}
		rows, labels, err = read(f, rows, labels)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if len(labels) == 0 {
		return nil, ErrEmpty
	}
	return &Dataset{
		X: mat.NewDense(len(labels), len(Features), rows),
		Y: mat.NewDense(len(labels), 1, labels),
	}, nil
}

func read(r io.Reader, rows, labels []float64) ([]float64, []float64, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, labels, nil
		}
		if err != nil {
			return nil, nil, err
		}
		features, label, err := Encode(record)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, features...)
		labels = append(labels, label)
	}
}
