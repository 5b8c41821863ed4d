package dataset

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

// ErrRecordLength is returned when a record does not hold a class and
// one value per feature.
var ErrRecordLength = errors.New("dataset: unexpected record length")

// Feature is a categorical attribute with its symbol to code table.
type Feature struct {
	Name   string
	Values map[string]int
}

// Class maps the edibility symbol to the label.
var Class = Feature{Name: "class", Values: map[string]int{"e": 0, "p": 1}}

// Features lists the mushroom attributes in record order, after the class.
var Features = []Feature{
	{"cap-shape", map[string]int{"b": 0, "c": 1, "x": 2, "f": 3, "k": 4, "s": 5}},
	{"cap-surface", map[string]int{"f": 0, "g": 1, "y": 2, "s": 3}},
	{"cap-color", map[string]int{"n": 0, "b": 1, "c": 2, "g": 3, "r": 4, "p": 5, "u": 6, "e": 7, "w": 8, "y": 9}},
	{"bruises", map[string]int{"t": 0, "f": 1}},
	{"odor", map[string]int{"a": 0, "l": 1, "c": 2, "y": 3, "f": 4, "m": 5, "n": 6, "p": 7, "s": 8}},
	{"gill-attachment", map[string]int{"a": 0, "d": 1, "f": 2, "n": 3}},
	{"gill-spacing", map[string]int{"c": 0, "w": 1, "d": 2}},
	{"gill-size", map[string]int{"b": 0, "n": 1}},
	{"gill-color", map[string]int{"k": 0, "n": 1, "b": 2, "h": 3, "g": 4, "r": 5, "o": 6, "p": 7, "u": 8, "e": 9, "w": 10, "y": 11}},
	{"stalk-shape", map[string]int{"e": 0, "t": 1}},
	{"stalk-surface-above-ring", map[string]int{"f": 0, "y": 1, "k": 2, "s": 3}},
	{"stalk-surface-below-ring", map[string]int{"f": 0, "y": 1, "k": 2, "s": 3}},
	{"stalk-color-above-ring", map[string]int{"n": 0, "b": 1, "c": 2, "g": 3, "o": 4, "p": 5, "e": 6, "w": 7, "y": 8}},
	{"stalk-color-below-ring", map[string]int{"n": 0, "b": 1, "c": 2, "g": 3, "o": 4, "p": 5, "e": 6, "w": 7, "y": 8}},
	{"veil-type", map[string]int{"p": 0, "u": 1}},
	{"veil-color", map[string]int{"n": 0, "o": 1, "w": 2, "y": 3}},
	{"ring-number", map[string]int{"n": 0, "o": 1, "t": 2}},
	{"ring-type", map[string]int{"c": 0, "e": 1, "f": 2, "l": 3, "n": 4, "p": 5, "s": 6, "z": 7}},
	{"spore-print-color", map[string]int{"k": 0, "n": 1, "b": 2, "h": 3, "r": 4, "o": 5, "u": 6, "w": 7, "y": 8}},
	{"population", map[string]int{"a": 0, "c": 1, "n": 2, "s": 3, "v": 4, "y": 5}},
	{"habitat", map[string]int{"g": 0, "l": 1, "m": 2, "p": 3, "u": 4, "w": 5, "d": 6}},
}

// Encode turns one record (class first) into its feature vector and label.
// Unknown feature values are logged and encoded as 0; an unknown class is an error.
func Encode(record []string) ([]float64, float64, error) {
	if len(record) != len(Features)+1 {
		return nil, 0, fmt.Errorf("%w: got %d fields, want %d", ErrRecordLength, len(record), len(Features)+1)
	}
	symbol := strings.TrimSpace(record[0])
	label, ok := Class.Values[symbol]
	if !ok {
		return nil, 0, fmt.Errorf("dataset: unknown class %q", symbol)
	}
	features := make([]float64, len(Features))
	for i, f := range Features {
		value := strings.TrimSpace(record[i+1])
		code, ok := f.Values[value]
		if !ok {
			log.Warn().
				Str("feature", f.Name).
				Str("value", value).
				Msg("unknown feature value, encoding as 0")
		}
		features[i] = float64(code)
	}
	return features, float64(label), nil
}
