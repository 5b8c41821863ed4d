package metrics

// Confusion holds binary classification counts.
type Confusion struct {
	TP int
	FP int
	TN int
	FN int
}

// Scores are the metrics derived from a Confusion.
type Scores struct {
	Accuracy  float64
	Precision float64
	Recall    float64
	F1        float64
}

// Count compares predictions against truth position by position. Only the
// values 0 and 1 are counted; the slices must have equal length.
func Count(pred, truth []float64) Confusion {
	var c Confusion
	for i, p := range pred {
		t := truth[i]
		switch {
		case p == 1 && t == 1:
			c.TP++
		case p == 1 && t == 0:
			c.FP++
		case p == 0 && t == 0:
			c.TN++
		case p == 0 && t == 1:
			c.FN++
		}
	}
	return c
}

// Total is the number of counted samples.
func (c Confusion) Total() int {
	return c.TP + c.FP + c.TN + c.FN
}

// Scores computes accuracy, precision, recall and F1. A zero denominator
// yields 0 for that metric.
func (c Confusion) Scores() Scores {
	s := Scores{
		Accuracy:  ratio(c.TP+c.TN, c.Total()),
		Precision: ratio(c.TP, c.TP+c.FP),
		Recall:    ratio(c.TP, c.TP+c.FN),
	}
	if sum := s.Precision + s.Recall; sum != 0 {
		s.F1 = 2 * s.Precision * s.Recall / sum
	}
	return s
}

// Score is shorthand for Count(pred, truth).Scores().
func Score(pred, truth []float64) Scores {
	return Count(pred, truth).Scores()
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den)
}
