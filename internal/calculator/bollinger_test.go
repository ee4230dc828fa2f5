package calculator

import (
	"math"
	"testing"
)

func TestBollingerBands_Ordering(t *testing.T) {
	bars := barsFromCloses(zigzagCloses(100, 3, 2, 40))
	middle, upper, lower := BollingerBands(bars, 20, 2)

	for i := range middle {
		defined := !math.IsNaN(middle[i])
		if defined != !math.IsNaN(upper[i]) || defined != !math.IsNaN(lower[i]) {
			t.Fatalf("index %d: bands must be defined together", i)
		}
		if !defined {
			continue
		}
		if upper[i] < middle[i] || middle[i] < lower[i] {
			t.Errorf("index %d: expected upper >= middle >= lower, got %v / %v / %v",
				i, upper[i], middle[i], lower[i])
		}
	}
}

func TestBollingerBands_ConstantCloses(t *testing.T) {
	closes := make([]float64, 30)
	for i := range closes {
		closes[i] = 150
	}
	middle, upper, lower := BollingerBands(barsFromCloses(closes), 20, 2)

	for i := 19; i < len(closes); i++ {
		if middle[i] != 150 || upper[i] != 150 || lower[i] != 150 {
			t.Errorf("index %d: constant closes must collapse the bands, got %v / %v / %v",
				i, upper[i], middle[i], lower[i])
		}
	}
}

func TestBollingerBands_SampleStd(t *testing.T) {
	// Closes 1,2,3,4 with window 3: sample std of any 3 consecutive
	// values is exactly 1, so the k=2 bands sit 2 away from the mean.
	bars := barsFromCloses([]float64{1, 2, 3, 4})
	middle, upper, lower := BollingerBands(bars, 3, 2)

	if !math.IsNaN(middle[0]) || !math.IsNaN(middle[1]) {
		t.Error("expected NaN before index 2")
	}
	if middle[2] != 2 || upper[2] != 4 || lower[2] != 0 {
		t.Errorf("index 2: expected 2/4/0, got %v / %v / %v", middle[2], upper[2], lower[2])
	}
	if middle[3] != 3 || upper[3] != 5 || lower[3] != 1 {
		t.Errorf("index 3: expected 3/5/1, got %v / %v / %v", middle[3], upper[3], lower[3])
	}
}

func TestBollingerBands_ShortSeries(t *testing.T) {
	middle, upper, lower := BollingerBands(barsFromCloses(rampCloses(100, 10)), 20, 2)
	for i := range middle {
		if !math.IsNaN(middle[i]) || !math.IsNaN(upper[i]) || !math.IsNaN(lower[i]) {
			t.Errorf("index %d: expected undefined bands on a 10-bar series", i)
		}
	}
}
