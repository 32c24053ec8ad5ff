package bias

import "testing"

func TestClassifyRefined(t *testing.T) {
	cases := []struct {
		overall  float64
		expected string
	}{
		{0, ClassLow},
		{34.9, ClassLow},
		{35, ClassMedium},
		{50, ClassMedium},
		{64.9, ClassMedium},
		{65, ClassHigh},
		{100, ClassHigh},
	}
	for _, c := range cases {
		if got := ClassifyRefined(c.overall); got != c.expected {
			t.Errorf("ClassifyRefined(%f) = %s, expected %s", c.overall, got, c.expected)
		}
	}
}

func TestClassifyBatch(t *testing.T) {
	cases := []struct {
		overall  float64
		expected string
	}{
		{0, ClassLow},
		{40, ClassLow},
		{44.9, ClassLow},
		{45, ClassMedium},
		{64.9, ClassMedium},
		{65, ClassHigh},
	}
	for _, c := range cases {
		if got := ClassifyBatch(c.overall); got != c.expected {
			t.Errorf("ClassifyBatch(%f) = %s, expected %s", c.overall, got, c.expected)
		}
	}
}

func TestClassificationBoundariesDiverge(t *testing.T) {
	// The 35..45 band is where the interactive and batch paths disagree.
	// Both boundaries are load-bearing until the divergence gets a product
	// decision.
	if ClassifyRefined(40) != ClassMedium {
		t.Error("Expected Medium on the interactive path at 40")
	}
	if ClassifyBatch(40) != ClassLow {
		t.Error("Expected Low on the batch path at 40")
	}
}
