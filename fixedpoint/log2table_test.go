package fixedpoint

import (
	"math"
	"testing"
)

// TestLog2TableWithinOneULP checks property P5: for each i in
// [32768, 65535], |L[i] - round(log2(i)*2048)| <= 1.
func TestLog2TableWithinOneULP(t *testing.T) {
	L := make([]uint16, LogTableSize)
	BuildLog2Table(L)

	for i := logTableMin; i < LogTableSize; i++ {
		want := math.Round(math.Log2(float64(i)) * log2Scale)
		got := float64(L[i])
		if diff := got - want; diff > 1 || diff < -1 {
			t.Fatalf("L[%d] = %v, want within 1 of %v", i, got, want)
		}
	}
}

func TestLog2TableMonotonic(t *testing.T) {
	L := make([]uint16, LogTableSize)
	BuildLog2Table(L)
	for i := logTableMin + 1; i < LogTableSize; i++ {
		if L[i] < L[i-1] {
			t.Fatalf("log table not monotonic at %d: L[i-1]=%d L[i]=%d", i, L[i-1], L[i])
		}
	}
}

func TestLog2TablePanicsOnWrongSize(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for wrong-size table")
		}
	}()
	BuildLog2Table(make([]uint16, 10))
}
