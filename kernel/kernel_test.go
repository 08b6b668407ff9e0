package kernel

import "testing"

func TestTapsSumNear2_16(t *testing.T) {
	const want = 1 << 16
	for s, taps := range Taps {
		var sum uint32
		for _, c := range taps {
			sum += c
		}
		diff := int(sum) - want
		if diff < -8 || diff > 8 {
			t.Errorf("scale %d: taps sum to %d, want close to %d", s, sum, want)
		}
	}
}

func TestTapsSymmetric(t *testing.T) {
	for s, taps := range Taps {
		n := len(taps)
		for i := 0; i < n/2; i++ {
			if taps[i] != taps[n-1-i] {
				t.Errorf("scale %d: taps not symmetric at %d/%d", s, i, n-1-i)
			}
		}
	}
}

func TestMirror(t *testing.T) {
	cases := []struct{ k, n, want int }{
		{-1, 10, 1},
		{-2, 10, 2},
		{10, 10, 9},
		{11, 10, 8},
		{5, 10, 5},
		{0, 10, 0},
		{9, 10, 9},
	}
	for _, c := range cases {
		if got := Mirror(c.k, c.n); got != c.want {
			t.Errorf("Mirror(%d, %d) = %d, want %d", c.k, c.n, got, c.want)
		}
	}
}
