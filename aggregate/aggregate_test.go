package aggregate

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ausocean/vif/bufferpool"
	"github.com/ausocean/vif/fixedpoint"
)

func singlePixelPlanes(mu1, mu2, refSq, disSq, refDis uint32) Planes {
	mk := func(v uint32) bufferpool.Plane32 {
		return bufferpool.Plane32{Data: []uint32{v}, Stride: 1, Width: 1, Height: 1}
	}
	return Planes{
		Mu1: mk(mu1), Mu2: mk(mu2), RefSq: mk(refSq), DisSq: mk(disSq), RefDis: mk(refDis),
	}
}

func newLogTable(t *testing.T) []uint16 {
	t.Helper()
	L := make([]uint16, fixedpoint.LogTableSize)
	fixedpoint.BuildLog2Table(L)
	return L
}

// TestHighVarianceIdenticalPixelGivesEqualNumDen exercises the
// log-domain path (sigma1_sq, sigma2_sq and sigma12 all equal, as
// happens when reference and distorted planes are identical at a
// pixel with local variance above the threshold) and checks that num
// and den come out equal, which the closed-form algebra behind the
// formulas in spec.md section 4.4 guarantees for this case.
func TestHighVarianceIdenticalPixelGivesEqualNumDen(t *testing.T) {
	L := newLogTable(t)
	// mu1 = mu2 = 0 so mu1sq = mu2sq = mu1mu2 = 0, and
	// sigma1Sq = refSq, sigma2Sq = disSq, sigma12 = refDis.
	const s = 200000 // >= 131072, forces the high-variance path.
	p := singlePixelPlanes(0, 0, s, s, s)

	res := Run(p, L, 1, 1)
	if diff := res.Num - res.Den; diff > 0.01 || diff < -0.01 {
		t.Fatalf("expected num ~= den for identical high-variance pixel, got num=%v den=%v", res.Num, res.Den)
	}
}

func TestLowVarianceSinglePixelFormula(t *testing.T) {
	L := newLogTable(t)
	const sigma2Sq = 100000
	// refSq (sigma1_sq, since mu1 = 0) is 100000 < 131072, which forces
	// the low-variance path.
	p := singlePixelPlanes(0, 0, 100000, sigma2Sq, 100000)

	res := Run(p, L, 1, 1)

	wantNum := 1.0 - (float64(sigma2Sq)/16384.0)/65025.0
	wantDen := 1.0

	if math.Abs(res.Num-wantNum) > 1e-9 {
		t.Errorf("Num = %v, want %v", res.Num, wantNum)
	}
	if res.Den != wantDen {
		t.Errorf("Den = %v, want %v", res.Den, wantDen)
	}
}

func TestRunDeterministic(t *testing.T) {
	L := newLogTable(t)
	p := singlePixelPlanes(1000, 900, 300000, 280000, 290000)

	r1 := Run(p, L, 1, 1)
	r2 := Run(p, L, 1, 1)
	if diff := cmp.Diff(r1, r2); diff != "" {
		t.Fatalf("Run is not deterministic (-first +second):\n%s", diff)
	}
}
