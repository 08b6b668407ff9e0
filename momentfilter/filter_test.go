package momentfilter

import (
	"testing"

	"github.com/ausocean/vif/bufferpool"
	"github.com/ausocean/vif/kernel"
)

func newPlanesAndLines(w, h int) (Planes, Lines) {
	stride := w
	mk := func() bufferpool.Plane32 {
		return bufferpool.Plane32{Data: make([]uint32, stride*h), Stride: stride, Width: w, Height: h}
	}
	planes := Planes{Mu1: mk(), Mu2: mk(), RefSq: mk(), DisSq: mk(), RefDis: mk()}
	lines := Lines{
		Mu1:    make([]uint32, w),
		Mu2:    make([]uint32, w),
		Ref:    make([]uint32, w),
		Dis:    make([]uint32, w),
		RefDis: make([]uint32, w),
	}
	return planes, lines
}

func TestApplyIdenticalInputsGiveEqualStatistics(t *testing.T) {
	const w, h = 20, 20
	ref := make([]uint8, w*h)
	for i := range ref {
		ref[i] = uint8(64 + i%50)
	}
	dis := make([]uint8, w*h)
	copy(dis, ref)

	planes, lines := newPlanesAndLines(w, h)
	qf := QFormatForScale0(8)
	Apply[uint8](ref, dis, w, h, w, kernel.Taps[0], qf, planes, lines)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if planes.Mu1.At(x, y) != planes.Mu2.At(x, y) {
				t.Fatalf("mu1 != mu2 at (%d,%d) for identical inputs", x, y)
			}
			if planes.RefSq.At(x, y) != planes.DisSq.At(x, y) {
				t.Fatalf("ref_sq != dis_sq at (%d,%d) for identical inputs", x, y)
			}
			if planes.RefSq.At(x, y) != planes.RefDis.At(x, y) {
				t.Fatalf("ref_sq != ref_dis at (%d,%d) for identical inputs", x, y)
			}
		}
	}
}

func TestApplyConstantImageUniformOutput(t *testing.T) {
	const w, h = 16, 16
	ref := make([]uint8, w*h)
	for i := range ref {
		ref[i] = 128
	}
	planes, lines := newPlanesAndLines(w, h)
	qf := QFormatForScale0(8)
	Apply[uint8](ref, ref, w, h, w, kernel.Taps[0], qf, planes, lines)

	first := planes.Mu1.At(0, 0)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if planes.Mu1.At(x, y) != first {
				t.Fatalf("expected uniform mu1 plane for constant input, got %d at (%d,%d) vs %d at origin", planes.Mu1.At(x, y), x, y, first)
			}
		}
	}
}

func TestApplyScale0VsLaterScaleQFormat(t *testing.T) {
	qf8 := QFormatForScale0(8)
	if qf8.ShiftVP != 8 || qf8.RoundVP != 128 {
		t.Fatalf("unexpected 8-bit Q-format: %+v", qf8)
	}
	qf10 := QFormatForScale0(10)
	if qf10.ShiftVP != 10 || qf10.RoundVP != 512 || qf10.ShiftVPSq != 4 || qf10.RoundVPSq != 8 {
		t.Fatalf("unexpected 10-bit Q-format: %+v", qf10)
	}
	qfL := QFormatForLaterScale()
	if qfL.ShiftVP != 16 || qfL.RoundVP != 32768 || qfL.ShiftVPSq != 16 || qfL.RoundVPSq != 32768 {
		t.Fatalf("unexpected later-scale Q-format: %+v", qfL)
	}
}
