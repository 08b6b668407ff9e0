package reduce

import "testing"

func TestQFormatForDepth(t *testing.T) {
	qf := QFormatForDepth(8)
	if qf.ShiftVP != 8 || qf.RoundVP != 128 {
		t.Fatalf("unexpected 8-bit Q-format: %+v", qf)
	}
	qf10 := QFormatForDepth(10)
	if qf10.ShiftVP != 10 || qf10.RoundVP != 512 {
		t.Fatalf("unexpected 10-bit Q-format: %+v", qf10)
	}
}

func TestBlurConstantImageStaysConstant(t *testing.T) {
	const w, h = 16, 16
	ref := make([]uint8, w*h)
	for i := range ref {
		ref[i] = 100
	}
	outRef := make([]uint16, w*h)
	outDis := make([]uint16, w*h)
	lines := Lines{Ref: make([]uint32, w), Dis: make([]uint32, w)}

	Blur[uint8](ref, ref, w, h, w, []uint32{489, 935, 1640, 2640, 3896, 5274, 6547, 7455, 7784, 7455, 6547, 5274, 3896, 2640, 1640, 935, 489}, QFormatForDepth(8), outRef, outDis, w, lines)

	first := outRef[0]
	for i, v := range outRef {
		if v != first {
			t.Fatalf("blur of constant image not uniform: outRef[%d]=%d, want %d", i, v, first)
		}
	}
	// Within 1 LSB of the source value scaled by 2^8: the taps sum to
	// 2^16 and the 8-bit vertical pass shifts right by only 8, so the
	// 16-bit output carries 8 extra fraction bits.
	if d := int(first) - 100<<8; d < -1 || d > 1 {
		t.Fatalf("blurred constant value %d too far from source 100<<8", first)
	}
}

func TestDecimateTakesEvenSamples(t *testing.T) {
	const w, h = 4, 4
	blur := []uint16{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	dst := make([]uint16, 2*2)
	Decimate(blur, w, h, w, dst, 2)
	want := []uint16{1, 3, 9, 11}
	for i, v := range want {
		if dst[i] != v {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], v)
		}
	}
}
