/*
NAME
  reduce.go

DESCRIPTION
  reduce.go implements the VIF downsampler: a separable Gaussian blur
  followed by 2:1 decimation in each axis, producing the next scale's
  reference and distorted inputs from the current scale's.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package reduce implements the blur-then-decimate reduction filter the
// VIF orchestrator runs between scales, generalized (as momentfilter is)
// into one implementation parameterized on the input sample type.
package reduce

import (
	"github.com/ausocean/vif/bufferpool"
	"github.com/ausocean/vif/kernel"
)

// Sample is the set of input sample types the reducer accepts.
type Sample interface {
	~uint8 | ~uint16
}

// QFormat holds the vertical-pass shift/round constants; the horizontal
// pass is always shift 16, round 32768, per spec.md section 4.2.
type QFormat struct {
	ShiftVP, RoundVP uint32
}

const (
	horizontalShift = 16
	horizontalRound = 1 << 15
)

// QFormatForDepth returns the vertical-pass Q-format for an input of bit
// depth b, used for both the 8-bit and 16-bit first-scale cases (the
// formula is the same: shift = b, round = 1<<(b-1)).
func QFormatForDepth(b int) QFormat {
	return QFormat{ShiftVP: uint32(b), RoundVP: 1 << uint(b-1)}
}

// QFormatForLaterScale is the vertical-pass Q-format used when reducing
// from scale s>=1 (inputs already 16-bit blur output from the previous
// reduction).
func QFormatForLaterScale() QFormat {
	return QFormat{ShiftVP: 16, RoundVP: 1 << 15}
}

// Lines groups the two per-row scratch buffers the vertical pass writes
// and the horizontal pass consumes.
type Lines struct {
	Ref, Dis bufferpool.Line32
}

// Blur runs the vertical-then-horizontal separable blur over a w x h
// image pair (input stride), writing the full-resolution blurred result
// into outRef and outDis (each sized for outStride*h, row-major with
// stride outStride). Decimate should be called afterwards to produce
// the next scale's inputs.
func Blur[S Sample](ref, dis []S, w, h, stride int, taps []uint32, qf QFormat, outRef, outDis []uint16, outStride int, lines Lines) {
	fw := len(taps)
	half := fw / 2

	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			var accRef, accDis uint32
			for fi := 0; fi < fw; fi++ {
				ii := kernel.Mirror(i-half+fi, h)
				c := taps[fi]
				accRef += c * uint32(ref[ii*stride+j])
				accDis += c * uint32(dis[ii*stride+j])
			}
			lines.Ref[j] = (accRef + qf.RoundVP) >> qf.ShiftVP
			lines.Dis[j] = (accDis + qf.RoundVP) >> qf.ShiftVP
		}

		for j := 0; j < w; j++ {
			var accRef, accDis uint32
			for fj := 0; fj < fw; fj++ {
				jj := kernel.Mirror(j-half+fj, w)
				c := taps[fj]
				accRef += c * lines.Ref[jj]
				accDis += c * lines.Dis[jj]
			}
			outRef[i*outStride+j] = uint16((accRef + horizontalRound) >> horizontalShift)
			outDis[i*outStride+j] = uint16((accDis + horizontalRound) >> horizontalShift)
		}
	}
}

// Decimate reads the even rows/columns of a w x h blurred plane (stride
// srcStride) into a (w/2) x (h/2) destination plane (stride dstStride),
// which becomes the next scale's input.
func Decimate(blur []uint16, w, h, srcStride int, dst []uint16, dstStride int) {
	dw, dh := w/2, h/2
	for i := 0; i < dh; i++ {
		srcRow := blur[(2*i)*srcStride:]
		dstRow := dst[i*dstStride:]
		for j := 0; j < dw; j++ {
			dstRow[j] = srcRow[2*j]
		}
	}
}
