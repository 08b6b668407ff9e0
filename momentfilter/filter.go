/*
NAME
  filter.go

DESCRIPTION
  filter.go implements the VIF five-moment separable filter: a 2-D
  vertical-then-horizontal Gaussian convolution that simultaneously
  accumulates five per-pixel statistics (two means, two squared sums
  and one cross-product sum) into the scale's working planes.

  The reference implementation provides hand-duplicated 8-bit and
  16-bit variants of this filter; here a single generic Apply is
  parameterized on the input sample type (re-architecture point
  spec.md section 9.2), with the per-scale Q-format shift/round
  constants passed in as data rather than encoded as separate code
  paths.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package momentfilter implements the separable five-moment Gaussian
// filter used at every VIF scale to produce the local mean and
// second-moment planes the scale aggregator consumes.
package momentfilter

import (
	"github.com/ausocean/vif/bufferpool"
	"github.com/ausocean/vif/kernel"
)

// Sample is the set of input sample types the filter accepts: 8-bit at
// scale 0 for 8-bit sources, 16-bit everywhere else (including >8-bit
// scale-0 sources, already widened by the caller).
type Sample interface {
	~uint8 | ~uint16
}

// QFormat holds the vertical-pass shift/round constants for the mean
// accumulators (ShiftVP/RoundVP) and the squared-sum accumulators
// (ShiftVPSq/RoundVPSq), per the table in spec.md section 4.3. The
// horizontal pass's squared-sum finishing shift is always 16/32768 and
// is not parameterized.
type QFormat struct {
	ShiftVP, RoundVP     uint32
	ShiftVPSq, RoundVPSq uint32
}

const (
	horizontalSqShift = 16
	horizontalSqRound = 1 << 15
)

// QFormatForScale0 returns the vertical-pass Q-format for scale 0,
// given the source bit depth b (8, 10 or 12).
func QFormatForScale0(b int) QFormat {
	if b == 8 {
		return QFormat{ShiftVP: 8, RoundVP: 1 << 7}
	}
	shiftSq := uint32(2 * (b - 8))
	return QFormat{
		ShiftVP:    uint32(b),
		RoundVP:    1 << uint(b-1),
		ShiftVPSq:  shiftSq,
		RoundVPSq:  1 << (shiftSq - 1),
	}
}

// QFormatForLaterScale is the vertical-pass Q-format used at scales 1..3,
// where inputs are always the 16-bit output of the downsampler.
func QFormatForLaterScale() QFormat {
	return QFormat{ShiftVP: 16, RoundVP: 1 << 15, ShiftVPSq: 16, RoundVPSq: 1 << 15}
}

// Planes groups the five output statistic planes the filter writes.
type Planes struct {
	Mu1, Mu2, RefSq, DisSq, RefDis bufferpool.Plane32
}

// Lines groups the five per-row scratch line buffers the vertical pass
// writes and the horizontal pass consumes. Each must have length >= the
// image width.
type Lines struct {
	Mu1, Mu2, Ref, Dis, RefDis bufferpool.Line32
}

// Apply runs the vertical-then-horizontal five-moment filter over a
// w x h image pair (ref, dis), both row-major with the given stride,
// using the symmetric tap set taps (must have odd length) and the
// vertical-pass Q-format qf, writing results into out. lines provides
// the per-row scratch space (reused across rows; never retained).
func Apply[S Sample](ref, dis []S, w, h, stride int, taps []uint32, qf QFormat, out Planes, lines Lines) {
	fw := len(taps)
	half := fw / 2

	for i := 0; i < h; i++ {
		// Vertical pass: for each column, accumulate over the tap
		// window of rows, mirrored at the top/bottom boundary.
		for j := 0; j < w; j++ {
			var accMu1, accMu2 uint32
			var accRef, accDis, accRefDis uint64
			for fi := 0; fi < fw; fi++ {
				ii := kernel.Mirror(i-half+fi, h)
				c := taps[fi]
				r := uint32(ref[ii*stride+j])
				d := uint32(dis[ii*stride+j])
				accMu1 += c * r
				accMu2 += c * d
				accRef += uint64(c) * uint64(r) * uint64(r)
				accDis += uint64(c) * uint64(d) * uint64(d)
				accRefDis += uint64(c) * uint64(r) * uint64(d)
			}
			lines.Mu1[j] = (accMu1 + qf.RoundVP) >> qf.ShiftVP
			lines.Mu2[j] = (accMu2 + qf.RoundVP) >> qf.ShiftVP
			lines.Ref[j] = shiftSq(accRef, qf.ShiftVPSq, qf.RoundVPSq)
			lines.Dis[j] = shiftSq(accDis, qf.ShiftVPSq, qf.RoundVPSq)
			lines.RefDis[j] = shiftSq(accRefDis, qf.ShiftVPSq, qf.RoundVPSq)
		}

		// Horizontal pass: convolve the line buffers, mirrored at the
		// left/right boundary, and write the finished statistics.
		for j := 0; j < w; j++ {
			var accMu1, accMu2 uint32
			var accRef, accDis, accRefDis uint64
			for fj := 0; fj < fw; fj++ {
				jj := kernel.Mirror(j-half+fj, w)
				c := taps[fj]
				accMu1 += c * lines.Mu1[jj]
				accMu2 += c * lines.Mu2[jj]
				accRef += uint64(c) * uint64(lines.Ref[jj])
				accDis += uint64(c) * uint64(lines.Dis[jj])
				accRefDis += uint64(c) * uint64(lines.RefDis[jj])
			}
			out.Mu1.Set(j, i, accMu1)
			out.Mu2.Set(j, i, accMu2)
			out.RefSq.Set(j, i, uint32((accRef+horizontalSqRound)>>horizontalSqShift))
			out.DisSq.Set(j, i, uint32((accDis+horizontalSqRound)>>horizontalSqShift))
			out.RefDis.Set(j, i, uint32((accRefDis+horizontalSqRound)>>horizontalSqShift))
		}
	}
}

// shiftSq applies a possibly-zero shift/round to a 64-bit vertical-pass
// squared accumulator, producing the 32-bit line-buffer value. A zero
// shift (scale 0, 8-bit source) passes the accumulator through
// unchanged, since round_VPsq is also 0 in that case.
func shiftSq(acc uint64, shift, round uint32) uint32 {
	if shift == 0 {
		return uint32(acc)
	}
	return uint32((acc + uint64(round)) >> shift)
}

