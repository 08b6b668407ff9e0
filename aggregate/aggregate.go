/*
NAME
  aggregate.go

DESCRIPTION
  aggregate.go implements the VIF scale aggregator: the per-pixel
  divergence accumulator that blends a closed-form formula for
  low-variance regions with a base-2-log-domain formula for
  high-variance regions, and combines both into the scale's (num, den)
  pair.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package aggregate implements the per-scale statistic aggregator that
// turns the five moment planes produced by package momentfilter into
// the (num, den) pair the orchestrator divides to get a scale's VIF
// ratio.
package aggregate

import (
	"github.com/ausocean/vif/bufferpool"
	"github.com/ausocean/vif/fixedpoint"
)

// lowVarianceThreshold is 2*2^16, the local-reference-variance cutoff
// below which a pixel takes the closed-form non-log path.
const lowVarianceThreshold = 2 << 16

// Result holds one scale's (num, den) pair, ready to be divided into a
// VIF ratio by the caller.
type Result struct {
	Num, Den float64
}

// Planes groups the five per-pixel statistic planes the aggregator
// reads, all at the scale's working resolution.
type Planes struct {
	Mu1, Mu2, RefSq, DisSq, RefDis bufferpool.Plane32
}

// Run walks Planes' w x h extent and returns the scale's (num, den)
// pair, using logTable (built once by fixedpoint.BuildLog2Table) for
// the log-domain path.
func Run(p Planes, logTable []uint16, w, h int) Result {
	var accumNumLog, accumDenLog int64
	var accumNumNonLog, accumDenNonLog int64
	var accumX, accumX2 int64
	var numAccumX int64

	for py := 0; py < h; py++ {
		for px := 0; px < w; px++ {
			m1 := p.Mu1.At(px, py)
			m2 := p.Mu2.At(px, py)

			mu1sq := uint32((uint64(m1)*uint64(m1) + (1 << 31)) >> 32)
			mu2sq := uint32((uint64(m2)*uint64(m2) + (1 << 31)) >> 32)
			mu1mu2 := uint32((uint64(m1)*uint64(m2) + (1 << 31)) >> 32)

			sigma1Sq := int64(p.RefSq.At(px, py)) - int64(mu1sq)
			sigma2Sq := int64(p.DisSq.At(px, py)) - int64(mu2sq)

			if sigma1Sq < lowVarianceThreshold {
				accumNumNonLog += sigma2Sq
				accumDenNonLog++
				continue
			}

			sigma12 := int64(p.RefDis.At(px, py)) - int64(mu1mu2)
			stage1 := uint32(lowVarianceThreshold + sigma1Sq)
			mDen, xExp := fixedpoint.Top16FromU32(stage1)
			numAccumX++
			accumX += int64(xExp)
			denVal := int64(logTable[mDen])

			if sigma12 < 0 {
				accumDenLog += denVal
				continue
			}

			numer1 := sigma2Sq + lowVarianceThreshold
			prod := numer1 * sigma1Sq
			s12Sq := sigma12 * sigma12
			denom := prod - s12Sq

			if denom > 0 {
				mNum, x1 := fixedpoint.Top16FromU64(uint64(prod))
				mDenom, x2 := fixedpoint.Top16FromU64(uint64(denom))
				accumX2 += int64(x2 - x1)
				accumNumLog += int64(logTable[mNum]) - int64(logTable[mDenom])
				accumDenLog += denVal
			} else {
				accumNumNonLog += sigma2Sq
				accumDenNonLog++
			}
		}
	}

	num := float64(accumNumLog)/2048.0 + float64(accumX2) +
		(float64(accumDenNonLog) - (float64(accumNumNonLog)/16384.0)/65025.0)
	den := float64(accumDenLog)/2048.0 - (float64(accumX) + float64(numAccumX)*17) + float64(accumDenNonLog)

	return Result{Num: num, Den: den}
}
