/*
NAME
  log2table.go

DESCRIPTION
  log2table.go builds the 65536-entry Q11 base-2 log lookup table used by
  the VIF scale aggregator's log-domain divergence formula. The table is
  built once, using a degree-8 minimax polynomial evaluated on the
  mantissa fraction of each index, and is read-only thereafter.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package fixedpoint

import "math"

// LogTableSize is the number of entries in the log table. Entries below
// logTableMin are never populated with meaningful data and must not be
// indexed by a caller.
const LogTableSize = 1 << 16

// logTableMin is the first index for which BuildLog2Table computes a
// meaningful entry; it is the smallest mantissa Top16FromU32/Top16FromU64
// can ever produce.
const logTableMin = 1 << 15

// log2poly holds the degree-8 minimax polynomial coefficients (leading
// order first, constant term last) used to approximate log2(1+f) for
// f in [0, 1), matching the reference fixed-point VIF implementation
// bit-for-bit (to within the documented +/-1 ULP of the Q11 table entry).
var log2poly = [9]float64{
	-0.012671635276421,
	0.064841182402670,
	-0.157048836463065,
	0.257167726303123,
	-0.353800560300520,
	0.480131410397451,
	-0.721314327952201,
	1.442694803896991,
	0,
}

// log2Scale is the Q-format scale factor (2^11) applied to the log2
// result before rounding into the table.
const log2Scale = 2048.0

// BuildLog2Table populates L (which must have length LogTableSize) with
// round(log2(i) * 2048) for i in [32768, 65535]. Entries below 32768 are
// left untouched (callers must never index them); L is intended to be
// built once and treated as immutable thereafter.
func BuildLog2Table(L []uint16) {
	if len(L) != LogTableSize {
		panic("fixedpoint: BuildLog2Table requires a table of length LogTableSize")
	}
	for i := logTableMin; i < LogTableSize; i++ {
		y := log2ByBitcast(uint32(i))
		L[i] = uint16(math.Round(y * log2Scale))
	}
}

// log2ByBitcast computes log2(v) for a 16-bit-range mantissa v by
// scaling v with float64 arithmetic into a value in [1, 2) (the value
// an IEEE-754 float's mantissa field represents), then evaluating the
// minimax polynomial on (value - 1.0) via Horner's method, and finally
// adding back the binary exponent implied by v's bit-width. It does
// not reinterpret any float bit pattern and does not call a library
// log function, so the table is reproducible without relying on a
// particular libm's rounding.
func log2ByBitcast(v uint32) float64 {
	// v is in [2^15, 2^16), so f = v / 2^16 is in [0.5, 1); the loop
	// below doubles it into [1, 2) so the reduction argument lies in
	// [0, 1) the way an IEEE extraction of the mantissa would.
	const mantissaBits = 16 // v occupies bits [0,16), MSB fixed at bit 15.
	f := float64(v) / float64(uint32(1)<<mantissaBits)
	// f is in [0.5, 1); shift to [1, 2) and track the exponent
	// adjustment so the final result is log2(v) and not log2(f).
	exp := 0
	for f < 1 {
		f *= 2
		exp--
	}
	x := f - 1.0 // mantissa fraction in [0, 1).
	y := hornerLog2(x)
	return y + float64(mantissaBits+exp)
}

// hornerLog2 evaluates log2poly at x via Horner's method.
func hornerLog2(x float64) float64 {
	y := log2poly[0]
	for i := 1; i < len(log2poly); i++ {
		y = y*x + log2poly[i]
	}
	return y
}
