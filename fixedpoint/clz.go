/*
NAME
  clz.go

DESCRIPTION
  clz.go provides the top-16-significant-bit normalizers used by the VIF
  scale aggregator to key its base-2 log table.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package fixedpoint provides the integer normalizers and base-2 log
// table that the VIF scale aggregator uses to evaluate its log-domain
// divergence formula without floating point.
package fixedpoint

import "math/bits"

// CountLeadingZeros32 returns the number of leading zero bits in v,
// treating v as a 32-bit unsigned integer. CountLeadingZeros32(0) is
// 32.
func CountLeadingZeros32(v uint32) int {
	return bits.LeadingZeros32(v)
}

// CountLeadingZeros64 returns the number of leading zero bits in v,
// treating v as a 64-bit unsigned integer. CountLeadingZeros64(0) is
// 64.
func CountLeadingZeros64(v uint64) int {
	return bits.LeadingZeros64(v)
}

// Top16FromU32 reduces a non-zero 32-bit magnitude v to a mantissa m in
// [2^15, 2^16) and an exponent x such that v is approximately m*2^(-x).
//
// v must be non-zero; the result is undefined otherwise.
func Top16FromU32(v uint32) (m uint32, x int) {
	k := CountLeadingZeros32(v)
	j := 16 - k
	if j >= 0 {
		m = v >> uint(j)
	} else {
		m = v << uint(-j)
	}
	return m, -j
}

// Top16FromU64 reduces a non-zero 64-bit magnitude v to a mantissa m in
// [2^15, 2^16] and an exponent x such that v is approximately m*2^(-x).
//
// v must be non-zero; the result is undefined otherwise.
func Top16FromU64(v uint64) (m uint64, x int) {
	k := CountLeadingZeros64(v)
	switch {
	case k > 48:
		shift := uint(k - 48)
		return v << shift, k - 48
	case k < 47:
		j := 48 - k
		return v >> uint(j), -j
	default: // k == 47 or k == 48
		if v>>16 != 0 {
			return v >> 1, -1
		}
		return v, 0
	}
}
