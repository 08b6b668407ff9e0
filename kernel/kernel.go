/*
NAME
  kernel.go

DESCRIPTION
  kernel.go holds the four immutable separable Gaussian tap sets used by
  the VIF filter bank, one per spatial scale.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package kernel provides the fixed Q16 Gaussian filter taps used at
// each of the four VIF spatial scales.
package kernel

// NumScales is the number of successive spatial scales the VIF pipeline
// evaluates.
const NumScales = 4

// Taps holds the four symmetric, unsigned Q16 1-D Gaussian filter taps,
// one per scale, widths {17, 9, 5, 3}. Coefficients sum to approximately
// 2^16 and must never be mutated; callers only ever read from this
// table.
var Taps = [NumScales][]uint32{
	{489, 935, 1640, 2640, 3896, 5274, 6547, 7455, 7784, 7455, 6547, 5274, 3896, 2640, 1640, 935, 489},
	{1244, 3663, 7925, 12590, 14692, 12590, 7925, 3663, 1244},
	{3571, 16004, 26386, 16004, 3571},
	{10904, 43728, 10904},
}

// Width returns the number of taps in the filter used at scale s.
func Width(s int) int {
	return len(Taps[s])
}

// Mirror reflects an out-of-range index k back into [0, n) without
// repeating the edge sample, per the VIF mirror-boundary convention:
// for k < 0 the reflected index is -k, and for k >= n it is 2n-k-1.
func Mirror(k, n int) int {
	for k < 0 || k >= n {
		if k < 0 {
			k = -k
		}
		if k >= n {
			k = 2*n - k - 1
		}
	}
	return k
}
