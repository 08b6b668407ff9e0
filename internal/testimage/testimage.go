/*
NAME
  testimage.go

DESCRIPTION
  testimage.go generates synthetic luminance pictures for exercising
  the VIF core's tests without depending on external test fixture
  files: smooth windowed gradients (so scale-0 moment statistics are
  non-degenerate), flat fields (for the low-variance aggregator path),
  and simple distortions (additive noise, a fixed blur) to produce a
  plausible reference/distorted pair.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package testimage generates synthetic pixel.Images for tests,
// reusing the windowing functions the codec/pcm package uses to shape
// audio filters, applied here across two spatial dimensions instead of
// one time dimension.
package testimage

import (
	"math/rand"

	"github.com/mjibson/go-dsp/window"

	"github.com/ausocean/vif/pixel"
)

// Gradient returns a w x h 8-bit image whose luminance follows the
// outer product of two Hamming windows, scaled into [16, 235]: a
// smooth, non-constant field with no flat regions, so every VIF scale
// sees a nonzero local variance everywhere.
func Gradient(w, h int) *pixel.Image {
	rowWin := window.Hamming(h)
	colWin := window.Hamming(w)

	img := pixel.New8(w, h)
	for y := 0; y < h; y++ {
		row := img.Samples8[y*img.Stride : y*img.Stride+w]
		for x := 0; x < w; x++ {
			v := rowWin[y] * colWin[x]
			row[x] = uint8(16 + v*(235-16))
		}
	}
	return img
}

// Flat returns a w x h 8-bit image with every sample equal to level,
// exercising the aggregator's low-variance path.
func Flat(w, h int, level uint8) *pixel.Image {
	img := pixel.New8(w, h)
	for i := range img.Samples8 {
		img.Samples8[i] = level
	}
	return img
}

// WithNoise returns a copy of src with independent additive noise of
// the given amplitude (in samples) applied to every pixel, clamped to
// [0, 255], using seed for reproducibility across test runs.
func WithNoise(src *pixel.Image, amplitude int, seed int64) *pixel.Image {
	r := rand.New(rand.NewSource(seed))
	out := pixel.New8(src.Width, src.Height)
	for y := 0; y < src.Height; y++ {
		srcRow := src.Samples8[y*src.Stride : y*src.Stride+src.Width]
		dstRow := out.Samples8[y*out.Stride : y*out.Stride+out.Width]
		for x := range srcRow {
			v := int(srcRow[x]) + r.Intn(2*amplitude+1) - amplitude
			if v < 0 {
				v = 0
			}
			if v > 255 {
				v = 255
			}
			dstRow[x] = uint8(v)
		}
	}
	return out
}

// Blurred returns a copy of src with a fixed 3x3 box blur applied,
// mirroring at the boundary, a cheap stand-in for a lossy codec's
// smoothing distortion.
func Blurred(src *pixel.Image) *pixel.Image {
	out := pixel.New8(src.Width, src.Height)
	mirror := func(k, n int) int {
		if k < 0 {
			return -k
		}
		if k >= n {
			return 2*n - k - 1
		}
		return k
	}
	for y := 0; y < src.Height; y++ {
		for x := 0; x < src.Width; x++ {
			var sum int
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					yy := mirror(y+dy, src.Height)
					xx := mirror(x+dx, src.Width)
					sum += int(src.Samples8[yy*src.Stride+xx])
				}
			}
			out.Samples8[y*out.Stride+x] = uint8(sum / 9)
		}
	}
	return out
}
