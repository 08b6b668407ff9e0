/*
NAME
  image.go

DESCRIPTION
  image.go defines the single-plane integer image type the VIF core
  operates on: a row-major rectangular array of unsigned samples with an
  explicit line stride, at 8, 10 or 12 bits per sample.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package pixel provides the single-plane image type the VIF core reads
// from, and the bit-depth plumbing around it. Acquisition, decoding and
// multi-plane (chroma) handling are explicitly out of scope here; see
// package imageio for the edge that produces an Image from a real file.
package pixel

import "fmt"

// Depth is a per-sample bit depth. The VIF core only ever operates on
// the luminance plane, at one of these three depths.
type Depth int

const (
	Depth8  Depth = 8
	Depth10 Depth = 10
	Depth12 Depth = 12
)

// Image is a single-plane (luminance-only) rectangular array of samples.
// For Depth8 images, Samples8 holds the data and Samples16 is nil; for
// higher depths Samples16 holds the data (stored widened to 16 bits) and
// Samples8 is nil. Stride is the number of elements (not bytes) between
// the start of successive rows, and is always >= Width.
type Image struct {
	Width, Height int
	Stride        int
	Depth         Depth
	Samples8      []uint8
	Samples16     []uint16
}

// New8 allocates a new 8-bit Image of the given dimensions with a
// stride equal to width (no row padding).
func New8(w, h int) *Image {
	return &Image{Width: w, Height: h, Stride: w, Depth: Depth8, Samples8: make([]uint8, w*h)}
}

// New16 allocates a new Image at the given depth (10 or 12 bits, stored
// widened to 16 bits per sample) with a stride equal to width.
func New16(w, h int, d Depth) *Image {
	return &Image{Width: w, Height: h, Stride: w, Depth: d, Samples16: make([]uint16, w*h)}
}

// Validate reports whether img is internally consistent: positive
// dimensions, a stride that accommodates the width, and sample storage
// matching the declared depth.
func (img *Image) Validate() error {
	if img == nil {
		return fmt.Errorf("pixel: nil image")
	}
	if img.Width <= 0 || img.Height <= 0 {
		return fmt.Errorf("pixel: non-positive dimensions %dx%d", img.Width, img.Height)
	}
	if img.Stride < img.Width {
		return fmt.Errorf("pixel: stride %d smaller than width %d", img.Stride, img.Width)
	}
	switch img.Depth {
	case Depth8:
		if img.Samples8 == nil {
			return fmt.Errorf("pixel: 8-bit image missing Samples8")
		}
		if len(img.Samples8) < img.Stride*(img.Height-1)+img.Width {
			return fmt.Errorf("pixel: Samples8 too small for stride/height")
		}
	case Depth10, Depth12:
		if img.Samples16 == nil {
			return fmt.Errorf("pixel: %d-bit image missing Samples16", img.Depth)
		}
		if len(img.Samples16) < img.Stride*(img.Height-1)+img.Width {
			return fmt.Errorf("pixel: Samples16 too small for stride/height")
		}
	default:
		return fmt.Errorf("pixel: unsupported depth %d", img.Depth)
	}
	return nil
}

// At8 returns the sample at (x, y) for an 8-bit image. Callers must
// ensure Depth == Depth8.
func (img *Image) At8(x, y int) uint8 {
	return img.Samples8[y*img.Stride+x]
}

// At16 returns the sample at (x, y) for a >8-bit image. Callers must
// ensure Depth != Depth8.
func (img *Image) At16(x, y int) uint16 {
	return img.Samples16[y*img.Stride+x]
}

// SameGeometry reports whether a and b share width, height and depth,
// the precondition the VIF core's Extract places on its reference and
// distorted inputs.
func SameGeometry(a, b *Image) bool {
	return a.Width == b.Width && a.Height == b.Height && a.Depth == b.Depth
}
