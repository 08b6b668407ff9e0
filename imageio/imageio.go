/*
NAME
  imageio.go

DESCRIPTION
  imageio.go is the edge package that turns an ordinary image file
  (PNG, JPEG, or any format registered with the standard image
  package) into a pixel.Image the VIF core can score, and resizes such
  an image to a requested geometry. It does not convert a pixel.Image
  back to an image.Image.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package imageio loads luminance-only pixel.Images from ordinary
// image files. Acquisition from a live device, multi-plane (chroma)
// handling, and any encoding back to a lossy format are explicitly out
// of scope; see the VIF core's pixel package for the type this package
// produces.
package imageio

import (
	"fmt"
	"image"
	stddraw "image/draw"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/ausocean/vif/pixel"
)

// Decode reads an image from r, decoded by whichever format package has
// registered itself with the standard image package (png and jpeg are
// imported for their side effect here; callers needing other formats
// should blank-import them), and converts it to an 8-bit luminance-only
// pixel.Image.
func Decode(r io.Reader) (*pixel.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("imageio: could not decode image: %w", err)
	}
	return FromImage(img), nil
}

// Open decodes the image file at path; see Decode.
func Open(path string) (*pixel.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("imageio: could not open %s: %w", path, err)
	}
	defer f.Close()
	return Decode(f)
}

// FromImage converts an arbitrary image.Image to an 8-bit luminance
// pixel.Image, using the standard library's ITU-R 601-2 luma
// transform (via image.Gray's conversion rules).
func FromImage(src image.Image) *pixel.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := pixel.New8(w, h)

	gray := image.NewGray(b)
	stddraw.Draw(gray, b, src, b.Min, stddraw.Src)
	for y := 0; y < h; y++ {
		srcRow := gray.Pix[(y)*gray.Stride : y*gray.Stride+w]
		copy(out.Samples8[y*out.Stride:y*out.Stride+w], srcRow)
	}
	return out
}

// ResizeTo returns a copy of src resized to width w and height h using
// a bilinear resampler, for callers that need a reference and
// distorted pair brought to matching geometry before scoring.
func ResizeTo(src *pixel.Image, w, h int) *pixel.Image {
	srcImg := &image.Gray{
		Pix:    src.Samples8,
		Stride: src.Stride,
		Rect:   image.Rect(0, 0, src.Width, src.Height),
	}
	dstImg := image.NewGray(image.Rect(0, 0, w, h))
	draw.BiLinear.Scale(dstImg, dstImg.Bounds(), srcImg, srcImg.Bounds(), draw.Over, nil)

	out := pixel.New8(w, h)
	for y := 0; y < h; y++ {
		copy(out.Samples8[y*out.Stride:y*out.Stride+w], dstImg.Pix[y*dstImg.Stride:y*dstImg.Stride+w])
	}
	return out
}
