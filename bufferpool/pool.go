/*
NAME
  pool.go

DESCRIPTION
  pool.go implements the VIF core's buffer pool: a single aligned scratch
  allocation, created once per frame geometry and reused across frames,
  sliced into the five Q32 statistic planes, the two half-resolution
  downsampler output planes, and the per-row line buffers the separable
  filters need.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package bufferpool owns the single aligned scratch region the VIF
// core slices into typed plane and line-buffer views, re-architecting
// the reference implementation's manual pointer slicing of one aligned
// block (see spec.md section 9.1) into named, bounds-checked views.
package bufferpool

import "github.com/pkg/errors"

// alignSamples is the row-stride alignment, in samples, that every
// plane's stride is rounded up to. It mirrors the platform-alignment
// invariant of the reference's one aligned allocation.
const alignSamples = 16

// Plane32 is a row-major view over a contiguous []uint32 region with an
// explicit stride (in elements), used for the five Q32 statistic
// planes.
type Plane32 struct {
	Data          []uint32
	Stride        int
	Width, Height int
}

// At returns the value at (x, y).
func (p Plane32) At(x, y int) uint32 { return p.Data[y*p.Stride+x] }

// Set stores v at (x, y).
func (p Plane32) Set(x, y int, v uint32) { p.Data[y*p.Stride+x] = v }

// Row returns the backing slice for row y, sliced to at least Width
// valid elements.
func (p Plane32) Row(y int) []uint32 { return p.Data[y*p.Stride : y*p.Stride+p.Width] }

// Plane16 is the uint16 analog of Plane32, used for the downsampler's
// half-resolution mu1_small/mu2_small outputs.
type Plane16 struct {
	Data          []uint16
	Stride        int
	Width, Height int
}

func (p Plane16) At(x, y int) uint16     { return p.Data[y*p.Stride+x] }
func (p Plane16) Set(x, y int, v uint16) { p.Data[y*p.Stride+x] = v }
func (p Plane16) Row(y int) []uint16     { return p.Data[y*p.Stride : y*p.Stride+p.Width] }

// Line32 is a bounds-checked view over one row-scratch []uint32
// buffer, used for the per-row line buffers the separable filters'
// vertical pass writes and horizontal pass reads.
type Line32 []uint32

// At returns the value at index i.
func (l Line32) At(i int) uint32 { return l[i] }

// Set stores v at index i.
func (l Line32) Set(i int, v uint32) { l[i] = v }

// Pool owns the single contiguous scratch allocation for one frame
// geometry (the largest scale, scale 0). It is created once and reused
// across frames; callers must not retain plane views past a Close.
type Pool struct {
	w, h   int
	stride int

	u32mem    []uint32 // backs the five statistic planes.
	u16mem    []uint16 // backs the two half-resolution planes.
	blurmem   []uint16 // backs the two full-resolution reducer blur scratch planes.
	lines     []uint32 // backs the seven per-row line buffers.

	Mu1, Mu2, RefSq, DisSq, RefDis Plane32
	Mu1Small, Mu2Small             Plane16

	// BlurRef and BlurDis hold the downsampler's pre-decimation blur
	// output at full (current-scale) resolution; Decimate then reads
	// their even rows/columns into Mu1Small/Mu2Small. Kept in the pool
	// rather than allocated per frame, per the no-per-frame-heap-
	// allocation invariant in spec.md section 5.
	BlurRef, BlurDis Plane16

	// Per-row scratch for the vertical pass of the five-moment filter.
	LineMu1, LineMu2, LineRef, LineDis, LineRefDis Line32

	// Per-row scratch for the downsampler's vertical pass.
	LineRefConv, LineDisConv Line32
}

// New allocates a Pool sized for frames of width w and height h (scale
// 0's dimensions; later scales use a leading sub-rectangle of the same
// planes). It returns a wrapped error if allocation parameters are
// invalid.
func New(w, h int) (*Pool, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("bufferpool: invalid dimensions %dx%d", w, h)
	}

	stride := alignUp(w, alignSamples)

	p := &Pool{w: w, h: h, stride: stride}

	// Five Q32 statistic planes, one contiguous allocation.
	p.u32mem = make([]uint32, stride*h*5)
	p.Mu1 = p.slice32(0, w, h, stride)
	p.Mu2 = p.slice32(1, w, h, stride)
	p.RefSq = p.slice32(2, w, h, stride)
	p.DisSq = p.slice32(3, w, h, stride)
	p.RefDis = p.slice32(4, w, h, stride)

	// Two half-resolution uint16 planes for the downsampler.
	hw, hh := (w+1)/2, (h+1)/2
	hstride := alignUp(hw, alignSamples)
	p.u16mem = make([]uint16, hstride*hh*2)
	p.Mu1Small = Plane16{Data: p.u16mem[0 : hstride*hh], Stride: hstride, Width: hw, Height: hh}
	p.Mu2Small = Plane16{Data: p.u16mem[hstride*hh : 2*hstride*hh], Stride: hstride, Width: hw, Height: hh}

	// Two full-resolution uint16 scratch planes for the downsampler's
	// pre-decimation blur output.
	p.blurmem = make([]uint16, stride*h*2)
	p.BlurRef = Plane16{Data: p.blurmem[0 : stride*h], Stride: stride, Width: w, Height: h}
	p.BlurDis = Plane16{Data: p.blurmem[stride*h : 2*stride*h], Stride: stride, Width: w, Height: h}

	// Seven per-row uint32 line buffers, each stride-wide.
	p.lines = make([]uint32, stride*7)
	p.LineMu1 = Line32(p.lines[0*stride : 1*stride])
	p.LineMu2 = Line32(p.lines[1*stride : 2*stride])
	p.LineRef = Line32(p.lines[2*stride : 3*stride])
	p.LineDis = Line32(p.lines[3*stride : 4*stride])
	p.LineRefDis = Line32(p.lines[4*stride : 5*stride])
	p.LineRefConv = Line32(p.lines[5*stride : 6*stride])
	p.LineDisConv = Line32(p.lines[6*stride : 7*stride])

	return p, nil
}

func (p *Pool) slice32(idx, w, h, stride int) Plane32 {
	start := idx * stride * h
	return Plane32{Data: p.u32mem[start : start+stride*h], Stride: stride, Width: w, Height: h}
}

// ForScale returns the five statistic planes narrowed to w x h, the
// dimensions of the current scale (scale 0 uses the pool's full
// geometry; each subsequent scale halves both dimensions, matching the
// orchestrator's scale loop). The narrowed planes keep the pool's full
// stride.
func (p *Pool) ForScale(w, h int) (mu1, mu2, refSq, disSq, refDis Plane32) {
	return narrow(p.Mu1, w, h), narrow(p.Mu2, w, h), narrow(p.RefSq, w, h),
		narrow(p.DisSq, w, h), narrow(p.RefDis, w, h)
}

func narrow(p Plane32, w, h int) Plane32 {
	return Plane32{Data: p.Data, Stride: p.Stride, Width: w, Height: h}
}

// Close releases the pool's backing storage. After Close, the pool and
// any plane views derived from it must not be used.
func (p *Pool) Close() error {
	p.u32mem = nil
	p.u16mem = nil
	p.blurmem = nil
	p.lines = nil
	return nil
}

func alignUp(n, align int) int {
	if n%align == 0 {
		return n
	}
	return n + (align - n%align)
}
