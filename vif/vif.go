/*
NAME
  vif.go

DESCRIPTION
  vif.go implements the VIF feature extractor's orchestrator: the
  four-scale loop that runs the five-moment filter and scale aggregator
  at each scale, downsampling between scales with the reducer, and
  reports the four resulting per-scale ratios to a Collector.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package vif implements the integer fixed-point Visual Information
// Fidelity feature extractor: given a reference and a distorted
// picture of matching geometry, it reports four per-scale VIF ratios
// through a caller-supplied Collector.
package vif

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/ausocean/vif/aggregate"
	"github.com/ausocean/vif/bufferpool"
	"github.com/ausocean/vif/config"
	"github.com/ausocean/vif/fixedpoint"
	"github.com/ausocean/vif/kernel"
	"github.com/ausocean/vif/momentfilter"
	"github.com/ausocean/vif/pixel"
	"github.com/ausocean/vif/reduce"
	"github.com/ausocean/vif/vif/config"
)

// Extractor computes the four-scale VIF feature set for one fixed
// picture geometry. Construct with New; call Extract once per
// reference/distorted pair sharing that geometry, in any order across
// frames; call Close when done with it.
type Extractor struct {
	cfg      config.Config
	pool     *bufferpool.Pool
	logTable []uint16
}

// New constructs an Extractor for the geometry and bit depth described
// by cfg. The buffer pool backing every subsequent Extract call is
// sized once here; every picture pair later passed to Extract must
// match cfg's Width, Height and BitDepth exactly.
func New(cfg config.Config) (*Extractor, error) {
	cfg = cfg.Validated()
	if cfg.Logger == nil {
		cfg.Logger = discardLogger{}
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, errors.Errorf("vif: invalid geometry %dx%d", cfg.Width, cfg.Height)
	}

	pool, err := bufferpool.New(int(cfg.Width), int(cfg.Height))
	if err != nil {
		return nil, errors.Wrap(err, "vif: could not allocate buffer pool")
	}

	logTable := make([]uint16, fixedpoint.LogTableSize)
	fixedpoint.BuildLog2Table(logTable)

	cfg.Logger.SetLevel(cfg.LogLevel)
	cfg.Logger.Debug("vif: extractor constructed", "width", cfg.Width, "height", cfg.Height, "depth", cfg.BitDepth)

	return &Extractor{cfg: cfg, pool: pool, logTable: logTable}, nil
}

// Extract scores one reference/distorted picture pair, reporting the
// four per-scale ratios to c under index. Both pictures must share the
// geometry and bit depth the Extractor was constructed with.
func (e *Extractor) Extract(ref, dis *pixel.Image, index uint64, c Collector) error {
	if err := ref.Validate(); err != nil {
		return errors.Wrap(err, "vif: invalid reference image")
	}
	if err := dis.Validate(); err != nil {
		return errors.Wrap(err, "vif: invalid distorted image")
	}
	if !pixel.SameGeometry(ref, dis) {
		return errors.Errorf("vif: reference %dx%d/%d and distorted %dx%d/%d geometry mismatch",
			ref.Width, ref.Height, ref.Depth, dis.Width, dis.Height, dis.Depth)
	}
	if ref.Stride != dis.Stride {
		return errors.Errorf("vif: reference stride %d and distorted stride %d mismatch", ref.Stride, dis.Stride)
	}
	if uint(ref.Width) != e.cfg.Width || uint(ref.Height) != e.cfg.Height {
		return errors.Errorf("vif: image %dx%d does not match configured geometry %dx%d",
			ref.Width, ref.Height, e.cfg.Width, e.cfg.Height)
	}
	if uint(ref.Depth) != e.cfg.BitDepth {
		return errors.Errorf("vif: image depth %d does not match configured depth %d", ref.Depth, e.cfg.BitDepth)
	}

	e.cfg.Logger.Debug("vif: extracting frame", "index", index)

	use8 := ref.Depth == pixel.Depth8

	curW, curH, curStride := ref.Width, ref.Height, ref.Stride
	var curRef16, curDis16 []uint16

	lines := momentfilter.Lines{
		Mu1:    e.pool.LineMu1,
		Mu2:    e.pool.LineMu2,
		Ref:    e.pool.LineRef,
		Dis:    e.pool.LineDis,
		RefDis: e.pool.LineRefDis,
	}
	rlines := reduce.Lines{Ref: e.pool.LineRefConv, Dis: e.pool.LineDisConv}

	for s := 0; s < kernel.NumScales; s++ {
		mu1, mu2, refSq, disSq, refDis := e.pool.ForScale(curW, curH)
		planes := momentfilter.Planes{Mu1: mu1, Mu2: mu2, RefSq: refSq, DisSq: disSq, RefDis: refDis}

		var qf momentfilter.QFormat
		if s == 0 {
			qf = momentfilter.QFormatForScale0(int(e.cfg.BitDepth))
		} else {
			qf = momentfilter.QFormatForLaterScale()
		}

		switch {
		case s == 0 && use8:
			momentfilter.Apply[uint8](ref.Samples8, dis.Samples8, curW, curH, curStride, kernel.Taps[s], qf, planes, lines)
		case s == 0:
			momentfilter.Apply[uint16](ref.Samples16, dis.Samples16, curW, curH, curStride, kernel.Taps[s], qf, planes, lines)
		default:
			momentfilter.Apply[uint16](curRef16, curDis16, curW, curH, curStride, kernel.Taps[s], qf, planes, lines)
		}

		res := aggregate.Run(aggregate.Planes{Mu1: mu1, Mu2: mu2, RefSq: refSq, DisSq: disSq, RefDis: refDis}, e.logTable, curW, curH)

		// Per spec.md section 7: when Den is exactly 0 the ratio may
		// legitimately come out NaN or infinite; consumers treat that as
		// a degenerate frame rather than this package silently masking
		// it.
		score := res.Num / res.Den
		if err := c.Append(index, ScaleFeatureNames[s], score); err != nil {
			return fmt.Errorf("vif: collector rejected scale %d score: %w", s, err)
		}
		e.cfg.Logger.Debug("vif: scale scored", "index", index, "scale", s, "score", score)

		if s == kernel.NumScales-1 {
			break
		}

		var rqf reduce.QFormat
		if s == 0 {
			rqf = reduce.QFormatForDepth(int(e.cfg.BitDepth))
		} else {
			rqf = reduce.QFormatForLaterScale()
		}

		switch {
		case s == 0 && use8:
			reduce.Blur[uint8](ref.Samples8, dis.Samples8, curW, curH, curStride, kernel.Taps[s+1], rqf,
				e.pool.BlurRef.Data, e.pool.BlurDis.Data, e.pool.BlurRef.Stride, rlines)
		case s == 0:
			reduce.Blur[uint16](ref.Samples16, dis.Samples16, curW, curH, curStride, kernel.Taps[s+1], rqf,
				e.pool.BlurRef.Data, e.pool.BlurDis.Data, e.pool.BlurRef.Stride, rlines)
		default:
			reduce.Blur[uint16](curRef16, curDis16, curW, curH, curStride, kernel.Taps[s+1], rqf,
				e.pool.BlurRef.Data, e.pool.BlurDis.Data, e.pool.BlurRef.Stride, rlines)
		}

		reduce.Decimate(e.pool.BlurRef.Data, curW, curH, e.pool.BlurRef.Stride, e.pool.Mu1Small.Data, e.pool.Mu1Small.Stride)
		reduce.Decimate(e.pool.BlurDis.Data, curW, curH, e.pool.BlurDis.Stride, e.pool.Mu2Small.Data, e.pool.Mu2Small.Stride)

		curW, curH = curW/2, curH/2
		curStride = e.pool.Mu1Small.Stride
		curRef16, curDis16 = e.pool.Mu1Small.Data, e.pool.Mu2Small.Data
	}

	return nil
}

// Close releases the Extractor's buffer pool. After Close, the
// Extractor must not be used.
func (e *Extractor) Close() error {
	return e.pool.Close()
}
