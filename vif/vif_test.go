/*
NAME
  vif_test.go

DESCRIPTION
  vif_test.go exercises the Extractor end to end: construction,
  geometry validation, identical-input scoring, mirror-boundary safety
  at odd sizes, determinism, and the expected monotonic response to
  increasing distortion.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package vif

import (
	"math"
	"testing"

	"github.com/ausocean/vif/internal/testimage"
	"github.com/ausocean/vif/pixel"
	"github.com/ausocean/vif/vif/config"
)

func newExtractor(t *testing.T, w, h int) *Extractor {
	t.Helper()
	e, err := New(config.Config{Width: uint(w), Height: uint(h), BitDepth: 8})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { e.Close() })
	return e
}

func TestNewRejectsZeroGeometry(t *testing.T) {
	if _, err := New(config.Config{Width: 0, Height: 64}); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestExtractRejectsGeometryMismatch(t *testing.T) {
	e := newExtractor(t, 64, 64)
	ref := testimage.Gradient(64, 64)
	dis := testimage.Gradient(32, 32)
	if err := e.Extract(ref, dis, 0, NewMapCollector()); err == nil {
		t.Fatal("expected geometry mismatch error")
	}
}

func TestExtractRejectsConfigMismatch(t *testing.T) {
	e := newExtractor(t, 64, 64)
	ref := testimage.Gradient(32, 32)
	dis := testimage.Gradient(32, 32)
	if err := e.Extract(ref, dis, 0, NewMapCollector()); err == nil {
		t.Fatal("expected configured-geometry mismatch error")
	}
}

// TestIdenticalInputsScoreNearOne exercises property P1: an identical
// reference/distorted pair should produce a score very close to 1 at
// every scale.
func TestIdenticalInputsScoreNearOne(t *testing.T) {
	const w, h = 64, 64
	e := newExtractor(t, w, h)
	img := testimage.Gradient(w, h)
	c := NewMapCollector()

	if err := e.Extract(img, img, 0, c); err != nil {
		t.Fatalf("Extract: %v", err)
	}

	for _, name := range ScaleFeatureNames {
		v, ok := c.Scores(0, name)
		if !ok {
			t.Fatalf("missing score for %s", name)
		}
		if math.Abs(v-1.0) > 0.05 {
			t.Errorf("%s = %f, want close to 1.0 for identical inputs", name, v)
		}
	}
}

// TestOddDimensionsDoNotPanic exercises the mirror-boundary handling
// (property P3) at odd sizes, including sizes that force rounding
// during the three halvings the scale loop performs between its four
// scales.
func TestOddDimensionsDoNotPanic(t *testing.T) {
	for _, dim := range [][2]int{{33, 47}, {17, 17}, {65, 33}} {
		w, h := dim[0], dim[1]
		e := newExtractor(t, w, h)
		ref := testimage.Gradient(w, h)
		dis := testimage.WithNoise(ref, 5, 1)
		if err := e.Extract(ref, dis, 0, NewMapCollector()); err != nil {
			t.Errorf("Extract(%dx%d): %v", w, h, err)
		}
	}
}

// TestDeterministic exercises property P7: scoring the same pair twice
// gives bit-identical results.
func TestDeterministic(t *testing.T) {
	const w, h = 48, 48
	e := newExtractor(t, w, h)
	ref := testimage.Gradient(w, h)
	dis := testimage.WithNoise(ref, 10, 2)

	c1, c2 := NewMapCollector(), NewMapCollector()
	if err := e.Extract(ref, dis, 0, c1); err != nil {
		t.Fatalf("Extract (first): %v", err)
	}
	if err := e.Extract(ref, dis, 0, c2); err != nil {
		t.Fatalf("Extract (second): %v", err)
	}
	for _, name := range ScaleFeatureNames {
		v1, _ := c1.Scores(0, name)
		v2, _ := c2.Scores(0, name)
		if v1 != v2 {
			t.Errorf("%s not deterministic: %v != %v", name, v1, v2)
		}
	}
}

// TestMonotonicWithDistortion exercises property P4: increasing
// distortion should not increase the scale-0 score.
func TestMonotonicWithDistortion(t *testing.T) {
	const w, h = 64, 64
	e := newExtractor(t, w, h)
	ref := testimage.Gradient(w, h)

	mild := testimage.WithNoise(ref, 5, 3)
	severe := testimage.WithNoise(ref, 40, 3)

	cMild, cSevere := NewMapCollector(), NewMapCollector()
	if err := e.Extract(ref, mild, 0, cMild); err != nil {
		t.Fatalf("Extract (mild): %v", err)
	}
	if err := e.Extract(ref, severe, 0, cSevere); err != nil {
		t.Fatalf("Extract (severe): %v", err)
	}

	mildScore, _ := cMild.Scores(0, FeatureVIFScale0Score)
	severeScore, _ := cSevere.Scores(0, FeatureVIFScale0Score)
	if severeScore > mildScore {
		t.Errorf("severe distortion scored higher than mild: %f > %f", severeScore, mildScore)
	}
}

// TestLowVariancePathDoesNotPanic exercises the aggregator's
// low-variance branch across an entire flat field.
func TestLowVariancePathDoesNotPanic(t *testing.T) {
	const w, h = 32, 32
	e := newExtractor(t, w, h)
	ref := testimage.Flat(w, h, 128)
	dis := testimage.Flat(w, h, 130)
	if err := e.Extract(ref, dis, 0, NewMapCollector()); err != nil {
		t.Fatalf("Extract: %v", err)
	}
}

func TestHigherBitDepth(t *testing.T) {
	const w, h = 32, 32
	e, err := New(config.Config{Width: w, Height: h, BitDepth: 10})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer e.Close()

	ref := pixel.New16(w, h, pixel.Depth10)
	dis := pixel.New16(w, h, pixel.Depth10)
	for i := range ref.Samples16 {
		ref.Samples16[i] = uint16(200 + i%100)
		dis.Samples16[i] = uint16(205 + i%100)
	}
	if err := e.Extract(ref, dis, 0, NewMapCollector()); err != nil {
		t.Fatalf("Extract: %v", err)
	}
}
