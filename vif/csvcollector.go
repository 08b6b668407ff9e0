/*
NAME
  csvcollector.go

DESCRIPTION
  csvcollector.go provides a Collector that appends one CSV row per
  frame index, in the small single-purpose-writer tradition of the
  container package family this core was adapted alongside.

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
	"encoding/csv"
	"fmt"
	"io"
	"sync"
)

// CSVCollector is a Collector that writes one row per frame index to an
// underlying io.Writer, buffering a frame's observations until all four
// feature names for that index have arrived, then flushing a row in
// ScaleFeatureNames order. A frame whose four scores never all arrive
// is never written.
type CSVCollector struct {
	mu      sync.Mutex
	w       *csv.Writer
	pending map[uint64]map[string]float64
	wrote   bool
}

// NewCSVCollector returns a CSVCollector writing to w.
func NewCSVCollector(w io.Writer) *CSVCollector {
	return &CSVCollector{w: csv.NewWriter(w), pending: make(map[uint64]map[string]float64)}
}

// Append implements Collector. Once all four scale scores for a given
// frame index have been recorded, a CSV row is flushed for that index.
func (c *CSVCollector) Append(index uint64, name string, value float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.wrote {
		if err := c.w.Write(append([]string{"frame"}, ScaleFeatureNames[:]...)); err != nil {
			return fmt.Errorf("csvcollector: could not write header: %w", err)
		}
		c.wrote = true
	}

	if c.pending[index] == nil {
		c.pending[index] = make(map[string]float64)
	}
	c.pending[index][name] = value

	if len(c.pending[index]) < len(ScaleFeatureNames) {
		return nil
	}

	row := make([]string, 0, len(ScaleFeatureNames)+1)
	row = append(row, fmt.Sprintf("%d", index))
	for _, n := range ScaleFeatureNames {
		row = append(row, fmt.Sprintf("%v", c.pending[index][n]))
	}
	delete(c.pending, index)

	if err := c.w.Write(row); err != nil {
		return fmt.Errorf("csvcollector: could not write row: %w", err)
	}
	c.w.Flush()
	return c.w.Error()
}
