/*
NAME
  throughput.go

DESCRIPTION
  throughput.go implements a frame-rate calculator for the VIF CLI
  tools: a running count of processed frames divided by elapsed wall
  time, filling the same reporting role the teacher's revid pipeline
  gets from its bytes/sec bitrate calculator, adapted here to a
  frames/sec count instead of a byte count.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package throughput tracks a simple frames-per-second rate over the
// lifetime of a Calculator, for CLI tools that process a sequence of
// frames and want to report how fast they are going.
package throughput

import "time"

// Calculator accumulates a frame count against elapsed wall time since
// construction.
type Calculator struct {
	start time.Time
	count uint64
}

// NewCalculator returns a Calculator whose clock starts now.
func NewCalculator() *Calculator {
	return &Calculator{start: time.Now()}
}

// Add records that n more frames have been processed.
func (c *Calculator) Add(n uint64) { c.count += n }

// Rate returns the mean frames-per-second rate since construction. It
// returns 0 if no time has elapsed yet.
func (c *Calculator) Rate() float64 {
	elapsed := time.Since(c.start).Seconds()
	if elapsed <= 0 {
		return 0
	}
	return float64(c.count) / elapsed
}
