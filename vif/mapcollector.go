/*
NAME
  mapcollector.go

DESCRIPTION
  mapcollector.go provides a Collector that stores observations in
  memory, used by tests and by small tools that don't need persistence.

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

import "sync"

// MapCollector is a Collector that stores every observation keyed by
// frame index and feature name.
type MapCollector struct {
	mu   sync.Mutex
	data map[uint64]map[string]float64
}

// NewMapCollector returns a ready-to-use MapCollector.
func NewMapCollector() *MapCollector {
	return &MapCollector{data: make(map[uint64]map[string]float64)}
}

// Append implements Collector.
func (m *MapCollector) Append(index uint64, name string, value float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data[index] == nil {
		m.data[index] = make(map[string]float64)
	}
	m.data[index][name] = value
	return nil
}

// Scores returns the recorded value for (index, name) and whether it
// was present.
func (m *MapCollector) Scores(index uint64, name string) (float64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	frame, ok := m.data[index]
	if !ok {
		return 0, false
	}
	v, ok := frame[name]
	return v, ok
}

// Frames returns the set of frame indices observed so far.
func (m *MapCollector) Frames() []uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]uint64, 0, len(m.data))
	for idx := range m.data {
		out = append(out, idx)
	}
	return out
}
