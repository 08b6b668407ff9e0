/*
NAME
  config.go

DESCRIPTION
  config.go contains the configuration settings for the vif feature
  extractor.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package config contains the configuration settings for the vif
// feature extractor.
package config

import "github.com/ausocean/utils/logging"

// Default field values, used when a Config field is left unset.
const (
	DefaultBitDepth = 8
)

// Config holds the parameters a vif Extractor is constructed with. A
// Config must be passed to vif.New; dimensions and bit depth must match
// every picture pair subsequently passed to Extract.
type Config struct {
	// Width and Height are the luminance plane dimensions, in samples,
	// of every picture the extractor will be asked to score.
	Width, Height uint

	// BitDepth is the per-sample bit depth of the luminance plane: 8,
	// 10 or 12. Defaults to DefaultBitDepth if zero or unsupported.
	BitDepth uint

	// Logger holds an implementation of the Logger interface. This
	// must be set for the extractor to log its per-frame debug
	// breadcrumbs; a discard logger is installed by vif.New if left
	// nil.
	Logger logging.Logger

	// LogLevel is the extractor's logging verbosity level. Valid
	// values are defined by enums from the logger package:
	// logging.Debug, logging.Info, logging.Warning, logging.Error,
	// logging.Fatal.
	LogLevel int8
}

// LogInvalidField logs (at Info level) that a Config field was bad or
// unset, and that def is being used in its place.
func (c *Config) LogInvalidField(name string, def interface{}) {
	if c.Logger == nil {
		return
	}
	c.Logger.Info(name+" bad or unset, defaulting", name, def)
}

// Validated returns a copy of c with invalid fields defaulted, logging
// each correction through c.Logger (if set).
func (c Config) Validated() Config {
	switch c.BitDepth {
	case 8, 10, 12:
	default:
		c.LogInvalidField("BitDepth", DefaultBitDepth)
		c.BitDepth = DefaultBitDepth
	}
	return c
}
