/*
NAME
  discardlogger.go

DESCRIPTION
  discardlogger.go provides a logging.Logger implementation that
  discards everything, installed by New when no logger is supplied.

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

// discardLogger implements logging.Logger by discarding every call. It
// lets the Extractor log breadcrumbs unconditionally without a nil
// check at every call site.
type discardLogger struct{}

func (discardLogger) Debug(string, ...interface{})      {}
func (discardLogger) Info(string, ...interface{})       {}
func (discardLogger) Warning(string, ...interface{})    {}
func (discardLogger) Error(string, ...interface{})      {}
func (discardLogger) Fatal(string, ...interface{})      {}
func (discardLogger) SetLevel(int8)                     {}
func (discardLogger) Log(int8, string, ...interface{})  {}
