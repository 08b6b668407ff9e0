/*
NAME
  vifscore

DESCRIPTION
  vifscore is a command-line tool that scores one reference/distorted
  picture pair against the VIF feature extractor and writes the four
  per-scale scores to stdout and, optionally, to a CSV file.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command vifscore scores reference/distorted picture pairs against
// the VIF feature extractor.
package main

import (
	"flag"
	"fmt"
	"os"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"
	"github.com/ausocean/vif/imageio"
	"github.com/ausocean/vif/vif"
	"github.com/ausocean/vif/vif/config"
)

// Logging configuration.
const (
	logPath      = "vifscore.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	refPtr := flag.String("ref", "", "path to the reference image")
	disPtr := flag.String("dis", "", "path to the distorted image")
	depthPtr := flag.Uint("depth", config.DefaultBitDepth, "luminance bit depth (8, 10 or 12)")
	csvPtr := flag.String("csv", "", "optional path to write a CSV row to, in addition to stdout")
	verbosePtr := flag.Bool("verbose", false, "log at debug level instead of info")
	flag.Parse()

	fileLog := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    logMaxSize,
		MaxBackups: logMaxBackup,
		MaxAge:     logMaxAge,
	}
	level := int8(logVerbosity)
	if *verbosePtr {
		level = logging.Debug
	}
	log := logging.New(level, fileLog, logSuppress)

	if *refPtr == "" || *disPtr == "" {
		log.Fatal("both -ref and -dis must be provided")
	}

	ref, err := imageio.Open(*refPtr)
	if err != nil {
		log.Fatal("could not load reference image", "error", err)
	}
	dis, err := imageio.Open(*disPtr)
	if err != nil {
		log.Fatal("could not load distorted image", "error", err)
	}
	if dis.Width != ref.Width || dis.Height != ref.Height {
		log.Debug("resizing distorted image to reference geometry", "refW", ref.Width, "refH", ref.Height, "disW", dis.Width, "disH", dis.Height)
		dis = imageio.ResizeTo(dis, ref.Width, ref.Height)
	}

	cfg := config.Config{
		Width:    uint(ref.Width),
		Height:   uint(ref.Height),
		BitDepth: *depthPtr,
		Logger:   log,
		LogLevel: level,
	}

	extractor, err := vif.New(cfg)
	if err != nil {
		log.Fatal("could not construct extractor", "error", err)
	}
	defer extractor.Close()

	collector := vif.NewMapCollector()
	if err := extractor.Extract(ref, dis, 0, collector); err != nil {
		log.Fatal("scoring failed", "error", err)
	}

	for _, name := range vif.ScaleFeatureNames {
		v, _ := collector.Scores(0, name)
		fmt.Printf("%s: %f\n", name, v)
	}

	if *csvPtr != "" {
		f, err := os.Create(*csvPtr)
		if err != nil {
			log.Fatal("could not create CSV output", "error", err)
		}
		defer f.Close()
		csvCollector := vif.NewCSVCollector(f)
		for _, name := range vif.ScaleFeatureNames {
			v, _ := collector.Scores(0, name)
			if err := csvCollector.Append(0, name, v); err != nil {
				log.Fatal("could not write CSV row", "error", err)
			}
		}
	}
}
