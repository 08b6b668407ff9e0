/*
NAME
  vifplot

DESCRIPTION
  vifplot scores every reference/distorted frame pair matched by a pair
  of glob patterns, renders a per-scale score-vs-frame-index line
  chart, prints each scale's mean score, and reports the frame
  throughput achieved while scoring.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command vifplot scores a sequence of reference/distorted picture
// pairs and plots the four per-scale scores across the sequence.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/ausocean/utils/logging"
	"github.com/ausocean/vif/imageio"
	"github.com/ausocean/vif/internal/throughput"
	"github.com/ausocean/vif/vif"
	"github.com/ausocean/vif/vif/config"
)

// Logging configuration.
const (
	logPath      = "vifplot.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	refGlobPtr := flag.String("ref", "", "glob pattern matching reference frames, in sequence order")
	disGlobPtr := flag.String("dis", "", "glob pattern matching distorted frames, in sequence order")
	depthPtr := flag.Uint("depth", config.DefaultBitDepth, "luminance bit depth (8, 10 or 12)")
	outPtr := flag.String("out", "scores.png", "path to write the score chart to")
	flag.Parse()

	fileLog := &lumberjack.Logger{Filename: logPath, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}
	log := logging.New(logVerbosity, fileLog, logSuppress)

	if *refGlobPtr == "" || *disGlobPtr == "" {
		log.Fatal("both -ref and -dis glob patterns must be provided")
	}

	refPaths, err := filepath.Glob(*refGlobPtr)
	if err != nil {
		log.Fatal("invalid -ref glob", "error", err)
	}
	disPaths, err := filepath.Glob(*disGlobPtr)
	if err != nil {
		log.Fatal("invalid -dis glob", "error", err)
	}
	sort.Strings(refPaths)
	sort.Strings(disPaths)
	if len(refPaths) == 0 {
		log.Fatal("-ref glob matched no files")
	}
	if len(refPaths) != len(disPaths) {
		log.Fatal("-ref and -dis globs matched different counts", "ref", len(refPaths), "dis", len(disPaths))
	}

	var extractor *vif.Extractor
	defer func() {
		if extractor != nil {
			extractor.Close()
		}
	}()

	collector := vif.NewMapCollector()
	rate := throughput.NewCalculator()

	for i, refPath := range refPaths {
		ref, err := imageio.Open(refPath)
		if err != nil {
			log.Fatal("could not load reference frame", "path", refPath, "error", err)
		}
		dis, err := imageio.Open(disPaths[i])
		if err != nil {
			log.Fatal("could not load distorted frame", "path", disPaths[i], "error", err)
		}
		if dis.Width != ref.Width || dis.Height != ref.Height {
			dis = imageio.ResizeTo(dis, ref.Width, ref.Height)
		}

		if extractor == nil {
			extractor, err = vif.New(config.Config{
				Width: uint(ref.Width), Height: uint(ref.Height), BitDepth: *depthPtr, Logger: log, LogLevel: int8(logVerbosity),
			})
			if err != nil {
				log.Fatal("could not construct extractor", "error", err)
			}
		}

		if err := extractor.Extract(ref, dis, uint64(i), collector); err != nil {
			log.Fatal("scoring failed", "frame", i, "error", err)
		}
		rate.Add(1)
	}

	log.Info("scoring complete", "frames", len(refPaths), "frames/sec", rate.Rate())

	if err := plotScores(collector, len(refPaths), *outPtr); err != nil {
		log.Fatal("could not render chart", "error", err)
	}

	for _, name := range vif.ScaleFeatureNames {
		values := make([]float64, len(refPaths))
		for i := range values {
			v, _ := collector.Scores(uint64(i), name)
			values[i] = v
		}
		fmt.Printf("%s: mean=%f\n", name, stat.Mean(values, nil))
	}
}

// plotScores renders a line chart of the four per-scale scores across
// n frame indices, saved to path.
func plotScores(c *vif.MapCollector, n int, path string) error {
	p := plot.New()
	p.Title.Text = "VIF per-scale score"
	p.X.Label.Text = "frame"
	p.Y.Label.Text = "score"

	for _, name := range vif.ScaleFeatureNames {
		pts := make(plotter.XYs, n)
		for i := range pts {
			v, _ := c.Scores(uint64(i), name)
			pts[i].X = float64(i)
			pts[i].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("vifplot: could not build line for %s: %w", name, err)
		}
		p.Add(line)
		p.Legend.Add(name, line)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil && filepath.Dir(path) != "." {
		return fmt.Errorf("vifplot: could not create output directory: %w", err)
	}
	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return fmt.Errorf("vifplot: could not save chart: %w", err)
	}
	return nil
}
