//go:build withcv
// +build withcv

/*
NAME
  vifcam

DESCRIPTION
  vifcam captures live frames from a webcam and scores each one
  against a fixed baseline frame (the first frame captured), displaying
  the scale-0 VIF score overlaid on the live feed. Built only when the
  withcv tag is set, since it depends on a local OpenCV installation via
  gocv.

AUTHOR
  VIF Team <vif@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Command vifcam scores a live webcam feed against its first captured
// frame and displays the running scale-0 VIF score.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"

	"gocv.io/x/gocv"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/utils/logging"
	"github.com/ausocean/vif/imageio"
	"github.com/ausocean/vif/internal/throughput"
	"github.com/ausocean/vif/pixel"
	"github.com/ausocean/vif/vif"
	"github.com/ausocean/vif/vif/config"
)

// Logging configuration.
const (
	logPath      = "vifcam.log"
	logMaxSize   = 100 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

func main() {
	devicePtr := flag.String("device", "0", "camera device ID or path, as accepted by gocv.OpenVideoCapture")
	depthPtr := flag.Uint("depth", config.DefaultBitDepth, "luminance bit depth (8, 10 or 12)")
	flag.Parse()

	fileLog := &lumberjack.Logger{Filename: logPath, MaxSize: logMaxSize, MaxBackups: logMaxBackup, MaxAge: logMaxAge}
	log := logging.New(logVerbosity, fileLog, logSuppress)

	webcam, err := gocv.OpenVideoCapture(*devicePtr)
	if err != nil {
		log.Fatal("could not open video capture device", "device", *devicePtr, "error", err)
	}
	defer webcam.Close()

	window := gocv.NewWindow("VIF live")
	defer window.Close()

	img := gocv.NewMat()
	defer img.Close()

	var (
		extractor *vif.Extractor
		baseline  *pixel.Image
	)
	defer func() {
		if extractor != nil {
			extractor.Close()
		}
	}()

	collector := vif.NewMapCollector()
	rate := throughput.NewCalculator()
	var index uint64

	log.Info("capture started", "device", *devicePtr)
	for {
		if ok := webcam.Read(&img); !ok {
			log.Info("device closed", "device", *devicePtr)
			return
		}
		if img.Empty() {
			continue
		}

		cvImg, err := img.ToImage()
		if err != nil {
			log.Error("could not convert captured frame", "error", err)
			continue
		}
		frame := imageio.FromImage(cvImg)

		if extractor == nil {
			extractor, err = vif.New(config.Config{
				Width: uint(frame.Width), Height: uint(frame.Height), BitDepth: *depthPtr, Logger: log, LogLevel: int8(logVerbosity),
			})
			if err != nil {
				log.Fatal("could not construct extractor", "error", err)
			}
			baseline = frame
			log.Info("baseline frame captured", "width", frame.Width, "height", frame.Height)
		}

		if err := extractor.Extract(baseline, frame, index, collector); err != nil {
			log.Error("scoring failed", "index", index, "error", err)
		} else {
			score, _ := collector.Scores(index, vif.FeatureVIFScale0Score)
			text := fmt.Sprintf("scale0: %.4f (%.1f fps)", score, rate.Rate())
			gocv.PutText(&img, text, image.Pt(10, 20), gocv.FontHersheyPlain, 1.2, color.RGBA{0, 255, 0, 0}, 2)
		}
		rate.Add(1)
		index++

		window.IMShow(img)
		if window.WaitKey(1) == 27 {
			break
		}
	}
}
