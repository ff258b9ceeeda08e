package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/esimov/painterly"
	"github.com/esimov/painterly/utils"
)

const helpBanner = `
┌─┐┌─┐┬┌┐┌┌┬┐┌─┐┬─┐┬  ┬ ┬
├─┘├─┤││││ │ ├┤ ├┬┘│  └┬┘
┴  ┴ ┴┴┘└┘ ┴ └─┘┴└─┴─┘ ┴

Painterly rendering with curved brush strokes.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

// Version indicates the current build version.
var Version string

var (
	source      = flag.String("in", pipeName, "Source image, image URL or directory")
	destination = flag.String("out", pipeName, "Destination image or directory")
	preset      = flag.String("preset", painterly.Impressionist, "Style preset: "+strings.Join(painterly.PresetNames(), ", "))
	seed        = flag.Uint64("seed", 0, "Random seed for reproducible renders")
	debug       = flag.Bool("debug", false, "Save the coverage debug image next to the output")
	verbose     = flag.Bool("verbose", false, "Log the painting passes")
	workers     = flag.Int("conc", runtime.NumCPU(), "Number of files to process concurrently")

	// Style overrides. Only the flags set on the command line replace the preset values.
	brush         = flag.Int("brush", 0, "Maximum brush size")
	opacity       = flag.Int("opacity", 0, "Stroke color opacity (0-255)")
	blur          = flag.Float64("blur", 0, "Blur factor")
	grid          = flag.Float64("grid", 0, "Grid size factor")
	curvature     = flag.Float64("curvature", 0, "Curvature filter (0-1)")
	threshold     = flag.Float64("threshold", 0, "Error threshold")
	minLen        = flag.Int("minlen", 0, "Minimum stroke length")
	maxLen        = flag.Int("maxlen", 0, "Maximum stroke length")
	hue           = flag.Float64("hue", 0, "Hue jitter")
	sat           = flag.Float64("sat", 0, "Saturation jitter")
	val           = flag.Float64("val", 0, "Value jitter")
	red           = flag.Float64("red", 0, "Red jitter")
	green         = flag.Float64("green", 0, "Green jitter")
	blue          = flag.Float64("blue", 0, "Blue jitter")
	edges         = flag.Bool("edges", false, "Draw the edge overlay")
	edgeThreshold = flag.Float64("edge-threshold", 0, "Edge threshold in percent of the strongest edge")
)

func main() {
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, helpBanner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		painterly.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	style, err := painterly.PresetByName(*preset)
	if err != nil {
		log.Fatal(utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	applyOverrides(&style)

	op := &painterly.Ops{
		Src:      *source,
		Dst:      *destination,
		PipeName: pipeName,
		Workers:  *workers,
		Style:    style,
		Debug:    *debug,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			op.Seed, op.Seeded = *seed, true
		}
	})

	// The spinner would interleave with the log records.
	if !*verbose {
		op.Spinner = utils.NewSpinner(
			utils.DecorateText("🎨 PAINTERLY", utils.StatusMessage), time.Millisecond*120, true)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		if op.Spinner != nil {
			op.Spinner.RestoreCursor()
		}
	}()

	now := time.Now()
	if err := op.Execute(ctx); err != nil {
		stop()
		log.Fatalf("%s\n\t%s",
			utils.DecorateText("Error painting the image:", utils.ErrorMessage),
			utils.DecorateText(err.Error(), utils.DefaultMessage),
		)
	}
	if *destination != pipeName {
		fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
			utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
	}
}

// applyOverrides replaces the preset values with the style flags set explicitly.
func applyOverrides(s *painterly.Style) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "brush":
			s.MaxBrushSize = *brush
		case "opacity":
			s.ColorOpacity = *opacity
		case "blur":
			s.BlurFactor = *blur
		case "grid":
			s.GridSize = *grid
		case "curvature":
			s.CurvatureFilter = *curvature
		case "threshold":
			s.Threshold = *threshold
		case "minlen":
			s.MinStrokeLength = *minLen
		case "maxlen":
			s.MaxStrokeLength = *maxLen
		case "hue":
			s.HueJitter = *hue
		case "sat":
			s.SaturationJitter = *sat
		case "val":
			s.ValueJitter = *val
		case "red":
			s.RedJitter = *red
		case "green":
			s.GreenJitter = *green
		case "blue":
			s.BlueJitter = *blue
		case "edges":
			s.DrawEdges = *edges
		case "edge-threshold":
			s.EdgeThreshold = *edgeThreshold
		}
	})
}
