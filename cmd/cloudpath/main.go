// Command cloudpath exports curve geometry from a scene document to the
// JSON formats consumed by the CAD Loft Visualizer.
//
// Typical use:
//
//	cloudpath -scene drawing.yaml -layer profiles -mode profile
//	cloudpath -scene drawing.json -format segments -mode path -out path.json
//
// When -mode is omitted, the tool asks on stdin, defaulting to PROFILE.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/boreddesign/cloud-path/export"
	"github.com/boreddesign/cloud-path/scene"
)

func main() {
	scenePath := flag.String("scene", "", "path to the scene document (.json, .yaml)")
	outPath := flag.String("out", "", "output file (default profile.json or path.json by mode)")
	format := flag.String("format", "points", "output schema: points or segments")
	modeFlag := flag.String("mode", "", "profile (2D) or path (2D/3D); prompts when omitted")
	selectIDs := flag.String("select", "", "comma-separated object ids to export")
	layers := flag.String("layer", "", "comma-separated layers to export")
	samples := flag.Int("samples", 0, "fixed sample count for free-form curves (0 = auto)")
	optionsPath := flag.String("options", "", "optional extraction options YAML")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	code, err := run(log, *scenePath, *outPath, *format, *modeFlag, *selectIDs, *layers, *samples, *optionsPath)
	if err != nil {
		log.Error("export failed", "error", err)
	}
	os.Exit(code)
}

func run(log *slog.Logger, scenePath, outPath, format, modeFlag, selectIDs, layers string, samples int, optionsPath string) (int, error) {
	if scenePath == "" {
		return 2, fmt.Errorf("-scene is required")
	}
	if format != "points" && format != "segments" {
		return 2, fmt.Errorf("unknown format %q (want points or segments)", format)
	}

	opts := export.DefaultOptions()
	if optionsPath != "" {
		var err error
		opts, err = export.LoadOptions(optionsPath)
		if err != nil {
			return 1, err
		}
	}
	if samples > 0 {
		opts.Samples = samples
	}

	doc, err := scene.Load(scenePath)
	if err != nil {
		return 1, err
	}

	sel := scene.Selection{IDs: splitList(selectIDs), Layers: splitList(layers)}
	objs := doc.Select(sel)
	if len(objs) == 0 {
		return 1, fmt.Errorf("no objects selected")
	}
	log.Debug("selected objects", "count", len(objs))

	mode, ok, err := resolveMode(modeFlag, os.Stdin, os.Stderr)
	if err != nil {
		return 2, err
	}
	if !ok {
		// Prompt dismissed: abort without output, like closing the
		// dialog in the original tool.
		return 0, nil
	}

	if outPath == "" {
		outPath = mode.DefaultFilename()
	}

	x := export.NewExtractor(mode, opts, log)
	var result any
	var count int
	switch format {
	case "points":
		pts, err := x.Points(objs)
		if err != nil {
			return 1, err
		}
		result, count = pts, len(pts)
	case "segments":
		segs, err := x.Segments(objs)
		if err != nil {
			return 1, err
		}
		result, count = segs, len(segs)
	}

	if err := export.WriteFile(outPath, result); err != nil {
		return 1, err
	}
	log.Info("export complete", "format", format, "count", count, "mode", mode.String(), "file", outPath)
	return 0, nil
}

// resolveMode parses the -mode flag, or prompts interactively when the
// flag is empty. ok is false when the prompt is dismissed (EOF).
func resolveMode(flagValue string, in io.Reader, out io.Writer) (export.Mode, bool, error) {
	if flagValue != "" {
		m, err := export.ParseMode(flagValue)
		return m, err == nil, err
	}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Is this a PROFILE (2D) or PATH (2D/3D)? [PROFILE]: ")
		if !scanner.Scan() {
			return 0, false, scanner.Err()
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			return export.Profile, true, nil
		}
		m, err := export.ParseMode(answer)
		if err != nil {
			fmt.Fprintf(out, "unrecognized answer %q\n", answer)
			continue
		}
		return m, true, nil
	}
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
