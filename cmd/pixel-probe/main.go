package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/pixel-tools/pixbuf"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("pixel-probe %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			usage()
			return
		}
	}

	// Diagnostics go to stderr; stdout carries the JSON results.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if os.Getenv("PIXEL_PROBE_LOG_LEVEL") == "debug" {
		log.Printf("pixel-probe v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	if len(os.Args) < 3 {
		usage()
		os.Exit(2)
	}

	cache := pixbuf.NewBufferCache()

	var result any
	var err error

	switch os.Args[1] {
	case "info":
		result, err = pixbuf.LoadInfo(cache, os.Args[2])

	case "color":
		if len(os.Args) < 5 {
			usage()
			os.Exit(2)
		}
		var buf *pixbuf.Buffer
		buf, err = cache.Load(os.Args[2])
		if err == nil {
			x, y := atoi(os.Args[3]), atoi(os.Args[4])
			result, err = buf.ColorInfo(x, y)
		}

	case "grad":
		if len(os.Args) < 6 {
			usage()
			os.Exit(2)
		}
		mode := os.Args[2]
		var buf *pixbuf.Buffer
		buf, err = cache.Load(os.Args[3])
		if err == nil {
			x, y := atoi(os.Args[4]), atoi(os.Args[5])
			opts := pixbuf.GradientOptions{}
			if len(os.Args) > 6 {
				opts.Radius = atof(os.Args[6])
			}
			if len(os.Args) > 7 {
				opts.Samples = atoi(os.Args[7])
			}
			switch mode {
			case "min":
				result, err = buf.MinGradient(x, y, opts)
			case "max":
				result, err = buf.MaxGradient(x, y, opts)
			default:
				err = fmt.Errorf("unknown gradient mode %q (want min or max)", mode)
			}
		}

	case "edge":
		if len(os.Args) < 4 {
			usage()
			os.Exit(2)
		}
		var buf, edges *pixbuf.Buffer
		buf, err = cache.Load(os.Args[2])
		if err == nil {
			edges, err = buf.EdgeStrength()
		}
		if err == nil {
			err = edges.Save(os.Args[3])
			result = map[string]any{"written": os.Args[3], "width": edges.Width(), "height": edges.Height()}
		}

	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func usage() {
	fmt.Println("pixel-probe - pixel buffer inspection tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  pixel-probe info <image>")
	fmt.Println("  pixel-probe color <image> <x> <y>")
	fmt.Println("  pixel-probe grad <min|max> <image> <x> <y> [radius] [samples]")
	fmt.Println("  pixel-probe edge <image> <out-image>")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  PIXEL_PROBE_LOG_LEVEL=debug    Enable debug logging")
	fmt.Println()
	fmt.Println("Results are written to stdout as JSON; diagnostics go to stderr.")
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Error: invalid integer %q", s)
	}
	return n
}

func atof(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Fatalf("Error: invalid number %q", s)
	}
	return f
}
