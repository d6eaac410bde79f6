package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hwprobe/cacheprobe/pkg/config"
	"github.com/hwprobe/cacheprobe/pkg/curve"
	"github.com/hwprobe/cacheprobe/pkg/probe"

	log "github.com/sirupsen/logrus"
)

var (
	configPath = flag.String("config", "", "Path to probe configuration file (built-in defaults when empty)")
	verbosity  = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
	outputDir  = flag.String("output", "", "Directory for diagnostic CSV files (overrides configuration)")
	noReport   = flag.Bool("noreport", false, "Disable the diagnostic CSV trail")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cfg := config.DefaultConfiguration()
	if *configPath != "" {
		cfg = config.ReadConfigurationFile(*configPath)
	}
	if *outputDir != "" {
		cfg.OutputPathPrefix = *outputDir
	}
	if *noReport {
		cfg.EnableDiagnostics = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	prober := probe.NewProber(&cfg)
	result, err := prober.Run()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("cache line size %d bytes\n", result.LineSizeOrDefault())
	fmt.Printf("L1 cache %s, L2 cache %s\n", formatSize(result.L1Size), formatSize(result.L2Size))
}

func formatSize(sizeBytes int) string {
	if sizeBytes == curve.NotFound {
		return "not found"
	}
	return fmt.Sprintf("%dK", sizeBytes>>10)
}
