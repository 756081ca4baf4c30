package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/sithulaka/ltc-timecode-generator/ltc"
)

const Version = "v1.0.0"

func main() {
	var (
		rateLabel  = pflag.StringP("rate", "r", "25", "Frame rate label (see --list-rates)")
		sampleRate = pflag.IntP("sample-rate", "s", 48000, "Sample rate in Hz (44100, 48000, 96000, 192000)")
		bitDepth   = pflag.IntP("bit-depth", "b", 16, "Bit depth (16 or 24)")
		start      = pflag.StringP("start", "t", "00:00:00:00", "Start timecode (HH:MM:SS:FF)")
		duration   = pflag.Float64P("duration", "d", 60, "Duration in seconds")
		preroll    = pflag.Bool("preroll", false, "Start 10 seconds early and extend the run by 10 seconds")
		output     = pflag.StringP("output", "o", "", "Output WAV path (default: descriptive name in the working directory)")
		configFile = pflag.StringP("config", "c", "", "YAML batch file; generates every job it lists")
		play       = pflag.Bool("play", false, "Play the generated file through the speakers")
		listRates  = pflag.Bool("list-rates", false, "List supported frame rates and exit")
		version    = pflag.BoolP("version", "v", false, "Print version and exit")
	)
	pflag.Parse()

	if *version {
		fmt.Printf("ltcgen %s\n", Version)
		os.Exit(0)
	}

	if *listRates {
		for _, label := range ltc.Labels() {
			rate, _ := ltc.RateByLabel(label)
			fmt.Printf("%-8s %s\n", label, rate)
		}
		os.Exit(0)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if *configFile != "" {
		runBatch(logger, *configFile)
		return
	}

	startTC, err := ltc.ParseTimecode(*start)
	if err != nil {
		logger.Fatal("invalid start timecode", zap.Error(err))
	}

	cfg := ltc.Config{
		RateLabel:  *rateLabel,
		SampleRate: *sampleRate,
		BitDepth:   *bitDepth,
		Start:      startTC,
		Duration:   *duration,
		Preroll:    *preroll,
		OutputPath: *output,
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = ltc.Filename(cfg)
	}

	path, err := ltc.Generate(cfg)
	if err != nil {
		logger.Fatal("generation failed", zap.Error(err))
	}
	logger.Info("wrote LTC file",
		zap.String("path", path),
		zap.String("start", startTC.String()),
		zap.String("rate", cfg.RateLabel),
		zap.Float64("seconds", cfg.Duration))

	if *play {
		logger.Info("playing", zap.String("path", path))
		if err := playFile(path, cfg.SampleRate); err != nil {
			logger.Fatal("playback failed", zap.Error(err))
		}
	}
}

func runBatch(logger *zap.Logger, configFile string) {
	batch, err := LoadBatch(configFile)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}
	logger.Info("loaded batch config",
		zap.String("file", configFile),
		zap.Int("jobs", len(batch.Jobs)))

	failed := 0
	for i, job := range batch.Jobs {
		cfg, err := job.Config(batch.OutputDir)
		if err != nil {
			logger.Error("skipping job", zap.Int("job", i+1), zap.Error(err))
			failed++
			continue
		}
		path, err := ltc.Generate(cfg)
		if err != nil {
			logger.Error("job failed", zap.Int("job", i+1), zap.Error(err))
			failed++
			continue
		}
		logger.Info("wrote LTC file",
			zap.Int("job", i+1),
			zap.String("path", path),
			zap.String("rate", cfg.RateLabel),
			zap.Float64("seconds", cfg.Duration))
	}
	if failed > 0 {
		logger.Fatal("batch finished with failures", zap.Int("failed", failed))
	}
}
