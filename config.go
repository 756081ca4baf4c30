package main

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/sithulaka/ltc-timecode-generator/ltc"
)

// BatchConfig describes a batch of generation jobs loaded from a YAML file.
type BatchConfig struct {
	OutputDir string      `yaml:"output_dir"`
	Jobs      []JobConfig `yaml:"jobs"`
}

// JobConfig is one generation job. Omitted fields fall back to the same
// defaults the CLI flags use.
type JobConfig struct {
	Rate       string  `yaml:"rate"`
	SampleRate int     `yaml:"sample_rate"`
	BitDepth   int     `yaml:"bit_depth"`
	Start      string  `yaml:"start"`
	Duration   float64 `yaml:"duration"`
	Preroll    bool    `yaml:"preroll"`
	Output     string  `yaml:"output,omitempty"`
}

// LoadBatch loads a batch configuration from a YAML file and applies
// per-job defaults.
func LoadBatch(filename string) (*BatchConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config BatchConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if len(config.Jobs) == 0 {
		return nil, fmt.Errorf("config file %s lists no jobs", filename)
	}

	for i := range config.Jobs {
		job := &config.Jobs[i]
		if job.Rate == "" {
			job.Rate = "25"
		}
		if job.SampleRate == 0 {
			job.SampleRate = 48000
		}
		if job.BitDepth == 0 {
			job.BitDepth = 16
		}
		if job.Start == "" {
			job.Start = "00:00:00:00"
		}
		if job.Duration == 0 {
			job.Duration = 60
		}
	}

	return &config, nil
}

// Config resolves the job into a generator configuration, placing unnamed
// outputs under outputDir with a descriptive file name.
func (j JobConfig) Config(outputDir string) (ltc.Config, error) {
	start, err := ltc.ParseTimecode(j.Start)
	if err != nil {
		return ltc.Config{}, err
	}
	cfg := ltc.Config{
		RateLabel:  j.Rate,
		SampleRate: j.SampleRate,
		BitDepth:   j.BitDepth,
		Start:      start,
		Duration:   j.Duration,
		Preroll:    j.Preroll,
		OutputPath: j.Output,
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = filepath.Join(outputDir, ltc.Filename(cfg))
	} else if outputDir != "" && !filepath.IsAbs(cfg.OutputPath) {
		cfg.OutputPath = filepath.Join(outputDir, cfg.OutputPath)
	}
	return cfg, nil
}
