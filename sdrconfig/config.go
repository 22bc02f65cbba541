// Package sdrconfig loads the receiver configuration that drives
// cmd/pocketsdr-acquire: sampling parameters, the Doppler search
// window, the set of signals/PRNs to search, and the antenna location
// used by package station. It follows the teacher's "YAML file plus
// flag overrides" pattern (compare cmd/direwolf's pflag usage and
// src/deviceid.go's YAML loading).
package sdrconfig

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Signal describes one signal/channel to search.
type Signal struct {
	Name string  `yaml:"name"` // e.g. "L1CA", "G1CA"
	FI   float64 `yaml:"if_hz"`
	FCN  int     `yaml:"fcn,omitempty"` // GLONASS frequency channel number
}

// Station describes the receiving antenna's location, consumed by
// package station for report metadata.
type Station struct {
	Name    string  `yaml:"name"`
	LatDeg  float64 `yaml:"lat_deg"`
	LonDeg  float64 `yaml:"lon_deg"`
	HeightM float64 `yaml:"height_m"`
}

// Config is the full receiver configuration.
type Config struct {
	SampleRateHz  float64  `yaml:"sample_rate_hz"`
	IQMode        int      `yaml:"iq_mode"` // 1 = I-only, 2 = IQ
	CodeLength    int      `yaml:"code_length"`
	CodePeriodSec float64  `yaml:"code_period_sec"`
	MaxDopplerHz  float32  `yaml:"max_doppler_hz"`
	PRNs          []int    `yaml:"prns"`
	Signals       []Signal `yaml:"signals"`
	Station       Station  `yaml:"station"`

	// ReportFilenamePattern is a strftime(3) pattern (see package
	// lestrrat-go/strftime) used to name timestamped acquisition
	// report files, mirroring the teacher's --timestamp-format option.
	ReportFilenamePattern string `yaml:"report_filename_pattern"`
}

// Default returns a configuration with the values pocket_sdr's own
// example GPS L1 C/A acquisition uses.
func Default() Config {
	return Config{
		SampleRateHz:  12e6,
		IQMode:        2,
		CodeLength:    1023,
		CodePeriodSec: 1e-3,
		MaxDopplerHz:  5000,
		PRNs:          []int{1},
		Signals: []Signal{
			{Name: "L1CA", FI: 0},
		},
		ReportFilenamePattern: "acq-%Y%m%d-%H%M%S.log",
	}
}

// Load reads a YAML config file, falling back to Default when path is
// empty.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("sdrconfig: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("sdrconfig: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Flags registers command-line overrides for the most commonly tuned
// fields, in the teacher's pflag.*P style, and returns a function that
// applies any flags the user actually set on top of cfg.
func Flags(fs *pflag.FlagSet) func(*Config) {
	maxDop := fs.Float32P("max-doppler", "d", 0, "Override max Doppler search half-width (Hz).")
	codeLen := fs.IntP("code-length", "n", 0, "Override code transform length (samples).")
	prns := fs.IntSliceP("prns", "p", nil, "Override the PRN list to search.")

	return func(cfg *Config) {
		if fs.Changed("max-doppler") {
			cfg.MaxDopplerHz = *maxDop
		}
		if fs.Changed("code-length") {
			cfg.CodeLength = *codeLen
		}
		if fs.Changed("prns") {
			cfg.PRNs = *prns
		}
	}
}
