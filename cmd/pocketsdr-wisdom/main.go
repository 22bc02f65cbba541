// Command pocketsdr-wisdom plans a set of transform lengths in this
// process's FFT Plan Cache and writes a YAML manifest recording which
// lengths fit within the cache's MaxPlans bound. The plans live only in
// this process's memory; pocketsdr-acquire does not read the manifest
// and builds its own plans on first use. This is the Go-idiomatic
// analogue of FFTW's wisdom file; it does not attempt to reproduce
// FFTW's binary wisdom format.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/pavelyazev/PocketSDR/fftcorr"
)

// Manifest records which transform lengths were successfully planned.
type Manifest struct {
	Planned []int `yaml:"planned"`
	Skipped []int `yaml:"skipped_cache_full"`
}

func main() {
	lengths := pflag.IntSliceP("lengths", "n", []int{1023, 2046, 4092}, "Transform lengths to pre-plan.")
	out := pflag.StringP("out", "o", "", "Write the manifest to this path instead of stdout.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - pre-warm the FFT plan cache for a set of transform lengths\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nUsage: %s -n 1023,2046,4092\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	cache := fftcorr.Global()
	var m Manifest
	for _, n := range *lengths {
		if _, ok := cache.Get(n); ok {
			m.Planned = append(m.Planned, n)
		} else {
			m.Skipped = append(m.Skipped, n)
		}
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal manifest: %s\n", err)
		os.Exit(1)
	}

	if *out == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %s\n", *out, err)
		os.Exit(1)
	}
}
