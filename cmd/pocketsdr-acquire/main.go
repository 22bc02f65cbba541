// Command pocketsdr-acquire runs a GNSS signal acquisition search over
// a batch of IF samples: for each configured signal/PRN it searches a
// Doppler/code-phase grid with the FFT correlator, reports the peak
// C/N0 and fine Doppler estimate, and tags the result with the
// receiving station's location. Every PRN is searched with the one code
// replica given by --code; the replica is not chosen per PRN.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/lestrrat-go/strftime"
	"github.com/spf13/pflag"

	"github.com/pavelyazev/PocketSDR/codefile"
	"github.com/pavelyazev/PocketSDR/fftcorr"
	"github.com/pavelyazev/PocketSDR/glonass"
	"github.com/pavelyazev/PocketSDR/ifsource"
	"github.com/pavelyazev/PocketSDR/mixer"
	"github.com/pavelyazev/PocketSDR/peak"
	"github.com/pavelyazev/PocketSDR/sdrconfig"
	"github.com/pavelyazev/PocketSDR/sdrlog"
	"github.com/pavelyazev/PocketSDR/search"
	"github.com/pavelyazev/PocketSDR/station"
)

func main() {
	configPath := pflag.StringP("config", "c", "", "Receiver configuration YAML file.")
	ifFile := pflag.StringP("if-file", "f", "", "IF sample file, in the I-only or interleaved IQ byte layout.")
	codePath := pflag.StringP("code", "C", "", "Ternary ({-1,0,1} byte) code replica file.")
	toff := pflag.Float64P("toffset", "t", 0, "Time offset into the IF file to start from, in seconds.")
	reportDir := pflag.StringP("report-dir", "o", "", "Directory to write a timestamped acquisition report to, instead of stdout.")
	overrides := sdrconfig.Flags(pflag.CommandLine)

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - GNSS signal acquisition search over a batch of IF samples\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nUsage: %s -f samples.bin -C l1ca_prn01.bin [OPTIONS]\n\n", os.Args[0])
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if *ifFile == "" || *codePath == "" {
		pflag.Usage()
		os.Exit(1)
	}

	cfg, err := sdrconfig.Load(*configPath)
	if err != nil {
		sdrlog.Error("load config", "err", err)
		os.Exit(1)
	}
	overrides(&cfg)

	b, err := ifsource.ReadFile(*ifFile, cfg.SampleRateHz, cfg.IQMode, 0, *toff)
	if err != nil {
		sdrlog.Error("read IF samples", "err", err)
		os.Exit(1)
	}

	n := cfg.CodeLength
	chips, err := codefile.Load(*codePath, n)
	if err != nil {
		sdrlog.Error("load code replica", "err", err)
		os.Exit(1)
	}

	cache := fftcorr.Global()
	codeFFT, ok := fftcorr.ForwardCode(cache, chips, n)
	if !ok {
		sdrlog.Error("fft plan cache exhausted building code spectrum", "length", n)
		os.Exit(1)
	}

	lut := mixer.Global()
	fds := search.DopplerBins(cfg.CodePeriodSec, 0, cfg.MaxDopplerHz)
	loc := station.Location{
		Name: cfg.Station.Name, LatDeg: cfg.Station.LatDeg,
		LonDeg: cfg.Station.LonDeg, HeightM: cfg.Station.HeightM,
	}

	out := os.Stdout
	if *reportDir != "" {
		name, ferr := strftime.Format(cfg.ReportFilenamePattern, time.Now())
		if ferr != nil {
			sdrlog.Error("format report filename", "err", ferr)
			os.Exit(1)
		}
		f, oerr := os.Create(filepath.Join(*reportDir, name))
		if oerr != nil {
			sdrlog.Error("create report file", "err", oerr)
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	fmt.Fprintf(out, "station: %s\n", loc.String())

	for _, sig := range cfg.Signals {
		for _, prn := range cfg.PRNs {
			fi := glonass.ShiftFreq(sig.Name, sig.FCN, sig.FI)

			p := search.NewPowerGrid(len(fds), n)
			search.Code(cache, lut, codeFFT, b, 0, n, cfg.SampleRateHz, fi, fds, p)

			snrDB, ixDoppler, ixCode := peak.Max(p, n, len(fds), cfg.CodePeriodSec)
			fineDop := peak.FineDoppler(p, fds, ixDoppler, ixCode)

			fmt.Fprintf(out, "%s PRN%02d: C/N0=%.1f dB-Hz code_phase=%d doppler=%.1f Hz (bin %.1f)\n",
				sig.Name, prn, snrDB, ixCode, fineDop, fds[ixDoppler])
		}
	}
}
