// Package sdrlog is the structured logging facade used for the soft
// error conditions the correlation core degrades into (plan-cache
// exhaustion, quadratic-fit degeneracy): a thin wrapper over
// charmbracelet/log, in the spirit of the teacher's DW_COLOR_* /
// text_color_set scheme but backed by a real leveled logger instead of
// ANSI escape codes.
package sdrlog

import (
	"os"
	"sync"

	"github.com/charmbracelet/log"
)

var (
	mu     sync.Mutex
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "pocketsdr"})
)

// SetLevel adjusts the minimum level that reaches output. Correlation
// kernels never log on the hot path (spec.md §5); only the acquisition
// CLI and the soft-error paths (plan-cache exhaustion in fftcorr,
// fine-Doppler fit degeneracy in peak) call into this package.
func SetLevel(level log.Level) {
	mu.Lock()
	defer mu.Unlock()
	logger.SetLevel(level)
}

// Warn logs a soft-degradation condition (ResourceExhausted,
// NumericDegeneracy) with structured key/value context.
func Warn(msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Warn(msg, kv...)
}

// Info logs routine operational progress (CLI startup, plan warm-up).
func Info(msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Info(msg, kv...)
}

// Error logs a condition the caller is about to fail on.
func Error(msg string, kv ...any) {
	mu.Lock()
	defer mu.Unlock()
	logger.Error(msg, kv...)
}
