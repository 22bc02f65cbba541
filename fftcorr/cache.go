// Package fftcorr implements the frequency-domain correlator: a
// bounded, mutex-guarded cache of DFT plans keyed by transform length,
// and the FFT correlator built on top of it.
package fftcorr

import (
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"
)

// MaxPlans bounds the number of distinct transform lengths the cache
// will hold for the lifetime of the process, mirroring the C original's
// fixed-size FFTW plan table (MAX_FFTW_PLAN).
const MaxPlans = 32

// PlanCache is a process-wide bounded cache mapping transform length N
// to a DFT plan. gonum's *fourier.CmplxFFT already provides both the
// forward (Coefficients) and inverse (Sequence) transforms from a
// single constructed value, so one cached value per length serves as
// the forward/inverse "plan pair" spec.md describes. Entries are
// created on first request and never evicted for the process lifetime.
type PlanCache struct {
	mu    sync.Mutex
	plans map[int]*fourier.CmplxFFT
}

// NewPlanCache returns an empty cache.
func NewPlanCache() *PlanCache {
	return &PlanCache{plans: make(map[int]*fourier.CmplxFFT)}
}

var (
	globalCache     *PlanCache
	globalCacheOnce sync.Once
)

// Global returns the process-wide plan cache.
func Global() *PlanCache {
	globalCacheOnce.Do(func() {
		globalCache = NewPlanCache()
	})
	return globalCache
}

// Get returns the plan for transform length n, constructing it under
// the cache's mutex on first request. If the cache is already full
// (MaxPlans distinct lengths) and n is not among them, Get fails and
// returns (nil, false); the caller is expected to log the
// ResourceExhausted condition and skip its correlation.
func (c *PlanCache) Get(n int) (*fourier.CmplxFFT, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.plans[n]; ok {
		return p, true
	}
	if len(c.plans) >= MaxPlans {
		return nil, false
	}
	p := fourier.NewCmplxFFT(n)
	c.plans[n] = p
	return p, true
}

// Len reports how many distinct transform lengths are currently cached.
func (c *PlanCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.plans)
}
