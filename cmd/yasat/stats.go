package main

import (
	"time"

	"github.com/rhartert/yasat/internal/sat"
	yasat "github.com/rhartert/yasat/sat"
)

// runningStats smooths the conflict rate between progress reports using an
// exponential moving average (§12 supplemented feature), purely for
// operator-facing logging; it is never consulted by the search driver.
type runningStats struct {
	start     time.Time
	lastTime  time.Time
	lastCount int64
	ema       yasat.EMA
}

func newRunningStats() *runningStats {
	now := time.Now()
	return &runningStats{
		start:    now,
		lastTime: now,
		ema:      yasat.NewEMA(0.7),
	}
}

func (r *runningStats) record(s sat.Statistics) {
	now := time.Now()
	dt := now.Sub(r.lastTime).Seconds()
	if dt > 0 {
		rate := float64(s.Conflicts-r.lastCount) / dt
		r.ema.Add(rate)
	}
	r.lastTime = now
	r.lastCount = s.Conflicts
}

func (r *runningStats) conflictsPerSecond() float64 {
	return r.ema.Val()
}
