package telemetry

import (
	"time"
)

// PerfSample holds timing data for a single tick.
type PerfSample struct {
	TickDuration time.Duration
	Systems      map[string]time.Duration
}

// PerfCollector tracks per-system timing over a rolling window of ticks.
// The pipeline calls StartTick / StartSystem / EndTick around each phase run.
type PerfCollector struct {
	windowSize     int
	samples        []PerfSample
	writeIndex     int
	sampleCount    int
	currentSystems map[string]time.Duration
	tickStart      time.Time
	systemStart    time.Time
	lastSystem     string
}

// NewPerfCollector creates a performance collector.
// windowSize: number of ticks to average over (e.g. 60 for 1 second at 60fps).
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{
		windowSize:     windowSize,
		samples:        make([]PerfSample, windowSize),
		currentSystems: make(map[string]time.Duration),
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.currentSystems = make(map[string]time.Duration)
	p.lastSystem = ""
}

// StartSystem begins timing a specific system, closing out the previous one.
func (p *PerfCollector) StartSystem(id string) {
	now := time.Now()
	if p.lastSystem != "" {
		p.currentSystems[p.lastSystem] += now.Sub(p.systemStart)
	}
	p.systemStart = now
	p.lastSystem = id
}

// EndTick finishes timing the current tick and records the sample.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	if p.lastSystem != "" {
		p.currentSystems[p.lastSystem] += now.Sub(p.systemStart)
	}

	p.samples[p.writeIndex] = PerfSample{
		TickDuration: now.Sub(p.tickStart),
		Systems:      p.currentSystems,
	}
	p.writeIndex = (p.writeIndex + 1) % p.windowSize
	if p.sampleCount < p.windowSize {
		p.sampleCount++
	}
}

// AvgTickDuration returns the mean tick duration over the window.
func (p *PerfCollector) AvgTickDuration() time.Duration {
	if p.sampleCount == 0 {
		return 0
	}
	var total time.Duration
	for i := 0; i < p.sampleCount; i++ {
		total += p.samples[i].TickDuration
	}
	return total / time.Duration(p.sampleCount)
}

// AvgSystemDurations returns the mean per-system durations over the window.
func (p *PerfCollector) AvgSystemDurations() map[string]time.Duration {
	avgs := make(map[string]time.Duration)
	if p.sampleCount == 0 {
		return avgs
	}
	for i := 0; i < p.sampleCount; i++ {
		for id, d := range p.samples[i].Systems {
			avgs[id] += d
		}
	}
	for id := range avgs {
		avgs[id] /= time.Duration(p.sampleCount)
	}
	return avgs
}
