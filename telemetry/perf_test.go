package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorRecordsSystems(t *testing.T) {
	p := NewPerfCollector(4)

	p.StartTick()
	p.StartSystem("sweep")
	time.Sleep(time.Millisecond)
	p.StartSystem("transform")
	p.EndTick()

	if p.AvgTickDuration() <= 0 {
		t.Error("expected positive average tick duration")
	}

	avgs := p.AvgSystemDurations()
	if avgs["sweep"] <= 0 {
		t.Error("expected sweep time to be recorded")
	}
	if _, ok := avgs["transform"]; !ok {
		t.Error("expected transform time to be recorded")
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	p := NewPerfCollector(2)

	for i := 0; i < 5; i++ {
		p.StartTick()
		p.StartSystem("sweep")
		p.EndTick()
	}

	// Only windowSize samples retained.
	if p.sampleCount != 2 {
		t.Errorf("sampleCount = %d, want 2", p.sampleCount)
	}
}

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(8)
	if p.AvgTickDuration() != 0 {
		t.Error("expected zero average with no samples")
	}
	if len(p.AvgSystemDurations()) != 0 {
		t.Error("expected no system averages with no samples")
	}
}
