package telemetry

import (
	"math"
	"testing"
)

func TestSpeedDistribution(t *testing.T) {
	tests := []struct {
		name     string
		speeds   []float64
		wantMean float64
		wantP50  float64
	}{
		{"empty", nil, 0, 0},
		{"single", []float64{10}, 10, 10},
		{"uniform", []float64{5, 5, 5, 5}, 5, 5},
		{"spread", []float64{0, 10, 20, 30, 40}, 20, 20},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mean, _, p50, p90 := SpeedDistribution(tc.speeds)
			if math.Abs(mean-tc.wantMean) > 1e-9 {
				t.Errorf("mean = %f, want %f", mean, tc.wantMean)
			}
			if math.Abs(p50-tc.wantP50) > 1e-9 {
				t.Errorf("p50 = %f, want %f", p50, tc.wantP50)
			}
			if p90 < p50 {
				t.Errorf("p90 (%f) < p50 (%f)", p90, p50)
			}
		})
	}
}

func TestCollectorWindowing(t *testing.T) {
	// 1 second windows at dt=0.1 -> 10 ticks per window.
	c := NewCollector(1.0, 0.1)

	if c.ShouldFlush(5) {
		t.Error("should not flush mid-window")
	}
	if !c.ShouldFlush(10) {
		t.Error("should flush at window boundary")
	}

	c.RecordContactX()
	c.RecordContactX()
	c.RecordContactY()
	c.RecordBlockedTick()

	ws := c.Flush(10, 3, 12, []float64{100, 200})
	if ws.ContactsX != 2 || ws.ContactsY != 1 || ws.BlockedTicks != 1 {
		t.Errorf("unexpected counters: %+v", ws)
	}
	if ws.ActorCount != 3 || ws.SolidCount != 12 {
		t.Errorf("unexpected world counts: %+v", ws)
	}
	if math.Abs(ws.SimTimeSec-1.0) > 1e-6 {
		t.Errorf("sim_time = %f, want 1.0", ws.SimTimeSec)
	}

	// Counters reset after flush; next window starts at tick 10.
	if c.ShouldFlush(15) {
		t.Error("should not flush 5 ticks into the next window")
	}
	ws2 := c.Flush(20, 3, 12, nil)
	if ws2.ContactsX != 0 || ws2.BlockedTicks != 0 {
		t.Errorf("counters not reset: %+v", ws2)
	}
	if ws2.WindowStartTick != 10 {
		t.Errorf("window start = %d, want 10", ws2.WindowStartTick)
	}
}
