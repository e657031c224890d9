package telemetry

// Collector accumulates contact events within tick windows and produces
// WindowStats. The sweep records events as they happen; the game flushes a
// window once enough ticks have passed.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float32

	windowStartTick int32

	// Event counters for the current window
	contactsX    int
	contactsY    int
	blockedTicks int
}

// NewCollector creates a stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds.
// dt: seconds per tick.
func NewCollector(windowDurationSec float64, dt float32) *Collector {
	ticksPerWindow := int32(windowDurationSec / float64(dt))
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}
	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
	}
}

// RecordContactX records an actor stopped on the X axis.
func (c *Collector) RecordContactX() {
	c.contactsX++
}

// RecordContactY records an actor stopped on the Y axis.
func (c *Collector) RecordContactY() {
	c.contactsY++
}

// RecordBlockedTick records a tick in which at least one actor was stopped.
func (c *Collector) RecordBlockedTick() {
	c.blockedTicks++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush closes the current window, combining the accumulated events with a
// speed sample taken by the caller, and starts the next window.
func (c *Collector) Flush(currentTick int32, actorCount, solidCount int, speeds []float64) WindowStats {
	mean, std, p50, p90 := SpeedDistribution(speeds)

	ws := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * float64(c.dt),
		ActorCount:      actorCount,
		SolidCount:      solidCount,
		ContactsX:       c.contactsX,
		ContactsY:       c.contactsY,
		BlockedTicks:    c.blockedTicks,
		SpeedMean:       mean,
		SpeedStd:        std,
		SpeedP50:        p50,
		SpeedP90:        p90,
	}

	c.windowStartTick = currentTick
	c.contactsX = 0
	c.contactsY = 0
	c.blockedTicks = 0

	return ws
}
