// Package telemetry collects per-window physics statistics and per-system
// timing, and writes them to structured logs and CSV files.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated physics statistics for one stats window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// World composition at window end
	ActorCount int `csv:"actors"`
	SolidCount int `csv:"solids"`

	// Contact events during the window
	ContactsX    int `csv:"contacts_x"`
	ContactsY    int `csv:"contacts_y"`
	BlockedTicks int `csv:"blocked_ticks"` // ticks where at least one actor was stopped

	// Achieved actor speed distribution (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
}

// Log emits the window stats via slog.
func (ws *WindowStats) Log() {
	slog.Info("physics window",
		"window_end", ws.WindowEndTick,
		"sim_time", ws.SimTimeSec,
		"actors", ws.ActorCount,
		"solids", ws.SolidCount,
		"contacts_x", ws.ContactsX,
		"contacts_y", ws.ContactsY,
		"blocked_ticks", ws.BlockedTicks,
		"speed_mean", ws.SpeedMean,
		"speed_p50", ws.SpeedP50,
		"speed_p90", ws.SpeedP90,
	)
}

// SpeedDistribution summarizes a sample of actor speeds. The input slice is
// sorted in place.
func SpeedDistribution(speeds []float64) (mean, std, p50, p90 float64) {
	if len(speeds) == 0 {
		return 0, 0, 0, 0
	}
	sort.Float64s(speeds)
	mean = stat.Mean(speeds, nil)
	if len(speeds) > 1 {
		std = stat.StdDev(speeds, nil)
	}
	p50 = stat.Quantile(0.5, stat.Empirical, speeds, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, speeds, nil)
	return mean, std, p50, p90
}
