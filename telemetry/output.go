package telemetry

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
)

// PerfRecord is one CSV row of averaged timing data.
type PerfRecord struct {
	WindowEndTick int32   `csv:"window_end"`
	AvgTickMs     float64 `csv:"avg_tick_ms"`
	AvgSweepMs    float64 `csv:"avg_sweep_ms"`
}

// NewPerfRecord flattens a PerfCollector window into a CSV row.
func NewPerfRecord(tick int32, p *PerfCollector, sweepID string) PerfRecord {
	sysAvgs := p.AvgSystemDurations()
	return PerfRecord{
		WindowEndTick: tick,
		AvgTickMs:     float64(p.AvgTickDuration()) / float64(time.Millisecond),
		AvgSweepMs:    float64(sysAvgs[sweepID]) / float64(time.Millisecond),
	}
}

// OutputManager handles structured experiment output with CSV logging.
type OutputManager struct {
	dir       string
	statsFile *os.File
	perfFile  *os.File

	statsHeaderWritten bool
	perfHeaderWritten  bool
}

// NewOutputManager creates an output manager and its output directory.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "stats.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating stats.csv: %w", err)
	}
	om.statsFile = f

	f, err = os.Create(filepath.Join(dir, "perf.csv"))
	if err != nil {
		om.statsFile.Close()
		return nil, fmt.Errorf("creating perf.csv: %w", err)
	}
	om.perfFile = f

	return om, nil
}

// WriteStats appends one stats window to stats.csv.
func (om *OutputManager) WriteStats(ws WindowStats) error {
	if om == nil {
		return nil
	}
	records := []WindowStats{ws}
	if !om.statsHeaderWritten {
		om.statsHeaderWritten = true
		if err := gocsv.Marshal(records, om.statsFile); err != nil {
			return fmt.Errorf("writing stats.csv: %w", err)
		}
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.statsFile); err != nil {
		return fmt.Errorf("writing stats.csv: %w", err)
	}
	return nil
}

// WritePerf appends one perf window to perf.csv.
func (om *OutputManager) WritePerf(pr PerfRecord) error {
	if om == nil {
		return nil
	}
	records := []PerfRecord{pr}
	if !om.perfHeaderWritten {
		om.perfHeaderWritten = true
		if err := gocsv.Marshal(records, om.perfFile); err != nil {
			return fmt.Errorf("writing perf.csv: %w", err)
		}
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.perfFile); err != nil {
		return fmt.Errorf("writing perf.csv: %w", err)
	}
	return nil
}

// Close flushes and closes the CSV files.
func (om *OutputManager) Close() {
	if om == nil {
		return
	}
	if om.statsFile != nil {
		om.statsFile.Close()
	}
	if om.perfFile != nil {
		om.perfFile.Close()
	}
}
