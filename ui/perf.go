package ui

import (
	"fmt"
	"sort"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/substep/systems"
)

// PerfPanelData holds timing metrics for display.
type PerfPanelData struct {
	SystemTimes map[string]time.Duration
	Total       time.Duration
	Registry    *systems.SystemRegistry
}

// PerfPanel renders the per-system timing panel.
type PerfPanel struct {
	x, y int32
}

// NewPerfPanel creates a perf panel at the given screen position.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{x: x, y: y}
}

// Draw renders the averaged per-system timings, slowest first.
func (p *PerfPanel) Draw(data PerfPanelData) {
	ids := make([]string, 0, len(data.SystemTimes))
	for id := range data.SystemTimes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return data.SystemTimes[ids[i]] > data.SystemTimes[ids[j]]
	})

	rl.DrawText(
		fmt.Sprintf("tick %.3fms", float64(data.Total)/float64(time.Millisecond)),
		p.x, p.y, 14, rl.White,
	)
	y := p.y + 18
	for _, id := range ids {
		name := id
		if data.Registry != nil {
			name = data.Registry.GetName(id)
		}
		rl.DrawText(
			fmt.Sprintf("%-10s %.3fms", name, float64(data.SystemTimes[id])/float64(time.Millisecond)),
			p.x, y, 12, rl.LightGray,
		)
		y += 14
	}
}
