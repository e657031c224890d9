package systems

// System identifiers, shared by the pipeline, perf tracking and the UI.
const (
	IDGravity   = "gravity"
	IDControl   = "control"
	IDIntegrate = "integrate"
	IDSweep     = "sweep"
	IDTransform = "transform"
	IDGrounding = "grounding"
)

// SystemInfo describes an engine system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Phase       Phase  // Pipeline phase it runs in
}

// SystemRegistry holds metadata about all systems.
// This centralizes system naming so the UI and perf tracker stay in sync.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry.
// Update this when adding new systems.
func (r *SystemRegistry) registerDefaults() {
	r.Register(SystemInfo{ID: IDGravity, Name: "Gravity", Description: "Accumulates gravity into acceleration", Phase: PhasePreStep})
	r.Register(SystemInfo{ID: IDControl, Name: "Control", Description: "Maps input to acceleration and jump state", Phase: PhasePreStep})
	r.Register(SystemInfo{ID: IDIntegrate, Name: "Integrate", Description: "Converts acceleration into clamped velocity", Phase: PhaseStep})
	r.Register(SystemInfo{ID: IDSweep, Name: "Sweep", Description: "Steps actors against the solid snapshot", Phase: PhaseStep})
	r.Register(SystemInfo{ID: IDTransform, Name: "Transform", Description: "Copies positions into renderable transforms", Phase: PhasePostStep})
	r.Register(SystemInfo{ID: IDGrounding, Name: "Grounding", Description: "Drains collision mailboxes into jump state", Phase: PhasePostStep})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// Get returns system info by ID.
func (r *SystemRegistry) Get(id string) (SystemInfo, bool) {
	info, ok := r.byID[id]
	return info, ok
}

// All returns all registered systems in registration order.
func (r *SystemRegistry) All() []SystemInfo {
	return r.systems
}

// GetName returns the display name for a system ID.
// Falls back to the ID itself if not found.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}
