// Package game wires the world, the tick pipeline and the presentation
// surfaces together.
package game

import (
	"fmt"
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/camera"
	"github.com/pthm-cable/substep/components"
	"github.com/pthm-cable/substep/config"
	"github.com/pthm-cable/substep/level"
	"github.com/pthm-cable/substep/renderer"
	"github.com/pthm-cable/substep/systems"
	"github.com/pthm-cable/substep/telemetry"
	"github.com/pthm-cable/substep/ui"
)

// Options configures a game instance.
type Options struct {
	LevelPath      string // empty = embedded default level
	OutputDir      string // empty = CSV output disabled
	LogStats       bool
	Headless       bool
	StepsPerUpdate int
}

// Game holds the complete engine state.
type Game struct {
	world    *ecs.World
	pipeline *systems.Pipeline
	registry *systems.SystemRegistry
	input    systems.InputState

	// Entity mappers
	actorMapper *ecs.Map7[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Remainder,
		components.Collider,
		components.Body,
		components.CollisionResult,
	]
	playerMapper *ecs.Map3[
		components.Limits,
		components.PlayerControl,
		components.JumpState,
	]
	solidMapper *ecs.Map3[
		components.Position,
		components.Collider,
		components.Body,
	]
	limitsMap    *ecs.Map1[components.Limits]
	transformMap *ecs.Map1[components.Transform]
	jumpMap      *ecs.Map1[components.JumpState]

	// Read filters for telemetry and the inspector
	bodyFilter ecs.Filter3[
		components.Position,
		components.Collider,
		components.Body,
	]
	actorStateFilter ecs.Filter7[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Remainder,
		components.Collider,
		components.Body,
		components.CollisionResult,
	]
	speedFilter ecs.Filter2[components.Velocity, components.Body]

	player ecs.Entity

	// Presentation
	cam        *camera.Camera
	background *renderer.Background
	debug      *renderer.DebugRenderer
	hud        *ui.HUD
	panel      *ui.BodyPanel
	perfPanel  *ui.PerfPanel

	// Telemetry
	collector *telemetry.Collector
	perf      *telemetry.PerfCollector
	output    *telemetry.OutputManager

	// State
	tick           int32
	paused         bool
	stepOnce       bool
	stepsPerUpdate int
	logStats       bool
	headless       bool
	dt             float32

	screenWidth, screenHeight float32
}

// NewGame creates a game instance. config.Init must have run first.
func NewGame(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		world:          ecs.NewWorld(),
		stepsPerUpdate: opts.StepsPerUpdate,
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		dt:             float32(cfg.Physics.DT),
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}
	if g.stepsPerUpdate < 1 {
		g.stepsPerUpdate = 1
	}
	w := g.world

	g.actorMapper = ecs.NewMap7[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Remainder,
		components.Collider,
		components.Body,
		components.CollisionResult,
	](w)
	g.playerMapper = ecs.NewMap3[
		components.Limits,
		components.PlayerControl,
		components.JumpState,
	](w)
	g.solidMapper = ecs.NewMap3[
		components.Position,
		components.Collider,
		components.Body,
	](w)
	g.limitsMap = ecs.NewMap1[components.Limits](w)
	g.transformMap = ecs.NewMap1[components.Transform](w)
	g.jumpMap = ecs.NewMap1[components.JumpState](w)

	g.bodyFilter = *ecs.NewFilter3[
		components.Position,
		components.Collider,
		components.Body,
	](w)
	g.actorStateFilter = *ecs.NewFilter7[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Remainder,
		components.Collider,
		components.Body,
		components.CollisionResult,
	](w)
	g.speedFilter = *ecs.NewFilter2[components.Velocity, components.Body](w)

	// Telemetry
	g.perf = telemetry.NewPerfCollector(cfg.Telemetry.PerfWindow)
	g.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow, g.dt)
	var err error
	g.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("setting up output: %w", err)
	}

	// Tick pipeline: PreStep writes acceleration, Step integrates and
	// sweeps, PostStep syncs transforms and drains collision mailboxes.
	g.registry = systems.NewSystemRegistry()
	g.pipeline = systems.NewPipeline(g.perf)
	g.pipeline.Register(systems.PhasePreStep, systems.IDGravity,
		systems.NewGravitySystem(w, float32(cfg.Physics.Gravity)))
	g.pipeline.Register(systems.PhasePreStep, systems.IDControl,
		systems.NewControlSystem(w, &g.input, g.dt))
	g.pipeline.Register(systems.PhaseStep, systems.IDIntegrate,
		systems.NewIntegrateSystem(w, g.dt))
	g.pipeline.Register(systems.PhaseStep, systems.IDSweep,
		systems.NewSweepSystem(w, g.dt, g.collector))
	g.pipeline.Register(systems.PhasePostStep, systems.IDTransform,
		systems.NewTransformSystem(w))
	g.pipeline.Register(systems.PhasePostStep, systems.IDGrounding,
		systems.NewGroundingSystem(w))

	// Level
	lvl, err := level.Load(opts.LevelPath)
	if err != nil {
		return nil, fmt.Errorf("loading level: %w", err)
	}
	g.loadLevel(lvl)
	slog.Info("level loaded",
		"name", lvl.Name,
		"solids", len(lvl.Solids),
		"parallax_layers", len(lvl.Parallax),
	)

	// Camera starts on the player spawn.
	g.cam = camera.New(g.screenWidth, g.screenHeight, lvl.Player.X, lvl.Player.Y)
	g.cam.FollowGain = float32(cfg.Camera.FollowGain)
	g.cam.FollowOffset = float32(cfg.Camera.FollowOffset)
	g.cam.Zoom = float32(cfg.Camera.Zoom)

	if !opts.Headless {
		g.background = renderer.NewBackground(lvl.Parallax, g.screenWidth, g.screenHeight)
		g.debug = renderer.NewDebugRenderer(w)
		g.hud = ui.NewHUD()
		g.panel = ui.NewBodyPanel(int32(g.screenWidth)-390, 10, 380)
		g.perfPanel = ui.NewPerfPanel(10, 110)
	}

	return g, nil
}

// Update polls input and runs simulation steps for one frame.
func (g *Game) Update() {
	g.handleInput()

	if g.paused && !g.stepOnce {
		return
	}

	steps := g.stepsPerUpdate
	if g.stepOnce {
		steps = 1
		g.stepOnce = false
	}
	for i := 0; i < steps; i++ {
		g.simulationStep()
	}
}

// UpdateHeadless runs simulation steps without any input or rendering.
func (g *Game) UpdateHeadless() {
	for i := 0; i < g.stepsPerUpdate; i++ {
		g.simulationStep()
	}
}

// simulationStep runs a single tick of the pipeline.
func (g *Game) simulationStep() {
	g.pipeline.Tick(g.world)
	g.tick++
	g.flushTelemetry()
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// SetInput overrides the input state, for headless and scripted runs.
func (g *Game) SetInput(in systems.InputState) {
	g.input = in
}

// Unload releases output files.
func (g *Game) Unload() {
	g.output.Close()
}
