package systems

import (
	"testing"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/substep/components"
)

type recordingSystem struct {
	id  string
	log *[]string
}

func (r *recordingSystem) Update(w *ecs.World) {
	*r.log = append(*r.log, r.id)
}

// Phases run in PreStep, Step, PostStep order regardless of registration
// order; within a phase, registration order holds.
func TestPipelinePhaseOrder(t *testing.T) {
	w := ecs.NewWorld()
	var log []string

	p := NewPipeline(nil)
	p.Register(PhasePostStep, "post_a", &recordingSystem{"post_a", &log})
	p.Register(PhaseStep, "step_a", &recordingSystem{"step_a", &log})
	p.Register(PhasePreStep, "pre_a", &recordingSystem{"pre_a", &log})
	p.Register(PhaseStep, "step_b", &recordingSystem{"step_b", &log})

	p.Tick(w)

	want := []string{"pre_a", "step_a", "step_b", "post_a"}
	if len(log) != len(want) {
		t.Fatalf("ran %d systems, want %d", len(log), len(want))
	}
	for i := range want {
		if log[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, log[i], want[i])
		}
	}
}

// Full pipeline: a player actor spawned above a floor falls under gravity,
// lands flush on the floor, is reported grounded, and its mailbox is drained
// before the tick ends.
func TestPipelineFallAndLand(t *testing.T) {
	w := ecs.NewWorld()
	const dt = 1.0 / 60.0

	actorMapper := ecs.NewMap7[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Remainder,
		components.Collider,
		components.Body,
		components.CollisionResult,
	](w)
	extraMapper := ecs.NewMap3[
		components.Limits,
		components.PlayerControl,
		components.JumpState,
	](w)
	solidMapper := ecs.NewMap3[
		components.Position,
		components.Collider,
		components.Body,
	](w)

	posMap := ecs.NewMap1[components.Position](w)
	resMap := ecs.NewMap1[components.CollisionResult](w)
	jumpMap := ecs.NewMap1[components.JumpState](w)

	col, err := components.NewCollider(0, 0, 4, 4)
	if err != nil {
		t.Fatal(err)
	}

	pos := components.Position{X: 0, Y: 0}
	var vel components.Velocity
	var acc components.Acceleration
	var rem components.Remainder
	body := components.Body{Kind: components.KindActor}
	var res components.CollisionResult
	actor := actorMapper.NewEntity(&pos, &vel, &acc, &rem, &col, &body, &res)

	lim := components.Limits{MaxSpeedX: 220, MaxFallSpeed: 640}
	pc := components.PlayerControl{WalkAccel: 2400, JumpAccel: 2600, MaxJumpTime: 0.22}
	var js components.JumpState
	extraMapper.Add(actor, &lim, &pc, &js)

	floorCol, err := components.NewCollider(0, 0, 100, 4)
	if err != nil {
		t.Fatal(err)
	}
	floorPos := components.Position{X: 0, Y: 50}
	floorBody := components.Body{Kind: components.KindSolid}
	solidMapper.NewEntity(&floorPos, &floorCol, &floorBody)

	input := &InputState{}
	p := NewPipeline(nil)
	p.Register(PhasePreStep, IDGravity, NewGravitySystem(w, 1200))
	p.Register(PhasePreStep, IDControl, NewControlSystem(w, input, dt))
	p.Register(PhaseStep, IDIntegrate, NewIntegrateSystem(w, dt))
	p.Register(PhaseStep, IDSweep, NewSweepSystem(w, dt, nil))
	p.Register(PhasePostStep, IDTransform, NewTransformSystem(w))
	p.Register(PhasePostStep, IDGrounding, NewGroundingSystem(w))

	for i := 0; i < 120; i++ {
		p.Tick(w)
	}

	got := posMap.Get(actor)
	// Floor top edge is at y=46; resting flush means actor bottom = 46,
	// so actor center y = 42.
	if got.Y != 42 {
		t.Errorf("actor rests at y=%g, want 42", got.Y)
	}

	if !jumpMap.Get(actor).Grounded {
		t.Error("actor should be grounded on the floor")
	}

	// Mailbox drained by the grounding system before the tick ended.
	mb := resMap.Get(actor)
	if mb.X != nil || mb.Y != nil {
		t.Error("collision mailbox not drained in PostStep")
	}
}

// Holding jump while grounded lifts the actor off the floor.
func TestPipelineJumpLeavesGround(t *testing.T) {
	w := ecs.NewWorld()
	const dt = 1.0 / 60.0

	actorMapper := ecs.NewMap7[
		components.Position,
		components.Velocity,
		components.Acceleration,
		components.Remainder,
		components.Collider,
		components.Body,
		components.CollisionResult,
	](w)
	extraMapper := ecs.NewMap3[
		components.Limits,
		components.PlayerControl,
		components.JumpState,
	](w)
	solidMapper := ecs.NewMap3[
		components.Position,
		components.Collider,
		components.Body,
	](w)
	posMap := ecs.NewMap1[components.Position](w)

	col, err := components.NewCollider(0, 0, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	pos := components.Position{X: 0, Y: 42}
	var vel components.Velocity
	var acc components.Acceleration
	var rem components.Remainder
	body := components.Body{Kind: components.KindActor}
	var res components.CollisionResult
	actor := actorMapper.NewEntity(&pos, &vel, &acc, &rem, &col, &body, &res)

	lim := components.Limits{MaxSpeedX: 220, MaxFallSpeed: 640}
	pc := components.PlayerControl{WalkAccel: 2400, JumpAccel: 2600, MaxJumpTime: 0.22}
	js := components.JumpState{Grounded: true}
	extraMapper.Add(actor, &lim, &pc, &js)

	floorCol, err := components.NewCollider(0, 0, 100, 4)
	if err != nil {
		t.Fatal(err)
	}
	floorPos := components.Position{X: 0, Y: 50}
	floorBody := components.Body{Kind: components.KindSolid}
	solidMapper.NewEntity(&floorPos, &floorCol, &floorBody)

	input := &InputState{Jump: true}
	p := NewPipeline(nil)
	p.Register(PhasePreStep, IDGravity, NewGravitySystem(w, 1200))
	p.Register(PhasePreStep, IDControl, NewControlSystem(w, input, dt))
	p.Register(PhaseStep, IDIntegrate, NewIntegrateSystem(w, dt))
	p.Register(PhaseStep, IDSweep, NewSweepSystem(w, dt, nil))
	p.Register(PhasePostStep, IDTransform, NewTransformSystem(w))
	p.Register(PhasePostStep, IDGrounding, NewGroundingSystem(w))

	for i := 0; i < 10; i++ {
		p.Tick(w)
	}

	got := posMap.Get(actor)
	if got.Y >= 42 {
		t.Errorf("actor did not leave the ground: y=%g", got.Y)
	}
}
