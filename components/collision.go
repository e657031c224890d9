package components

// ContactInfo identifies the solid that stopped a sweep on one axis.
type ContactInfo struct {
	OtherPosition Position
	OtherCollider Collider
}

// CollisionResult is a per-actor, single-tick event mailbox. The sweep clears
// both slots at the start of its pass and fills whichever axes were blocked.
// Exactly one downstream consumer reads and re-clears it before the tick ends;
// it is not an accumulating log.
type CollisionResult struct {
	X *ContactInfo
	Y *ContactInfo
}

// Clear empties both mailbox slots.
func (r *CollisionResult) Clear() {
	r.X = nil
	r.Y = nil
}
