package camera

// Layer is one parallax background band. Its drawn position is its start
// position displaced by a fraction of the camera's travel since the layer
// was anchored.
type Layer struct {
	StartX, StartY float32
	Factor         float32 // 0 = pinned to the world, 1 = pinned to the camera
	X, Y           float32
}

// Parallax anchors a set of layers to a camera start position and updates
// their displaced positions as the camera travels.
type Parallax struct {
	layers           []Layer
	anchorX, anchorY float32
	anchored         bool
}

// AddLayer registers a layer at its start position.
func (p *Parallax) AddLayer(x, y, factor float32) {
	p.layers = append(p.layers, Layer{StartX: x, StartY: y, Factor: factor, X: x, Y: y})
}

// Update anchors on first call, then displaces every layer by
// camera travel * factor.
func (p *Parallax) Update(camX, camY float32) {
	if !p.anchored {
		p.anchorX, p.anchorY = camX, camY
		p.anchored = true
	}
	travelX := camX - p.anchorX
	travelY := camY - p.anchorY
	for i := range p.layers {
		p.layers[i].X = p.layers[i].StartX + travelX*p.layers[i].Factor
		p.layers[i].Y = p.layers[i].StartY + travelY*p.layers[i].Factor
	}
}

// Layers returns the current layer positions.
func (p *Parallax) Layers() []Layer {
	return p.layers
}
