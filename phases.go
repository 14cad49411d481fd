package rubik

// Phase detection for the layer-by-layer method.
// Frame: white cross on the bottom (D), yellow last layer on top (U).
// The predicates are 3x3 only; other sizes report no milestones.

// IsWhiteCrossComplete checks if the white cross is complete.
// The white cross has:
// - the 4 white edge pieces on the D face
// - each edge's other color matching the adjacent side center
func (c *Cube) IsWhiteCrossComplete() bool {
	if c.size != trackerSize {
		return false
	}

	dEdges := [4][2]int{{0, 1}, {1, 2}, {2, 1}, {1, 0}}
	for _, pos := range dEdges {
		if c.facelets[Down][pos[0]][pos[1]] != White {
			return false
		}
	}

	// Bottom-center sticker of each side face matches its center.
	for _, f := range []CubeFace{Front, Right, Back, Left} {
		if c.facelets[f][2][1] != c.facelets[f][1][1] {
			return false
		}
	}

	return true
}

// IsFirstLayerComplete checks if the entire first layer is complete:
// white cross plus the four white corners positioned and oriented.
func (c *Cube) IsFirstLayerComplete() bool {
	if !c.IsWhiteCrossComplete() {
		return false
	}

	for _, row := range c.facelets[Down] {
		for _, col := range row {
			if col != White {
				return false
			}
		}
	}

	// Bottom corners of each side face match the center.
	for _, f := range []CubeFace{Front, Right, Back, Left} {
		center := c.facelets[f][1][1]
		if c.facelets[f][2][0] != center || c.facelets[f][2][2] != center {
			return false
		}
	}

	return true
}

// IsMiddleLayerComplete checks if the four middle-layer edges are placed:
// the middle row of every side face shows a single color.
func (c *Cube) IsMiddleLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}

	for _, f := range []CubeFace{Front, Right, Back, Left} {
		center := c.facelets[f][1][1]
		if c.facelets[f][1][0] != center || c.facelets[f][1][2] != center {
			return false
		}
	}

	return true
}

// IsYellowCrossComplete checks if the four U-face edges show yellow.
func (c *Cube) IsYellowCrossComplete() bool {
	if c.size != trackerSize {
		return false
	}

	uEdges := [4][2]int{{0, 1}, {1, 0}, {1, 2}, {2, 1}}
	for _, pos := range uEdges {
		if c.facelets[Up][pos[0]][pos[1]] != Yellow {
			return false
		}
	}

	return true
}

// IsYellowFaceComplete checks if the entire U face shows yellow.
func (c *Cube) IsYellowFaceComplete() bool {
	if c.size != trackerSize {
		return false
	}

	for _, row := range c.facelets[Up] {
		for _, col := range row {
			if col != Yellow {
				return false
			}
		}
	}

	return true
}

// DetectPhase returns the highest layer-by-layer milestone the cube has
// fully reached. A milestone only counts when all earlier ones hold, so a
// lucky yellow cross on a scrambled cube does not register.
func (c *Cube) DetectPhase() Phase {
	if c.IsSolved() {
		return PhaseSolved
	}

	phase := PhaseScrambled
	if c.IsWhiteCrossComplete() {
		phase = PhaseWhiteCross
	} else {
		return phase
	}
	if c.IsFirstLayerComplete() {
		phase = PhaseFirstLayer
	} else {
		return phase
	}
	if c.IsMiddleLayerComplete() {
		phase = PhaseMiddleLayer
	} else {
		return phase
	}
	if c.IsYellowCrossComplete() {
		phase = PhaseYellowCross
	} else {
		return phase
	}
	if c.IsYellowFaceComplete() {
		phase = PhaseYellowFace
	}
	return phase
}

// GetProgress reports each milestone independently.
func (c *Cube) GetProgress() Progress {
	return Progress{
		WhiteCross:  c.IsWhiteCrossComplete(),
		FirstLayer:  c.IsFirstLayerComplete(),
		MiddleLayer: c.IsMiddleLayerComplete(),
		YellowCross: c.IsYellowCrossComplete(),
		YellowFace:  c.IsYellowFaceComplete(),
		Solved:      c.IsSolved(),
	}
}
