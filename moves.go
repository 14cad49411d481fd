package rubik

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}     // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}     // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}     // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW}    // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}     // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW}    // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Double} // Back 180

	// Slice moves (odd sizes >= 3)
	M = Move{Face: SliceM, Turn: CW} // Middle slice, follows L
	E = Move{Face: SliceE, Turn: CW} // Equator slice, follows D
	S = Move{Face: SliceS, Turn: CW} // Standing slice, follows F
)

// Sexy move: R U R' U' - one of the most common triggers.
var SexyMove = []Move{R, U, RPrime, UPrime}

// Named algorithms used by the layer-by-layer solver.
var (
	// Sune orients last-layer corners: R U R' U R U2 R'
	Sune = []Move{R, U, RPrime, U, R, U2, RPrime}

	// YellowCrossAlg orients last-layer edges: F R U R' U' F'
	YellowCrossAlg = []Move{F, R, U, RPrime, UPrime, FPrime}

	// APerm cycles three last-layer corners (UFR -> UBL -> UBR),
	// leaving UFL fixed: R' F R' B2 R F' R' B2 R2
	APerm = []Move{RPrime, F, RPrime, B2, R, FPrime, RPrime, B2, R2}

	// TPerm swaps the UFR/UBR corners and the UR/UL edges:
	// R U R' U' R' F R2 U' R' U' R U R' F'
	TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}

	// UPerm cycles three last-layer edges (UF -> UR -> UL),
	// leaving UB fixed: R U' R U R U R U' R' U' R2
	UPerm = []Move{R, UPrime, R, U, R, U, R, UPrime, RPrime, UPrime, R2}
)
