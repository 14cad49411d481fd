// Package rubik models Rubik's cubes of any size and solves the 3x3
// with a layer-by-layer method.
//
// # Features
//
//   - NxN facelet simulation (2x2 and up) with full move history
//   - Standard notation parsing, including slice moves on odd sizes
//   - Cubie-level piece tracking for the 3x3 with parity validation
//   - Automatic solving phase detection
//   - Six-phase layer-by-layer solver with per-phase diagnostics
//
// # Quick Start
//
// Scramble a cube and solve it:
//
//	cube, err := rubik.New(3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cube.Scramble(25)
//
//	solver, err := rubik.NewSolver(cube)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result := solver.Solve()
//
//	fmt.Println("Solved:", result.Solved)
//	fmt.Println("Solution:", result.Notation())
//	fmt.Println("Score:", result.EfficiencyScore())
//
// # Applying Moves
//
// Moves can be applied as predefined constants or parsed from notation:
//
//	cube.Apply(rubik.R, rubik.U, rubik.RPrime, rubik.UPrime)
//	cube.Execute("F B2 L' D")
//
//	fmt.Println(cube) // unfolded net of the six faces
//
// The cube follows a fixed color frame: yellow up, white down, green
// front, blue back, red right, orange left. Centers never move under
// face turns, so the frame doubles as the solved reference.
//
// # Piece Tracking
//
// A 3x3 cube carries a Tracker that follows all 20 moving pieces at the
// cubie level, independent of the facelet grid:
//
//	t := cube.Tracker()
//	fmt.Println(t.IsEdgeSolved(rubik.EdgeUF))
//	if err := t.Validate(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Solving Phases
//
// DetectPhase reports how far along a layer-by-layer solve a cube is,
// from PhaseScrambled through white cross, first layer, middle layer,
// yellow cross and yellow face to PhaseSolved.
package rubik
