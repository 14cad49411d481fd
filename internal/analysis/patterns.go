// Package analysis mines recorded solutions for recurring move patterns.
package analysis

import (
	"sort"
	"strings"

	rubik "github.com/CaffeineLoop/rubiks-cube-solver"
)

// Pattern is a repeated move subsequence found across solutions.
type Pattern struct {
	Length   int    // moves per occurrence
	Notation string // space-separated sequence
	Count    int    // total occurrences
}

// namedAlgorithms are the known sequences the solver builds on, checked
// against solutions so reports can label familiar patterns.
var namedAlgorithms = []struct {
	Name  string
	Moves []rubik.Move
}{
	{"sexy move", rubik.SexyMove},
	{"sune", rubik.Sune},
	{"yellow cross", rubik.YellowCrossAlg},
	{"A perm", rubik.APerm},
	{"T perm", rubik.TPerm},
	{"U perm", rubik.UPerm},
}

// AlgorithmCounts counts how often each named algorithm occurs in the
// sequence. Overlapping occurrences count once per starting position.
func AlgorithmCounts(moves []rubik.Move) map[string]int {
	counts := make(map[string]int)
	for _, alg := range namedAlgorithms {
		n := countOccurrences(moves, alg.Moves)
		if n > 0 {
			counts[alg.Name] = n
		}
	}
	return counts
}

func countOccurrences(moves, pattern []rubik.Move) int {
	if len(pattern) == 0 || len(moves) < len(pattern) {
		return 0
	}
	count := 0
	for i := 0; i+len(pattern) <= len(moves); i++ {
		match := true
		for j, m := range pattern {
			if moves[i+j] != m {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

// MinePatterns finds move subsequences of length minN through maxN that
// occur at least minCount times across the given solutions, most
// frequent first. Ties order longer patterns first so triggers beat
// their own prefixes.
func MinePatterns(solutions [][]rubik.Move, minN, maxN, minCount int) []Pattern {
	counts := make(map[string]Pattern)

	for n := minN; n <= maxN; n++ {
		for _, moves := range solutions {
			for i := 0; i+n <= len(moves); i++ {
				key := rubik.FormatMoves(moves[i : i+n])
				p := counts[key]
				p.Length = n
				p.Notation = key
				p.Count++
				counts[key] = p
			}
		}
	}

	var out []Pattern
	for _, p := range counts {
		if p.Count >= minCount {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		if out[i].Length != out[j].Length {
			return out[i].Length > out[j].Length
		}
		return out[i].Notation < out[j].Notation
	})
	return out
}

// ParseSolutions converts stored notation strings back to move
// sequences, skipping blanks.
func ParseSolutions(notations []string) [][]rubik.Move {
	var out [][]rubik.Move
	for _, s := range notations {
		if strings.TrimSpace(s) == "" {
			continue
		}
		out = append(out, rubik.ParseMoves(s))
	}
	return out
}
