package search

import (
	"sort"

	"github.com/cricklet/chesscoach/internal/rules"
)

type moveClass int

const (
	classCapture moveClass = iota
	classCheck
	classPromotion
	classQuiet
)

func victimValue(b rules.Board, m rules.Move) int {
	if piece, ok := b.PieceAt(m.To); ok {
		return PieceValue(piece.Type)
	}
	// capture with an empty destination is en passant
	return PieceValue(rules.Pawn)
}

func classify(b rules.Board, m rules.Move) moveClass {
	if b.IsCapture(m) {
		return classCapture
	}
	if b.GivesCheck(m) {
		return classCheck
	}
	if m.Promotion != rules.NoPieceType {
		return classPromotion
	}
	return classQuiet
}

// SortMoves imposes the engine's deterministic total order: captures of
// higher-value victims first, then checks, then promotions, then
// everything else. Ties always fall back to ascending coordinate
// notation so repeated runs visit moves identically.
func SortMoves(b rules.Board, moves []rules.Move) []rules.Move {
	type orderedMove struct {
		move   rules.Move
		class  moveClass
		victim int
		uci    string
	}

	ordered := make([]orderedMove, len(moves))
	for i, m := range moves {
		ordered[i] = orderedMove{
			move:   m,
			class:  classify(b, m),
			victim: 0,
			uci:    m.String(),
		}
		if ordered[i].class == classCapture {
			ordered[i].victim = victimValue(b, m)
		}
	}

	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].class != ordered[j].class {
			return ordered[i].class < ordered[j].class
		}
		if ordered[i].victim != ordered[j].victim {
			return ordered[i].victim > ordered[j].victim
		}
		return ordered[i].uci < ordered[j].uci
	})

	result := make([]rules.Move, len(moves))
	for i := range ordered {
		result[i] = ordered[i].move
	}
	return result
}
