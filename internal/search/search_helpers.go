package search

import "fmt"

var Inf int = 999999

func InitialBounds() int {
	return Inf + 1
}

func IsMate(score int) bool {
	return score > Inf-100 || score < -Inf+100
}

// MateInPlies scores a mate delivered after ply half-moves. Closer mates
// score higher, so the search prefers the fastest win.
func MateInPlies(ply int) int {
	return Inf - ply
}

func ScoreString(score int) string {
	if score > Inf-100 {
		return fmt.Sprint("mate+", Inf-score)
	}
	if score < -Inf+100 {
		return fmt.Sprint("mate-", Inf+score)
	}
	return fmt.Sprint(score)
}
