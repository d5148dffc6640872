package main

import (
	"fmt"
	"os"
	"time"

	"github.com/cricklet/chesscoach/internal/accuracy"
	"github.com/cricklet/chesscoach/internal/coach"
	. "github.com/cricklet/chesscoach/internal/helpers"
)

var _puzzleBudget = 500 * time.Millisecond

// Replays the built-in mate-in-one suite and reports how many positions
// the engine solved.
func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	runner := coach.NewCoachRunner()

	suite := accuracy.MateInOneSuite
	bar := CreateProgressBar(len(suite), "mate-in-one")

	solved := 0
	failures := []string{}

	for _, epd := range suite {
		move, success, err := accuracy.SearchEpd(&runner, epd, _puzzleBudget)
		if !IsNil(err) {
			panic(err)
		}
		if success {
			solved++
		} else {
			failures = append(failures, fmt.Sprintf("%v -> %v", epd, move))
		}
		bar.Add(1)
	}
	bar.Close()

	fmt.Printf("solved %v / %v\n", solved, len(suite))
	for _, failure := range failures {
		fmt.Println("failed:", failure)
	}
	fmt.Println(MemUsageString())
}
