package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/cricklet/chesscoach/internal/coach"
	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
	"github.com/pkg/profile"
)

// Usage: coach ["<fen>"] [move=e2e4] [budget=500ms] [random] [profile]
//
// With no move= argument, prints the chosen move and its explanation.
// With move=, critiques the proposed move against the engine's best.
func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
		}
	}()

	args := os.Args[1:]

	if Contains(args, "profile") {
		profilePath := RootDir() + "/data/CmdCoachMain"
		p := profile.Start(profile.ProfilePath(profilePath))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	fen := rules.StartingFen
	moveStr := ""
	budget := 500 * time.Millisecond
	strategy := coach.StrategyEvaluation

	for _, arg := range args {
		if strings.HasPrefix(arg, "budget=") {
			parsed, err := time.ParseDuration(strings.TrimPrefix(arg, "budget="))
			if err != nil {
				panic(err)
			}
			budget = parsed
		} else if strings.HasPrefix(arg, "move=") {
			moveStr = strings.TrimPrefix(arg, "move=")
		} else if arg == "random" {
			strategy = coach.StrategyRandom
		} else {
			fen = arg
		}
	}

	board, err := rules.BoardFromFen(fen)
	if !IsNil(err) {
		panic(err)
	}

	runner := coach.NewCoachRunner(
		coach.WithStrategy(strategy),
		coach.WithLogger(FuncLogger(func(s string) {
			fmt.Fprint(os.Stderr, s)
		})),
	)

	if moveStr != "" {
		report, err := runner.EvaluateMove(board, moveStr, budget)
		if !IsNil(err) {
			panic(err)
		}
		fmt.Println(report.ProposedExplanation.String())
		fmt.Println()
		fmt.Println(report.BestExplanation.String())
	} else {
		move, explanation, err := runner.ChooseMove(board, budget)
		if !IsNil(err) {
			panic(err)
		}
		fmt.Println(move.String())
		fmt.Println(explanation.String())
	}

	fmt.Fprintln(os.Stderr, MemUsageString())
}
