package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/cricklet/chesscoach/internal/coach"
	. "github.com/cricklet/chesscoach/internal/helpers"
	"github.com/cricklet/chesscoach/internal/rules"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

type AnalysisToWeb struct {
	FenString     string   `json:"fenString"`
	Move          string   `json:"move"`
	Score         int      `json:"score"`
	Explanation   []string `json:"explanation"`
	ProposedMove  string   `json:"proposedMove,omitempty"`
	ProposedScore int      `json:"proposedScore,omitempty"`
	Critique      []string `json:"critique,omitempty"`
}

func (a AnalysisToWeb) String() string {
	return fmt.Sprint("AnalysisToWeb: ", a.FenString, ", ", a.Move, ", ", a.Score)
}

type MessageFromWeb struct {
	Fen          *string `json:"fen"`
	ProposedMove *string `json:"proposedMove"`
	BudgetMs     *int    `json:"budgetMs"`
}

func (m MessageFromWeb) String() string {
	if m.Fen != nil {
		return fmt.Sprint("MessageFromWeb Fen: ", *m.Fen)
	}
	return "MessageFromWeb unknown"
}

type LogForwarding struct {
	writeCallback func(message string)
}

func (l *LogForwarding) Println(v ...any) {
	l.writeCallback(fmt.Sprintln(v...))
}
func (l *LogForwarding) Printf(format string, v ...any) {
	l.writeCallback(fmt.Sprintf(format, v...))
}
func (l *LogForwarding) Print(v ...any) {
	l.writeCallback(fmt.Sprint(v...))
}

func budgetFromMs(ms *int) time.Duration {
	if ms == nil {
		return 500 * time.Millisecond
	}
	return time.Duration(*ms) * time.Millisecond
}

func analyze(runner *coach.CoachRunner, fen string, proposedMove string, budget time.Duration) (AnalysisToWeb, Error) {
	result := AnalysisToWeb{}

	board, err := rules.BoardFromFen(fen)
	if !IsNil(err) {
		return result, err
	}

	if proposedMove != "" {
		report, err := runner.EvaluateMove(board, proposedMove, budget)
		if !IsNil(err) {
			return result, err
		}
		result.FenString = board.FenString()
		result.Move = report.BestMove.String()
		result.Score = report.BestScore
		result.Explanation = report.BestExplanation.Lines
		result.ProposedMove = report.ProposedMove.String()
		result.ProposedScore = report.ProposedScore
		result.Critique = report.ProposedExplanation.Lines
		return result, NilError
	}

	move, explanation, err := runner.ChooseMove(board, budget)
	if !IsNil(err) {
		return result, err
	}

	report, err := runner.EvaluateMove(board, move.String(), budget)
	if !IsNil(err) {
		return result, err
	}

	result.FenString = board.FenString()
	result.Move = move.String()
	result.Score = report.ProposedScore
	result.Explanation = explanation.Lines
	return result, NilError
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	var upgrader = websocket.Upgrader{}

	var ws = func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if !IsNil(err) {
			panic(err)
		}

		var forward = func(message string) {
			log.Print("forwarding: ", message)
			bytes, err := json.Marshal([]string{message})
			if !IsNil(err) {
				fmt.Fprintln(os.Stderr, fmt.Sprint("forwarding: json marshal: ", err))
			}
			err = Wrap(c.WriteMessage(websocket.TextMessage, bytes))
			if !IsNil(err) {
				fmt.Fprintln(os.Stderr, fmt.Sprint("forwarding: websocket: ", err))
			}
		}

		runner := coach.NewCoachRunner(coach.WithLogger(&LogForwarding{
			writeCallback: func(message string) {
				forward(fmt.Sprintf("coach: %v", message))
			},
		}))

		for {
			_, bytes, err := c.ReadMessage()
			if err != nil {
				log.Println("read: ", err)
				break
			}

			var message MessageFromWeb
			err = json.Unmarshal(bytes, &message)
			if err != nil {
				log.Println("unmarshal: ", err)
				continue
			}
			log.Println("received", message)

			if message.Fen == nil {
				continue
			}

			proposed := ""
			if message.ProposedMove != nil {
				proposed = *message.ProposedMove
			}

			result, analyzeErr := analyze(&runner, *message.Fen, proposed, budgetFromMs(message.BudgetMs))
			if !IsNil(analyzeErr) {
				forward(fmt.Sprint("analyze: ", analyzeErr))
				continue
			}

			log.Println("sending", result)
			response, err := json.Marshal(result)
			if err != nil {
				log.Println("marshal: ", err)
				continue
			}
			err = c.WriteMessage(websocket.TextMessage, response)
			if err != nil {
				log.Println("websocket: ", err)
				break
			}
		}
	}

	var rest = func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		fen := query.Get("fen")
		if fen == "" {
			fen = rules.StartingFen
		}

		budget := 500 * time.Millisecond
		if query.Get("budget") != "" {
			parsed, err := time.ParseDuration(query.Get("budget"))
			if err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			budget = parsed
		}

		runner := coach.NewCoachRunner(coach.WithLogger(&SilentLogger))

		result, err := analyze(&runner, fen, query.Get("move"), budget)
		if !IsNil(err) {
			if coach.IsInvalidMoveError(err) || coach.IsNoLegalMovesError(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
			} else {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = Wrap(json.NewEncoder(w).Encode(result))
		if !IsNil(err) {
			log.Println("encode: ", err)
		}
	}

	router := mux.NewRouter()
	router.HandleFunc("/ws", ws)
	router.HandleFunc("/analyze", rest)

	port := 8002
	log.Println("serving on port", port)

	err := http.ListenAndServe(fmt.Sprintf(":%v", port), router)
	log.Fatal(err)
}
