package game

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/danielpatrickdp/turtle-soup/internal/history"
	"github.com/danielpatrickdp/turtle-soup/internal/oracle"
	"github.com/danielpatrickdp/turtle-soup/internal/question"
	"github.com/danielpatrickdp/turtle-soup/internal/scenario"
	"github.com/danielpatrickdp/turtle-soup/internal/summary"
)

// #region phase

// Phase is the orchestrator's lifecycle state.
type Phase string

const (
	PhaseNotStarted      Phase = "not_started"
	PhaseRoundInProgress Phase = "round_in_progress"
	PhaseRoundComplete   Phase = "round_complete"
	PhaseComplete        Phase = "complete"
)

// #endregion phase

// #region config

// Config bounds the game loop.
type Config struct {
	MaxRounds      int
	QuestionWindow int // history suffix granted to questioners
	SummaryWindow  int // history suffix granted to the summarizer
	OverlapSummary bool
}

// DefaultConfig returns the standard four-round game.
func DefaultConfig() Config {
	return Config{
		MaxRounds:      4,
		QuestionWindow: 8,
		SummaryWindow:  12,
		OverlapSummary: false,
	}
}

// #endregion config

// #region result-types

// TurnDetail is one recorded turn, for transcript persistence.
type TurnDetail struct {
	Round     int
	Speaker   string
	Question  string
	Answer    string
	Verdict   oracle.Verdict
	Malformed bool
}

// RoundSummary is one round's recap text.
type RoundSummary struct {
	Round int
	Body  string
}

// Result summarizes a completed game.
type Result struct {
	GameID    string
	Title     string
	Rounds    int
	Turns     int
	Skipped   int // turns dropped: service failure or length guard
	Malformed int
	Details   []TurnDetail
	Summaries []RoundSummary
}

// #endregion result-types

// #region orchestrator

// Orchestrator drives one game: the only component with global control flow.
// It owns the history; every role sees only the bounded views it grants.
type Orchestrator struct {
	id         string
	scenario   scenario.Scenario
	players    []*question.Questioner
	oracle     *oracle.Oracle
	summarizer *summary.Summarizer
	config     Config
	hist       *history.Log
	sink       Sink
	phase      Phase
}

// New wires an orchestrator for one scenario. Questioners run in the given
// order every round.
func New(sc scenario.Scenario, players []*question.Questioner, orc *oracle.Oracle, sum *summary.Summarizer, sink Sink, config Config) *Orchestrator {
	return &Orchestrator{
		id:         uuid.New().String(),
		scenario:   sc,
		players:    players,
		oracle:     orc,
		summarizer: sum,
		config:     config,
		hist:       history.NewLog(),
		sink:       sink,
		phase:      PhaseNotStarted,
	}
}

// ID returns the game's identifier.
func (o *Orchestrator) ID() string {
	return o.id
}

// Phase returns the current lifecycle state.
func (o *Orchestrator) Phase() Phase {
	return o.phase
}

// History returns a copy of the full recorded history.
func (o *Orchestrator) History() []history.TurnRecord {
	return o.hist.Window(o.hist.Len())
}

// #endregion orchestrator

// #region run

// prefetched carries a question produced concurrently with the previous
// round's summary, consumed by the next round's first questioner slot.
type prefetched struct {
	question string
	err      error
}

// Run plays the game to completion. Per-call generator failures are absorbed
// here and never abort the loop; the only errors returned are programming
// errors such as running twice.
func (o *Orchestrator) Run(ctx context.Context) (Result, error) {
	if o.phase != PhaseNotStarted {
		return Result{}, fmt.Errorf("game %s already started (phase=%s)", o.id, o.phase)
	}
	if len(o.players) == 0 {
		return Result{}, fmt.Errorf("game %s has no questioners", o.id)
	}

	res := Result{GameID: o.id, Title: o.scenario.Title, Rounds: o.config.MaxRounds}

	o.sink.Append(fmt.Sprintf("Puzzle: \"%s\"", o.scenario.Title))
	o.sink.Append(o.scenario.Narrative)
	o.sink.Append("")

	var pre *prefetched
	for r := 1; r <= o.config.MaxRounds; r++ {
		o.phase = PhaseRoundInProgress
		log.Printf("[GAME] %s: round %d begins (tier applies per oracle call)", o.id, r)
		o.sink.Append(fmt.Sprintf("----- Round %d -----", r))
		o.sink.Append("")

		for i, p := range o.players {
			var q string
			var err error
			if i == 0 && pre != nil {
				q, err = pre.question, pre.err
				pre = nil
			} else {
				q, err = p.Ask(ctx, o.scenario, o.hist.Window(o.config.QuestionWindow))
			}
			if err != nil {
				log.Printf("[GAME] %s: skipping %s in round %d: %v", o.id, p.Name(), r, err)
				o.sink.Append(fmt.Sprintf("%s: (turn skipped: question unavailable)", p.Name()))
				o.sink.Append("")
				res.Skipped++
				continue
			}
			// Unreachable given the questioner's repair chain, but the
			// orchestrator still refuses to record a degenerate question.
			if len([]rune(q)) < 2 {
				log.Printf("[GAME] %s: length guard dropped a turn by %s", o.id, p.Name())
				res.Skipped++
				continue
			}

			j, err := o.oracle.Answer(ctx, q, r)
			if err != nil {
				log.Printf("[GAME] %s: oracle failed for %s in round %d: %v", o.id, p.Name(), r, err)
				o.sink.Append(fmt.Sprintf("%s: %s", p.Name(), q))
				o.sink.Append(fmt.Sprintf("%s: (no answer: service unavailable)", o.oracle.Name()))
				o.sink.Append("")
				res.Skipped++
				continue
			}

			o.hist.Append(history.TurnRecord{Speaker: p.Name(), Question: q, Answer: j.Raw})
			if j.Malformed {
				res.Malformed++
			}
			res.Details = append(res.Details, TurnDetail{
				Round:     r,
				Speaker:   p.Name(),
				Question:  q,
				Answer:    j.Raw,
				Verdict:   j.Verdict,
				Malformed: j.Malformed,
			})

			o.sink.Append(fmt.Sprintf("%s: %s", p.Name(), q))
			o.sink.Append(fmt.Sprintf("%s: %s", o.oracle.Name(), j.Raw))
			o.sink.Append("")
		}

		o.phase = PhaseRoundComplete
		pre = o.endRound(ctx, r, &res)
	}

	o.phase = PhaseComplete
	o.sink.Append("Game over. If you are playing along, now is the moment to guess the truth.")
	o.sink.Append("")
	o.sink.Append("---")
	o.sink.Append(fmt.Sprintf("Solution to \"%s\" (for review):", o.scenario.Title))
	o.sink.Append(o.scenario.Solution)

	res.Turns = o.hist.Len()
	log.Printf("[GAME] %s: complete (turns=%d skipped=%d malformed=%d)", o.id, res.Turns, res.Skipped, res.Malformed)
	return res, nil
}

// #endregion run

// #region end-round

// endRound produces round r's summary and, when overlap is enabled and a
// round follows, prefetches the next round's first question concurrently.
// The summary block is always written before control returns, so sink
// ordering stays round header < turns < recap regardless of overlap.
func (o *Orchestrator) endRound(ctx context.Context, r int, res *Result) *prefetched {
	sumView := o.hist.Window(o.config.SummaryWindow)

	if o.config.OverlapSummary && r < o.config.MaxRounds {
		qView := o.hist.Window(o.config.QuestionWindow)
		var body string
		var sumErr error
		next := &prefetched{}

		var g errgroup.Group
		g.Go(func() error {
			body, sumErr = o.summarizer.Summarize(ctx, o.scenario, sumView)
			return nil
		})
		g.Go(func() error {
			next.question, next.err = o.players[0].Ask(ctx, o.scenario, qView)
			return nil
		})
		g.Wait()

		o.writeSummary(r, body, sumErr, res)
		return next
	}

	body, err := o.summarizer.Summarize(ctx, o.scenario, sumView)
	o.writeSummary(r, body, err, res)
	return nil
}

func (o *Orchestrator) writeSummary(r int, body string, err error, res *Result) {
	if err != nil {
		log.Printf("[GAME] %s: summary for round %d unavailable: %v", o.id, r, err)
		return
	}
	o.sink.Append(fmt.Sprintf("===== Round %d recap (%s) =====", r, o.summarizer.Name()))
	o.sink.Append(body)
	o.sink.Append("========================================")
	o.sink.Append("")
	res.Summaries = append(res.Summaries, RoundSummary{Round: r, Body: body})
}

// #endregion end-round
