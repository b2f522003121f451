package replay

import (
	"context"
	"fmt"

	"github.com/danielpatrickdp/turtle-soup/internal/codec"
	"github.com/danielpatrickdp/turtle-soup/internal/game"
	"github.com/danielpatrickdp/turtle-soup/internal/oracle"
	"github.com/danielpatrickdp/turtle-soup/internal/question"
	"github.com/danielpatrickdp/turtle-soup/internal/summary"
)

// #region types

// fixedRole adapts the scripted generator to the engine: components pass
// their full persona text as the role, while fixtures key responses by short
// readable names. The wrapper pins each component to its fixture key.
type fixedRole struct {
	gen *codec.ScriptedGenerator
	key string
}

func (f fixedRole) Generate(ctx context.Context, _, task string) (string, error) {
	return f.gen.Generate(ctx, f.key, task)
}

// Outcome captures one replayed game: the engine result, the full transcript
// the sink received, and every divergence from the fixture's expectations.
type Outcome struct {
	Result     game.Result
	Transcript []string
	Mismatches []string
}

// Passed reports whether the replay matched the fixture exactly.
func (o Outcome) Passed() bool {
	return len(o.Mismatches) == 0
}

// #endregion types

// #region replay

// Run plays a fixture through the real orchestrator entirely in memory and
// checks the result against the fixture's expectations. The returned error
// covers setup and lifecycle failures only; expectation divergences land in
// Outcome.Mismatches.
func Run(ctx context.Context, f *Fixture) (Outcome, error) {
	gen := codec.NewScriptedGenerator()
	for key, responses := range f.Responses {
		gen.Script(key, responses...)
	}

	sc := f.Scenario.ToScenario()
	players := make([]*question.Questioner, 0, len(f.Players))
	for _, p := range f.Players {
		players = append(players, question.New(p.Name, p.Persona, fixedRole{gen: gen, key: p.Name}))
	}
	orc := oracle.New("Puzzle Master", sc, fixedRole{gen: gen, key: RoleOracle})
	sum := summary.New("Recap Keeper", "You recap question-and-answer rounds.", fixedRole{gen: gen, key: RoleSummarizer})
	sink := game.NewMemorySink()

	o := game.New(sc, players, orc, sum, sink, f.Config.ToGameConfig())
	res, err := o.Run(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("replay %q: %w", f.Description, err)
	}

	return Outcome{
		Result:     res,
		Transcript: sink.Lines(),
		Mismatches: Verify(f, res),
	}, nil
}

// Verify compares a game result against the fixture's expected transcript
// shape. Every divergence becomes one human-readable line.
func Verify(f *Fixture, res game.Result) []string {
	var m []string

	if len(res.Details) != len(f.ExpectedTurns) {
		m = append(m, fmt.Sprintf("recorded %d turns, want %d", len(res.Details), len(f.ExpectedTurns)))
	}
	n := len(f.ExpectedTurns)
	if len(res.Details) < n {
		n = len(res.Details)
	}
	for i := 0; i < n; i++ {
		want, got := f.ExpectedTurns[i], res.Details[i]
		if got.Round != want.Round {
			m = append(m, fmt.Sprintf("turn %d: round %d, want %d", i, got.Round, want.Round))
		}
		if got.Speaker != want.Speaker {
			m = append(m, fmt.Sprintf("turn %d: speaker %q, want %q", i, got.Speaker, want.Speaker))
		}
		if got.Question != want.Question {
			m = append(m, fmt.Sprintf("turn %d: question %q, want %q", i, got.Question, want.Question))
		}
		if string(got.Verdict) != want.Verdict {
			m = append(m, fmt.Sprintf("turn %d: verdict %q, want %q", i, got.Verdict, want.Verdict))
		}
		if got.Malformed != want.Malformed {
			m = append(m, fmt.Sprintf("turn %d: malformed=%v, want %v", i, got.Malformed, want.Malformed))
		}
	}

	if len(res.Summaries) != f.ExpectedSummaries {
		m = append(m, fmt.Sprintf("produced %d summaries, want %d", len(res.Summaries), f.ExpectedSummaries))
	}
	if res.Skipped != f.ExpectedSkipped {
		m = append(m, fmt.Sprintf("skipped %d turns, want %d", res.Skipped, f.ExpectedSkipped))
	}

	return m
}

// #endregion replay
