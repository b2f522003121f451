package replay

import (
	"context"
	"testing"

	"github.com/danielpatrickdp/turtle-soup/internal/game"
	"github.com/danielpatrickdp/turtle-soup/internal/oracle"
)

// helper: minimal one-player, one-round fixture built in code.
func soloFixture() *Fixture {
	return &Fixture{
		Description: "solo smoke game",
		Scenario: FixtureScenario{
			Title:     "The Locked Lighthouse",
			Narrative: "A keeper is found outside his own locked lighthouse, unharmed, refusing to go back in.",
			Solution:  "He let the lamp go out during a storm and a ship was lost; he cannot face the lamp again.",
		},
		Config:  FixtureConfig{MaxRounds: 1},
		Players: []FixturePlayer{{Name: "Solo", Persona: "You ask one careful question."}},
		Responses: map[string][]string{
			"Solo":         {"Did something happen inside the lighthouse?"},
			RoleOracle:     {"Yes. Something he cannot undo."},
			RoleSummarizer: {"One fact so far: the lighthouse holds the cause."},
		},
		ExpectedTurns: []FixtureExpectedTurn{
			{Round: 1, Speaker: "Solo", Question: "Did something happen inside the lighthouse?", Verdict: "yes"},
		},
		ExpectedSummaries: 1,
	}
}

func TestRun_SoloFixturePasses(t *testing.T) {
	out, err := Run(context.Background(), soloFixture())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !out.Passed() {
		t.Fatalf("mismatches: %v", out.Mismatches)
	}
	if out.Result.Turns != 1 {
		t.Errorf("recorded %d turns, want 1", out.Result.Turns)
	}
}

// An unscripted role behaves like an unreachable service: the orchestrator
// absorbs the failure and the skip shows up as an expectation mismatch.
func TestRun_MissingScriptSkipsTurns(t *testing.T) {
	f := soloFixture()
	delete(f.Responses, "Solo")

	out, err := Run(context.Background(), f)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if out.Result.Skipped != 1 {
		t.Errorf("skipped = %d, want 1", out.Result.Skipped)
	}
	if out.Passed() {
		t.Error("expected mismatches for the skipped turn")
	}
}

func TestVerify_ReportsEveryDivergence(t *testing.T) {
	f := soloFixture()
	res := game.Result{
		Details: []game.TurnDetail{{
			Round:    2,
			Speaker:  "Imposter",
			Question: "Wrong question?",
			Verdict:  oracle.VerdictNo,
		}},
		Summaries: nil,
		Skipped:   3,
	}

	m := Verify(f, res)
	// round, speaker, question, verdict, summaries, skipped
	if len(m) != 6 {
		t.Fatalf("got %d mismatches, want 6: %v", len(m), m)
	}
}

func TestVerify_ExactMatchIsClean(t *testing.T) {
	f := soloFixture()
	res := game.Result{
		Details: []game.TurnDetail{{
			Round:    1,
			Speaker:  "Solo",
			Question: "Did something happen inside the lighthouse?",
			Verdict:  oracle.VerdictYes,
		}},
		Summaries: []game.RoundSummary{{Round: 1, Body: "recap"}},
	}
	if m := Verify(f, res); len(m) != 0 {
		t.Errorf("unexpected mismatches: %v", m)
	}
}
