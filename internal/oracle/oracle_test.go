package oracle

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/danielpatrickdp/turtle-soup/internal/codec"
	"github.com/danielpatrickdp/turtle-soup/internal/scenario"
)

func testScenario() scenario.Scenario {
	return scenario.Scenario{
		Title:     "test",
		Narrative: "something happened",
		Solution:  "the hidden truth of the matter",
	}
}

func TestParseJudgementTokens(t *testing.T) {
	cases := []struct {
		raw     string
		verdict Verdict
		expl    string
	}{
		{"Yes. It is connected to his past.", VerdictYes, "It is connected to his past."},
		{"No.", VerdictNo, ""},
		{"Irrelevant. That detail does not matter.", VerdictIrrelevant, "That detail does not matter."},
		{"Partially true. One part of that holds.", VerdictPartial, "One part of that holds."},
		{"  Yes. Leading whitespace.  ", VerdictYes, "Leading whitespace."},
	}
	for _, c := range cases {
		j := ParseJudgement(c.raw)
		if j.Malformed {
			t.Errorf("ParseJudgement(%q) flagged malformed", c.raw)
		}
		if j.Verdict != c.verdict {
			t.Errorf("ParseJudgement(%q) verdict = %s, want %s", c.raw, j.Verdict, c.verdict)
		}
		if j.Explanation != c.expl {
			t.Errorf("ParseJudgement(%q) explanation = %q, want %q", c.raw, j.Explanation, c.expl)
		}
	}
}

func TestParseJudgementMalformed(t *testing.T) {
	for _, raw := range []string{
		"Maybe. Hard to say.",
		"yes. lowercase token",
		"No, but there is more to it.", // missing period token
		"",
	} {
		j := ParseJudgement(raw)
		if !j.Malformed {
			t.Errorf("ParseJudgement(%q) should be malformed", raw)
		}
		if j.Verdict != VerdictUnknown {
			t.Errorf("ParseJudgement(%q) verdict = %s, want unknown", raw, j.Verdict)
		}
		if j.Raw != strings.TrimSpace(raw) {
			t.Errorf("ParseJudgement(%q) must keep raw text, got %q", raw, j.Raw)
		}
	}
}

func TestAnswerParsesScriptedResponse(t *testing.T) {
	o := New("Puzzle Master", testScenario(), scriptedOracle(t, "Partially true. Close, but not the whole picture."))

	j, err := o.Answer(context.Background(), "did he do it on purpose?", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if j.Verdict != VerdictPartial {
		t.Errorf("expected partial verdict, got %s", j.Verdict)
	}
	if j.Malformed {
		t.Error("well-formed answer flagged malformed")
	}
}

func TestAnswerMalformedIsNotError(t *testing.T) {
	o := New("Puzzle Master", testScenario(), scriptedOracle(t, "Hmm, interesting question."))

	j, err := o.Answer(context.Background(), "is the weather relevant?", 1)
	if err != nil {
		t.Fatalf("malformed judgement must not surface as error, got %v", err)
	}
	if !j.Malformed {
		t.Error("expected malformed flag")
	}
	if j.Raw != "Hmm, interesting question." {
		t.Errorf("raw text must be preserved verbatim, got %q", j.Raw)
	}
}

func TestAnswerPropagatesServiceError(t *testing.T) {
	svcErr := errors.New("service unavailable")
	o := New("Puzzle Master", testScenario(), &codec.FailingGenerator{Err: svcErr})

	_, err := o.Answer(context.Background(), "anything?", 1)
	if !errors.Is(err, svcErr) {
		t.Fatalf("expected wrapped service error, got %v", err)
	}
}

func TestAnswerPromptCarriesTierGuidance(t *testing.T) {
	gen := codec.NewScriptedGenerator()
	o := New("Puzzle Master", testScenario(), gen)
	gen.Script(o.persona(), "Yes.", "Yes.", "Yes.")

	ctx := context.Background()
	if _, err := o.Answer(ctx, "q?", 1); err != nil {
		t.Fatalf("round 1: %v", err)
	}
	if _, err := o.Answer(ctx, "q?", 3); err != nil {
		t.Fatalf("round 3: %v", err)
	}
	if _, err := o.Answer(ctx, "q?", 5); err != nil {
		t.Fatalf("round 5: %v", err)
	}

	if len(gen.Calls) != 3 {
		t.Fatalf("expected 3 calls, got %d", len(gen.Calls))
	}
	if !strings.Contains(gen.Calls[0].Task, "early round") {
		t.Error("round 1 task prompt missing early-tier guidance")
	}
	if !strings.Contains(gen.Calls[1].Task, "mid-game round") {
		t.Error("round 3 task prompt missing mid-tier guidance")
	}
	if !strings.Contains(gen.Calls[2].Task, "late round") {
		t.Error("round 5 task prompt missing late-tier guidance")
	}
	for _, call := range gen.Calls {
		if !strings.Contains(call.Role, "the hidden truth of the matter") {
			t.Error("persona must carry the solution")
		}
	}
}

// scriptedOracle scripts responses for whatever persona the oracle builds.
func scriptedOracle(t *testing.T, responses ...string) codec.Generator {
	t.Helper()
	return &personaAgnostic{responses: responses}
}

type personaAgnostic struct {
	responses []string
	i         int
}

func (p *personaAgnostic) Generate(context.Context, string, string) (string, error) {
	if p.i >= len(p.responses) {
		return p.responses[len(p.responses)-1], nil
	}
	r := p.responses[p.i]
	p.i++
	return r, nil
}
