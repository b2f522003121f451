package oracle

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/danielpatrickdp/turtle-soup/internal/codec"
	"github.com/danielpatrickdp/turtle-soup/internal/disclosure"
	"github.com/danielpatrickdp/turtle-soup/internal/scenario"
)

// #region verdict

// Verdict is the oracle's four-way classification of a question.
type Verdict string

const (
	VerdictYes        Verdict = "yes"
	VerdictNo         Verdict = "no"
	VerdictIrrelevant Verdict = "irrelevant"
	VerdictPartial    Verdict = "partially_true"
	VerdictUnknown    Verdict = "unknown" // malformed judgement, kept verbatim
)

// verdictTokens is the fixed set of recognized leading tokens. Each token
// carries its terminating period, which keeps the set mutually prefix-free.
var verdictTokens = []struct {
	token   string
	verdict Verdict
}{
	{"Yes.", VerdictYes},
	{"No.", VerdictNo},
	{"Irrelevant.", VerdictIrrelevant},
	{"Partially true.", VerdictPartial},
}

// #endregion verdict

// #region judgement

// Judgement is one classified oracle answer. When the generated text does not
// begin with a recognized token, Malformed is set, Verdict is VerdictUnknown,
// and Raw still carries the verbatim text for human review.
type Judgement struct {
	Verdict     Verdict
	Explanation string
	Raw         string
	Malformed   bool
}

// ParseJudgement extracts the verdict from the leading token of raw text.
// Unrecognized text is never repaired, only flagged.
func ParseJudgement(raw string) Judgement {
	trimmed := strings.TrimSpace(raw)
	for _, vt := range verdictTokens {
		if strings.HasPrefix(trimmed, vt.token) {
			return Judgement{
				Verdict:     vt.verdict,
				Explanation: strings.TrimSpace(strings.TrimPrefix(trimmed, vt.token)),
				Raw:         trimmed,
			}
		}
	}
	return Judgement{
		Verdict:     VerdictUnknown,
		Explanation: trimmed,
		Raw:         trimmed,
		Malformed:   true,
	}
}

// #endregion judgement

// #region oracle

// Oracle holds the private solution and classifies questions against it.
// No state carries between calls other than the immutable solution, so an
// Oracle is safe to share across games; within one game answers must come in
// question order.
type Oracle struct {
	name     string
	scenario scenario.Scenario
	gen      codec.Generator
}

// New creates an oracle for one scenario.
func New(name string, sc scenario.Scenario, gen codec.Generator) *Oracle {
	return &Oracle{name: name, scenario: sc, gen: gen}
}

// Name returns the oracle's display name.
func (o *Oracle) Name() string {
	return o.name
}

// #endregion oracle

// #region persona

// persona builds the role description: the full solution plus the standing
// format and leakage rules. The disclosure schedule itself is advisory text;
// the engine verifies only the leading token, never the semantics.
func (o *Oracle) persona() string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are the puzzle master of a lateral-thinking guessing game. Your name is %s.\n\n", o.name)
	fmt.Fprintf(&b, "You alone know the complete solution to the puzzle:\n%s\n\n", o.scenario.Solution)
	b.WriteString("Rules:\n")
	b.WriteString("- Players ask you yes/no questions and you judge each one against the solution.\n")
	b.WriteString("- You must begin every answer with exactly one of these four tokens:\n")
	for _, vt := range verdictTokens {
		fmt.Fprintf(&b, "  %q\n", vt.token)
	}
	b.WriteString("- After the token you may add one or two short sentences of explanation.\n")
	b.WriteString("- Never recount the full solution, and never volunteer it unprompted; ")
	b.WriteString("answer only the aspect the question touches, and keep early answers oblique.\n")
	b.WriteString("- Style: concise, precise, reserved.\n")
	return b.String()
}

// #endregion persona

// #region answer

// Answer classifies one question for the given round. The round selects which
// disclosure instruction accompanies the request; the verdict taxonomy itself
// is round-invariant. A malformed judgement is not an error: it is returned
// with the Malformed flag set and the raw text intact.
func (o *Oracle) Answer(ctx context.Context, question string, round int) (Judgement, error) {
	inst := disclosure.InstructionFor(round)

	var b strings.Builder
	fmt.Fprintf(&b, "A player asked:\n%q\n\n", question)
	fmt.Fprintf(&b, "This is questioning round %d. %s\n\n", round, inst.Guidance)
	b.WriteString("Judge the question against the solution you hold.\n")
	b.WriteString("Format requirements:\n")
	b.WriteString("- Begin with exactly \"Yes.\" or \"No.\" or \"Irrelevant.\" or \"Partially true.\"\n")
	b.WriteString("- You may follow the token with one or two sentences of explanation.\n")
	b.WriteString("- Do not reveal the full solution; add only oblique, partial information.\n")

	raw, err := o.gen.Generate(ctx, o.persona(), b.String())
	if err != nil {
		return Judgement{}, fmt.Errorf("oracle answer: %w", err)
	}

	j := ParseJudgement(raw)
	if j.Malformed {
		log.Printf("[ORACLE] malformed judgement (round=%d, tier=%s): %q", round, inst.Tier, truncateForLog(raw))
	}
	return j, nil
}

func truncateForLog(s string) string {
	if len(s) <= 120 {
		return s
	}
	return s[:120] + "..."
}

// #endregion answer
