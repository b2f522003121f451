package summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/danielpatrickdp/turtle-soup/internal/codec"
	"github.com/danielpatrickdp/turtle-soup/internal/history"
	"github.com/danielpatrickdp/turtle-soup/internal/scenario"
)

// #region summarizer

// Summarizer condenses the recent dialogue into established facts and
// unexplored angles. It never sees the solution; keeping it out of the
// prompt is the only leak control, per the engine's advisory-only contract.
type Summarizer struct {
	name    string
	persona string
	gen     codec.Generator
}

// New creates a summarizer role.
func New(name, persona string, gen codec.Generator) *Summarizer {
	return &Summarizer{name: name, persona: persona, gen: gen}
}

// Name returns the summarizer's display name.
func (s *Summarizer) Name() string {
	return s.name
}

// #endregion summarizer

// #region summarize

// Summarize produces the round recap from a bounded history view (most
// recent 12 records by default, a larger window than the questioners get).
func (s *Summarizer) Summarize(ctx context.Context, sc scenario.Scenario, view []history.TurnRecord) (string, error) {
	out, err := s.gen.Generate(ctx, s.persona, s.taskPrompt(sc, view))
	if err != nil {
		return "", fmt.Errorf("summarizer %s: %w", s.name, err)
	}
	return strings.TrimSpace(out), nil
}

// #endregion summarize

// #region task-prompt

func (s *Summarizer) taskPrompt(sc scenario.Scenario, view []history.TurnRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "We are playing a lateral-thinking puzzle game. You are the recap keeper, %s.\n\n", s.name)
	fmt.Fprintf(&b, "The puzzle:\n\"%s\"\n%s\n\n", sc.Title, sc.Narrative)

	b.WriteString("Recent questions and answers:\n")
	if len(view) == 0 {
		b.WriteString("(no history yet)\n")
	} else {
		for _, rec := range view {
			fmt.Fprintf(&b, "%s: %s\nPuzzle master: %s\n", rec.Speaker, rec.Question, rec.Answer)
		}
	}

	b.WriteString("\nDo two things:\n")
	b.WriteString("1. List 2-4 bullet points of information that now seems firmly established.\n")
	b.WriteString("2. Point out directions the players may be neglecting, such as the order of events, ")
	b.WriteString("motive, physical condition, the surroundings (weather, place, objects), or what one character knows that another does not.\n")
	b.WriteString("Never state the full answer, never write \"the truth is\", and avoid naming any decisive detail outright.\n")
	b.WriteString("Keep it brief.\n")
	return b.String()
}

// #endregion task-prompt
