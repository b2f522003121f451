package question

import (
	"context"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/danielpatrickdp/turtle-soup/internal/codec"
	"github.com/danielpatrickdp/turtle-soup/internal/history"
	"github.com/danielpatrickdp/turtle-soup/internal/scenario"
)

// #region fallbacks

// Fallback questions substituted by the repair chain. FallbackShort replaces
// degenerate generator output; FallbackRepeat replaces an exact self-repeat
// and nudges toward environmental clues.
const (
	FallbackShort  = "Is this connected to a significant past experience of his?"
	FallbackRepeat = "Is this related to a special environment or condition mentioned in the story, such as the weather, the location, or an object near him?"
)

// #endregion fallbacks

// #region repair-chain

// repairStep is one validation-and-repair stage: when bad reports true the
// question is replaced by the substitute and the chain continues.
type repairStep struct {
	name       string
	bad        func(q string, prior map[string]bool) bool
	substitute string
}

// repairChain is applied in order after sanitization. The self-repeat check
// deliberately runs on the already-short-repaired question, and is a cheap
// exact string match scoped to this questioner's own prior questions.
var repairChain = []repairStep{
	{
		name:       "degenerate",
		bad:        func(q string, _ map[string]bool) bool { return len([]rune(q)) < 2 },
		substitute: FallbackShort,
	},
	{
		name:       "self_repeat",
		bad:        func(q string, prior map[string]bool) bool { return prior[q] },
		substitute: FallbackRepeat,
	},
}

// #endregion repair-chain

// #region questioner

// Questioner produces one new yes/no question per turn from the scenario's
// public narrative and a bounded history view.
type Questioner struct {
	name    string
	persona string
	gen     codec.Generator
	prefix  *regexp.Regexp
}

// New creates a questioner with a display name and a persona used as the
// generator's role description.
func New(name, persona string, gen codec.Generator) *Questioner {
	// The generator sometimes echoes role framing ("<name>: ...",
	// "Player: ..."); strip any such prefix from the first line.
	prefix := regexp.MustCompile(`^(?:` + regexp.QuoteMeta(name) + `|Player|Questioner)[:：]\s*`)
	return &Questioner{name: name, persona: persona, gen: gen, prefix: prefix}
}

// Name returns the questioner's display name.
func (q *Questioner) Name() string {
	return q.name
}

// #endregion questioner

// #region sanitize

const quoteCutset = "\"'“”‘’「」 \t"

// Sanitize normalizes raw generator output into a bare question: first line
// only, role prefix removed, wrapping quotes and whitespace stripped.
// Idempotent: sanitizing sanitized text is a no-op.
func (q *Questioner) Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	if i := strings.IndexAny(s, "\r\n"); i >= 0 {
		s = s[:i]
	}
	s = strings.TrimSpace(s)
	s = q.prefix.ReplaceAllString(s, "")
	s = strings.Trim(s, quoteCutset)
	return s
}

// #endregion sanitize

// #region ask

// Ask produces this questioner's next question. The history view must be the
// bounded suffix the orchestrator grants (most recent 8 records by default);
// the self-repeat check sees only that view. Errors from the generator
// propagate so the orchestrator can skip the turn.
func (q *Questioner) Ask(ctx context.Context, sc scenario.Scenario, view []history.TurnRecord) (string, error) {
	raw, err := q.gen.Generate(ctx, q.persona, q.taskPrompt(sc, view))
	if err != nil {
		return "", fmt.Errorf("questioner %s: %w", q.name, err)
	}

	question := q.Sanitize(raw)
	prior := history.QuestionsBy(view, q.name)
	for _, step := range repairChain {
		if step.bad(question, prior) {
			log.Printf("[QUESTION] %s: %s repair, substituting fallback", q.name, step.name)
			question = step.substitute
		}
	}
	return question, nil
}

// #endregion ask

// #region task-prompt

// taskPrompt builds the instruction sent with each ask. The ban on direct
// solution guesses and on repeats is advisory text only; the engine enforces
// nothing beyond the repair chain.
func (q *Questioner) taskPrompt(sc scenario.Scenario, view []history.TurnRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "We are playing a lateral-thinking puzzle game. You are the player named %s.\n\n", q.name)
	fmt.Fprintf(&b, "The puzzle:\n\"%s\"\n%s\n\n", sc.Title, sc.Narrative)

	b.WriteString("Recent questions and answers (may be empty):\n")
	if len(view) == 0 {
		b.WriteString("(no history yet)\n")
	} else {
		for _, rec := range view {
			fmt.Fprintf(&b, "%s: %s\nPuzzle master: %s\n", rec.Speaker, rec.Question, rec.Answer)
		}
	}

	b.WriteString("\nYour task:\n")
	b.WriteString("- Ask one yes/no question that narrows down the truth as efficiently as possible.\n")
	b.WriteString("- Output only the question itself: no restating the puzzle, no explanation, no quotes.\n")
	b.WriteString("- Never ask a question of the form \"is the truth X\" that would end the game in one step; close in gradually.\n")
	b.WriteString("- Avoid repeating any question already clearly asked; if you want to follow a lead, take a finer angle on it.\n")
	b.WriteString("- If the last few questions all circle one theme, switch to an unexplored thread: the setting, the weather, relationships, motives, or the order of events.\n")
	return b.String()
}

// #endregion task-prompt
