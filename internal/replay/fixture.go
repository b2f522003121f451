package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/turtle-soup/internal/game"
	"github.com/danielpatrickdp/turtle-soup/internal/scenario"
)

// #region fixture-types

// Reserved response keys for the non-player roles.
const (
	RoleOracle     = "oracle"
	RoleSummarizer = "summarizer"
)

// Fixture is the top-level JSON structure for a replay fixture: a scenario,
// scripted generator output per role, and the expected transcript shape.
type Fixture struct {
	Description       string                `json:"description"`
	Scenario          FixtureScenario       `json:"scenario"`
	Config            FixtureConfig         `json:"config"`
	Players           []FixturePlayer       `json:"players"`
	Responses         map[string][]string   `json:"responses"`
	ExpectedTurns     []FixtureExpectedTurn `json:"expected_turns"`
	ExpectedSummaries int                   `json:"expected_summaries"`
	ExpectedSkipped   int                   `json:"expected_skipped"`
}

// FixtureScenario mirrors scenario.Scenario with JSON tags.
type FixtureScenario struct {
	Title     string `json:"title"`
	Narrative string `json:"narrative"`
	Solution  string `json:"solution"`
}

// FixtureConfig mirrors game.Config with JSON tags. Zero fields fall back to
// the game defaults so fixtures only state what they change.
type FixtureConfig struct {
	MaxRounds      int  `json:"max_rounds"`
	QuestionWindow int  `json:"question_window"`
	SummaryWindow  int  `json:"summary_window"`
	OverlapSummary bool `json:"overlap_summary"`
}

// FixturePlayer is one questioner seat.
type FixturePlayer struct {
	Name    string `json:"name"`
	Persona string `json:"persona"`
}

// FixtureExpectedTurn captures the expected recorded turn, in order.
type FixtureExpectedTurn struct {
	Round     int    `json:"round"`
	Speaker   string `json:"speaker"`
	Question  string `json:"question"`
	Verdict   string `json:"verdict"`
	Malformed bool   `json:"malformed"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	if len(f.Players) == 0 {
		return nil, fmt.Errorf("fixture %s declares no players", path)
	}
	return &f, nil
}

// ToScenario converts to a domain Scenario.
func (s *FixtureScenario) ToScenario() scenario.Scenario {
	return scenario.Scenario{
		Title:     s.Title,
		Narrative: s.Narrative,
		Solution:  s.Solution,
	}
}

// ToGameConfig converts to a game.Config, defaulting any unset bound.
func (fc *FixtureConfig) ToGameConfig() game.Config {
	cfg := game.DefaultConfig()
	if fc.MaxRounds > 0 {
		cfg.MaxRounds = fc.MaxRounds
	}
	if fc.QuestionWindow > 0 {
		cfg.QuestionWindow = fc.QuestionWindow
	}
	if fc.SummaryWindow > 0 {
		cfg.SummaryWindow = fc.SummaryWindow
	}
	cfg.OverlapSummary = fc.OverlapSummary
	return cfg
}

// #endregion fixture-loader
