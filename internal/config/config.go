package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/danielpatrickdp/turtle-soup/internal/game"
)

// #region types

// PlayerConfig names one questioner and its persona.
type PlayerConfig struct {
	Name    string `yaml:"name"`
	Persona string `yaml:"persona"`
}

// GeneratorConfig selects and parameterizes the generation backend.
type GeneratorConfig struct {
	Backend        string  `yaml:"backend"` // "chat" or "genai"
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	APIKeyEnv      string  `yaml:"api_key_env"`
	Temperature    float32 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// Config is the full game configuration surface.
type Config struct {
	MaxRounds      int             `yaml:"max_rounds"`
	QuestionWindow int             `yaml:"question_window"`
	SummaryWindow  int             `yaml:"summary_window"`
	OverlapSummary bool            `yaml:"overlap_summary"`
	Generator      GeneratorConfig `yaml:"generator"`
	BankPath       string          `yaml:"bank_path"`      // optional YAML scenario bank
	BankDB         string          `yaml:"bank_db"`        // optional SQLite scenario bank
	TranscriptDB   string          `yaml:"transcript_db"`  // optional transcript store
	OracleName     string          `yaml:"oracle_name"`
	Summarizer     PlayerConfig    `yaml:"summarizer"`
	Players        []PlayerConfig  `yaml:"players"`
}

// #endregion types

// #region defaults

// Default returns the standard game: four rounds, three questioner personas,
// a DeepSeek-style chat backend.
func Default() Config {
	return Config{
		MaxRounds:      4,
		QuestionWindow: 8,
		SummaryWindow:  12,
		Generator: GeneratorConfig{
			Backend:        "chat",
			BaseURL:        "https://api.deepseek.com",
			Model:          "deepseek-chat",
			APIKeyEnv:      "DEEPSEEK_API_KEY",
			Temperature:    0.5,
			TimeoutSeconds: 60,
		},
		OracleName: "Puzzle Master",
		Summarizer: PlayerConfig{
			Name: "Recap Keeper",
			Persona: "You are good at reading question-and-answer history, summarizing what is known " +
				"and pointing out the next line of inquiry, without ever giving away the full answer.",
		},
		Players: []PlayerConfig{
			{
				Name: "Logical Detective",
				Persona: "You are a calm, rational deduction player who narrows the possibility space with " +
					"as few questions as possible, favoring high-value angles: sequence of events, cause and " +
					"effect, motive, identity. Your questions are short and direct.",
			},
			{
				Name: "Skeptic",
				Persona: "You are a deeply suspicious player who assumes hidden conditions or schemes behind " +
					"everything, and likes to probe the vague spots in earlier answers.",
			},
			{
				Name: "Wildcard",
				Persona: "You are a highly imaginative player who asks from unconventional angles: " +
					"misunderstandings, relationships between characters, environmental details, shifts of mind.",
			},
		},
	}
}

// #endregion defaults

// #region load

// Load reads a YAML config file over the defaults and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the engine cannot run.
func (c Config) Validate() error {
	if c.MaxRounds < 1 {
		return fmt.Errorf("max_rounds must be >= 1, got %d", c.MaxRounds)
	}
	if c.QuestionWindow < 1 || c.SummaryWindow < 1 {
		return fmt.Errorf("history windows must be >= 1, got %d/%d", c.QuestionWindow, c.SummaryWindow)
	}
	if len(c.Players) == 0 {
		return fmt.Errorf("at least one player is required")
	}
	for _, p := range c.Players {
		if p.Name == "" {
			return fmt.Errorf("every player needs a name")
		}
	}
	switch c.Generator.Backend {
	case "chat", "genai":
	default:
		return fmt.Errorf("unknown generator backend %q", c.Generator.Backend)
	}
	return nil
}

// GameConfig converts to the orchestrator's config.
func (c Config) GameConfig() game.Config {
	return game.Config{
		MaxRounds:      c.MaxRounds,
		QuestionWindow: c.QuestionWindow,
		SummaryWindow:  c.SummaryWindow,
		OverlapSummary: c.OverlapSummary,
	}
}

// #endregion load
