package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.MaxRounds != 4 || cfg.QuestionWindow != 8 || cfg.SummaryWindow != 12 {
		t.Errorf("unexpected defaults: %d/%d/%d", cfg.MaxRounds, cfg.QuestionWindow, cfg.SummaryWindow)
	}
	if len(cfg.Players) != 3 {
		t.Errorf("expected 3 default players, got %d", len(cfg.Players))
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	doc := `
max_rounds: 2
overlap_summary: true
generator:
  backend: genai
  model: gemini-2.0-flash
players:
  - name: Solo
    persona: You ask one question per turn.
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.MaxRounds != 2 {
		t.Errorf("max_rounds = %d, want 2", cfg.MaxRounds)
	}
	if !cfg.OverlapSummary {
		t.Error("overlap_summary not applied")
	}
	if cfg.Generator.Backend != "genai" || cfg.Generator.Model != "gemini-2.0-flash" {
		t.Errorf("generator override lost: %+v", cfg.Generator)
	}
	// Fields the file omits keep their defaults.
	if cfg.QuestionWindow != 8 {
		t.Errorf("question_window = %d, want 8", cfg.QuestionWindow)
	}
	if len(cfg.Players) != 1 || cfg.Players[0].Name != "Solo" {
		t.Errorf("players override lost: %+v", cfg.Players)
	}
}

func TestLoadRejectsBadConfig(t *testing.T) {
	dir := t.TempDir()

	cases := map[string]string{
		"zero_rounds.yaml": "max_rounds: 0\n",
		"no_players.yaml":  "players: []\n",
		"bad_backend.yaml": "generator:\n  backend: carrier-pigeon\n",
		"not_yaml.yaml":    "{{{\n",
	}
	for name, doc := range cases {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file: expected error")
	}
}

func TestGameConfigConversion(t *testing.T) {
	cfg := Default()
	cfg.OverlapSummary = true
	gc := cfg.GameConfig()
	if gc.MaxRounds != cfg.MaxRounds || gc.QuestionWindow != cfg.QuestionWindow ||
		gc.SummaryWindow != cfg.SummaryWindow || !gc.OverlapSummary {
		t.Errorf("conversion mismatch: %+v", gc)
	}
}
