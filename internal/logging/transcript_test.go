package logging

import (
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/turtle-soup/internal/game"
	"github.com/danielpatrickdp/turtle-soup/internal/oracle"
)

func openTestStore(t *testing.T) *TranscriptStore {
	t.Helper()
	store, err := NewTranscriptStore(filepath.Join(t.TempDir(), "transcripts.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleResult() game.Result {
	return game.Result{
		GameID:    "game-1",
		Title:     "The Test Puzzle",
		Rounds:    2,
		Turns:     2,
		Skipped:   1,
		Malformed: 1,
		Details: []game.TurnDetail{
			{Round: 1, Speaker: "Alpha", Question: "was he alone?", Answer: "Yes. He was.", Verdict: oracle.VerdictYes},
			{Round: 2, Speaker: "Alpha", Question: "did it rain?", Answer: "Hard to say.", Verdict: oracle.VerdictUnknown, Malformed: true},
		},
		Summaries: []game.RoundSummary{
			{Round: 1, Body: "- he was alone"},
			{Round: 2, Body: "- weather unclear"},
		},
	}
}

func TestRecordAndListGames(t *testing.T) {
	store := openTestStore(t)

	if err := store.RecordGame(sampleResult()); err != nil {
		t.Fatalf("record: %v", err)
	}

	games, err := store.ListGames(10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(games) != 1 {
		t.Fatalf("expected 1 game, got %d", len(games))
	}
	g := games[0]
	if g.GameID != "game-1" || g.Title != "The Test Puzzle" {
		t.Errorf("unexpected game row: %+v", g)
	}
	if g.Malformed != 1 || g.Skipped != 1 {
		t.Errorf("counters not round-tripped: %+v", g)
	}
}

func TestTurnsRoundTrip(t *testing.T) {
	store := openTestStore(t)
	if err := store.RecordGame(sampleResult()); err != nil {
		t.Fatalf("record: %v", err)
	}

	turns, err := store.Turns("game-1")
	if err != nil {
		t.Fatalf("turns: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("expected 2 turns, got %d", len(turns))
	}
	if turns[0].Verdict != oracle.VerdictYes {
		t.Errorf("expected yes verdict, got %s", turns[0].Verdict)
	}
	if !turns[1].Malformed {
		t.Error("malformed flag lost")
	}
	if turns[1].Answer != "Hard to say." {
		t.Errorf("answer must round-trip verbatim, got %q", turns[1].Answer)
	}
}

func TestSummariesRoundTrip(t *testing.T) {
	store := openTestStore(t)
	if err := store.RecordGame(sampleResult()); err != nil {
		t.Fatalf("record: %v", err)
	}

	sums, err := store.Summaries("game-1")
	if err != nil {
		t.Fatalf("summaries: %v", err)
	}
	if len(sums) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(sums))
	}
	if sums[0].Round != 1 || sums[0].Body != "- he was alone" {
		t.Errorf("unexpected summary: %+v", sums[0])
	}
}

func TestTurnsUnknownGame(t *testing.T) {
	store := openTestStore(t)
	turns, err := store.Turns("missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(turns) != 0 {
		t.Errorf("expected no turns, got %d", len(turns))
	}
}
