package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/turtle-soup/internal/game"
	"github.com/danielpatrickdp/turtle-soup/internal/logging"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the transcript database")
	last := flag.Int("last", 20, "show N most recent games")
	gameID := flag.String("game", "", "show single game transcript")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/transcripts.db [--last N] [--game id] [--json]")
		os.Exit(2)
	}

	store, err := logging.NewTranscriptStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *gameID != "" {
		err = runGameMode(store, *gameID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

func runListMode(store *logging.TranscriptStore, last int, jsonOut bool) error {
	games, err := store.ListGames(last)
	if err != nil {
		return err
	}
	if len(games) == 0 {
		fmt.Fprintln(os.Stderr, "no games found")
		return nil
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(games)
	}

	fmt.Printf("%-36s  %-30s  %6s  %5s  %7s  %9s  %s\n",
		"GAME", "TITLE", "ROUNDS", "TURNS", "SKIPPED", "MALFORMED", "CREATED")
	for _, g := range games {
		title := g.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		fmt.Printf("%-36s  %-30s  %6d  %5d  %7d  %9d  %s\n",
			g.GameID, title, g.MaxRounds, g.Turns, g.Skipped, g.Malformed,
			g.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	return nil
}

// #endregion list-mode

// #region game-mode

type gameDump struct {
	GameID    string             `json:"game_id"`
	Turns     []game.TurnDetail  `json:"turns"`
	Summaries []game.RoundSummary `json:"summaries"`
}

func runGameMode(store *logging.TranscriptStore, gameID string, jsonOut bool) error {
	turns, err := store.Turns(gameID)
	if err != nil {
		return err
	}
	sums, err := store.Summaries(gameID)
	if err != nil {
		return err
	}
	if len(turns) == 0 {
		return fmt.Errorf("game %s has no recorded turns", gameID)
	}

	if jsonOut {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(gameDump{GameID: gameID, Turns: turns, Summaries: sums})
	}

	recaps := make(map[int]string, len(sums))
	for _, s := range sums {
		recaps[s.Round] = s.Body
	}

	round := 0
	for _, t := range turns {
		if t.Round != round {
			if body, ok := recaps[round]; ok {
				fmt.Printf("\n  [recap] %s\n", body)
			}
			round = t.Round
			fmt.Printf("\n----- Round %d -----\n", round)
		}
		mark := ""
		if t.Malformed {
			mark = " [malformed]"
		}
		fmt.Printf("%s: %s\n  -> (%s)%s %s\n", t.Speaker, t.Question, t.Verdict, mark, t.Answer)
	}
	if body, ok := recaps[round]; ok {
		fmt.Printf("\n  [recap] %s\n", body)
	}
	return nil
}

// #endregion game-mode
