package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/danielpatrickdp/turtle-soup/internal/codec"
	"github.com/danielpatrickdp/turtle-soup/internal/config"
	"github.com/danielpatrickdp/turtle-soup/internal/game"
	"github.com/danielpatrickdp/turtle-soup/internal/logging"
	"github.com/danielpatrickdp/turtle-soup/internal/oracle"
	"github.com/danielpatrickdp/turtle-soup/internal/question"
	"github.com/danielpatrickdp/turtle-soup/internal/scenario"
	"github.com/danielpatrickdp/turtle-soup/internal/summary"
)

// #region main

func main() {
	configPath := flag.String("config", "", "path to YAML config (defaults apply when empty)")
	logDir := flag.String("log-dir", envOr("SOUP_LOG_DIR", "."), "directory for markdown transcripts")
	seed := flag.Int64("seed", 0, "scenario selection seed (0 = random)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	ctx := context.Background()

	gen, err := buildGenerator(ctx, cfg.Generator)
	if err != nil {
		log.Fatalf("generator: %v", err)
	}

	repo, err := buildRepository(cfg, *seed)
	if err != nil {
		log.Fatalf("scenario bank: %v", err)
	}
	sc := repo.Select()

	players := make([]*question.Questioner, 0, len(cfg.Players))
	for _, p := range cfg.Players {
		players = append(players, question.New(p.Name, p.Persona, gen))
	}
	orc := oracle.New(cfg.OracleName, sc, gen)
	sum := summary.New(cfg.Summarizer.Name, cfg.Summarizer.Persona, gen)

	logFile, err := openTranscript(*logDir)
	if err != nil {
		log.Fatalf("transcript file: %v", err)
	}
	defer logFile.Close()

	sink := game.NewTeeSink(game.NewWriterSink(os.Stdout), game.NewWriterSink(logFile))
	o := game.New(sc, players, orc, sum, sink, cfg.GameConfig())

	fmt.Printf("Turtle soup ready: %d players, %d rounds, puzzle %q\n\n", len(players), cfg.MaxRounds, sc.Title)

	res, err := o.Run(ctx)
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	if cfg.TranscriptDB != "" {
		store, err := logging.NewTranscriptStore(cfg.TranscriptDB)
		if err != nil {
			log.Fatalf("transcript store: %v", err)
		}
		defer store.Close()
		if err := store.RecordGame(res); err != nil {
			log.Printf("record game: %v", err)
		}
	}

	fmt.Printf("\nDone: game %s, %d turns, %d skipped, %d malformed. Transcript: %s\n",
		res.GameID, res.Turns, res.Skipped, res.Malformed, logFile.Name())
}

// #endregion main

// #region wiring

func buildGenerator(ctx context.Context, gc config.GeneratorConfig) (codec.Generator, error) {
	apiKey := os.Getenv(gc.APIKeyEnv)
	if apiKey == "" {
		return nil, fmt.Errorf("%s is not set", gc.APIKeyEnv)
	}

	switch gc.Backend {
	case "genai":
		return codec.NewGenAIClient(ctx, apiKey, gc.Model, gc.Temperature)
	case "chat":
		cc := codec.DefaultChatConfig()
		cc.APIKey = apiKey
		if gc.BaseURL != "" {
			cc.BaseURL = gc.BaseURL
		}
		if gc.Model != "" {
			cc.Model = gc.Model
		}
		if gc.Temperature > 0 {
			cc.Temperature = gc.Temperature
		}
		if gc.TimeoutSeconds > 0 {
			cc.Timeout = time.Duration(gc.TimeoutSeconds) * time.Second
		}
		return codec.NewChatClient(cc), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", gc.Backend)
	}
}

// buildRepository prefers the SQLite bank, then a YAML bank, then the
// builtin scenarios.
func buildRepository(cfg config.Config, seed int64) (*scenario.Repository, error) {
	var bank []scenario.Scenario
	switch {
	case cfg.BankDB != "":
		store, err := scenario.NewStore(cfg.BankDB)
		if err != nil {
			return nil, err
		}
		defer store.Close()
		bank, err = store.All()
		if err != nil {
			return nil, err
		}
	case cfg.BankPath != "":
		var err error
		bank, err = scenario.LoadBank(cfg.BankPath)
		if err != nil {
			return nil, err
		}
	default:
		bank = scenario.BuiltinBank()
	}

	if seed != 0 {
		return scenario.NewSeededRepository(bank, seed)
	}
	return scenario.NewRepository(bank)
}

func openTranscript(dir string) (*os.File, error) {
	name := fmt.Sprintf("turtle_soup_%s.md", time.Now().Format("20060102_150405"))
	return os.Create(fmt.Sprintf("%s/%s", dir, name))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion wiring
