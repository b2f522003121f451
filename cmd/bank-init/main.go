package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/danielpatrickdp/turtle-soup/internal/scenario"
)

// #region main
func main() {
	dbPath := flag.String("db", envOr("SOUP_BANK_DB", "soup_bank.db"), "path to the scenario bank database")
	bankPath := flag.String("bank", "", "YAML scenario bank to seed from (builtin bank when empty)")
	flag.Parse()

	fmt.Println("=== Scenario Bank Bootstrap ===")
	fmt.Printf("  DB: %s\n", *dbPath)

	bank := scenario.BuiltinBank()
	if *bankPath != "" {
		loaded, err := scenario.LoadBank(*bankPath)
		if err != nil {
			log.Fatalf("load bank %s: %v", *bankPath, err)
		}
		bank = loaded
		fmt.Printf("  Source: %s (%d scenarios)\n", *bankPath, len(bank))
	} else {
		fmt.Printf("  Source: builtin (%d scenarios)\n", len(bank))
	}

	store, err := scenario.NewStore(*dbPath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	defer store.Close()

	if err := store.Seed(bank); err != nil {
		log.Fatalf("seed store: %v", err)
	}

	all, err := store.All()
	if err != nil {
		log.Fatalf("read back: %v", err)
	}
	fmt.Printf("Bank ready: %d scenarios.\n", len(all))
	for _, sc := range all {
		fmt.Printf("  - %s\n", sc.Title)
	}
}
// #endregion main

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
