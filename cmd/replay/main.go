package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/danielpatrickdp/turtle-soup/internal/replay"
)

// #region main

func main() {
	fixturePath := flag.String("fixture", "", "path to fixture JSON")
	transcript := flag.Bool("transcript", false, "print the full replayed transcript")
	flag.Parse()

	if *fixturePath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --fixture path/to/fixture.json [--transcript]")
		os.Exit(2)
	}

	f, err := replay.LoadFixture(*fixturePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load fixture: %v\n", err)
		os.Exit(1)
	}

	out, err := replay.Run(context.Background(), f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "replay: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Fixture: %s\n", f.Description)
	fmt.Printf("  turns=%d skipped=%d malformed=%d summaries=%d\n",
		out.Result.Turns, out.Result.Skipped, out.Result.Malformed, len(out.Result.Summaries))

	if *transcript {
		fmt.Println()
		for _, line := range out.Transcript {
			fmt.Println(line)
		}
		fmt.Println()
	}

	if !out.Passed() {
		fmt.Printf("FAIL: %d mismatches\n", len(out.Mismatches))
		for _, m := range out.Mismatches {
			fmt.Printf("  - %s\n", m)
		}
		os.Exit(1)
	}
	fmt.Println("PASS: replay matches expectations")
}

// #endregion main
