// Command compose renders a notification from a JSON request file without
// running the service, for previewing and debugging composed text.
//
// Usage:
//
//	go run ./cmd/compose -in request.json
//	go run ./cmd/compose -in request.json -json
//	cat request.json | go run ./cmd/compose
//
// The -freeze flag pins the clock to a fixed instant so output is
// reproducible, e.g. for golden-file comparisons.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/bren-perry/iw-generator/internal/domain"
)

func main() {
	inPath := flag.String("in", "", "request JSON file (default: stdin)")
	asJSON := flag.Bool("json", false, "print the full notification as JSON")
	freeze := flag.String("freeze", "", "pin the clock to an RFC3339 instant for reproducible output")
	flag.Parse()

	if err := run(*inPath, *asJSON, *freeze); err != nil {
		fmt.Fprintln(os.Stderr, "compose:", err)
		os.Exit(1)
	}
}

func run(inPath string, asJSON bool, freeze string) error {
	if freeze != "" {
		at, err := time.Parse(time.RFC3339, freeze)
		if err != nil {
			return fmt.Errorf("invalid -freeze value: %w", err)
		}
		domain.SetClock(clockwork.NewFakeClockAt(at))
	}

	var in io.Reader = os.Stdin
	if inPath != "" {
		f, err := os.Open(inPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	var req domain.Request
	if err := json.NewDecoder(in).Decode(&req); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}

	n := domain.Compose(req)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(n)
	}

	fmt.Println(n.Headline)
	fmt.Println()
	fmt.Println(n.Description)
	return nil
}
