// Command batch parses addresses offline: one raw address per input line,
// one JSON result per output line (NDJSON).
//
// Usage:
//
//	batch [-in addresses.txt] [-out results.ndjson] [-fuzzy 0.85]
//
// With no flags it reads stdin and writes stdout, so it composes with shell
// pipelines over large dumps.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"log"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/ub-address-parser/internal/parser"
)

func main() {
	inPath := flag.String("in", "", "input file, one address per line (default stdin)")
	outPath := flag.String("out", "", "output NDJSON file (default stdout)")
	fuzzy := flag.Float64("fuzzy", parser.DefaultFuzzyThreshold, "fuzzy district match threshold")
	quiet := flag.Bool("quiet", false, "suppress the progress log")
	flag.Parse()

	in := os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Fatalf("open input: %v", err)
		}
		defer f.Close()
		in = f
	}

	out := os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Fatalf("create output: %v", err)
		}
		defer f.Close()
		out = f
	}

	logger := zap.NewNop()
	if !*quiet {
		var err error
		if logger, err = zap.NewProduction(); err != nil {
			log.Fatalf("init logger: %v", err)
		}
		defer logger.Sync()
	}

	p := parser.NewAddressParser(*fuzzy, zap.NewNop())

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	writer := bufio.NewWriter(out)
	defer writer.Flush()
	encoder := json.NewEncoder(writer)

	var total, resolved int
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		total++

		result := p.Parse(line)
		if result.Confidence > 0 {
			resolved++
		}
		if err := encoder.Encode(result); err != nil {
			log.Fatalf("write result: %v", err)
		}
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("read input: %v", err)
	}

	logger.Info("batch finished",
		zap.Int("total", total),
		zap.Int("resolved", resolved),
		zap.String("rules_version", parser.RulesVersion))
}
