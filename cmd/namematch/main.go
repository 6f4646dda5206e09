// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/sdiehl/human-match/internal/batch"
	"github.com/sdiehl/human-match/internal/core"
	"github.com/sdiehl/human-match/internal/matcher"
	"github.com/sdiehl/human-match/internal/version"
)

// confidence tiers for colored terminal output
const (
	highConfidence   = 0.85
	mediumConfidence = 0.60
)

type options struct {
	configFile  string
	lang1       string
	lang2       string
	format      string
	batchFile   string
	outputFile  string
	workers     int
	verbose     bool
	noColor     bool
	showVersion bool
	threshold   float64
}

func main() {
	opts := options{}
	flag.StringVar(&opts.configFile, "config", "", "Path to calibration file (YAML); searches standard locations when omitted")
	flag.StringVar(&opts.lang1, "lang1", "", "Language of the first name (en, fr, de, it, es, pt, ru, ar, zh; default: auto-detect)")
	flag.StringVar(&opts.lang2, "lang2", "", "Language of the second name (default: auto-detect)")
	flag.StringVar(&opts.format, "format", "text", "Output format: text, json, csv")
	flag.StringVar(&opts.batchFile, "batch", "", "Path to a CSV file of name pairs (name1,name2[,lang1,lang2])")
	flag.StringVar(&opts.outputFile, "output", "", "Path to output file (default: stdout)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of concurrent workers for batch mode (default: number of CPUs)")
	flag.BoolVar(&opts.verbose, "verbose", false, "Display component scores and segmented names")
	flag.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	flag.BoolVar(&opts.showVersion, "version", false, "Show version information")
	flag.Float64Var(&opts.threshold, "threshold", 0, "Exit with status 1 when any pair scores below this value")
	flag.Parse()

	if opts.showVersion {
		fmt.Println(version.Info())
		return
	}

	if opts.noColor || !term.IsTerminal(int(os.Stdout.Fd())) || opts.outputFile != "" {
		color.NoColor = true
	}

	configPath := opts.configFile
	if configPath == "" {
		configPath = matcher.FindConfigFile()
	}
	cfg, err := matcher.LoadConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default calibration\n")
	}
	m := matcher.NewWithConfig(cfg)

	out := io.Writer(os.Stdout)
	if opts.outputFile != "" {
		f, err := os.Create(opts.outputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot create output file: %v\n", err)
			os.Exit(2)
		}
		defer f.Close()
		out = f
	}

	var results []core.MatchResult
	switch {
	case opts.batchFile != "":
		results, err = runBatch(m, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}
	case flag.NArg() == 2:
		result := m.Match(flag.Arg(0), flag.Arg(1),
			core.Language(opts.lang1), core.Language(opts.lang2))
		results = []core.MatchResult{result}
	default:
		fmt.Fprintln(os.Stderr, "Usage: namematch [options] NAME1 NAME2")
		fmt.Fprintln(os.Stderr, "       namematch [options] -batch pairs.csv")
		flag.PrintDefaults()
		os.Exit(2)
	}

	if err := writeResults(out, results, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if opts.threshold > 0 {
		for _, r := range results {
			if r.Confidence < opts.threshold {
				os.Exit(1)
			}
		}
	}
}

// runBatch scores every pair in a CSV file across a worker pool. Rows may
// carry optional language columns; short rows are reported and skipped
// rather than aborting the whole batch.
func runBatch(m *matcher.Matcher, opts options) ([]core.MatchResult, error) {
	f, err := os.Open(opts.batchFile)
	if err != nil {
		return nil, fmt.Errorf("opening batch file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	var pairs []batch.Pair
	line := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading batch file: %w", err)
		}
		line++
		if len(record) < 2 {
			fmt.Fprintf(os.Stderr, "Warning: line %d has fewer than two columns, skipping\n", line)
			continue
		}
		pair := batch.Pair{
			Name1: record[0],
			Name2: record[1],
			Lang1: core.Language(opts.lang1),
			Lang2: core.Language(opts.lang2),
		}
		if len(record) >= 3 {
			pair.Lang1 = core.Language(strings.TrimSpace(record[2]))
		}
		if len(record) >= 4 {
			pair.Lang2 = core.Language(strings.TrimSpace(record[3]))
		}
		pairs = append(pairs, pair)
	}

	pool := batch.NewPool(opts.workers, m)
	return pool.Run(context.Background(), pairs), nil
}

func writeResults(out io.Writer, results []core.MatchResult, opts options) error {
	switch opts.format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if len(results) == 1 {
			return enc.Encode(results[0])
		}
		return enc.Encode(results)
	case "csv":
		return writeCSV(out, results)
	case "text":
		for _, r := range results {
			writeText(out, r, opts.verbose)
		}
		return nil
	default:
		return fmt.Errorf("unknown format %q (expected text, json, or csv)", opts.format)
	}
}

func writeCSV(out io.Writer, results []core.MatchResult) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"name1", "name2", "confidence", "method"}); err != nil {
		return err
	}
	for _, r := range results {
		record := []string{
			r.Name1.Original,
			r.Name2.Original,
			fmt.Sprintf("%.4f", r.Confidence),
			r.Method,
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeText(out io.Writer, r core.MatchResult, verbose bool) {
	tier := color.New(color.FgRed)
	switch {
	case r.Confidence >= highConfidence:
		tier = color.New(color.FgGreen)
	case r.Confidence >= mediumConfidence:
		tier = color.New(color.FgYellow)
	}

	fmt.Fprintf(out, "%s <> %s: %s (%s)\n",
		r.Name1.Original, r.Name2.Original,
		tier.Sprintf("%.4f", r.Confidence), r.Method)

	if !verbose {
		return
	}
	fmt.Fprintf(out, "  languages: %s / %s\n", r.Name1.Language, r.Name2.Language)
	fmt.Fprintf(out, "  name1: first=%q middle=%q last=%q\n", r.Name1.First, r.Name1.Middle, r.Name1.Last)
	fmt.Fprintf(out, "  name2: first=%q middle=%q last=%q\n", r.Name2.First, r.Name2.Middle, r.Name2.Last)
	for _, key := range []string{
		core.ScoreFirstName, core.ScoreLastName,
		core.ScoreMiddleName, core.ScorePhonetic,
		core.ScoreWholeName, core.ScoreLengthPenalty,
	} {
		if v, ok := r.Scores[key]; ok {
			fmt.Fprintf(out, "  %-15s %.4f\n", key, v)
		}
	}
}
