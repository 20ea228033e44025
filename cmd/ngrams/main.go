// ngrams counts letters, words, bigrams and trigrams over every .txt file
// below a directory.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ieee0824/ngramcount"
	"github.com/ieee0824/ngramcount/language"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ngrams", flag.ContinueOnError)
	fs.SetOutput(stderr)
	outDir := fs.String("outdir", ".", "directory for unigrams.txt, bigrams.txt and trigrams.txt")
	window := fs.String("window", "sticky", "n-gram window mode: sticky or sliding")
	maxFiles := fs.Int("max-files", 0, "maximum corpus files to process (0=all)")
	sorted := fs.Bool("sort", false, "write tables by descending count")
	level := fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: ngrams [options] <input-dir> <words-out> <letters-out>")
		fmt.Fprintln(stderr, "  Counts letters and word n-grams over all .txt files under input-dir.")
		fmt.Fprintln(stderr, "  Admitted words go to words-out, one per line; letter counts to letters-out.")
		fmt.Fprintln(stderr, "  unigrams.txt, bigrams.txt and trigrams.txt are written to -outdir.")
		fmt.Fprintln(stderr)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 3 {
		fmt.Fprintf(stderr, "error: expected 3 arguments, got %d\n", fs.NArg())
		fs.Usage()
		return 1
	}
	inputDir, wordsPath, lettersPath := fs.Arg(0), fs.Arg(1), fs.Arg(2)

	mode, err := language.ParseMode(*window)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	lvl, err := logrus.ParseLevel(*level)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	progress := logrus.New()
	progress.SetOutput(stdout)
	progress.SetLevel(lvl)
	diag := logrus.New()
	diag.SetOutput(stderr)

	progress.WithField("dir", inputDir).Info("input directory")
	if mode == language.Sliding {
		progress.Warn("sliding windows count every adjacent pair; tables differ from the default sticky counts")
	}

	wordsFile, err := os.Create(wordsPath)
	if err != nil {
		diag.WithError(err).Errorf("unable to open %s for writing words", wordsPath)
		return 1
	}
	defer wordsFile.Close()
	progress.WithField("path", wordsPath).Info("opened words output")

	lettersFile, err := os.Create(lettersPath)
	if err != nil {
		diag.WithError(err).Errorf("unable to open %s for writing letter counts", lettersPath)
		return 1
	}
	defer lettersFile.Close()
	progress.WithField("path", lettersPath).Info("opened letter counts output")

	counter := ngramcount.New(wordsFile,
		ngramcount.WithLogger(progress),
		ngramcount.WithOutputDir(*outDir),
		ngramcount.WithWindowMode(mode),
		ngramcount.WithMaxFiles(*maxFiles),
		ngramcount.WithSortedOutput(*sorted),
	)
	if _, err := counter.Run(inputDir); err != nil {
		diag.WithError(err).Error("run terminated")
		return 1
	}

	if err := counter.WriteLetters(lettersFile); err != nil {
		diag.WithError(err).Errorf("write %s", lettersPath)
		return 1
	}
	if err := wordsFile.Close(); err != nil {
		diag.WithError(err).Errorf("close %s", wordsPath)
		return 1
	}
	if err := lettersFile.Close(); err != nil {
		diag.WithError(err).Errorf("close %s", lettersPath)
		return 1
	}
	return 0
}
