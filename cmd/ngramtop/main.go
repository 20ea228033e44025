package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"github.com/ieee0824/ngramcount/language"
)

func main() {
	n := flag.Int("n", 20, "number of entries to print (0=all)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ngramtop [options] <table-file>")
		fmt.Fprintln(os.Stderr, "  Prints the most frequent entries of a table written by ngrams")
		fmt.Fprintln(os.Stderr, "  (unigrams.txt, bigrams.txt or trigrams.txt).")
		fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	table, err := language.LoadTableFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "load %s: %v\n", flag.Arg(0), err)
		os.Exit(1)
	}

	w := bufio.NewWriter(os.Stdout)
	for _, e := range top(table, *n) {
		fmt.Fprintf(w, "%d\t%s\n", e.Count, e.Key)
	}
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "%d entries, %d occurrences\n", table.Len(), table.Total())
}

// top returns the n highest-count entries, all of them when n <= 0.
func top(t *language.Table, n int) []language.Entry {
	entries := t.Sorted()
	if n > 0 && n < len(entries) {
		entries = entries[:n]
	}
	return entries
}
