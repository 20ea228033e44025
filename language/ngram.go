package language

import (
	"bufio"
	"fmt"
	"io"
	"sort"
)

// Kind selects one of the three frequency tables.
type Kind int

const (
	Unigram Kind = iota + 1
	Bigram
	Trigram
)

// Kinds lists every table kind in dump order.
var Kinds = []Kind{Unigram, Bigram, Trigram}

// Order returns the number of words in a key of this kind.
func (k Kind) Order() int {
	return int(k)
}

// FileName returns the fixed name the table is written under, or "" for
// a value outside Kinds.
func (k Kind) FileName() string {
	switch k {
	case Unigram:
		return "unigrams.txt"
	case Bigram:
		return "bigrams.txt"
	case Trigram:
		return "trigrams.txt"
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case Unigram:
		return "unigram"
	case Bigram:
		return "bigram"
	case Trigram:
		return "trigram"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Entry is one table record.
type Entry struct {
	Key   string
	Count int
}

// Table maps an n-gram key (space-joined words) to its count.
// Entries keep the order in which their keys were first seen.
type Table struct {
	index   map[string]int // key -> position in entries
	entries []Entry
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{index: make(map[string]int)}
}

// Inc adds one to key, inserting it with count 1 if absent.
// It reports whether key was already present.
func (t *Table) Inc(key string) bool {
	if i, ok := t.index[key]; ok {
		t.entries[i].Count++
		return true
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Count: 1})
	return false
}

// Count returns the count for key, 0 if absent.
func (t *Table) Count(key string) int {
	if i, ok := t.index[key]; ok {
		return t.entries[i].Count
	}
	return 0
}

// Len returns the number of distinct keys.
func (t *Table) Len() int {
	return len(t.entries)
}

// Total returns the sum of all counts.
func (t *Table) Total() int {
	total := 0
	for _, e := range t.entries {
		total += e.Count
	}
	return total
}

// Entries returns a copy of the records in first-seen order.
func (t *Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Sorted returns the records by descending count, ties by key.
func (t *Table) Sorted() []Entry {
	out := t.Entries()
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// WriteTo writes "count\tkey" lines in first-seen order.
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	return writeEntries(w, t.entries)
}

// WriteSortedTo is WriteTo using the Sorted order.
func (t *Table) WriteSortedTo(w io.Writer) (int64, error) {
	return writeEntries(w, t.Sorted())
}

func writeEntries(w io.Writer, entries []Entry) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for _, e := range entries {
		n, err := fmt.Fprintf(bw, "%d\t%s\n", e.Count, e.Key)
		written += int64(n)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}
