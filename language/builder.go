package language

import (
	"fmt"
	"os"
	"path/filepath"
)

// Builder accumulates admitted words into unigram, bigram and trigram
// tables. Its windows carry over between calls, so n-grams span whatever
// boundaries the caller's input has.
type Builder struct {
	tables  map[Kind]*Table
	windows map[Kind]*Window
}

// NewBuilder creates a Builder whose windows use mode.
func NewBuilder(mode Mode) *Builder {
	b := &Builder{
		tables:  make(map[Kind]*Table, len(Kinds)),
		windows: make(map[Kind]*Window, len(Kinds)),
	}
	for _, k := range Kinds {
		b.tables[k] = NewTable()
		b.windows[k] = NewWindow(k.Order(), mode)
	}
	return b
}

// Add feeds one admitted word to every table.
func (b *Builder) Add(word string) {
	for _, k := range Kinds {
		b.windows[k].Push(word, b.tables[k])
	}
}

// Table returns the table of the given kind.
func (b *Builder) Table(k Kind) *Table {
	return b.tables[k]
}

// Dump writes every table to its fixed file name inside dir, replacing
// earlier dumps. With sorted the records are ordered by count.
func (b *Builder) Dump(dir string, sorted bool) error {
	for _, k := range Kinds {
		path := filepath.Join(dir, k.FileName())
		if err := writeTableFile(path, b.tables[k], sorted); err != nil {
			return fmt.Errorf("write %s table: %w", k, err)
		}
	}
	return nil
}

func writeTableFile(path string, t *Table, sorted bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	write := t.WriteTo
	if sorted {
		write = t.WriteSortedTo
	}
	if _, err := write(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
