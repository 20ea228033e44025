package language

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrBadRecord is returned by LoadTable for a line that is not "count\tkey".
var ErrBadRecord = errors.New("malformed table record")

// LoadTable reads a table written by Table.WriteTo. Blank lines are skipped.
// A key seen twice has its counts summed.
func LoadTable(r io.Reader) (*Table, error) {
	t := NewTable()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		countStr, key, ok := strings.Cut(line, "\t")
		if !ok || key == "" {
			return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrBadRecord, line)
		}
		count, err := strconv.Atoi(countStr)
		if err != nil || count < 1 {
			return nil, fmt.Errorf("line %d: %w: bad count %q", lineNum, ErrBadRecord, countStr)
		}

		t.add(key, count)
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadTableFile is a convenience wrapper that opens a file path.
func LoadTableFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadTable(f)
}

func (t *Table) add(key string, count int) {
	if i, ok := t.index[key]; ok {
		t.entries[i].Count += count
		return
	}
	t.index[key] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: key, Count: count})
}
