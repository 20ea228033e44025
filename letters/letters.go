package letters

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ieee0824/ngramcount/tokenize"
)

// Alphabet lists the counted letters in output order.
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Counts holds one counter per letter, a=0 ... z=25.
type Counts [26]int

// Index returns the zero-based alphabet position of an ASCII letter,
// or -1 for any other byte.
func Index(c byte) int {
	if !tokenize.IsLetter(c) {
		return -1
	}
	return int(c|0x20) - 'a'
}

// Add counts every letter of word.
func (c *Counts) Add(word string) {
	for i := 0; i < len(word); i++ {
		if idx := Index(word[i]); idx >= 0 {
			c[idx]++
		}
	}
}

// Get returns the count for letter, case-insensitive.
func (c *Counts) Get(letter byte) int {
	idx := Index(letter)
	if idx < 0 {
		return 0
	}
	return c[idx]
}

// Total returns the sum over all 26 letters.
func (c *Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// WriteTo writes one "letter\tcount" line per letter in alphabetical order.
func (c *Counts) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var written int64
	for i, n := range c {
		k, err := fmt.Fprintf(bw, "%c\t%d\n", Alphabet[i], n)
		written += int64(k)
		if err != nil {
			return written, err
		}
	}
	return written, bw.Flush()
}
