package tokenize

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWords(t *testing.T) {
	tests := []struct {
		line string
		want []string
	}{
		{"The cat sat. The cat ran.", []string{"the", "cat", "sat", "the", "cat", "ran"}},
		{"", nil},
		{"1234 -- !!", nil},
		{"don't stop", []string{"don", "t", "stop"}},
		{"HeLLo,World", []string{"hello", "world"}},
		{"abc123def", []string{"abc", "def"}},
		{"  trailing", []string{"trailing"}},
		{"café", []string{"caf"}},
		{"x", []string{"x"}},
	}

	for _, tt := range tests {
		got := slices.Collect(Words(tt.line))
		if !slices.Equal(got, tt.want) {
			t.Errorf("Words(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestWordsRestartable(t *testing.T) {
	seq := Words("one two three")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	require.Equal(t, first, second)
	require.Len(t, first, 3)
}

func TestWordsEarlyStop(t *testing.T) {
	var got []string
	for w := range Words("alpha beta gamma") {
		got = append(got, w)
		if w == "beta" {
			break
		}
	}
	require.Equal(t, []string{"alpha", "beta"}, got)
}

func TestAdmit(t *testing.T) {
	tests := []struct {
		word string
		want bool
	}{
		{"a", true},
		{"i", true},
		{"b", false},
		{"x", false},
		{"s", false},
		{"of", true},
		{"zz", true},
		{"", false},
		{"gutenberg", true},
	}

	for _, tt := range tests {
		if got := Admit(tt.word); got != tt.want {
			t.Errorf("Admit(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}
