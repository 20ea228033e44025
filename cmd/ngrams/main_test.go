package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunUsage(t *testing.T) {
	tests := [][]string{
		{},
		{"only-one"},
		{"a", "b"},
		{"a", "b", "c", "d"},
	}
	for _, args := range tests {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr); code != 1 {
			t.Errorf("run(%v) = %d, want 1", args, code)
		}
		if !strings.Contains(stderr.String(), "Usage: ngrams") {
			t.Errorf("run(%v) stderr = %q, want usage", args, stderr.String())
		}
		if stdout.Len() != 0 {
			t.Errorf("run(%v) wrote to stdout: %q", args, stdout.String())
		}
	}
}

func TestRunBadWindow(t *testing.T) {
	dir := t.TempDir()
	words := filepath.Join(dir, "words.txt")
	var stdout, stderr bytes.Buffer
	code := run([]string{"-window", "tumbling", dir, words, filepath.Join(dir, "letters.txt")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.NoFileExists(t, words)
}

func TestRunUnwritableOutput(t *testing.T) {
	dir := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{dir, filepath.Join(dir, "missing", "words.txt"), filepath.Join(dir, "letters.txt")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "for writing words")
	require.NoFileExists(t, filepath.Join(dir, "unigrams.txt"))
}

func TestRunEndToEnd(t *testing.T) {
	in := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(in, "book.txt"), []byte("The cat sat. The cat ran.\n"), 0o644))
	out := t.TempDir()
	wordsPath := filepath.Join(out, "words.txt")
	lettersPath := filepath.Join(out, "letters.txt")

	var stdout, stderr bytes.Buffer
	code := run([]string{"-outdir", out, in, wordsPath, lettersPath}, &stdout, &stderr)
	require.Equal(t, 0, code, stderr.String())
	require.Empty(t, stderr.String())
	require.Contains(t, stdout.String(), "corpus processed")

	words, err := os.ReadFile(wordsPath)
	require.NoError(t, err)
	require.Equal(t, "the\ncat\nsat\nthe\ncat\nran\n", string(words))

	letters, err := os.ReadFile(lettersPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(letters), "\n"), "\n")
	require.Len(t, lines, 26)
	require.Equal(t, "a\t4", lines[0])
	require.Equal(t, "t\t5", lines[19])

	bigrams, err := os.ReadFile(filepath.Join(out, "bigrams.txt"))
	require.NoError(t, err)
	require.Equal(t, "2\tthe cat\n1\tcat sat\n1\tsat the\n1\tthe ran\n", string(bigrams))
}

func TestRunMissingInput(t *testing.T) {
	out := t.TempDir()
	var stdout, stderr bytes.Buffer
	code := run([]string{"-outdir", out, filepath.Join(out, "absent"), filepath.Join(out, "w.txt"), filepath.Join(out, "l.txt")}, &stdout, &stderr)
	require.Equal(t, 1, code)
	require.Contains(t, stderr.String(), "run terminated")
}
