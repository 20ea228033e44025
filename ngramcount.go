package ngramcount

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/ieee0824/ngramcount/corpus"
	"github.com/ieee0824/ngramcount/language"
	"github.com/ieee0824/ngramcount/letters"
	"github.com/ieee0824/ngramcount/tokenize"
	"github.com/sirupsen/logrus"
)

// Config holds run parameters.
type Config struct {
	OutputDir string        // directory receiving the n-gram tables
	Window    language.Mode // how bigram and trigram windows advance
	MaxFiles  int           // stop after this many corpus files, 0 = no limit
	Sorted    bool          // write tables by descending count
}

// DefaultConfig returns the settings used when no option is given.
func DefaultConfig() Config {
	return Config{
		OutputDir: ".",
		Window:    language.Sticky,
	}
}

// Option configures a Counter.
type Option func(*Counter)

// WithLogger sets the progress logger.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Counter) {
		c.log = log
	}
}

// WithWindowMode selects sticky or sliding n-gram windows.
func WithWindowMode(mode language.Mode) Option {
	return func(c *Counter) {
		c.cfg.Window = mode
	}
}

// WithOutputDir sets where unigrams.txt, bigrams.txt and trigrams.txt go.
func WithOutputDir(dir string) Option {
	return func(c *Counter) {
		c.cfg.OutputDir = dir
	}
}

// WithMaxFiles limits the number of corpus files processed by Run.
func WithMaxFiles(n int) Option {
	return func(c *Counter) {
		c.cfg.MaxFiles = n
	}
}

// WithSortedOutput writes tables ordered by count instead of first-seen order.
func WithSortedOutput(sorted bool) Option {
	return func(c *Counter) {
		c.cfg.Sorted = sorted
	}
}

// Stats summarizes what a Counter has consumed so far.
type Stats struct {
	Files    int // input files fully processed
	Words    int // words extracted, admitted or not
	Admitted int // words that passed the filter
}

// Counter runs the word pipeline over a corpus: every extracted word is
// letter-counted, admitted words go to the word sink and the n-gram tables.
type Counter struct {
	cfg     Config
	log     logrus.FieldLogger
	words   *bufio.Writer
	ngrams  *language.Builder
	letters letters.Counts
	stats   Stats
}

// New creates a Counter writing admitted words, one per line, to words.
func New(words io.Writer, opts ...Option) *Counter {
	c := &Counter{
		cfg:   DefaultConfig(),
		log:   logrus.StandardLogger(),
		words: bufio.NewWriter(words),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.ngrams = language.NewBuilder(c.cfg.Window)
	return c
}

// Config returns the effective configuration.
func (c *Counter) Config() Config {
	return c.cfg
}

// Stats returns the running totals.
func (c *Counter) Stats() Stats {
	return c.stats
}

// Table returns the cumulative table of kind k.
func (c *Counter) Table(k language.Kind) *language.Table {
	return c.ngrams.Table(k)
}

// Letters returns the letter counts accumulated so far.
func (c *Counter) Letters() letters.Counts {
	return c.letters
}

// ProcessReader feeds every line of r through the pipeline. Lines have no
// length limit and the last one may lack a newline.
// Tables are not written; see ProcessFile.
func (c *Counter) ProcessReader(r io.Reader) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			if perr := c.processLine(line); perr != nil {
				return perr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (c *Counter) processLine(line string) error {
	for word := range tokenize.Words(line) {
		c.stats.Words++
		c.letters.Add(word)
		if !tokenize.Admit(word) {
			continue
		}
		c.stats.Admitted++
		if _, err := c.words.WriteString(word); err != nil {
			return fmt.Errorf("write word: %w", err)
		}
		if err := c.words.WriteByte('\n'); err != nil {
			return fmt.Errorf("write word: %w", err)
		}
		c.ngrams.Add(word)
	}
	return nil
}

// ProcessFile reads one corpus file and then rewrites the n-gram tables
// with the cumulative counts.
func (c *Counter) ProcessFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	before := c.stats
	if err := c.ProcessReader(f); err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	c.stats.Files++

	c.log.WithFields(logrus.Fields{
		"file":     path,
		"words":    c.stats.Words - before.Words,
		"admitted": c.stats.Admitted - before.Admitted,
	}).Debug("processed file")

	return c.Dump()
}

// Dump writes the three tables into the output directory.
func (c *Counter) Dump() error {
	return c.ngrams.Dump(c.cfg.OutputDir, c.cfg.Sorted)
}

// Run processes every corpus file under root, stopping at the first error.
// The tables are dumped after each file, and once for an empty corpus.
// The word sink is flushed on success.
func (c *Counter) Run(root string) (Stats, error) {
	c.log.WithField("root", root).Info("scanning corpus")

	for path, err := range corpus.Files(root) {
		if err != nil {
			return c.stats, fmt.Errorf("list corpus: %w", err)
		}
		if c.cfg.MaxFiles > 0 && c.stats.Files >= c.cfg.MaxFiles {
			c.log.WithField("max_files", c.cfg.MaxFiles).Warn("file limit reached, rest of corpus skipped")
			break
		}
		if err := c.ProcessFile(path); err != nil {
			return c.stats, err
		}
	}

	if c.stats.Files == 0 {
		c.log.Warn("no corpus files found")
		if err := c.Dump(); err != nil {
			return c.stats, err
		}
	}
	if err := c.Flush(); err != nil {
		return c.stats, err
	}

	c.log.WithFields(logrus.Fields{
		"files":    c.stats.Files,
		"words":    c.stats.Words,
		"admitted": c.stats.Admitted,
		"unigrams": c.ngrams.Table(language.Unigram).Len(),
		"bigrams":  c.ngrams.Table(language.Bigram).Len(),
		"trigrams": c.ngrams.Table(language.Trigram).Len(),
	}).Info("corpus processed")
	return c.stats, nil
}

// Flush writes any buffered words to the word sink.
func (c *Counter) Flush() error {
	if err := c.words.Flush(); err != nil {
		return fmt.Errorf("flush words: %w", err)
	}
	return nil
}

// WriteLetters writes the 26 letter counts to w.
func (c *Counter) WriteLetters(w io.Writer) error {
	_, err := c.letters.WriteTo(w)
	return err
}
