package vectorizer

import (
	"errors"
	"sort"
	"strings"

	"github.com/deanrtaylor1/goml/sparse"
	"github.com/deanrtaylor1/goml/stopwords"
	"github.com/deanrtaylor1/goml/tokenizer"
)

var (
	// ErrEmptyVocabulary reports that fitting produced no features, either
	// because the corpus is empty or every token was removed.
	ErrEmptyVocabulary = errors.New("vectorizer: empty vocabulary")
	// ErrNotFitted reports that a transform was attempted before fitting.
	ErrNotFitted = errors.New("vectorizer: not fitted")
)

// Config holds the vectorizer options
type Config struct {
	// MaxFeatures caps the vocabulary size, keeping the terms with the
	// highest corpus frequency. Zero or negative keeps all terms.
	MaxFeatures int
	// NGramMin and NGramMax bound the length in tokens of the spans kept
	// as features.
	NGramMin int
	NGramMax int
	// Lowercase the text before tokenizing.
	Lowercase bool
	// StopWords are removed after tokenizing, before ngram assembly.
	StopWords []string
	// Tokenizer splits each document into tokens.
	Tokenizer tokenizer.Tokenizer
}

// DefaultConfig returns the default vectorizer configuration
func DefaultConfig() *Config {
	return &Config{
		MaxFeatures: 0,
		NGramMin:    1,
		NGramMax:    1,
		Lowercase:   true,
		Tokenizer:   tokenizer.NewTreebankTokenizer(),
	}
}

// Option is a functional option for configuration
type Option func(*Config)

// WithMaxFeatures caps the vocabulary size
func WithMaxFeatures(n int) Option {
	return func(c *Config) {
		c.MaxFeatures = n
	}
}

// WithNGramRange keeps token spans between min and max tokens long
func WithNGramRange(min, max int) Option {
	return func(c *Config) {
		c.NGramMin = min
		c.NGramMax = max
	}
}

// WithLowercase sets whether text is lowercased before tokenizing
func WithLowercase(lowercase bool) Option {
	return func(c *Config) {
		c.Lowercase = lowercase
	}
}

// WithStopWords sets the words removed before ngram assembly
func WithStopWords(words []string) Option {
	return func(c *Config) {
		c.StopWords = words
	}
}

// WithTokenizer sets the tokenizer
func WithTokenizer(t tokenizer.Tokenizer) Option {
	return func(c *Config) {
		c.Tokenizer = t
	}
}

// CountVectorizer converts documents into a sparse matrix of token counts. A
// vocabulary is learned from a corpus with Fit, then Transform maps documents
// onto it. Terms outside the vocabulary are ignored.
type CountVectorizer struct {
	config  *Config
	stopSet stopwords.Set

	columns  []string
	vocab    map[string]int
	docFreq  map[string]int
	docCount int
}

func NewCountVectorizer(opts ...Option) *CountVectorizer {
	config := DefaultConfig()
	for _, opt := range opts {
		opt(config)
	}

	return &CountVectorizer{
		config:  config,
		stopSet: stopwords.NewSet(config.StopWords),
	}
}

// Fit learns the vocabulary of the corpus. Every ngram is counted, the
// MaxFeatures terms with the highest corpus frequency are kept (ties broken
// lexicographically) and the surviving terms are assigned columns in
// lexicographic order.
func (v *CountVectorizer) Fit(docs []string) error {
	counts := make(map[string]int)
	docFreq := make(map[string]int)
	seen := make(map[string]bool)

	for _, doc := range docs {
		for term := range seen {
			delete(seen, term)
		}
		for _, term := range v.analyze(doc) {
			counts[term]++
			if !seen[term] {
				docFreq[term]++
				seen[term] = true
			}
		}
	}

	if len(counts) == 0 {
		return ErrEmptyVocabulary
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}

	if v.config.MaxFeatures > 0 && len(terms) > v.config.MaxFeatures {
		sort.Slice(terms, func(i, j int) bool {
			if counts[terms[i]] != counts[terms[j]] {
				return counts[terms[i]] > counts[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:v.config.MaxFeatures]
	}

	sort.Strings(terms)

	vocab := make(map[string]int, len(terms))
	freq := make(map[string]int, len(terms))
	for i, term := range terms {
		vocab[term] = i
		freq[term] = docFreq[term]
	}

	v.columns = terms
	v.vocab = vocab
	v.docFreq = freq
	v.docCount = len(docs)

	return nil
}

// Transform maps documents onto the fitted vocabulary. Each row holds the
// occurrence counts of the vocabulary terms in one document.
func (v *CountVectorizer) Transform(docs []string) (*sparse.Matrix, error) {
	if v.vocab == nil {
		return nil, ErrNotFitted
	}

	builder := sparse.NewBuilder(len(v.columns))
	rowCounts := make(map[int]float64)
	cols := []int{}
	vals := []float64{}

	for _, doc := range docs {
		for col := range rowCounts {
			delete(rowCounts, col)
		}
		for _, term := range v.analyze(doc) {
			if col, ok := v.vocab[term]; ok {
				rowCounts[col]++
			}
		}

		cols = cols[:0]
		for col := range rowCounts {
			cols = append(cols, col)
		}
		sort.Ints(cols)

		vals = vals[:0]
		for _, col := range cols {
			vals = append(vals, rowCounts[col])
		}

		builder.AppendRow(cols, vals)
	}

	return builder.Build(), nil
}

// FitTransform learns the vocabulary and transforms the corpus in one step
func (v *CountVectorizer) FitTransform(docs []string) (*sparse.Matrix, error) {
	if err := v.Fit(docs); err != nil {
		return nil, err
	}
	return v.Transform(docs)
}

// Vocabulary returns the fitted terms in column order
func (v *CountVectorizer) Vocabulary() []string {
	return v.columns
}

// Lookup returns the column index of a term in the fitted vocabulary
func (v *CountVectorizer) Lookup(term string) (int, bool) {
	col, ok := v.vocab[term]
	return col, ok
}

// DocCount returns the number of documents the vectorizer was fitted on
func (v *CountVectorizer) DocCount() int {
	return v.docCount
}

// DocFreq returns how many fitted documents contained the term
func (v *CountVectorizer) DocFreq(term string) int {
	return v.docFreq[term]
}

// analyze turns one document into its feature terms: lowercase, tokenize,
// remove stop words, then assemble ngrams from the remaining tokens.
func (v *CountVectorizer) analyze(doc string) []string {
	if v.config.Lowercase {
		doc = strings.ToLower(doc)
	}

	tokens := v.config.Tokenizer.Tokenize(doc)

	if len(v.stopSet) > 0 {
		kept := tokens[:0]
		for _, token := range tokens {
			if !v.stopSet.Has(token) {
				kept = append(kept, token)
			}
		}
		tokens = kept
	}

	if v.config.NGramMin == 1 && v.config.NGramMax == 1 {
		return tokens
	}

	terms := []string{}
	for n := v.config.NGramMin; n <= v.config.NGramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			terms = append(terms, strings.Join(tokens[i:i+n], " "))
		}
	}

	return terms
}
