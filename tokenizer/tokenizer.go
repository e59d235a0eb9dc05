package tokenizer

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"

	"github.com/deanrtaylor1/goml/logger"
	"github.com/tebeka/snowball"
)

// Tokenizer splits a text into an ordered slice of tokens. Implementations
// must be deterministic and hold no state between calls.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Compiled once so they are not rebuilt on every call.
var (
	// Finds punctuation and symbols that are safe to remove outright.
	punctAtEnd = regexp.MustCompile(`([,@#!\?"'.</>]\B)|[']\b`)
	// Finds punctuation attached to the front of a word, replaced with a space.
	punctNotAtEnd = regexp.MustCompile(`([,@#!\?"'.])\b`)
	// Finds everything that is not a letter or a number, used to split words.
	findWhitespace = regexp.MustCompile(`[^A-Za-z0-9]`)
)

// SimpleTokenizer lowercases the text, strips punctuation and splits the rest
// into word chunks.
type SimpleTokenizer struct{}

func NewSimpleTokenizer() *SimpleTokenizer {
	return &SimpleTokenizer{}
}

func (t *SimpleTokenizer) Tokenize(text string) []string {
	line := strings.ToLower(strings.TrimSpace(text))
	line = punctAtEnd.ReplaceAllString(line, "")
	line = punctNotAtEnd.ReplaceAllString(line, " ")

	tokens := []string{}
	for _, token := range findWhitespace.Split(line, -1) {
		if token == "" {
			continue
		}
		tokens = append(tokens, token)
	}

	return tokens
}

// StemTokenizer wraps another tokenizer and snowball stems every token it
// produces.
type StemTokenizer struct {
	Inner    Tokenizer
	Language string
}

func NewStemTokenizer(inner Tokenizer, language string) *StemTokenizer {
	if language == "" {
		language = "english"
	}
	return &StemTokenizer{
		Inner:    inner,
		Language: language,
	}
}

func (t *StemTokenizer) Tokenize(text string) []string {
	stemmer, err := snowball.New(t.Language)
	if err != nil {
		logger.HandleError(err)
		return t.Inner.Tokenize(text)
	}
	defer stemmer.Close()

	tokens := t.Inner.Tokenize(text)
	for i, token := range tokens {
		tokens[i] = stemmer.Stem(strings.ToLower(token))
	}

	return tokens
}

// StripHTML parses a html string and returns the text content of the document
// as a single whitespace separated string
func StripHTML(htmlContent string) string {
	var content strings.Builder

	d := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := d.Next()
		switch tt {
		case html.ErrorToken:
			return strings.Join(strings.Fields(content.String()), " ")
		case html.TextToken:
			content.Write(d.Text())
			content.WriteByte(' ')
		}
	}
}
