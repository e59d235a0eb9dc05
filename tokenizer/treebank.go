package tokenizer

import (
	"regexp"
	"strings"
)

// rule pairs a compiled pattern with its replacement
type rule struct {
	re   *regexp.Regexp
	repl string
}

// The tables below reproduce the Penn Treebank tokenization conventions as an
// ordered regex pipeline. Order matters: quotes first, then punctuation, then
// brackets and dashes, then clitics and multi word contractions.
var startingQuotes = []rule{
	{regexp.MustCompile(`^"`), "``"},
	{regexp.MustCompile("(``)"), " $1 "},
	{regexp.MustCompile(`([ (\[{<])("|'{2})`), "$1 `` "},
}

var punctuation = []rule{
	{regexp.MustCompile(`([:,])([^\d])`), " $1 $2"},
	{regexp.MustCompile(`([:,])$`), " $1 "},
	{regexp.MustCompile(`\.\.\.`), " ... "},
	{regexp.MustCompile(`[;@#$%&]`), " $0 "},
	// Splits off a sentence final period but leaves abbreviations like U.S. intact
	{regexp.MustCompile(`([^\.])(\.)([\])}>"']*)\s*$`), "$1 $2$3 "},
	{regexp.MustCompile(`[?!]`), " $0 "},
	{regexp.MustCompile(`([^'])' `), "$1 ' "},
}

var parensBrackets = rule{regexp.MustCompile(`[\][(){}<>]`), " $0 "}

var doubleDashes = rule{regexp.MustCompile(`--`), " -- "}

var endingQuotes = []rule{
	{regexp.MustCompile(`"`), " '' "},
	{regexp.MustCompile(`(\S)('')`), "$1 $2 "},
	{regexp.MustCompile(`([^' ])('[sS]|'[mM]|'[dD]|') `), "$1 $2 "},
	{regexp.MustCompile(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `), "$1 $2 "},
}

var contractions = []rule{
	{regexp.MustCompile(`(?i)\b(can)(not)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(d)('ye)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(gim)(me)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(gon)(na)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(got)(ta)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(lem)(me)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(more)('n)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i)\b(wan)(na)(\s)`), " $1 $2$3"},
	{regexp.MustCompile(`(?i) ('t)(is)\b`), " $1 $2 "},
	{regexp.MustCompile(`(?i) ('t)(was)\b`), " $1 $2 "},
}

// TreebankTokenizer splits text following the Penn Treebank conventions.
// Punctuation is separated from words, contractions are split into their
// parts ("don't" becomes "do" and "n't") and quote characters are converted
// to `` and '' pairs.
type TreebankTokenizer struct{}

func NewTreebankTokenizer() *TreebankTokenizer {
	return &TreebankTokenizer{}
}

func (t *TreebankTokenizer) Tokenize(text string) []string {
	for _, r := range startingQuotes {
		text = r.re.ReplaceAllString(text, r.repl)
	}

	for _, r := range punctuation {
		text = r.re.ReplaceAllString(text, r.repl)
	}

	text = parensBrackets.re.ReplaceAllString(text, parensBrackets.repl)
	text = doubleDashes.re.ReplaceAllString(text, doubleDashes.repl)

	// The clitic and quote rules expect a space on both ends of the text
	text = " " + text + " "

	for _, r := range endingQuotes {
		text = r.re.ReplaceAllString(text, r.repl)
	}

	for _, r := range contractions {
		text = r.re.ReplaceAllString(text, r.repl)
	}

	return strings.Fields(text)
}
