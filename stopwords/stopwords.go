package stopwords

import (
	"bufio"
	_ "embed"
	"os"
	"strings"
)

// The built in list is the NLTK English stop word list, one word per line.
//
//go:embed english.txt
var english string

// English returns the built in English stop word list
func English() []string {
	return splitWords(english)
}

// Load reads a newline separated stop word list from disk, used for languages
// that are not built in
func Load(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return words, nil
}

type Set map[string]bool

// NewSet converts a stop word list into a lookup table
func NewSet(words []string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}

func (s Set) Has(word string) bool {
	return s[word]
}

func splitWords(content string) []string {
	words := []string{}
	for _, line := range strings.Split(content, "\n") {
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	return words
}
