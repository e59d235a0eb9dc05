package vectorizer

import (
	"fmt"

	"github.com/deanrtaylor1/goml/logger"
	"github.com/deanrtaylor1/goml/stopwords"
	"github.com/deanrtaylor1/goml/util"
)

// modelState is the serialized form of a fitted vectorizer. The tokenizer is
// not serialized; loading uses whatever tokenizer the options provide.
type modelState struct {
	Columns     []string
	DocFreq     map[string]int
	DocCount    int
	MaxFeatures int
	NGramMin    int
	NGramMax    int
	Lowercase   bool
	StopWords   []string
}

// SaveModel writes the fitted vocabulary and options to disk as a gzip
// compressed gob so the corpus does not have to be refitted between runs.
func (v *CountVectorizer) SaveModel(path string) error {
	if v.vocab == nil {
		return ErrNotFitted
	}

	state := modelState{
		Columns:     v.columns,
		DocFreq:     v.docFreq,
		DocCount:    v.docCount,
		MaxFeatures: v.config.MaxFeatures,
		NGramMin:    v.config.NGramMin,
		NGramMax:    v.config.NGramMax,
		Lowercase:   v.config.Lowercase,
		StopWords:   v.config.StopWords,
	}

	return util.WriteGzipGob(path, state)
}

// LoadModel reads a fitted vectorizer back from disk
func LoadModel(path string, opts ...Option) (*CountVectorizer, error) {
	var state modelState
	if err := util.ReadGzipGob(path, &state); err != nil {
		return nil, err
	}

	v := NewCountVectorizer(opts...)
	v.config.MaxFeatures = state.MaxFeatures
	v.config.NGramMin = state.NGramMin
	v.config.NGramMax = state.NGramMax
	v.config.Lowercase = state.Lowercase
	v.config.StopWords = state.StopWords
	v.stopSet = stopwords.NewSet(state.StopWords)

	v.columns = state.Columns
	v.docFreq = state.DocFreq
	v.docCount = state.DocCount
	v.vocab = make(map[string]int, len(state.Columns))
	for i, term := range state.Columns {
		v.vocab[term] = i
	}

	logger.HandleLog(fmt.Sprintf("\n------------------\n%sFINISHED LOADING MODEL%s\n------------------\n", util.TerminalGreen, util.TerminalReset))

	return v, nil
}
