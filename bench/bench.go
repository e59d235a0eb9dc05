package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/deanrtaylor1/goml/stopwords"
	"github.com/deanrtaylor1/goml/tokenizer"
	"github.com/deanrtaylor1/goml/util"
	"github.com/deanrtaylor1/goml/vectorizer"
)

// DefaultFeatureLimits are the vocabulary caps measured by Run, in the order
// they are run.
var DefaultFeatureLimits = []int{50, 100, 1000, 10000}

// Timer measures the wall-clock duration of one measured region
type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

func (t *Timer) Seconds() float64 {
	return t.Elapsed().Seconds()
}

// Result is one timed pipeline execution
type Result struct {
	FeatureLimit int           `json:"feature_limit"`
	Duration     time.Duration `json:"duration"`
	Seconds      float64       `json:"seconds"`
}

// RunPipeline runs the vectorization pipeline once over the corpus with the
// given vocabulary cap and measures how long it takes. The tokenizer,
// vectorizer and transformer are constructed inside the measured region and
// never reused, so no state carries over between trials. The weighted matrix
// is discarded; only the timing is kept. Extra options are applied after the
// defaults and can override them.
func RunPipeline(corpus []string, featureLimit int, extra ...vectorizer.Option) (Result, error) {
	timer := StartTimer()

	opts := []vectorizer.Option{
		vectorizer.WithMaxFeatures(featureLimit),
		vectorizer.WithTokenizer(tokenizer.NewTreebankTokenizer()),
		vectorizer.WithStopWords(stopwords.English()),
		vectorizer.WithNGramRange(1, 2),
	}
	opts = append(opts, extra...)
	v := vectorizer.NewCountVectorizer(opts...)

	counts, err := v.FitTransform(corpus)
	if err != nil {
		return Result{}, err
	}

	transformer := vectorizer.NewTfidfTransformer()
	_, err = transformer.FitTransform(counts)
	if err != nil {
		return Result{}, err
	}

	elapsed := timer.Elapsed()
	return Result{
		FeatureLimit: featureLimit,
		Duration:     elapsed,
		Seconds:      elapsed.Seconds(),
	}, nil
}

// Run measures the pipeline at every feature limit in order, writing each
// elapsed time in seconds on its own line as it completes. The trials run
// sequentially so they never contend with each other, and the first failure
// stops the run.
func Run(corpus []string, featureLimits []int, w io.Writer, extra ...vectorizer.Option) ([]Result, error) {
	results := make([]Result, 0, len(featureLimits))
	for _, limit := range featureLimits {
		result, err := RunPipeline(corpus, limit, extra...)
		if err != nil {
			return results, err
		}

		fmt.Fprintln(w, result.Seconds)
		results = append(results, result)
	}

	return results, nil
}

// Report is a saved benchmark run
type Report struct {
	RunID     uuid.UUID `json:"run_id"`
	Dataset   string    `json:"dataset"`
	CreatedAt time.Time `json:"created_at"`
	Results   []Result  `json:"results"`
}

func NewReport(dataset string, results []Result) Report {
	return Report{
		RunID:     uuid.New(),
		Dataset:   dataset,
		CreatedAt: time.Now(),
		Results:   results,
	}
}

// Write saves the report as indented json
func (r Report) Write(path string) error {
	_, err := util.ToJSON(r, true, path)
	return err
}
