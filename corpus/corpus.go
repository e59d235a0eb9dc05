package corpus

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ClassPosition says where the class label sits in each row.
type ClassPosition int

const (
	// ClassFirst means the label is the first entry in each line.
	ClassFirst ClassPosition = iota
	// ClassLast means the label is the last entry in each line.
	ClassLast
)

var (
	// ErrFileAccess reports that the dataset could not be opened or read.
	ErrFileAccess = errors.New("corpus: file access error")
	// ErrEncoding reports that the dataset is not valid text.
	ErrEncoding = errors.New("corpus: encoding error")
)

// LoadTexts reads a comma separated file and returns the first field of every
// row that has at least one field, in file order. Header rows are not treated
// specially. The file must be UTF-8 encoded, with or without a byte order
// mark.
func LoadTexts(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	defer f.Close()

	reader := newReader(f)

	texts := []string{}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, wrapReadError(path, err)
		}
		if len(row) > 0 {
			texts = append(texts, row[0])
		}
	}

	return texts, nil
}

// ParseStrings reads every row of a delimited file as string fields.
func ParseStrings(path string, hasHeaders bool) ([][]string, error) {
	return readRows(path, hasHeaders)
}

// ParseFloats reads an unlabeled numeric dataset.
func ParseFloats(path string, hasHeaders bool) ([][]float64, error) {
	rows, err := readRows(path, hasHeaders)
	if err != nil {
		return nil, err
	}

	data := make([][]float64, 0, len(rows))
	for i, row := range rows {
		features, err := parseFloatRow(row, i)
		if err != nil {
			return nil, err
		}
		data = append(data, features)
	}

	return data, nil
}

// ParseFloatsWithLabels reads a numeric dataset with an integer class label in
// the first or last column and returns the features and labels separately.
func ParseFloatsWithLabels(path string, hasHeaders bool, pos ClassPosition) ([][]float64, []int, error) {
	rows, err := readRows(path, hasHeaders)
	if err != nil {
		return nil, nil, err
	}

	features := make([][]float64, 0, len(rows))
	labels := make([]int, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, nil, fmt.Errorf("error parsing %s: row %d has no feature columns", path, i)
		}

		label, err := strconv.Atoi(strings.TrimSpace(labelField(row, pos)))
		if err != nil {
			return nil, nil, fmt.Errorf("error parsing class label on row %d: %w", i, err)
		}

		rowFeatures, err := parseFloatRow(stripLabel(row, pos), i)
		if err != nil {
			return nil, nil, err
		}

		labels = append(labels, label)
		features = append(features, rowFeatures)
	}

	return features, labels, nil
}

// ParseStringsWithLabels reads a text dataset with a class label in the first
// or last column and returns the feature fields and labels separately.
func ParseStringsWithLabels(path string, hasHeaders bool, pos ClassPosition) ([][]string, []string, error) {
	rows, err := readRows(path, hasHeaders)
	if err != nil {
		return nil, nil, err
	}

	features := make([][]string, 0, len(rows))
	labels := make([]string, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, nil, fmt.Errorf("error parsing %s: row %d has no feature columns", path, i)
		}

		labels = append(labels, labelField(row, pos))
		features = append(features, stripLabel(row, pos))
	}

	return features, labels, nil
}

// Flatten collapses parsed rows into a single slice, in row order. Useful for
// datasets where each row is a single text field.
func Flatten(rows [][]string) []string {
	flat := []string{}
	for _, row := range rows {
		flat = append(flat, row...)
	}
	return flat
}

// newReader wraps a file in a BOM aware UTF-8 validating csv reader. Rows may
// have varying field counts and stray quotes are tolerated.
func newReader(f io.Reader) *csv.Reader {
	decoded := transform.NewReader(f, unicode.BOMOverride(encoding.UTF8Validator))
	reader := csv.NewReader(decoded)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader
}

func readRows(path string, hasHeaders bool) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFileAccess, err)
	}
	defer f.Close()

	rows, err := newReader(f).ReadAll()
	if err != nil {
		return nil, wrapReadError(path, err)
	}

	if hasHeaders && len(rows) > 0 {
		rows = rows[1:]
	}
	return rows, nil
}

func wrapReadError(path string, err error) error {
	if errors.Is(err, encoding.ErrInvalidUTF8) {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}
	return fmt.Errorf("error parsing %s: %w", path, err)
}

func labelField(row []string, pos ClassPosition) string {
	if pos == ClassFirst {
		return row[0]
	}
	return row[len(row)-1]
}

func stripLabel(row []string, pos ClassPosition) []string {
	if pos == ClassFirst {
		return row[1:]
	}
	return row[:len(row)-1]
}

func parseFloatRow(row []string, i int) ([]float64, error) {
	features := make([]float64, 0, len(row))
	for _, field := range row {
		v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return nil, fmt.Errorf("error parsing feature on row %d: %w", i, err)
		}
		features = append(features, v)
	}
	return features, nil
}
