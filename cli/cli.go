package cli

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/deanrtaylor1/goml/bench"
	"github.com/deanrtaylor1/goml/corpus"
	"github.com/deanrtaylor1/goml/tokenizer"
	"github.com/deanrtaylor1/goml/util"
	"github.com/deanrtaylor1/goml/vectorizer"
)

//CLI Interface of GoML

const dataDir = "./data"

var tokenizerFlavors = []string{"treebank", "simple", "stemmed"}

// Clean up the CLI response to remove the bullet point
func formatCliResponse(response string) string {
	return strings.Replace(response, "○ ", "", -1)
}

// Utility function to get a single input from the user
func getSingleInputPrompt(message string) string {
	prompt := &survey.Input{
		Message: message,
	}

	var input string
	err := survey.AskOne(prompt, &input)
	if err != nil {
		log.Fatal(err)
	}

	return input
}

// Utility function to get a yes or no answer from the user
func getConfirmPrompt(message string) bool {
	prompt := &survey.Confirm{
		Message: message,
	}

	var answer bool
	err := survey.AskOne(prompt, &answer)
	if err != nil {
		log.Fatal(err)
	}

	return answer
}

// Start the CLI
func InitialPrompt() {
	path := datasetPrompt()
	docs := loadDataset(path)

	if getConfirmPrompt("Strip html tags from the text?") {
		for i, doc := range docs {
			docs[i] = tokenizer.StripHTML(doc)
		}
	}

	tok := tokenizerPrompt()
	limits := featureLimitsPrompt()

	runBenchmark(path, docs, limits, tok)
}

// Let the user pick a dataset from the data directory or enter a path
func datasetPrompt() string {
	options := []string{}
	for _, name := range util.ListDataFiles(dataDir) {
		options = append(options, "○ "+name)
	}
	options = append(options, "○ Enter A Path")

	prompt := &survey.Select{
		Message: "Select a dataset:",
		Options: options,
	}

	var selected string
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		log.Fatal(err)
	}

	selection := formatCliResponse(selected)
	if selection == "Enter A Path" {
		return getSingleInputPrompt("Enter the path to a csv dataset:")
	}

	return dataDir + "/" + selection
}

// Load the text column of the dataset, flattening away the label column when
// there is one
func loadDataset(path string) []string {
	if getConfirmPrompt("Does the dataset have a label column?") {
		rows, _, err := corpus.ParseStringsWithLabels(path, true, corpus.ClassLast)
		if err != nil {
			log.Fatal(err)
		}
		return corpus.Flatten(rows)
	}

	docs, err := corpus.LoadTexts(path)
	if err != nil {
		log.Fatal(err)
	}

	return docs
}

// Let the user pick the tokenizer used to split the documents
func tokenizerPrompt() tokenizer.Tokenizer {
	caser := cases.Title(language.English)

	options := []string{}
	for _, flavor := range tokenizerFlavors {
		options = append(options, "○ "+caser.String(flavor))
	}

	prompt := &survey.Select{
		Message: "Select a tokenizer:",
		Options: options,
	}

	var selected string
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		log.Fatal(err)
	}

	switch strings.ToLower(formatCliResponse(selected)) {
	case "simple":
		return tokenizer.NewSimpleTokenizer()
	case "stemmed":
		return tokenizer.NewStemTokenizer(tokenizer.NewSimpleTokenizer(), "english")
	default:
		return tokenizer.NewTreebankTokenizer()
	}
}

// Let the user pick which vocabulary caps to measure
func featureLimitsPrompt() []int {
	options := []string{}
	for _, limit := range bench.DefaultFeatureLimits {
		options = append(options, strconv.Itoa(limit))
	}

	prompt := &survey.MultiSelect{
		Message: "Select the feature limits to measure:",
		Options: options,
		Default: options,
	}

	var selected []string
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		log.Fatal(err)
	}

	limits := []int{}
	for _, s := range selected {
		limit, err := strconv.Atoi(s)
		if err != nil {
			continue
		}
		limits = append(limits, limit)
	}

	if len(limits) == 0 {
		return bench.DefaultFeatureLimits
	}

	return limits
}

// Run the benchmark over the chosen dataset and show the timings
func runBenchmark(dataset string, docs []string, limits []int, tok tokenizer.Tokenizer) {
	fmt.Printf(util.TerminalGreen+"Loaded %v documents from %v\n"+util.TerminalReset, len(docs), dataset)

	results, err := bench.Run(docs, limits, os.Stdout, vectorizer.WithTokenizer(tok))
	if err != nil {
		log.Fatal(err)
	}

	log.Println("------------------------------------")
	for _, result := range results {
		log.Println(util.TerminalCyan+"Vectorized ", len(docs), " documents with ", result.FeatureLimit, " features in ", result.Duration.Milliseconds(), " ms"+util.TerminalReset)
	}
	log.Println("------------------------------------")

	if getConfirmPrompt("Save a report of this run?") {
		report := bench.NewReport(dataset, results)
		path := "report-" + report.RunID.String() + ".json"
		if err := report.Write(path); err != nil {
			log.Println(err)
		} else {
			fmt.Println(util.TerminalGreen + "Report written to " + path + util.TerminalReset)
		}
	}

	finalPrompt()
}

// Offer another run or exit
func finalPrompt() {
	options := []string{
		"○ GoML: New Benchmark",
		"○ GoML: Quit",
	}

	prompt := &survey.Select{
		Message: "Next:",
		Options: options,
	}

	var selected string
	err := survey.AskOne(prompt, &selected)
	if err != nil {
		log.Fatal(err)
	}

	switch formatCliResponse(selected) {
	case "GoML: New Benchmark":
		InitialPrompt()
	default:
		os.Exit(0)
	}
}
