package main

import (
	"fmt"
	"log"
	"os"

	"github.com/deanrtaylor1/goml/bench"
	"github.com/deanrtaylor1/goml/cli"
	"github.com/deanrtaylor1/goml/corpus"
	"github.com/deanrtaylor1/goml/knn"
	"github.com/deanrtaylor1/goml/util"
	"github.com/deanrtaylor1/goml/vecmath"
)

const (
	defaultDataset   = "./data/IMDB_Dataset.csv"
	defaultTrainFile = "./data/optdigits.tra"
	defaultTestFile  = "./data/optdigits.tes"
)

func help() {
	fmt.Println("GoML - A text vectorization benchmark written in Go")
	fmt.Println("Author: Dean Taylor")
	fmt.Println("Version: 0.1")
	fmt.Println("License: MIT")
	fmt.Println("default start: goml.exe times the vectorization pipeline over the default dataset")

	fmt.Println("CLI Usage: PROGRAM [SUBCOMMAND] [OPTIONS]")
	fmt.Println("----------------------------------")
	fmt.Println("Subcommands:")
	fmt.Println("    bench [path]:                    time the vectorization pipeline over a csv dataset")
	fmt.Println("    knn [train] [test]:              classify the optdigits test set and print the accuracy")
	fmt.Println("    cli:                             interactive benchmark")
	fmt.Println("    help:                            list all commands")
}

// Times the pipeline at each feature limit, printing one result per line.
// Only the timings go to stdout so the output stays easy to parse.
func runBench(path string) {
	docs, err := corpus.LoadTexts(path)
	if err != nil {
		log.Fatal(err)
	}

	log.Println(util.TerminalCyan + "Benchmarking " + path + util.TerminalReset)
	_, err = bench.Run(docs, bench.DefaultFeatureLimits, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// Classifies the optdigits test set with a 5-nearest neighbors model trained
// on the training set and prints the accuracy.
func runKNN(trainPath, testPath string) {
	xTrain, yTrain, err := corpus.ParseFloatsWithLabels(trainPath, false, corpus.ClassLast)
	if err != nil {
		log.Fatal(err)
	}
	xTest, yTest, err := corpus.ParseFloatsWithLabels(testPath, false, corpus.ClassLast)
	if err != nil {
		log.Fatal(err)
	}

	timer := bench.StartTimer()

	classifier := knn.NewKNN(5, xTrain, yTrain, vecmath.Euclidean, vecmath.NormL2)

	numCorrect := 0
	for i, x := range xTest {
		if classifier.Predict(x) == yTest[i] {
			numCorrect++
		}
	}

	fmt.Printf("Accuracy: %v Runtime: %vs\n", float64(numCorrect)/float64(len(xTest)), timer.Seconds())
}

func main() {
	if len(os.Args) < 1 {
		help()
		os.Exit(1)
	}
	args := os.Args[1:]
	if len(args) < 1 {
		runBench(defaultDataset)
		return
	}
	program := args[0]

	switch program {
	case "bench":
		path := defaultDataset
		if len(args) > 1 {
			path = args[1]
		}
		runBench(path)

	case "knn":
		trainPath := defaultTrainFile
		testPath := defaultTestFile
		if len(args) > 2 {
			trainPath = args[1]
			testPath = args[2]
		}
		runKNN(trainPath, testPath)

	case "cli":
		cli.InitialPrompt()

	case "-help":
		help()

	default:
		help()
	}
}
