package util

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/klauspost/compress/gzip"
)

// This function is used to write a json payload to a file on disk
func JSONToFile(j []byte, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	_, err = f.Write(j)
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// This function is used to marshal a value and optionally write it to disk
func ToJSON(v interface{}, createFile bool, filename string) (string, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error marshalling json: %v", err)
	}
	if createFile {
		if err := JSONToFile(b, filename); err != nil {
			return "", err
		}
	}
	return string(b), nil
}

// This function is used to write and compress a datastructure to disk
func WriteGzipGob(path string, data interface{}) error {
	var compressedData bytes.Buffer
	gzipWriter := gzip.NewWriter(&compressedData)

	encoder := gob.NewEncoder(gzipWriter)
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("error encoding model data: %v", err)
	}

	if err := gzipWriter.Close(); err != nil {
		return fmt.Errorf("error closing gzip writer: %v", err)
	}

	if err := os.WriteFile(path, compressedData.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing compressed data to disk: %v", err)
	}

	return nil
}

// This function is used to read and decompress a datastructure from disk
func ReadGzipGob(path string, out interface{}) error {
	compressedData, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	gzipReader, err := gzip.NewReader(bytes.NewReader(compressedData))
	if err != nil {
		return err
	}
	defer gzipReader.Close()

	decoder := gob.NewDecoder(gzipReader)
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("error decoding model data: %v", err)
	}

	return nil
}

// Utility function to check whether a path exists on disk
func CheckPathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil // Path does not exist
		}
		return false, err // Some other error occurred
	}
	return true, nil // Path exists
}

// This function lists the files available in a directory, used by the cli dataset prompt
func ListDataFiles(dirName string) []string {
	files, err := os.ReadDir(dirName)
	if err != nil {
		log.Println(err)
		return []string{}
	}

	names := []string{}
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		names = append(names, f.Name())
	}

	return names
}

const (
	TerminalReset  = "\033[0m"
	TerminalRed    = "\033[31m"
	TerminalGreen  = "\033[32m"
	TerminalYellow = "\033[33m"
	TerminalBlue   = "\033[34m"
	TerminalPurple = "\033[35m"
	TerminalCyan   = "\033[36m"
	TerminalWhite  = "\033[37m"
)
