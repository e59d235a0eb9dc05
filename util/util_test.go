package util

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

type TestData struct {
	Name  string
	Value int
}

func TestWriteAndReadGzipGob(t *testing.T) {
	data := TestData{
		Name:  "Test",
		Value: 42,
	}

	// Define file name and directory name
	dirName := "testdir"
	filePath := dirName + "/testfile.gz"

	// Create a temporary directory
	if err := os.MkdirAll(dirName, 0755); err != nil {
		t.Fatalf("Failed to create temporary directory: %v", err)
	}

	if err := WriteGzipGob(filePath, data); err != nil {
		t.Fatalf("Failed to compress and write gzip file: %v", err)
	}

	// Check if the file exists
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		t.Fatalf("File %s does not exist", filePath)
	}

	var decoded TestData
	if err := ReadGzipGob(filePath, &decoded); err != nil {
		t.Fatalf("Failed to read and decompress gzip file: %v", err)
	}

	if !reflect.DeepEqual(decoded, data) {
		t.Errorf("ReadGzipGob() == %v, want %v", decoded, data)
	}

	// Clean up: remove the file and the temporary directory
	if err := os.Remove(filePath); err != nil {
		t.Fatalf("Failed to remove temporary file: %v", err)
	}

	if err := os.Remove(dirName); err != nil {
		t.Fatalf("Failed to remove temporary directory: %v", err)
	}
}

func TestReadGzipGobMissingFile(t *testing.T) {
	var decoded TestData
	if err := ReadGzipGob("does-not-exist.gz", &decoded); err == nil {
		t.Errorf("ReadGzipGob() == nil, want error for missing file")
	}
}

func TestCheckPathExists(t *testing.T) {
	exists, err := CheckPathExists("util.go")
	if err != nil {
		t.Fatalf("CheckPathExists() returned an error: %v", err)
	}
	if !exists {
		t.Errorf("CheckPathExists(util.go) == false, want true")
	}

	exists, err = CheckPathExists("does-not-exist.go")
	if err != nil {
		t.Fatalf("CheckPathExists() returned an error: %v", err)
	}
	if exists {
		t.Errorf("CheckPathExists(does-not-exist.go) == true, want false")
	}
}

func TestToJSON(t *testing.T) {
	got, err := ToJSON(map[string]string{"name": "test"}, false, "")
	if err != nil {
		t.Fatalf("ToJSON() returned an error: %v", err)
	}

	if !strings.Contains(got, "\"name\": \"test\"") {
		t.Errorf("ToJSON() == %s, want it to contain the name field", got)
	}
}
