package stopwords

import (
	"os"
	"reflect"
	"testing"
)

func TestEnglish(t *testing.T) {
	words := English()

	if len(words) != 179 {
		t.Errorf("English().len == %d, want 179", len(words))
	}

	if words[0] != "i" {
		t.Errorf("English()[0] == %s, want i", words[0])
	}

	set := NewSet(words)

	for _, w := range []string{"the", "and", "don't", "wouldn't"} {
		if !set.Has(w) {
			t.Errorf("English() is missing %q", w)
		}
	}

	if set.Has("cat") {
		t.Errorf("English() contains cat, want it absent")
	}
}

func TestNewSet(t *testing.T) {
	set := NewSet([]string{"a", "b"})

	if !set.Has("a") {
		t.Errorf("Set.Has(a) == false, want true")
	}

	if set.Has("c") {
		t.Errorf("Set.Has(c) == true, want false")
	}
}

func TestLoad(t *testing.T) {
	fileName := "testwords.txt"

	content := "alpha\nbeta\n\n  gamma  \n"
	if err := os.WriteFile(fileName, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temporary stop word file: %v", err)
	}

	words, err := Load(fileName)
	if err != nil {
		t.Fatalf("Load() returned an error: %v", err)
	}

	expected := []string{"alpha", "beta", "gamma"}
	if !reflect.DeepEqual(words, expected) {
		t.Errorf("Load() == %v, want %v", words, expected)
	}

	// Clean up: remove the temporary file
	if err := os.Remove(fileName); err != nil {
		t.Fatalf("Failed to remove temporary file: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does-not-exist.txt")
	if err == nil {
		t.Errorf("Load() == nil, want error for missing file")
	}
}
