package words

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	lines := []string{
		"  CRANE ",
		"slate",
		"slate", // duplicate
		"toolong",
		"four",
		"cr4ne", // non-alphabetic
		"",
		"Brine",
	}
	got := normalize(lines)
	want := []string{"crane", "slate", "brine"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("normalize = %v, want %v", got, want)
	}
}

func TestReadWordFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	content := "crane\nSLATE\nnotaword6\nbrine\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := readWordFile(path)
	if err != nil {
		t.Fatalf("readWordFile: %v", err)
	}
	want := []string{"crane", "slate", "brine"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("readWordFile = %v, want %v", got, want)
	}
}

func TestReadWordFileMissing(t *testing.T) {
	if _, err := readWordFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
