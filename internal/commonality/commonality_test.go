package commonality

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestStaticScore(t *testing.T) {
	table := Static{"apple": 4.62, "crane": 3.56}

	tests := []struct {
		word string
		want float64
	}{
		{"apple", 4.62},
		{"APPLE", 4.62}, // case-insensitive
		{" crane ", 3.56},
		{"zzzzz", 0}, // unknown words score 0
	}
	for _, tt := range tests {
		if got := table.Score(tt.word); got != tt.want {
			t.Errorf("Score(%q) = %v, want %v", tt.word, got, tt.want)
		}
	}
}

func TestParseLines(t *testing.T) {
	lines := []string{
		"# comment",
		"",
		"apple 4.62",
		"CRANE 3.56",
	}
	table, err := ParseLines(lines)
	if err != nil {
		t.Fatalf("ParseLines: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("got %d entries, want 2", len(table))
	}
	if got := table.Score("crane"); got != 3.56 {
		t.Errorf("Score(crane) = %v, want 3.56", got)
	}
}

func TestParseLinesRejectsMalformed(t *testing.T) {
	for _, lines := range [][]string{
		{"apple"},
		{"apple 4.62 extra"},
		{"apple notanumber"},
	} {
		if _, err := ParseLines(lines); err == nil {
			t.Errorf("ParseLines(%v): expected error", lines)
		}
	}
}

func TestDBScoreAndImport(t *testing.T) {
	dir := t.TempDir()

	freqPath := filepath.Join(dir, "freq.txt")
	content := "# test table\napple 4.62\ncrane 3.56\n"
	if err := os.WriteFile(freqPath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	db, err := Open(filepath.Join(dir, "commonality.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	n, err := db.ImportFile(context.Background(), freqPath)
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if n != 2 {
		t.Errorf("imported %d pairs, want 2", n)
	}

	if got := db.Score("apple"); got != 4.62 {
		t.Errorf("Score(apple) = %v, want 4.62", got)
	}
	if got := db.Score("zzzzz"); got != 0 {
		t.Errorf("Score(zzzzz) = %v, want 0", got)
	}

	// Re-import replaces rows instead of duplicating them.
	if _, err := db.ImportFile(context.Background(), freqPath); err != nil {
		t.Fatalf("second ImportFile: %v", err)
	}
	count, err := db.Count(context.Background())
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 2 {
		t.Errorf("Count = %d, want 2", count)
	}
}
