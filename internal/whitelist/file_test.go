package whitelist

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shenwei356/xopen"
)

func writeWhitelist(t *testing.T, path string, lines []string) {
	t.Helper()

	fh, err := xopen.Wopen(path)
	if err != nil {
		t.Fatalf("creating %s: %v", path, err)
	}
	for _, line := range lines {
		if _, err := fh.WriteString(line + "\n"); err != nil {
			t.Fatalf("writing %s: %v", path, err)
		}
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("closing %s: %v", path, err)
	}
}

func TestReadFile(t *testing.T) {
	lines := []string{
		"# sample whitelist",
		"ACGTACGT",
		"",
		"AACCGGTT",
		"TTGGCCAA",
	}
	want := []string{"ACGTACGT", "AACCGGTT", "TTGGCCAA"}

	tests := []struct {
		name     string
		filename string
	}{
		{
			name:     "plain file",
			filename: "whitelist.txt",
		},
		{
			name:     "gzipped file",
			filename: "whitelist.txt.gz",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.filename)
			writeWhitelist(t, path, lines)

			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile(%s) failed: %v", path, err)
			}

			if len(got) != len(want) {
				t.Fatalf("ReadFile(%s) = %v, want %v", path, got, want)
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("barcode %d = %q, want %q", i, got[i], want[i])
				}
			}
		})
	}
}

func TestReadFilePreservesCase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whitelist.txt")
	writeWhitelist(t, path, []string{"acgtACGT"})

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if len(got) != 1 || got[0] != "acgtACGT" {
		t.Errorf("ReadFile = %v, barcodes must be kept byte-for-byte", got)
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "no-such-file.txt"))
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("ReadFile on missing file error = %v, want ErrUnavailable", err)
	}
}

func TestReadFileEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile on empty file failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ReadFile on empty file = %v, want no barcodes", got)
	}
}
