package barcode

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/seqspell/internal/whitelist"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "whitelist.txt")
	if err := os.WriteFile(path, []byte("AAAA\nCCCC\nGGGG\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	set, err := Load(path, 1, 16)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if set.Len() != 3 || set.BarcodeLength() != 4 {
		t.Errorf("Load built %d barcodes of length %d, want 3 of length 4", set.Len(), set.BarcodeLength())
	}
}

func TestLoadEmptyFile(t *testing.T) {
	// A readable but empty whitelist is a validation failure, not a
	// source failure.
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path, 1, 16)
	if !errors.Is(err, ErrEmptyWhitelist) {
		t.Errorf("Load on empty whitelist error = %v, want ErrEmptyWhitelist", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such.txt"), 1, 16)
	if !errors.Is(err, whitelist.ErrUnavailable) {
		t.Errorf("Load on missing whitelist error = %v, want ErrUnavailable", err)
	}
}
