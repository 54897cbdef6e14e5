package barcode

import (
	"log"

	"github.com/seqspell/internal/whitelist"
)

// Load reads a whitelist file and builds a Set from it. Source errors from
// the loader are propagated unchanged.
func Load(path string, maxDist, partitionWidth int) (*Set, error) {
	log.Printf("Reading barcodes from %s", path)
	barcodes, err := whitelist.ReadFile(path)
	if err != nil {
		return nil, err
	}

	set, err := New(barcodes, maxDist, partitionWidth)
	if err != nil {
		return nil, err
	}
	log.Printf("Built barcode index with %d barcodes", set.Len())
	return set, nil
}
