// Package scan locates whitelist barcodes embedded in sequencing reads.
package scan

import (
	"fmt"
	"io"

	"github.com/shenwei356/bio/seqio/fastx"

	"github.com/seqspell/internal/barcode"
)

const (
	chunkBuf  = 10
	chunkSize = 1000
)

// Result is the outcome of scanning a single read.
type Result struct {
	// Name is the read identifier from the FASTQ/FASTA header.
	Name string

	// Suggestions are the barcodes found in the read, empty when no
	// whitelist barcode is within the edit budget of any substring.
	Suggestions []barcode.Suggestion
}

// File applies substring lookup to every record of a FASTA/FASTQ file
// (gzipped or plain), calling fn with each read's result in file order.
// Scanning stops at the first error from fn.
func File(set *barcode.Set, path string, fn func(Result) error) error {
	reader, err := fastx.NewDefaultReader(path)
	if err != nil {
		return fmt.Errorf("opening reads %s: %w", path, err)
	}
	defer reader.Close()

	// the channel must be drained even after a failure, or the producer
	// goroutine blocks forever on a full channel
	var scanErr error
	for chunk := range reader.ChunkChan(chunkBuf, chunkSize) {
		if scanErr != nil {
			continue
		}
		if chunk.Err != nil {
			scanErr = fmt.Errorf("reading %s: %w", path, chunk.Err)
			continue
		}
		for _, record := range chunk.Data {
			result := Result{
				Name:        string(record.ID),
				Suggestions: set.LookupSubstrings(string(record.Seq.Seq)),
			}
			if err := fn(result); err != nil {
				scanErr = err
				break
			}
		}
	}
	return scanErr
}

// WriteTSV renders a scan result as "read\tterm\tquery\tdistance" lines, or
// a single "read\t-\t-\t-" line when nothing matched.
func WriteTSV(w io.Writer, r Result) error {
	if len(r.Suggestions) == 0 {
		_, err := fmt.Fprintf(w, "%s\t-\t-\t-\n", r.Name)
		return err
	}
	for _, sg := range r.Suggestions {
		if _, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\n", r.Name, sg.Term, sg.Query, sg.Distance); err != nil {
			return err
		}
	}
	return nil
}
