// Package whitelist loads barcode whitelists from their external sources:
// line-oriented (optionally gzipped) files and postgres tables.
package whitelist

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/shenwei356/xopen"
)

// ErrUnavailable wraps every failure to read a whitelist source, so callers
// can distinguish source problems from validation problems.
var ErrUnavailable = errors.New("whitelist source unavailable")

// ReadFile reads barcodes from a line-oriented whitelist file, one barcode
// per line. Gzipped files are decompressed transparently based on the file
// extension. Blank lines and '#' comment lines are skipped; barcodes are
// kept byte-for-byte as written, with no case normalization.
func ReadFile(path string) ([]string, error) {
	fh, err := xopen.Ropen(path)
	if err != nil {
		// an empty whitelist file is readable, it just has no barcodes;
		// whether that is acceptable is the builder's decision
		if errors.Is(err, xopen.ErrNoContent) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: opening %s: %v", ErrUnavailable, path, err)
	}
	defer fh.Close()

	var barcodes []string
	scanner := bufio.NewScanner(fh)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		barcodes = append(barcodes, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrUnavailable, path, err)
	}

	return barcodes, nil
}
