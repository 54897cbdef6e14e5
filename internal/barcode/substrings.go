package barcode

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// LookupSubstrings scans a longer read for an embedded whitelist barcode.
// Insertions and deletions can shift the barcode's start position and change
// its apparent length by up to MaxDist characters in either direction, so
// every substring with a plausible start offset and length is generated and
// the whole candidate set is resolved with LookupBatch.
//
// Queries shorter than BarcodeLength-MaxDist cannot plausibly contain a
// barcode under the edit budget and return an empty result immediately.
func (s *Set) LookupSubstrings(query string) []Suggestion {
	if len(query) < s.barcodeLength-s.maxDist {
		return nil
	}
	return s.LookupBatch(s.substringCandidates(query))
}

// substringCandidates generates, at every plausible start offset, every
// substring whose length lies within maxDist of the barcode length.
// Windows running past the end of the query are dropped; duplicate
// substrings collapse.
func (s *Set) substringCandidates(query string) mapset.Set[string] {
	candidates := mapset.NewThreadUnsafeSet[string]()

	for i := 0; i < len(query)-s.barcodeLength+2*s.maxDist; i++ {
		for j := 0; j <= 2*s.maxDist; j++ {
			k := i + j + s.barcodeLength - s.maxDist
			if k <= len(query) {
				candidates.Add(query[i:k])
			}
		}
	}

	return candidates
}
