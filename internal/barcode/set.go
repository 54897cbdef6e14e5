// Package barcode corrects noisy sequencing barcodes against a known
// whitelist, tolerating a bounded number of substitution and indel errors
// expressed as Levenshtein edit distance.
package barcode

import (
	"errors"
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/seqspell/internal/symspell"
)

var (
	// ErrEmptyWhitelist is returned by New when no barcodes are supplied.
	ErrEmptyWhitelist = errors.New("whitelist contains no barcodes")

	// ErrMixedLengths is returned by New when the whitelist contains
	// barcodes of more than one length.
	ErrMixedLengths = errors.New("whitelist contains barcodes of multiple lengths")
)

// Suggestion is a whitelist barcode matched by a lookup, together with the
// query (or query substring) that produced it and the edit distance between
// the two. Distance never exceeds the Set's maximum distance.
type Suggestion struct {
	Term     string
	Query    string
	Distance int
}

// Set is an immutable collection of uniform-length barcodes stored in a
// symspell index for fast approximate lookup. A Set is frozen after
// construction and safe to share across concurrent readers; adding a
// barcode means building a new Set.
type Set struct {
	index          *symspell.Index
	maxDist        int
	partitionWidth int
	barcodeLength  int
}

// New builds a Set from a whitelist of barcodes. Every barcode must have
// the same length (ErrMixedLengths otherwise) and maxDist must be smaller
// than that length. Duplicate barcodes collapse. partitionWidth tunes the
// index partitioning and has no effect on lookup results.
func New(barcodes []string, maxDist, partitionWidth int) (*Set, error) {
	index, err := symspell.New(&symspell.Config{
		MaxEditDistance: maxDist,
		PrefixLength:    partitionWidth,
	})
	if err != nil {
		return nil, fmt.Errorf("building barcode index: %w", err)
	}

	lengths := mapset.NewThreadUnsafeSet[int]()
	for _, bc := range barcodes {
		lengths.Add(len(bc))
	}
	if lengths.Cardinality() == 0 {
		return nil, ErrEmptyWhitelist
	}
	if lengths.Cardinality() > 1 {
		return nil, fmt.Errorf("%w: found lengths %v", ErrMixedLengths, lengths.ToSlice())
	}

	barcodeLength, _ := lengths.Pop()
	if maxDist >= barcodeLength {
		return nil, fmt.Errorf("%w: max distance %d must be less than barcode length %d",
			symspell.ErrInvalidConfig, maxDist, barcodeLength)
	}

	index.AddTerms(barcodes)

	return &Set{
		index:          index,
		maxDist:        maxDist,
		partitionWidth: partitionWidth,
		barcodeLength:  barcodeLength,
	}, nil
}

// Lookup finds the whitelist barcodes closest to a single query. Among all
// barcodes within the maximum distance, only those at the minimum distance
// found are returned; ties at that distance are all returned. An empty
// result means no barcode is within range.
func (s *Set) Lookup(query string) []Suggestion {
	sugs := s.index.Lookup(query, s.maxDist)
	if len(sugs) == 0 {
		return nil
	}

	// index results are sorted by distance, so the first is the minimum
	best := sugs[0].Distance
	var out []Suggestion
	for _, sg := range sugs {
		if sg.Distance > best {
			break
		}
		out = append(out, Suggestion{Term: sg.Term, Query: query, Distance: sg.Distance})
	}
	return out
}

// LookupBatch resolves a set of related query strings, typically alternative
// readings of the same underlying barcode, against the whitelist.
//
// If any query is an exact whitelist barcode, only those exact hits are
// returned and fuzzy matching is skipped for the whole batch: exact evidence
// anywhere overrides fuzzy evidence everywhere. Otherwise every query is
// looked up fuzzily, the results are pooled, and only suggestions at the
// global minimum distance survive, de-duplicated by (term, query, distance).
func (s *Set) LookupBatch(queries mapset.Set[string]) []Suggestion {
	qs := queries.ToSlice()

	if exact := s.index.ExactBatch(qs); len(exact) > 0 {
		out := make([]Suggestion, 0, len(exact))
		for _, term := range exact {
			out = append(out, Suggestion{Term: term, Query: term, Distance: 0})
		}
		return out
	}

	var pooled []Suggestion
	minDist := -1
	for _, q := range qs {
		for _, sg := range s.index.Lookup(q, s.maxDist) {
			pooled = append(pooled, Suggestion{Term: sg.Term, Query: q, Distance: sg.Distance})
			if minDist < 0 || sg.Distance < minDist {
				minDist = sg.Distance
			}
		}
	}
	if len(pooled) == 0 {
		return nil
	}

	dedup := mapset.NewThreadUnsafeSet[Suggestion]()
	for _, sg := range pooled {
		if sg.Distance == minDist {
			dedup.Add(sg)
		}
	}
	return dedup.ToSlice()
}

// MaxDist returns the maximum tolerated edit distance.
func (s *Set) MaxDist() int {
	return s.maxDist
}

// PartitionWidth returns the index partitioning width.
func (s *Set) PartitionWidth() int {
	return s.partitionWidth
}

// BarcodeLength returns the common length of all whitelist barcodes.
func (s *Set) BarcodeLength() int {
	return s.barcodeLength
}

// Len returns the number of unique barcodes in the whitelist.
func (s *Set) Len() int {
	return s.index.Len()
}

// Stats returns statistics about the underlying index.
func (s *Set) Stats() symspell.Stats {
	return s.index.Stats()
}
