// Package symspell implements the Symmetric Delete approximate-dictionary
// index used for barcode error correction.
//
// SymSpell pre-computes delete variants of every dictionary term so that
// fuzzy lookups only have to verify a small candidate set with a real edit
// distance computation, instead of scanning the whole dictionary.
package symspell

import "errors"

// ErrInvalidConfig is returned by New when the index cannot be built for the
// supplied tuning parameters.
var ErrInvalidConfig = errors.New("invalid symspell configuration")

// Config holds the index tuning parameters.
type Config struct {
	// MaxEditDistance is the maximum Levenshtein distance the index can
	// answer fuzzy lookups for. Delete variants are pre-computed up to
	// this depth.
	MaxEditDistance int

	// PrefixLength is the number of leading characters used to partition
	// dictionary entries. Delete variants are generated over the term
	// prefix only, which bounds index size for long terms. Purely a
	// performance knob: it never changes lookup results, only their cost.
	// Must be greater than MaxEditDistance for the partitioning to be
	// sound.
	PrefixLength int
}

// DefaultConfig returns the tuning used when callers do not care:
// distance 2 with a 16 character partition prefix, which covers common
// 10-16bp barcode whitelists.
func DefaultConfig() *Config {
	return &Config{
		MaxEditDistance: 2,
		PrefixLength:    16,
	}
}

// Suggestion is a dictionary term found within the requested edit distance
// of a lookup query.
type Suggestion struct {
	// Term is the dictionary entry.
	Term string

	// Distance is the Levenshtein distance from the query to Term.
	Distance int
}

// Stats holds statistics about a built index.
type Stats struct {
	// TermCount is the number of unique terms in the dictionary.
	TermCount int

	// PartitionCount is the number of delete-variant partitions.
	PartitionCount int
}
