package symspell

import (
	"fmt"
	"sort"
)

// Index is a Symmetric Delete dictionary over a set of terms. It supports
// exact batch lookups and distance-annotated fuzzy lookups bounded by the
// configured maximum edit distance.
//
// An Index is not safe for concurrent mutation, but once all terms are
// added it is safe to share across any number of concurrent readers.
type Index struct {
	// terms is the set of dictionary entries
	terms map[string]struct{}

	// partitions maps prefix delete variants to the terms they derive from
	partitions map[string][]string

	config *Config
}

// New creates an empty Index with the given configuration.
func New(config *Config) (*Index, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if config.MaxEditDistance < 0 {
		return nil, fmt.Errorf("%w: max edit distance %d is negative", ErrInvalidConfig, config.MaxEditDistance)
	}
	if config.PrefixLength < 1 {
		return nil, fmt.Errorf("%w: prefix length %d must be at least 1", ErrInvalidConfig, config.PrefixLength)
	}
	if config.PrefixLength <= config.MaxEditDistance {
		return nil, fmt.Errorf("%w: prefix length %d must exceed max edit distance %d",
			ErrInvalidConfig, config.PrefixLength, config.MaxEditDistance)
	}
	return &Index{
		terms:      make(map[string]struct{}),
		partitions: make(map[string][]string),
		config:     config,
	}, nil
}

// AddTerm adds a term to the dictionary and indexes its prefix delete
// variants. Adding a term twice is a no-op.
func (ix *Index) AddTerm(term string) {
	if _, ok := ix.terms[term]; ok {
		return
	}
	ix.terms[term] = struct{}{}

	for _, del := range ix.deleteVariants(ix.prefix(term)) {
		ix.partitions[del] = append(ix.partitions[del], term)
	}
}

// AddTerms adds every term in the slice.
func (ix *Index) AddTerms(terms []string) {
	for _, term := range terms {
		ix.AddTerm(term)
	}
}

// Contains reports whether a term exists exactly in the dictionary.
func (ix *Index) Contains(term string) bool {
	_, ok := ix.terms[term]
	return ok
}

// Len returns the number of unique terms in the dictionary.
func (ix *Index) Len() int {
	return len(ix.terms)
}

// MaxEditDistance returns the configured distance bound.
func (ix *Index) MaxEditDistance() int {
	return ix.config.MaxEditDistance
}

// PrefixLength returns the configured partition width.
func (ix *Index) PrefixLength() int {
	return ix.config.PrefixLength
}

// ExactBatch runs one exact-match pass of the whole query set against the
// dictionary and returns only the queries that are dictionary terms.
func (ix *Index) ExactBatch(queries []string) []string {
	var hits []string
	for _, q := range queries {
		if _, ok := ix.terms[q]; ok {
			hits = append(hits, q)
		}
	}
	return hits
}

// Lookup returns every dictionary term whose Levenshtein distance to the
// query is at most maxDist, annotated with that distance. maxDist is capped
// at the configured maximum. Results are sorted by distance, then term.
func (ix *Index) Lookup(query string, maxDist int) []Suggestion {
	if len(query) == 0 {
		return nil
	}
	if maxDist > ix.config.MaxEditDistance {
		maxDist = ix.config.MaxEditDistance
	}
	if maxDist < 0 {
		return nil
	}

	// Candidate terms come from the partitions of the query's prefix and
	// of every delete variant of that prefix. Each candidate is verified
	// with a real distance computation, so partitioning can only ever
	// over-approximate.
	seen := make(map[string]bool)
	var candidates []Suggestion

	for _, del := range ix.deleteVariants(ix.prefix(query)) {
		for _, term := range ix.partitions[del] {
			if seen[term] {
				continue
			}
			seen[term] = true

			dist := editDistance(query, term, maxDist)
			if dist >= 0 {
				candidates = append(candidates, Suggestion{Term: term, Distance: dist})
			}
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].Term < candidates[j].Term
	})

	return candidates
}

// Stats returns statistics about the dictionary.
func (ix *Index) Stats() Stats {
	return Stats{
		TermCount:      len(ix.terms),
		PartitionCount: len(ix.partitions),
	}
}

// prefix truncates a string to the configured partition width.
func (ix *Index) prefix(s string) string {
	if len(s) > ix.config.PrefixLength {
		return s[:ix.config.PrefixLength]
	}
	return s
}

// deleteVariants returns the prefix itself plus every variant reachable by
// deleting up to MaxEditDistance characters from it.
func (ix *Index) deleteVariants(prefix string) []string {
	deletes := map[string]bool{prefix: true}
	ix.deleteVariantsRecursive(prefix, ix.config.MaxEditDistance, deletes)

	result := make([]string, 0, len(deletes))
	for del := range deletes {
		result = append(result, del)
	}
	return result
}

func (ix *Index) deleteVariantsRecursive(s string, distance int, deletes map[string]bool) {
	if distance <= 0 || len(s) <= 1 {
		return
	}

	for i := 0; i < len(s); i++ {
		del := s[:i] + s[i+1:]
		if !deletes[del] {
			deletes[del] = true
			ix.deleteVariantsRecursive(del, distance-1, deletes)
		}
	}
}

// editDistance calculates the Levenshtein distance between two strings.
// Returns -1 if the distance exceeds maxDistance (early exit optimisation).
func editDistance(a, b string, maxDistance int) int {
	lenA, lenB := len(a), len(b)

	// Quick length check
	if abs(lenA-lenB) > maxDistance {
		return -1
	}

	// Empty string cases
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Ensure a is the shorter string
	if lenA > lenB {
		a, b = b, a
		lenA, lenB = lenB, lenA
	}

	// Use only two rows of the matrix for memory efficiency
	prev := make([]int, lenA+1)
	curr := make([]int, lenA+1)

	for i := 0; i <= lenA; i++ {
		prev[i] = i
	}

	for j := 1; j <= lenB; j++ {
		curr[0] = j
		minDist := j

		for i := 1; i <= lenA; i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min3(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)

			if curr[i] < minDist {
				minDist = curr[i]
			}
		}

		// Early exit if minimum distance in row exceeds maxDistance
		if minDist > maxDistance {
			return -1
		}

		prev, curr = curr, prev
	}

	if prev[lenA] > maxDistance {
		return -1
	}
	return prev[lenA]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func min3(a, b, c int) int {
	return min2(min2(a, b), c)
}
