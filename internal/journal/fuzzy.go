package journal

import "strings"

// FuzzyMatch returns true if query fuzzy-matches target.
// Matching is case-insensitive and succeeds on substring match or if
// the query characters appear as a subsequence in the target.
func FuzzyMatch(target, query string) bool {
	if query == "" {
		return true
	}
	t := strings.ToLower(target)
	q := strings.ToLower(query)
	if strings.Contains(t, q) {
		return true
	}
	// subsequence match (rune-aware)
	qr := []rune(q)
	i := 0
	for _, ch := range t {
		if i < len(qr) && qr[i] == ch {
			i++
			if i >= len(qr) {
				return true
			}
		}
	}
	return false
}

// fuzzyMatchesBatch returns true if the batch matches the query by checking
// base path, patterns, and entry paths.
func fuzzyMatchesBatch(b *Batch, query string) bool {
	if FuzzyMatch(b.BasePath, query) {
		return true
	}
	for _, s := range []string{b.Matcher, b.Renamer, b.Replacement} {
		if FuzzyMatch(s, query) {
			return true
		}
	}
	for _, e := range b.Entries {
		if FuzzyMatch(e.Src, query) || FuzzyMatch(e.Dst, query) {
			return true
		}
	}
	return false
}

// FuzzySearchBatches searches batches by fuzzy-matching base path, patterns,
// and entry paths. It loads full batches and applies fuzzy matching in Go.
func (r *Repository) FuzzySearchBatches(query string) ([]Batch, error) {
	batches, err := r.ListBatches()
	if err != nil {
		return nil, err
	}
	var out []Batch
	for _, s := range batches {
		b, err := r.GetBatch(s.ID)
		if err != nil {
			return nil, err
		}
		if b == nil {
			continue
		}
		if fuzzyMatchesBatch(b, query) {
			out = append(out, *b)
		}
	}
	return out, nil
}
