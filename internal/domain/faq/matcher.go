package faq

// Matcher finds the catalog question closest to a user question. It is
// immutable after construction.
type Matcher struct {
	catalog   *Catalog
	tokens    []map[string]struct{}
	threshold float64
}

// NewMatcher prepares normalized token sets for every catalog question.
// A non-positive threshold falls back to DefaultMatchThreshold.
func NewMatcher(catalog *Catalog, threshold float64) *Matcher {
	if threshold <= 0 {
		threshold = DefaultMatchThreshold
	}
	tokens := make([]map[string]struct{}, len(catalog.entries))
	for i, entry := range catalog.entries {
		tokens[i] = tokenSet(normalizeQuestion(entry.Question))
	}
	return &Matcher{catalog: catalog, tokens: tokens, threshold: threshold}
}

// Catalog returns the catalog the matcher scans.
func (m *Matcher) Catalog() *Catalog {
	return m.catalog
}

// Match scans the whole catalog once and reports the best candidate. Ties keep
// the earliest entry in catalog order.
func (m *Matcher) Match(question string) MatchResult {
	if question == "" {
		return MatchResult{}
	}
	query := tokenSet(normalizeQuestion(question))

	var (
		bestScore float64
		bestIdx   = -1
	)
	for i, candidate := range m.tokens {
		score := setSimilarity(query, candidate)
		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return MatchResult{}
	}
	return MatchResult{
		Entry: m.catalog.entries[bestIdx],
		Score: bestScore,
		Found: bestScore > m.threshold,
	}
}

// FindBestMatch returns the best catalog entry when its score clears the threshold.
func (m *Matcher) FindBestMatch(question string) (Entry, bool) {
	result := m.Match(question)
	if !result.Found {
		return Entry{}, false
	}
	return result.Entry, true
}
