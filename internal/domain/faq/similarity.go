package faq

// similarity scores two normalized strings as the size of their token set
// intersection divided by the size of the larger set. This is deliberately not
// union based Jaccard; the default threshold was tuned against this formula.
func similarity(a, b string) float64 {
	return setSimilarity(tokenSet(a), tokenSet(b))
}

func setSimilarity(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	small, large := a, b
	if len(small) > len(large) {
		small, large = large, small
	}
	common := 0
	for token := range small {
		if _, ok := large[token]; ok {
			common++
		}
	}
	return float64(common) / float64(len(large))
}
