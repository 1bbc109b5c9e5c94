package faq

// DefaultMatchThreshold is the score a candidate must exceed to count as a match.
const DefaultMatchThreshold = 0.4

// Config holds runtime knobs for the FAQ service.
type Config struct {
	MatchThreshold     float64
	TopRecommendations int
}
