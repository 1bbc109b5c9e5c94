package conversation

import "time"

const (
	// DefaultDebounce drops repeated submissions arriving within this window.
	DefaultDebounce = time.Second
	// DefaultHistoryLimit caps the number of turns kept per session.
	DefaultHistoryLimit = 10
	// DefaultSessionTTL bounds how long an idle session is retained.
	DefaultSessionTTL = 30 * time.Minute
	// NoDebounce accepts every question regardless of spacing.
	NoDebounce time.Duration = -1
)

// Config holds conversation runtime settings. A zero Debounce means
// DefaultDebounce; a negative one disables it.
type Config struct {
	Debounce     time.Duration
	HistoryLimit int
	SessionTTL   time.Duration
	Suggestions  Suggestions
}

// DefaultSuggestions mirrors the quick questions of the catalog.
func DefaultSuggestions() Suggestions {
	return Suggestions{
		English: []string{"what is omx digital", "what are your business hours", "how can i contact support"},
		Hindi:   []string{"omx digital kya hai", "aapke vyapar ke ghante kya hain", "main support se kaise sampark kar sakta hoon"},
	}
}

func (c Config) withDefaults() Config {
	switch {
	case c.Debounce == 0:
		c.Debounce = DefaultDebounce
	case c.Debounce < 0:
		c.Debounce = 0
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = DefaultHistoryLimit
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = DefaultSessionTTL
	}
	if len(c.Suggestions.English) == 0 && len(c.Suggestions.Hindi) == 0 {
		c.Suggestions = DefaultSuggestions()
	}
	return c
}
