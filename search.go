package pennybook

import (
	"fmt"
	"regexp"
)

// Searcher compiles user-supplied text patterns into matchers. It carries
// one flag, case sensitivity, which applies to subsequent compilations only
// and never retroactively changes an already-compiled matcher.
type Searcher struct {
	caseSensitive bool
}

// NewSearcher returns a Searcher with case-insensitive matching, the
// default.
func NewSearcher() *Searcher { return &Searcher{} }

// SetCaseSensitive flips the flag for all subsequent Compile calls.
func (s *Searcher) SetCaseSensitive(on bool) { s.caseSensitive = on }

// CaseSensitive reports the current flag.
func (s *Searcher) CaseSensitive() bool { return s.caseSensitive }

// Compile builds a matcher from the pattern. An empty pattern compiles to
// a nil matcher meaning "pass everything". A malformed pattern also yields
// a nil matcher, together with an error for the UI to report: the search
// degrades to showing the unfiltered set instead of failing the view.
func (s *Searcher) Compile(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	if !s.caseSensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid search pattern: %w", err)
	}
	return re, nil
}

// Filter returns the transactions matched by the matcher on any of
// description, category, amount (as plain decimal text), or date. A nil
// matcher returns the input unchanged.
func Filter(transactions []Transaction, matcher *regexp.Regexp) []Transaction {
	if matcher == nil {
		return transactions
	}
	var out []Transaction
	for _, t := range transactions {
		if matcher.MatchString(t.Description) ||
			matcher.MatchString(t.Category) ||
			matcher.MatchString(t.Amount.String()) ||
			matcher.MatchString(t.Date.String()) {
			out = append(out, t)
		}
	}
	return out
}
