package company

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// scorer computes 0-100 similarity scores from the longest common
// subsequence of two strings, as found by a Myers diff.
type scorer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

func newScorer() *scorer {
	dmp := diffmatchpatch.New()
	// A zero timeout disables the half-match shortcut, which keeps the diff
	// minimal and the equal runs an exact LCS.
	dmp.DiffTimeout = 0
	return &scorer{dmp: dmp}
}

// ratio is 100 * 2*LCS / (len(a)+len(b)).
func (s *scorer) ratio(a, b string) float64 {
	la, lb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if la+lb == 0 {
		return 100
	}
	if a == b {
		return 100
	}
	common := 0
	for _, d := range s.dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			common += utf8.RuneCountInString(d.Text)
		}
	}
	return 200 * float64(common) / float64(la+lb)
}

// tokenSortRatio ignores word order.
func (s *scorer) tokenSortRatio(a, b string) float64 {
	return s.ratio(sortedTokens(a), sortedTokens(b))
}

// partialRatio scores the shorter string against its best-aligned window in
// the longer one.
func (s *scorer) partialRatio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(ra) == 0 {
		if len(rb) == 0 {
			return 100
		}
		return 0
	}
	short := string(ra)
	best := 0.0
	for i := 0; i+len(ra) <= len(rb); i++ {
		r := s.ratio(short, string(rb[i:i+len(ra)]))
		if r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}
	return best
}

// score is the combined similarity used for company matching.
func (s *scorer) score(a, b string) float64 {
	ts := s.tokenSortRatio(a, b)
	pr := s.partialRatio(a, b)
	if pr > ts {
		return pr
	}
	return ts
}

func sortedTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
