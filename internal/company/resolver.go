package company

import (
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/medsupp/appformat/internal/normalize"
)

// MinScore is the lowest fuzzy score accepted as a match.
const MinScore = 80.0

const defaultCacheSize = 512

// Entry is one row of the NAIC company directory.
type Entry struct {
	Name string `json:"name"`
	Code string `json:"naic"`
}

// Match describes how a free-text company name was resolved.
type Match struct {
	Name  string
	Code  string
	Score float64
	Exact bool
}

// aliases expands common abbreviations and marketing names into the wording
// used by the directory. Keys and values are in normalized form.
var aliases = map[string]string{
	"uhc":                "unitedhealthcare",
	"united healthcare":  "unitedhealthcare",
	"united health care": "unitedhealthcare",
	"aarp":               "unitedhealthcare",
	"bcbs":               "blue cross blue shield",
	"bc bs":              "blue cross blue shield",
	"moo":                "mutual of omaha",
	"mutual omaha":       "mutual of omaha",
	"ace":                "ace property and casualty",
	"chubb":              "ace property and casualty",
	"csi":                "central states indemnity",
	"gpm":                "gpm health and life",
	"hcsc":               "health care service corporation",
	"wellcare":           "wellcare health",
}

// Resolver maps free-text insurer names onto directory entries.
// It is safe for concurrent use.
type Resolver struct {
	entries []normalizedEntry
	exact   map[string]Entry
	scorer  *scorer
	cache   *lru.Cache[string, Match]
}

type normalizedEntry struct {
	Entry
	norm string
}

// NewResolver builds a resolver over the given directory.
func NewResolver(dir []Entry) *Resolver {
	r := &Resolver{
		exact:  make(map[string]Entry, len(dir)),
		scorer: newScorer(),
	}
	for _, e := range dir {
		key := strings.ToLower(strings.TrimSpace(e.Name))
		if key == "" {
			continue
		}
		if _, dup := r.exact[key]; !dup {
			r.exact[key] = e
		}
		r.entries = append(r.entries, normalizedEntry{Entry: e, norm: normalize.NormalizeName(e.Name)})
	}
	r.cache, _ = lru.New[string, Match](defaultCacheSize)
	return r
}

// Len returns the number of directory entries.
func (r *Resolver) Len() int {
	return len(r.entries)
}

// Code returns the NAIC code for name, or "" when no entry is close enough.
func (r *Resolver) Code(name string) string {
	m, ok := r.Match(name)
	if !ok {
		return ""
	}
	return m.Code
}

// Match resolves name against the directory. ok is false for empty input or
// when the best fuzzy score is below MinScore.
func (r *Resolver) Match(name string) (Match, bool) {
	if r == nil {
		return Match{}, false
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Match{}, false
	}

	if e, ok := r.exact[strings.ToLower(trimmed)]; ok {
		return Match{Name: e.Name, Code: e.Code, Score: 100, Exact: true}, true
	}

	if m, ok := r.cache.Get(trimmed); ok {
		return m, m.Code != ""
	}

	query := expandAliases(normalize.NormalizeName(trimmed))
	best := Match{}
	for _, e := range r.entries {
		s := r.scorer.score(query, e.norm)
		if s > best.Score {
			best = Match{Name: e.Name, Code: e.Code, Score: s}
		}
	}
	if best.Score < MinScore {
		best = Match{Score: best.Score}
	}
	r.cache.Add(trimmed, best)
	return best, best.Code != ""
}

func expandAliases(norm string) string {
	if full, ok := aliases[norm]; ok {
		return full
	}
	tokens := strings.Fields(norm)
	for i, tok := range tokens {
		if full, ok := aliases[tok]; ok {
			tokens[i] = full
		}
	}
	return strings.Join(tokens, " ")
}
