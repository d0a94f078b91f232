// Package matcher provides the search filters the cascader can run with.
package matcher

import (
	"sort"

	"github.com/sahilm/fuzzy"
	"go.trai.ch/cascade/internal/core/domain"
	"go.trai.ch/zerr"
)

// Name identifies a filter on the command line.
type Name string

const (
	// NameSubstring selects the case-insensitive substring filter.
	NameSubstring Name = "substring"
	// NameFuzzy selects the fuzzy subsequence filter.
	NameFuzzy Name = "fuzzy"
)

// Substring returns the default filter.
func Substring() domain.FilterFunc {
	return domain.DefaultFilter
}

// Fuzzy returns a filter matching input as a case-insensitive subsequence of
// any label on the path.
func Fuzzy() domain.FilterFunc {
	return func(input string, path domain.Path) bool {
		if input == "" {
			return true
		}
		return len(fuzzy.FindNoSort(input, domain.LabelsFromPath(path))) > 0
	}
}

// ByName returns the filter registered under name. An empty name selects
// the substring filter.
func ByName(name string) (domain.FilterFunc, error) {
	switch Name(name) {
	case "", NameSubstring:
		return Substring(), nil
	case NameFuzzy:
		return Fuzzy(), nil
	default:
		return nil, zerr.With(domain.ErrUnknownMatcher, "matcher", name)
	}
}

// Ranked is a search result with the byte offsets of its display label that
// matched the query.
type Ranked struct {
	// Index is the position of Tuple in the ranked input.
	Index   int
	Tuple   domain.PathTuple
	Matched []int
	Score   int
}

type tupleSource []domain.PathTuple

func (s tupleSource) String(i int) string { return s[i].Label }
func (s tupleSource) Len() int            { return len(s) }

// Rank fuzzy-matches input against each tuple's display label and returns the
// hits best first. Ties keep tree order. An empty input returns every tuple
// in tree order.
func Rank(input string, tuples []domain.PathTuple) []Ranked {
	if input == "" {
		out := make([]Ranked, len(tuples))
		for i, t := range tuples {
			out[i] = Ranked{Index: i, Tuple: t}
		}
		return out
	}

	matches := fuzzy.FindFromNoSort(input, tupleSource(tuples))
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	out := make([]Ranked, len(matches))
	for i, m := range matches {
		out[i] = Ranked{Index: m.Index, Tuple: tuples[m.Index], Matched: m.MatchedIndexes, Score: m.Score}
	}
	return out
}
