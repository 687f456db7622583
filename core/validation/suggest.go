package validation

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// closestMatch returns the candidate closest to target, or "" if nothing
// is close. Matching ignores case.
func closestMatch(target string, candidates []string) string {
	if target == "" || len(candidates) == 0 {
		return ""
	}

	ranks := fuzzy.RankFindFold(target, candidates)
	if len(ranks) == 0 {
		return ""
	}
	sort.Sort(ranks)
	return ranks[0].Target
}

// suggestFor attaches a suggestion to err when value is a string and one of
// the string options is close to it.
func suggestFor(err *Error, value any, options []any) *Error {
	s, ok := asString(value)
	if !ok {
		return err
	}
	candidates := make([]string, 0, len(options))
	for _, o := range options {
		if os, ok := asString(o); ok {
			candidates = append(candidates, os)
		}
	}
	err.Suggestion = closestMatch(s, candidates)
	return err
}
