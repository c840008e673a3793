package catalog

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var nameAliases = map[string]string{
	"United States of America": "United States",
	"USA":                      "United States",
	"UK":                       "United Kingdom",
	"Russian Federation":       "Russia",
}

// CleanName trims a country name and maps common aliases to catalog names.
func CleanName(name string) string {
	cleaned := strings.TrimSpace(name)
	if alias, ok := nameAliases[cleaned]; ok {
		return alias
	}

	return cleaned
}

// maxSuggestDistance bounds how far a suggestion may be from the input.
const maxSuggestDistance = 3

// Suggest returns up to limit candidates closest to name by edit distance,
// nearest first. Candidates farther than a few edits are ignored.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name string
		dist int
	}

	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" || limit <= 0 {
		return nil
	}

	var matches []scored

	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if d <= maxSuggestDistance && d > 0 {
			matches = append(matches, scored{name: c, dist: d})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].dist != matches[j].dist {
			return matches[i].dist < matches[j].dist
		}

		return matches[i].name < matches[j].name
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}

	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.name
	}

	return out
}
